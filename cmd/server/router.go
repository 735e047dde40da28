package main

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/passport-api/internal/api"
	apiMiddleware "github.com/phrazzld/passport-api/internal/api/middleware"
	"github.com/phrazzld/passport-api/internal/platform/storage"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(app.logger.Handler(), slog.LevelInfo),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	passportHandler := api.NewPassportHandler(app.passportService, app.config.Server.MaxBodyBytes, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/passport", passportHandler.CreatePassport)
		r.Post("/save-image", passportHandler.SaveImage)
	})

	// Locally stored images are served by this process
	if local, ok := app.imageStore.(*storage.LocalStore); ok {
		prefix := local.PublicPath()
		files := http.StripPrefix(prefix, noDirListing(http.FileServer(http.Dir(local.Dir()))))
		r.Get(prefix+"/*", files.ServeHTTP)
		app.logger.Info("Serving stored images", "path", prefix, "dir", local.Dir())
	}

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}

// noDirListing hides directory indexes; only files can be fetched.
func noDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
