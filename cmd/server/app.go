package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/passport-api/internal/config"
	"github.com/phrazzld/passport-api/internal/domain"
	"github.com/phrazzld/passport-api/internal/generation"
	"github.com/phrazzld/passport-api/internal/imaging"
	"github.com/phrazzld/passport-api/internal/platform/gemini"
	"github.com/phrazzld/passport-api/internal/platform/storage"
	"github.com/phrazzld/passport-api/internal/service"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	imageStore      storage.ImageStore
	passportService service.PassportService
}

// providers are the external collaborators the application is built from.
// imageGenerator may be nil when portraits are disabled.
type providers struct {
	textGenerator  generation.TextGenerator
	imageGenerator generation.ImageGenerator
	imageStore     storage.ImageStore
}

// newApplication creates the provider clients described by cfg and builds
// the application from them.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	client, err := gemini.NewClient(ctx, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize genai client: %w", err)
	}

	var deps providers

	deps.textGenerator, err = gemini.NewTextGenerator(
		logger.With("component", "text_generator"),
		client,
		cfg.LLM.TextModel,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize text generator: %w", err)
	}
	logger.Info("Text generator initialized", "model", cfg.LLM.TextModel, "backend", cfg.LLM.Backend)

	if cfg.Image.Portraits {
		deps.imageGenerator, err = gemini.NewImageGenerator(
			logger.With("component", "image_generator"),
			client,
			cfg.LLM.ImageModel,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize image generator: %w", err)
		}
		logger.Info("Image generator initialized", "model", cfg.LLM.ImageModel)
	}

	deps.imageStore, err = storage.New(ctx, logger.With("component", "image_store"), cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image store: %w", err)
	}
	logger.Info("Image store initialized", "backend", cfg.Storage.Backend)

	return assembleApplication(cfg, logger, deps)
}

// assembleApplication wires the service layer on top of deps.
func assembleApplication(cfg *config.Config, logger *slog.Logger, deps providers) (*application, error) {
	var pipeline imaging.Pipeline = imaging.Disabled{}
	if cfg.Image.Portraits {
		generated, err := imaging.NewGenerated(
			logger.With("component", "portrait_pipeline"),
			deps.imageGenerator,
			deps.imageStore,
			cfg.LLM.ImageTimeout(),
			cfg.Storage.UploadTimeout(),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create portrait pipeline: %w", err)
		}
		pipeline = generated
	}

	passportService, err := service.NewPassportService(
		deps.textGenerator,
		pipeline,
		deps.imageStore,
		domain.NewThemeSelector(nil),
		service.Timeouts{
			Text:   cfg.LLM.TextTimeout(),
			Upload: cfg.Storage.UploadTimeout(),
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create passport service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return &application{
		config:          cfg,
		logger:          logger,
		imageStore:      deps.imageStore,
		passportService: passportService,
	}, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
