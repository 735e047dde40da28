package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/passport-api/internal/config"
	"github.com/phrazzld/passport-api/internal/mocks"
	"github.com/phrazzld/passport-api/internal/platform/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(portraits bool) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:           8080,
			LogLevel:       "info",
			AllowedOrigins: []string{"*"},
			MaxBodyBytes:   1 << 20,
		},
		LLM: config.LLMConfig{
			Backend:             config.BackendGemini,
			GeminiAPIKey:        "test-key",
			TextModel:           "gemini-2.0-flash",
			ImageModel:          "imagen-3.0-generate-002",
			TextTimeoutSeconds:  5,
			ImageTimeoutSeconds: 5,
		},
		Image: config.ImageConfig{Portraits: portraits},
		Storage: config.StorageConfig{
			Backend:              config.StorageLocal,
			Folder:               "intergalactic-passports",
			PublicPath:           "/generated",
			UploadTimeoutSeconds: 5,
		},
	}
}

type routerFixture struct {
	text   *mocks.MockTextGenerator
	images *mocks.MockImageGenerator
	store  *storage.LocalStore
	router http.Handler
}

func newRouterFixture(t *testing.T, portraits bool) *routerFixture {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cfg := testConfig(portraits)
	cfg.Storage.LocalDir = t.TempDir()

	store, err := storage.NewLocalStore(logger, cfg.Storage.LocalDir, cfg.Storage.PublicPath)
	require.NoError(t, err)

	f := &routerFixture{
		text:   mocks.NewMockTextGeneratorWithText(mocks.ValidPassportJSON),
		images: mocks.NewMockImageGeneratorWithPNG(),
		store:  store,
	}

	app, err := assembleApplication(cfg, logger, providers{
		textGenerator:  f.text,
		imageGenerator: f.images,
		imageStore:     store,
	})
	require.NoError(t, err)

	f.router = app.setupRouter()
	return f
}

func (f *routerFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func TestRouterHealth(t *testing.T) {
	f := newRouterFixture(t, false)

	rr := f.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}

func TestRouterCreatePassport(t *testing.T) {
	t.Run("text only", func(t *testing.T) {
		f := newRouterFixture(t, false)

		req := httptest.NewRequest(http.MethodPost, "/api/passport",
			strings.NewReader(`{"name":"Ada","likes":"coding, stars","language":"en"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := f.do(req)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Ada", body["name"])
		assert.Contains(t, body, "theme")
		assert.NotContains(t, body, "imageUrl")
		assert.Equal(t, 1, f.text.CallCount())
		assert.Equal(t, 0, f.images.CallCount())
	})

	t.Run("portrait is stored and served", func(t *testing.T) {
		f := newRouterFixture(t, true)

		req := httptest.NewRequest(http.MethodPost, "/api/passport",
			strings.NewReader(`{"name":"Ada","likes":"coding, stars","language":"en"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := f.do(req)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var body struct {
			ImageURL string `json:"imageUrl"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		require.True(t, strings.HasPrefix(body.ImageURL, "/generated/"+storage.PublicIDPrefix), body.ImageURL)
		assert.Equal(t, 1, f.images.CallCount())

		img := f.do(httptest.NewRequest(http.MethodGet, body.ImageURL, nil))
		require.Equal(t, http.StatusOK, img.Code)
		assert.Equal(t, f.images.Image.Data, img.Body.Bytes())
	})

	t.Run("missing field never reaches the provider", func(t *testing.T) {
		f := newRouterFixture(t, false)

		req := httptest.NewRequest(http.MethodPost, "/api/passport",
			strings.NewReader(`{"name":"Ada","language":"en"}`))
		rr := f.do(req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, 0, f.text.CallCount())
	})
}

func TestRouterCORSPreflight(t *testing.T) {
	f := newRouterFixture(t, false)

	req := httptest.NewRequest(http.MethodOptions, "/api/passport", nil)
	req.Header.Set("Origin", "https://passport.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rr := f.do(req)

	assert.Less(t, rr.Code, 300)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	assert.Equal(t, 0, f.text.CallCount())
}

func TestRouterGeneratedFiles(t *testing.T) {
	f := newRouterFixture(t, false)

	t.Run("directory listing is hidden", func(t *testing.T) {
		rr := f.do(httptest.NewRequest(http.MethodGet, "/generated/", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("unknown file", func(t *testing.T) {
		rr := f.do(httptest.NewRequest(http.MethodGet, "/generated/passport-missing.png", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestNewHTTPServerTimeouts(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	textOnly := &application{config: testConfig(false), logger: logger}
	withPortraits := &application{config: testConfig(true), logger: logger}

	a := textOnly.newHTTPServer(http.NotFoundHandler())
	b := withPortraits.newHTTPServer(http.NotFoundHandler())

	assert.Equal(t, ":8080", a.Addr)
	assert.Greater(t, a.WriteTimeout, textOnly.config.LLM.TextTimeout())
	assert.Greater(t, b.WriteTimeout, a.WriteTimeout)
	assert.NotZero(t, a.ReadHeaderTimeout)
}
