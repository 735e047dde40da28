package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/passport-api/internal/domain"
	"github.com/phrazzld/passport-api/internal/generation"
	"github.com/phrazzld/passport-api/internal/imaging"
	"github.com/phrazzld/passport-api/internal/platform/storage"
)

// PassportService provides passport operations
type PassportService interface {
	// Generate builds a themed passport for req.
	Generate(ctx context.Context, req domain.PassportRequest) (*domain.Passport, error)

	// SaveSnapshot persists a client-rendered passport image given as a
	// base64 data URL.
	SaveSnapshot(ctx context.Context, dataURL string) (*domain.StoredImage, error)
}

// Timeouts bound the external calls made while serving a request. Zero
// leaves a call bounded only by the request context.
type Timeouts struct {
	Text   time.Duration
	Upload time.Duration
}

// passportServiceImpl implements the PassportService interface
type passportServiceImpl struct {
	text     generation.TextGenerator
	pipeline imaging.Pipeline
	store    storage.ImageStore
	themes   *domain.ThemeSelector
	timeouts Timeouts
	logger   *slog.Logger
}

// NewPassportService creates a new PassportService.
// It returns an error if any of the required dependencies are nil.
func NewPassportService(
	text generation.TextGenerator,
	pipeline imaging.Pipeline,
	store storage.ImageStore,
	themes *domain.ThemeSelector,
	timeouts Timeouts,
	logger *slog.Logger,
) (PassportService, error) {
	if text == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "text generator cannot be nil"}
	}
	if pipeline == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "image pipeline cannot be nil"}
	}
	if store == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "image store cannot be nil"}
	}
	if themes == nil {
		themes = domain.NewThemeSelector(nil)
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &passportServiceImpl{
		text:     text,
		pipeline: pipeline,
		store:    store,
		themes:   themes,
		timeouts: timeouts,
		logger:   logger.With("component", "passport_service"),
	}, nil
}

// Generate validates req, selects a theme, asks the text provider for the
// passport document and, when the pipeline produces one, attaches a portrait.
func (s *passportServiceImpl) Generate(
	ctx context.Context,
	req domain.PassportRequest,
) (*domain.Passport, error) {
	// 1. Reject incomplete requests before any provider is involved
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. Theme selection precedes prompt compilation so the stamp uses its colors
	theme := s.themes.Select()
	prompt := generation.CompilePrompt(req, theme)

	s.logger.DebugContext(ctx, "compiled passport prompt",
		"theme", theme.Name,
		"language", req.Language,
		"prompt_length", len(prompt))

	// 3. Text provider call under its own deadline
	raw, err := s.generateText(ctx, prompt)
	if err != nil {
		s.logger.ErrorContext(ctx, "text generation failed", "error", err, "theme", theme.Name)
		return nil, NewServiceError("generate_passport", "text generation failed", err)
	}

	// 4. Normalize, validate and sanitize the provider output
	doc, err := generation.ParseDocument(raw)
	if err != nil {
		s.logger.WarnContext(ctx, "provider output rejected",
			"error", err,
			"response_length", len(raw))
		return nil, NewServiceError("generate_passport", "provider output rejected", err)
	}

	// 5. Optional portrait
	imageURL, err := s.pipeline.Portrait(ctx, doc.PassportImagePrompt)
	if err != nil {
		s.logger.ErrorContext(ctx, "portrait pipeline failed", "error", err)
		return nil, NewServiceError("generate_passport", "portrait pipeline failed", err)
	}

	s.logger.InfoContext(ctx, "passport generated",
		"theme", theme.Name,
		"language", req.Language,
		"has_portrait", imageURL != "")

	return &domain.Passport{
		PassportDocument: *doc,
		Theme:            theme,
		ImageURL:         imageURL,
	}, nil
}

func (s *passportServiceImpl) generateText(ctx context.Context, prompt string) (string, error) {
	if s.timeouts.Text > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeouts.Text)
		defer cancel()
	}

	raw, err := s.text.GenerateText(ctx, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, generation.ErrTransientFailure) {
			return "", fmt.Errorf("%w: %w", generation.ErrTransientFailure, err)
		}
		return "", err
	}
	return raw, nil
}

// SaveSnapshot decodes dataURL and uploads the image.
func (s *passportServiceImpl) SaveSnapshot(ctx context.Context, dataURL string) (*domain.StoredImage, error) {
	img, err := DecodeDataURL(dataURL)
	if err != nil {
		s.logger.WarnContext(ctx, "rejected snapshot", "error", err, "length", len(dataURL))
		return nil, err
	}

	if s.timeouts.Upload > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeouts.Upload)
		defer cancel()
	}

	stored, err := s.store.Upload(ctx, *img)
	if err != nil {
		s.logger.ErrorContext(ctx, "snapshot upload failed", "error", err, "bytes", len(img.Data))
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %w", generation.ErrTransientFailure, err)
		}
		return nil, NewServiceError("save_snapshot", "upload failed", err)
	}

	s.logger.InfoContext(ctx, "snapshot saved", "public_id", stored.PublicID)
	return stored, nil
}
