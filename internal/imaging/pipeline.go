package imaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/passport-api/internal/generation"
	"github.com/phrazzld/passport-api/internal/platform/storage"
)

// Pipeline turns an image prompt into the URL of a hosted portrait.
type Pipeline interface {
	// Portrait returns the portrait URL, or "" when the pipeline produces no
	// image.
	Portrait(ctx context.Context, prompt string) (string, error)
}

// Disabled is the pipeline for text-only passports.
type Disabled struct{}

// Portrait always returns "".
func (Disabled) Portrait(context.Context, string) (string, error) {
	return "", nil
}

// Generated renders a portrait with an ImageGenerator and uploads it.
type Generated struct {
	logger        *slog.Logger
	generator     generation.ImageGenerator
	store         storage.ImageStore
	imageTimeout  time.Duration
	uploadTimeout time.Duration
}

// NewGenerated creates a Generated pipeline. Non-positive timeouts leave the
// corresponding call bounded only by the caller's context.
func NewGenerated(
	logger *slog.Logger,
	generator generation.ImageGenerator,
	store storage.ImageStore,
	imageTimeout, uploadTimeout time.Duration,
) (*Generated, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if generator == nil {
		return nil, errors.New("image generator cannot be nil")
	}
	if store == nil {
		return nil, errors.New("image store cannot be nil")
	}

	return &Generated{
		logger:        logger,
		generator:     generator,
		store:         store,
		imageTimeout:  imageTimeout,
		uploadTimeout: uploadTimeout,
	}, nil
}

// Portrait generates an image for prompt and returns its hosted URL.
func (p *Generated) Portrait(ctx context.Context, prompt string) (string, error) {
	genCtx, cancel := withOptionalTimeout(ctx, p.imageTimeout)
	img, err := p.generator.GenerateImage(genCtx, prompt)
	cancel()
	if err != nil {
		return "", fmt.Errorf("portrait generation: %w", err)
	}

	uploadCtx, cancel := withOptionalTimeout(ctx, p.uploadTimeout)
	defer cancel()

	stored, err := p.store.Upload(uploadCtx, *img)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: portrait upload: %w", generation.ErrTransientFailure, err)
		}
		return "", fmt.Errorf("portrait upload: %w", err)
	}

	p.logger.DebugContext(ctx, "Portrait stored", "public_id", stored.PublicID)
	return stored.URL, nil
}

func withOptionalTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
