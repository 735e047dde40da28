package generation

import (
	"context"

	"github.com/phrazzld/passport-api/internal/domain"
)

// TextGenerator turns a prompt into raw provider text.
type TextGenerator interface {
	// GenerateText sends the prompt to the provider and returns its text output
	// unmodified. Errors wrap ErrProviderFailure, ErrTransientFailure,
	// ErrContentBlocked or ErrMalformedOutput.
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ImageGenerator turns an English image description into image bytes.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (*domain.Image, error)
}
