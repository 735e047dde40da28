package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/passport-api/internal/domain"
	"github.com/phrazzld/passport-api/internal/generation"
	"google.golang.org/genai"
)

const defaultImageMIMEType = "image/png"

// ImageGenerator implements generation.ImageGenerator with an Imagen model.
type ImageGenerator struct {
	logger *slog.Logger
	models imageModel
	model  string
}

var _ generation.ImageGenerator = (*ImageGenerator)(nil)

// NewImageGenerator creates an ImageGenerator that calls model through client.
func NewImageGenerator(logger *slog.Logger, client *genai.Client, model string) (*ImageGenerator, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: genai client cannot be nil", generation.ErrInvalidConfig)
	}
	return newImageGenerator(logger, client.Models, model)
}

func newImageGenerator(logger *slog.Logger, models imageModel, model string) (*ImageGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	return &ImageGenerator{
		logger: logger,
		models: models,
		model:  model,
	}, nil
}

// GenerateImage renders a single image for prompt.
func (g *ImageGenerator) GenerateImage(ctx context.Context, prompt string) (*domain.Image, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	g.logger.DebugContext(ctx, "Making Imagen call",
		"model", g.model,
		"prompt_length", len(prompt))

	resp, err := g.models.GenerateImages(ctx, g.model, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
	})
	if err != nil {
		err = classifyError(ctx, "generate images", err)
		g.logger.ErrorContext(ctx, "Imagen call failed", "model", g.model, "error", err)
		return nil, err
	}

	if resp == nil || len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0] == nil {
		return nil, fmt.Errorf("%w: no image generated", generation.ErrMalformedOutput)
	}

	generated := resp.GeneratedImages[0]
	if generated.Image == nil || len(generated.Image.ImageBytes) == 0 {
		if generated.RAIFilteredReason != "" {
			return nil, fmt.Errorf("%w: %s", generation.ErrContentBlocked, generated.RAIFilteredReason)
		}
		return nil, fmt.Errorf("%w: generated image is empty", generation.ErrMalformedOutput)
	}

	mimeType := generated.Image.MIMEType
	if mimeType == "" {
		mimeType = defaultImageMIMEType
	}

	g.logger.InfoContext(ctx, "Imagen call successful",
		"model", g.model,
		"image_bytes", len(generated.Image.ImageBytes),
		"mime_type", mimeType)

	return &domain.Image{
		Data:     generated.Image.ImageBytes,
		MIMEType: mimeType,
	}, nil
}
