package gemini

import (
	"context"
	"fmt"

	"github.com/phrazzld/passport-api/internal/config"
	"github.com/phrazzld/passport-api/internal/generation"
	"google.golang.org/genai"
)

// contentModel is the part of genai.Models used for text generation.
type contentModel interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// imageModel is the part of genai.Models used for image generation.
type imageModel interface {
	GenerateImages(
		ctx context.Context,
		model string,
		prompt string,
		config *genai.GenerateImagesConfig,
	) (*genai.GenerateImagesResponse, error)
}

// NewClient creates a genai client for the configured backend. The client is
// safe for concurrent use and is shared by the text and image generators.
func NewClient(ctx context.Context, cfg config.LLMConfig) (*genai.Client, error) {
	clientConfig, err := clientConfig(cfg)
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create genai client: %v", generation.ErrInvalidConfig, err)
	}

	return client, nil
}

func clientConfig(cfg config.LLMConfig) (*genai.ClientConfig, error) {
	switch cfg.Backend {
	case config.BackendGemini, "":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
		}
		return &genai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		}, nil
	case config.BackendVertex:
		if cfg.ProjectID == "" || cfg.Location == "" {
			return nil, fmt.Errorf("%w: vertex backend requires project and location", generation.ErrInvalidConfig)
		}
		return &genai.ClientConfig{
			Project:  cfg.ProjectID,
			Location: cfg.Location,
			Backend:  genai.BackendVertexAI,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", generation.ErrInvalidConfig, cfg.Backend)
	}
}
