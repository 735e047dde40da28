package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/passport-api/internal/generation"
	"google.golang.org/genai"
)

// TextGenerator implements generation.TextGenerator with a Gemini text model.
type TextGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// models issues the generateContent calls
	models contentModel

	// model is the name of the Gemini model to use
	model string
}

var _ generation.TextGenerator = (*TextGenerator)(nil)

// NewTextGenerator creates a TextGenerator that calls model through client.
func NewTextGenerator(logger *slog.Logger, client *genai.Client, model string) (*TextGenerator, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: genai client cannot be nil", generation.ErrInvalidConfig)
	}
	return newTextGenerator(logger, client.Models, model)
}

func newTextGenerator(logger *slog.Logger, models contentModel, model string) (*TextGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	return &TextGenerator{
		logger: logger,
		models: models,
		model:  model,
	}, nil
}

// GenerateText sends prompt to the model, asking for a JSON response, and
// returns the concatenated text of the first candidate.
func (g *TextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}

	g.logger.DebugContext(ctx, "Making Gemini text call",
		"model", g.model,
		"prompt_length", len(prompt))

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		err = classifyError(ctx, "generate content", err)
		g.logger.ErrorContext(ctx, "Gemini text call failed", "model", g.model, "error", err)
		return "", err
	}

	text, err := responseText(resp)
	if err != nil {
		g.logger.WarnContext(ctx, "Gemini text response unusable", "model", g.model, "error", err)
		return "", err
	}

	g.logger.InfoContext(ctx, "Gemini text call successful",
		"model", g.model,
		"response_length", len(text))

	return text, nil
}

// responseText extracts the text of the first candidate, classifying empty
// and blocked responses.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrMalformedOutput)
	}

	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("%w: prompt blocked: %s", generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
		}
		return "", fmt.Errorf("%w: no content generated", generation.ErrMalformedOutput)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	}
	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrMalformedOutput)
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}

	text := b.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: response contained no text", generation.ErrMalformedOutput)
	}
	return text, nil
}
