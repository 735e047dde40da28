package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/passport-api/internal/generation"
	"google.golang.org/genai"
)

// Error definitions for the gemini package.
var (
	// ErrEmptyPrompt is returned when a generator is called with an empty prompt.
	// Prompts come from provider output (passport_image_prompt), so it is a
	// kind of malformed output.
	ErrEmptyPrompt = fmt.Errorf("%w: prompt cannot be empty", generation.ErrMalformedOutput)
)

// classifyError maps an SDK error onto a generation error kind.
func classifyError(ctx context.Context, op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s timed out: %v", generation.ErrTransientFailure, op, err)
	}

	switch apiErrorCode(err) {
	case http.StatusTooManyRequests, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s: %v", generation.ErrTransientFailure, op, err)
	}

	return fmt.Errorf("%w: %s: %v", generation.ErrProviderFailure, op, err)
}

// apiErrorCode returns the HTTP status carried by a genai API error, or 0.
func apiErrorCode(err error) int {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code
	}
	return 0
}
