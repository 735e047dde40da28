package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/passport-api/internal/api/shared"
	"github.com/phrazzld/passport-api/internal/domain"
	"github.com/phrazzld/passport-api/internal/generation"
	"github.com/phrazzld/passport-api/internal/platform/storage"
	"github.com/phrazzld/passport-api/internal/service"
)

// unexpectedErrorMessage is returned for errors with no dedicated message.
const unexpectedErrorMessage = "An unexpected error occurred"

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, service.ErrInvalidImageData):
		return http.StatusBadRequest

	// Timeouts are retryable, whichever call they came from
	case errors.Is(err, generation.ErrTransientFailure),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable

	// Provider, parse and upload failures all surface as 500; ErrorKind
	// keeps them apart in the logs.
	case errors.Is(err, generation.ErrMalformedOutput),
		errors.Is(err, generation.ErrMissingField),
		errors.Is(err, generation.ErrContentBlocked),
		errors.Is(err, generation.ErrProviderFailure),
		errors.Is(err, storage.ErrUploadFailed):
		return http.StatusInternalServerError

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	// Handle nil error
	if err == nil {
		return unexpectedErrorMessage
	}

	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr):
		return fmt.Sprintf("Invalid %s: %s", validationErr.Field, validationErr.Message)

	case errors.Is(err, domain.ErrValidation):
		return "Validation failed"

	case errors.Is(err, service.ErrInvalidImageData):
		return "Invalid image data"

	case errors.Is(err, generation.ErrTransientFailure),
		errors.Is(err, context.DeadlineExceeded):
		return "The passport office is busy, please try again"

	case errors.Is(err, generation.ErrContentBlocked):
		return "The request was blocked by content safety filters"

	case errors.Is(err, generation.ErrMalformedOutput),
		errors.Is(err, generation.ErrMissingField):
		return "The generator returned an incomplete passport, please try again"

	case errors.Is(err, generation.ErrProviderFailure):
		return "Failed to generate Intergalactic Passport"

	case errors.Is(err, storage.ErrUploadFailed):
		return "Failed to save image"

	default:
		return unexpectedErrorMessage
	}
}

// Error kinds reported in the error_kind log attribute.
const (
	KindValidation      = "validation"
	KindInvalidImage    = "invalid_image"
	KindTransient       = "transient"
	KindContentBlocked  = "content_blocked"
	KindMissingField    = "missing_field"
	KindMalformedOutput = "malformed_output"
	KindProviderFailure = "provider_failure"
	KindUploadFailed    = "upload_failed"
	KindUnexpected      = "unexpected"
)

// ErrorKind names the class of err for logging. Errors sharing a status code
// still get distinct kinds.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return KindValidation
	case errors.Is(err, service.ErrInvalidImageData):
		return KindInvalidImage
	case errors.Is(err, generation.ErrTransientFailure),
		errors.Is(err, context.DeadlineExceeded):
		return KindTransient
	case errors.Is(err, generation.ErrContentBlocked):
		return KindContentBlocked
	case errors.Is(err, generation.ErrMissingField):
		return KindMissingField
	case errors.Is(err, generation.ErrMalformedOutput):
		return KindMalformedOutput
	case errors.Is(err, generation.ErrProviderFailure):
		return KindProviderFailure
	case errors.Is(err, storage.ErrUploadFailed):
		return KindUploadFailed
	default:
		return KindUnexpected
	}
}

// HandleAPIError writes the status and safe message for err, logging the
// redacted detail. defaultMsg replaces the generic message for errors with
// no dedicated one.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if message == unexpectedErrorMessage && defaultMsg != "" {
		message = defaultMsg
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err, shared.WithErrorKind(ErrorKind(err)))
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Check if this is likely a validation error message
	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'PassportRequest.Likes' Error:Field validation for 'Likes' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := strings.ToLower(fieldParts[1])
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	// Fall back to a generic validation error message
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}
