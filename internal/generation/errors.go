package generation

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors returned by the generation package
var (
	// ErrProviderFailure is returned when a provider call fails for a
	// non-transient reason (auth, quota, bad request)
	ErrProviderFailure = errors.New("generation provider call failed")

	// ErrTransientFailure is returned for timeouts and other errors that might resolve on retry
	ErrTransientFailure = errors.New("transient error during generation")

	// ErrMalformedOutput is returned when provider text cannot be parsed into a passport document
	ErrMalformedOutput = errors.New("malformed provider output")

	// ErrMissingField is returned when a parsed document lacks required fields
	ErrMissingField = errors.New("provider output is missing required fields")

	// ErrInvalidSVG is returned when emblem markup is not a well-formed SVG document
	ErrInvalidSVG = errors.New("invalid svg markup")

	// ErrContentBlocked is returned when the provider blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by provider safety filters")

	// ErrInvalidConfig is returned when a generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// MissingFieldError names every required field absent from a provider document.
type MissingFieldError struct {
	Fields []string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField.Error(), strings.Join(e.Fields, ", "))
}

// Is reports whether target is ErrMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
