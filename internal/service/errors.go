package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// The API layer maps these to HTTP status codes.
var (
	// ErrInvalidImageData indicates a snapshot that is not a base64 data URL of
	// a supported image type. API layer should map this to HTTP 400 Bad Request.
	ErrInvalidImageData = errors.New("invalid image data")
)

// ServiceError wraps errors from the passport service with context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "generate_passport", "save_snapshot")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("passport service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("passport service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError, or returns nil when err is nil.
func NewServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
