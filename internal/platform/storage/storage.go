package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"

	"github.com/google/uuid"
	"github.com/phrazzld/passport-api/internal/config"
	"github.com/phrazzld/passport-api/internal/domain"
)

// Common errors returned by image stores.
var (
	// ErrUploadFailed is returned when an image could not be persisted
	ErrUploadFailed = errors.New("image upload failed")

	// ErrEmptyImage is returned when asked to store an image with no bytes
	ErrEmptyImage = errors.New("image data cannot be empty")

	// ErrInvalidConfig is returned when a store cannot be built from configuration
	ErrInvalidConfig = errors.New("invalid storage configuration")
)

// ImageStore persists an image and reports where it can be fetched from.
type ImageStore interface {
	Upload(ctx context.Context, img domain.Image) (*domain.StoredImage, error)
}

// PublicIDPrefix starts every generated image id.
const PublicIDPrefix = "passport-"

// newPublicID returns a fresh, collision-free image id.
func newPublicID() string {
	return PublicIDPrefix + uuid.NewString()
}

// extensionFor maps an image MIME type onto a file extension.
func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}

// uploadError wraps err as ErrUploadFailed, keeping context errors matchable
// so that deadlines surface as retryable.
func uploadError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s: %w", ErrUploadFailed, op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrUploadFailed, op, err)
}

// New builds the image store selected by cfg.Backend.
func New(ctx context.Context, logger *slog.Logger, cfg config.StorageConfig) (ImageStore, error) {
	switch cfg.Backend {
	case config.StorageLocal:
		return NewLocalStore(logger, cfg.LocalDir, cfg.PublicPath)
	case config.StorageS3:
		return NewS3Store(ctx, logger, cfg.S3Bucket, cfg.S3Region, cfg.Folder)
	case config.StorageCloudinary:
		return NewCloudinaryStore(logger, cfg.CloudinaryURL, cfg.Folder)
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, cfg.Backend)
	}
}

// objectKey joins the folder and file name with forward slashes.
func objectKey(folder, name string) string {
	return path.Join(folder, name)
}
