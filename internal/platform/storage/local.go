package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/phrazzld/passport-api/internal/domain"
)

// LocalStore writes images into a directory that the HTTP server exposes
// under PublicPath.
type LocalStore struct {
	logger     *slog.Logger
	dir        string
	publicPath string
}

var _ ImageStore = (*LocalStore)(nil)

// NewLocalStore creates dir if needed and returns a store writing into it.
func NewLocalStore(logger *slog.Logger, dir, publicPath string) (*LocalStore, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if dir == "" {
		return nil, fmt.Errorf("%w: local directory cannot be empty", ErrInvalidConfig)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create %s: %v", ErrInvalidConfig, dir, err)
	}

	return &LocalStore{
		logger:     logger,
		dir:        dir,
		publicPath: "/" + strings.Trim(publicPath, "/"),
	}, nil
}

// Dir is the directory images are written to.
func (s *LocalStore) Dir() string {
	return s.dir
}

// PublicPath is the URL prefix images are served under.
func (s *LocalStore) PublicPath() string {
	return s.publicPath
}

// Upload writes img to a new file and returns its URL relative to the server root.
func (s *LocalStore) Upload(ctx context.Context, img domain.Image) (*domain.StoredImage, error) {
	if len(img.Data) == 0 {
		return nil, ErrEmptyImage
	}
	if err := ctx.Err(); err != nil {
		return nil, uploadError("local write", err)
	}

	publicID := newPublicID()
	name := publicID + extensionFor(img.MIMEType)

	// write to a temp name first so a half-written file is never served
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return nil, uploadError("local write", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(img.Data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return nil, uploadError("local write", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return nil, uploadError("local write", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return nil, uploadError("local write", err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		_ = os.Remove(tmpName)
		return nil, uploadError("local write", err)
	}

	url := strings.TrimSuffix(s.publicPath, "/") + "/" + name
	s.logger.InfoContext(ctx, "Stored image on local disk",
		"public_id", publicID,
		"bytes", len(img.Data),
		"url", url)

	return &domain.StoredImage{URL: url, PublicID: publicID}, nil
}
