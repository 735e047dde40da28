package service

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/phrazzld/passport-api/internal/domain"
)

// supportedSnapshotTypes are the image types accepted from clients.
var supportedSnapshotTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
}

// DecodeDataURL parses a data:image/<type>;base64,<payload> URL. Any other
// shape, an unsupported type or an empty payload yields ErrInvalidImageData.
func DecodeDataURL(dataURL string) (*domain.Image, error) {
	dataURL = strings.TrimSpace(dataURL)
	if dataURL == "" {
		return nil, fmt.Errorf("%w: no image data provided", ErrInvalidImageData)
	}
	if !strings.HasPrefix(dataURL, "data:image/") {
		return nil, fmt.Errorf("%w: not an image data URL", ErrInvalidImageData)
	}

	header, payload, ok := strings.Cut(strings.TrimPrefix(dataURL, "data:"), ",")
	if !ok {
		return nil, fmt.Errorf("%w: missing data separator", ErrInvalidImageData)
	}

	mimeType, encoding, _ := strings.Cut(header, ";")
	mimeType = strings.ToLower(mimeType)
	if encoding != "base64" {
		return nil, fmt.Errorf("%w: data URL must be base64 encoded", ErrInvalidImageData)
	}
	if !supportedSnapshotTypes[mimeType] {
		return nil, fmt.Errorf("%w: unsupported image type %q", ErrInvalidImageData, mimeType)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64 payload: %v", ErrInvalidImageData, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty image payload", ErrInvalidImageData)
	}

	return &domain.Image{Data: data, MIMEType: mimeType}, nil
}
