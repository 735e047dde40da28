package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/passport-api/internal/domain"
)

// MockImageStore implements storage.ImageStore for testing
type MockImageStore struct {
	UploadFn func(ctx context.Context, img domain.Image) (*domain.StoredImage, error)

	// Default response values
	Stored *domain.StoredImage
	Err    error

	UploadCalls struct {
		mu     sync.Mutex
		Count  int
		Images []domain.Image
	}
}

// Upload implements the storage.ImageStore interface
func (m *MockImageStore) Upload(ctx context.Context, img domain.Image) (*domain.StoredImage, error) {
	m.UploadCalls.mu.Lock()
	m.UploadCalls.Count++
	m.UploadCalls.Images = append(m.UploadCalls.Images, img)
	m.UploadCalls.mu.Unlock()

	if m.UploadFn != nil {
		return m.UploadFn(ctx, img)
	}

	return m.Stored, m.Err
}

// CallCount returns the number of Upload calls so far.
func (m *MockImageStore) CallCount() int {
	m.UploadCalls.mu.Lock()
	defer m.UploadCalls.mu.Unlock()
	return m.UploadCalls.Count
}

// NewMockImageStoreWithURL creates a MockImageStore that reports every upload at url
func NewMockImageStoreWithURL(url, publicID string) *MockImageStore {
	return &MockImageStore{
		Stored: &domain.StoredImage{URL: url, PublicID: publicID},
	}
}
