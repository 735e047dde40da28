package imaging_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/phrazzld/passport-api/internal/domain"
	"github.com/phrazzld/passport-api/internal/generation"
	"github.com/phrazzld/passport-api/internal/imaging"
	"github.com/phrazzld/passport-api/internal/mocks"
	"github.com/phrazzld/passport-api/internal/platform/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDisabled(t *testing.T) {
	url, err := imaging.Disabled{}.Portrait(context.Background(), "anything")
	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestGenerated_Portrait(t *testing.T) {
	gen := mocks.NewMockImageGeneratorWithPNG()
	store := mocks.NewMockImageStoreWithURL("https://cdn.example/passport-1.png", "passport-1")

	pipeline, err := imaging.NewGenerated(discardLogger(), gen, store, time.Second, time.Second)
	require.NoError(t, err)

	url, err := pipeline.Portrait(context.Background(), "a pilot among the stars")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example/passport-1.png", url)
	assert.Equal(t, []string{"a pilot among the stars"}, gen.GenerateImageCalls.Prompts)
	require.Equal(t, 1, store.CallCount())
	assert.Equal(t, "image/png", store.UploadCalls.Images[0].MIMEType)
}

func TestGenerated_GeneratorFailureSkipsUpload(t *testing.T) {
	gen := &mocks.MockImageGenerator{Err: generation.ErrContentBlocked}
	store := mocks.NewMockImageStoreWithURL("u", "id")

	pipeline, err := imaging.NewGenerated(discardLogger(), gen, store, time.Second, time.Second)
	require.NoError(t, err)

	_, err = pipeline.Portrait(context.Background(), "p")
	assert.ErrorIs(t, err, generation.ErrContentBlocked)
	assert.Equal(t, 0, store.CallCount())
}

func TestGenerated_UploadFailure(t *testing.T) {
	store := &mocks.MockImageStore{Err: storage.ErrUploadFailed}
	pipeline, err := imaging.NewGenerated(discardLogger(), mocks.NewMockImageGeneratorWithPNG(), store, time.Second, time.Second)
	require.NoError(t, err)

	_, err = pipeline.Portrait(context.Background(), "p")
	assert.ErrorIs(t, err, storage.ErrUploadFailed)
	assert.False(t, errors.Is(err, generation.ErrTransientFailure))
}

func TestGenerated_UploadTimeoutIsTransient(t *testing.T) {
	store := &mocks.MockImageStore{
		UploadFn: func(ctx context.Context, img domain.Image) (*domain.StoredImage, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	pipeline, err := imaging.NewGenerated(discardLogger(), mocks.NewMockImageGeneratorWithPNG(), store, time.Second, 10*time.Millisecond)
	require.NoError(t, err)

	_, err = pipeline.Portrait(context.Background(), "p")
	assert.ErrorIs(t, err, generation.ErrTransientFailure)
}

func TestGenerated_ImageTimeoutApplied(t *testing.T) {
	gen := &mocks.MockImageGenerator{
		GenerateImageFn: func(ctx context.Context, prompt string) (*domain.Image, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return &domain.Image{Data: []byte{1}, MIMEType: "image/png"}, nil
		},
	}
	pipeline, err := imaging.NewGenerated(discardLogger(), gen, mocks.NewMockImageStoreWithURL("u", "id"), time.Minute, time.Minute)
	require.NoError(t, err)

	_, err = pipeline.Portrait(context.Background(), "p")
	require.NoError(t, err)
}

func TestNewGenerated_Validation(t *testing.T) {
	_, err := imaging.NewGenerated(nil, mocks.NewMockImageGeneratorWithPNG(), &mocks.MockImageStore{}, 0, 0)
	assert.Error(t, err)
	_, err = imaging.NewGenerated(discardLogger(), nil, &mocks.MockImageStore{}, 0, 0)
	assert.Error(t, err)
	_, err = imaging.NewGenerated(discardLogger(), mocks.NewMockImageGeneratorWithPNG(), nil, 0, 0)
	assert.Error(t, err)
}
