package gemini

import (
	"context"
	"testing"

	"github.com/phrazzld/passport-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeImageModel struct {
	resp       *genai.GenerateImagesResponse
	err        error
	lastPrompt string
	lastConfig *genai.GenerateImagesConfig
}

func (f *fakeImageModel) GenerateImages(
	ctx context.Context,
	model string,
	prompt string,
	config *genai.GenerateImagesConfig,
) (*genai.GenerateImagesResponse, error) {
	f.lastPrompt = prompt
	f.lastConfig = config
	return f.resp, f.err
}

func TestImageGenerator_GenerateImage(t *testing.T) {
	tests := []struct {
		name     string
		resp     *genai.GenerateImagesResponse
		err      error
		wantMIME string
		wantErr  error
	}{
		{
			name: "png image",
			resp: &genai.GenerateImagesResponse{GeneratedImages: []*genai.GeneratedImage{
				{Image: &genai.Image{ImageBytes: []byte{0x89, 'P', 'N', 'G'}, MIMEType: "image/png"}},
			}},
			wantMIME: "image/png",
		},
		{
			name: "missing mime defaults to png",
			resp: &genai.GenerateImagesResponse{GeneratedImages: []*genai.GeneratedImage{
				{Image: &genai.Image{ImageBytes: []byte{1, 2, 3}}},
			}},
			wantMIME: "image/png",
		},
		{
			name:    "no images",
			resp:    &genai.GenerateImagesResponse{},
			wantErr: generation.ErrMalformedOutput,
		},
		{
			name: "filtered",
			resp: &genai.GenerateImagesResponse{GeneratedImages: []*genai.GeneratedImage{
				{RAIFilteredReason: "person generation blocked"},
			}},
			wantErr: generation.ErrContentBlocked,
		},
		{
			name:    "deadline",
			err:     context.DeadlineExceeded,
			wantErr: generation.ErrTransientFailure,
		},
		{
			name:    "quota",
			err:     genai.APIError{Code: 400, Message: "invalid"},
			wantErr: generation.ErrProviderFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeImageModel{resp: tt.resp, err: tt.err}
			gen, err := newImageGenerator(discardLogger(), fake, "imagen-test")
			require.NoError(t, err)

			img, err := gen.GenerateImage(context.Background(), "a portrait of a starship pilot")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, img)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, img.Data)
			assert.Equal(t, tt.wantMIME, img.MIMEType)
			assert.Equal(t, "a portrait of a starship pilot", fake.lastPrompt)
			require.NotNil(t, fake.lastConfig)
			assert.Equal(t, int32(1), fake.lastConfig.NumberOfImages)
		})
	}
}

func TestImageGenerator_EmptyPrompt(t *testing.T) {
	gen, err := newImageGenerator(discardLogger(), &fakeImageModel{}, "imagen-test")
	require.NoError(t, err)

	_, err = gen.GenerateImage(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyPrompt)
	assert.ErrorIs(t, err, generation.ErrMalformedOutput)
}
