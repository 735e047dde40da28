package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/passport-api/internal/domain"
	"github.com/phrazzld/passport-api/internal/generation"
)

// ValidPassportJSON is a complete provider response for a passport document.
const ValidPassportJSON = `{
  "name": "Ada",
  "space_name": "Ada Lux-7",
  "planet_of_origin": "Kepler Prime",
  "species": "Stellar Cartographer",
  "occupation": "Void Code Weaver",
  "registration_number": "GX-4471-ADA",
  "profile_tagline": "Charting starlight one function at a time.",
  "restrictions": "May not debug within three parsecs of a black hole.",
  "passport_stamp_svg": "<svg viewBox=\"0 0 100 100\" xmlns=\"http://www.w3.org/2000/svg\"><circle cx=\"50\" cy=\"50\" r=\"40\" stroke=\"#00f5ff\" fill=\"none\"/></svg>",
  "passport_image_prompt": "A portrait of a stellar cartographer surrounded by glowing code and stars",
  "tweet_text": "Just got my intergalactic passport!",
  "labels": {
    "planet_label": "Planet of Origin",
    "species_label": "Species",
    "occupation_label": "Occupation",
    "reg_number_label": "Registration Number",
    "tagline_label": "Profile Tagline",
    "restrictions_label": "Restrictions"
  }
}`

// MockTextGenerator implements generation.TextGenerator for testing
type MockTextGenerator struct {
	// GenerateTextFn allows test cases to mock the GenerateText behavior
	GenerateTextFn func(ctx context.Context, prompt string) (string, error)

	// Default response values
	Text string
	Err  error

	// Call tracking for verification
	GenerateTextCalls struct {
		mu sync.Mutex

		// Count tracks how many times GenerateText was called
		Count int

		// Prompts contains all prompts passed to GenerateText calls
		Prompts []string
	}
}

var _ generation.TextGenerator = (*MockTextGenerator)(nil)

// GenerateText implements the generation.TextGenerator interface
func (m *MockTextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.GenerateTextCalls.mu.Lock()
	m.GenerateTextCalls.Count++
	m.GenerateTextCalls.Prompts = append(m.GenerateTextCalls.Prompts, prompt)
	m.GenerateTextCalls.mu.Unlock()

	if m.GenerateTextFn != nil {
		return m.GenerateTextFn(ctx, prompt)
	}

	return m.Text, m.Err
}

// CallCount returns the number of GenerateText calls so far.
func (m *MockTextGenerator) CallCount() int {
	m.GenerateTextCalls.mu.Lock()
	defer m.GenerateTextCalls.mu.Unlock()
	return m.GenerateTextCalls.Count
}

// LastPrompt returns the most recent prompt, or "" if none.
func (m *MockTextGenerator) LastPrompt() string {
	m.GenerateTextCalls.mu.Lock()
	defer m.GenerateTextCalls.mu.Unlock()
	if len(m.GenerateTextCalls.Prompts) == 0 {
		return ""
	}
	return m.GenerateTextCalls.Prompts[len(m.GenerateTextCalls.Prompts)-1]
}

// NewMockTextGeneratorWithText creates a MockTextGenerator that returns text
func NewMockTextGeneratorWithText(text string) *MockTextGenerator {
	return &MockTextGenerator{Text: text}
}

// NewMockTextGeneratorWithError creates a MockTextGenerator that returns err
func NewMockTextGeneratorWithError(err error) *MockTextGenerator {
	return &MockTextGenerator{Err: err}
}

// MockImageGenerator implements generation.ImageGenerator for testing
type MockImageGenerator struct {
	GenerateImageFn func(ctx context.Context, prompt string) (*domain.Image, error)

	Image *domain.Image
	Err   error

	GenerateImageCalls struct {
		mu      sync.Mutex
		Count   int
		Prompts []string
	}
}

var _ generation.ImageGenerator = (*MockImageGenerator)(nil)

// GenerateImage implements the generation.ImageGenerator interface
func (m *MockImageGenerator) GenerateImage(ctx context.Context, prompt string) (*domain.Image, error) {
	m.GenerateImageCalls.mu.Lock()
	m.GenerateImageCalls.Count++
	m.GenerateImageCalls.Prompts = append(m.GenerateImageCalls.Prompts, prompt)
	m.GenerateImageCalls.mu.Unlock()

	if m.GenerateImageFn != nil {
		return m.GenerateImageFn(ctx, prompt)
	}

	return m.Image, m.Err
}

// CallCount returns the number of GenerateImage calls so far.
func (m *MockImageGenerator) CallCount() int {
	m.GenerateImageCalls.mu.Lock()
	defer m.GenerateImageCalls.mu.Unlock()
	return m.GenerateImageCalls.Count
}

// NewMockImageGeneratorWithPNG creates a MockImageGenerator returning a tiny PNG payload
func NewMockImageGeneratorWithPNG() *MockImageGenerator {
	return &MockImageGenerator{
		Image: &domain.Image{
			Data:     []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'},
			MIMEType: "image/png",
		},
	}
}
