package generation_test

import (
	"strings"
	"testing"

	"github.com/phrazzld/passport-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeSVG_KeepsDrawing(t *testing.T) {
	t.Parallel()

	in := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">` +
		`<defs><linearGradient id="g1"><stop offset="0" stop-color="#00ffff"/></linearGradient></defs>` +
		`<g stroke="url(#g1)" fill="none"><path d="M10 10 L90 90"/><circle cx="50" cy="50" r="20"/></g>` +
		`<text x="10" y="95">A &amp; B</text></svg>`

	out, err := generation.SanitizeSVG(in)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">`))
	assert.Contains(t, out, `<linearGradient id="g1">`, "element case is preserved")
	assert.Contains(t, out, `stroke="url(#g1)"`, "local fragment references are kept")
	assert.Contains(t, out, `<path d="M10 10 L90 90"></path>`)
	assert.Contains(t, out, `A &amp; B`)
	assert.True(t, strings.HasSuffix(out, "</svg>"))
}

func TestSanitizeSVG_AddsNamespace(t *testing.T) {
	t.Parallel()

	out, err := generation.SanitizeSVG(`<svg viewBox="0 0 100 100"><line x1="0" y1="0" x2="1" y2="1"/></svg>`)
	require.NoError(t, err)
	assert.Contains(t, out, `xmlns="http://www.w3.org/2000/svg"`)
}

func TestSanitizeSVG_StripsUnsafeContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        string
		forbidden []string
	}{
		{
			name:      "script element",
			in:        `<svg><script>alert(1)</script><rect width="1" height="1"/></svg>`,
			forbidden: []string{"script", "alert"},
		},
		{
			name:      "event handler",
			in:        `<svg onload="alert(1)"><circle r="5" onclick="steal()"/></svg>`,
			forbidden: []string{"onload", "onclick", "alert", "steal"},
		},
		{
			name:      "foreign object subtree",
			in:        `<svg><foreignObject><div><iframe src="https://evil.example"></iframe></div></foreignObject></svg>`,
			forbidden: []string{"foreignObject", "iframe", "evil"},
		},
		{
			name:      "external image and use",
			in:        `<svg xmlns:xlink="http://www.w3.org/1999/xlink"><image xlink:href="https://evil.example/x.png"/><use href="https://evil.example/s.svg#a"/></svg>`,
			forbidden: []string{"image", "use", "evil", "xlink"},
		},
		{
			name:      "javascript link",
			in:        `<svg><a href="javascript:alert(1)"><path d="M0 0"/></a></svg>`,
			forbidden: []string{"javascript", "<a", "M0 0"},
		},
		{
			name:      "style element and attribute",
			in:        `<svg><style>@import url(https://evil.example/x.css);</style><path style="fill:red" d="M1 1"/></svg>`,
			forbidden: []string{"style", "evil", "fill:red"},
		},
		{
			name:      "external url reference",
			in:        `<svg><path d="M1 1" fill="url(https://evil.example/p.svg#p)"/><path d="M2 2" stroke="url( 'data:x' )"/></svg>`,
			forbidden: []string{"evil", "data:"},
		},
		{
			name:      "comments and processing instructions",
			in:        `<?xml version="1.0"?><!-- hidden --><svg><!-- note --><path d="M3 3"/></svg>`,
			forbidden: []string{"<?xml", "hidden", "note"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out, err := generation.SanitizeSVG(tc.in)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(out, "<svg"))
			for _, f := range tc.forbidden {
				assert.NotContains(t, out, f)
			}
		})
	}
}

func TestSanitizeSVG_IgnoresTrailingContent(t *testing.T) {
	t.Parallel()

	out, err := generation.SanitizeSVG(`<svg><path d="M1 1"/></svg><script>alert(1)</script>`)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "</svg>"))
	assert.NotContains(t, out, "script")
}

func TestSanitizeSVG_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
	}{
		{"empty", "   "},
		{"wrong root", `<div><svg></svg></div>`},
		{"plain text", "a lovely emblem"},
		{"unterminated", `<svg><path d="M1 1"/>`},
		{"mismatched", `<svg><g></svg>`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := generation.SanitizeSVG(tc.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, generation.ErrInvalidSVG)
		})
	}
}
