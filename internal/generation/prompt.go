package generation

import (
	_ "embed"
	"encoding/json"
	"strings"
	"text/template"

	"github.com/phrazzld/passport-api/internal/domain"
)

const (
	// PivotLanguage is the language passport_image_prompt is always written in,
	// since it is consumed by the image provider rather than shown to users.
	PivotLanguage = "English"

	// PivotInstruction is the single prompt line pinning passport_image_prompt
	// to the pivot language.
	PivotInstruction = "The ONLY exception is 'passport_image_prompt', which must remain in " + PivotLanguage + "."

	// StampViewBox is the coordinate system every passport stamp SVG must declare.
	StampViewBox = "0 0 100 100"
)

//go:embed prompts/passport.tmpl
var passportPromptSource string

var passportPrompt = template.Must(template.New("passport").Parse(passportPromptSource))

// promptData represents the data passed to the prompt template
type promptData struct {
	Name             string
	NameJSON         string
	Likes            string
	Language         string
	PivotInstruction string
	ViewBox          string
	Accent1          string
	Accent2          string
}

// CompilePrompt builds the text-generation prompt for one passport. The theme
// must already be selected, since its accent colors are written into the
// emblem instructions and the same theme is returned alongside the document.
func CompilePrompt(req domain.PassportRequest, theme domain.Theme) string {
	data := promptData{
		Name:             req.Name,
		NameJSON:         jsonString(req.Name),
		Likes:            req.Likes,
		Language:         req.Language,
		PivotInstruction: PivotInstruction,
		ViewBox:          StampViewBox,
		Accent1:          theme.Colors.Accent1,
		Accent2:          theme.Colors.Accent2,
	}

	var b strings.Builder
	// The template is parsed at init and only interpolates strings, so
	// execution into a strings.Builder cannot fail.
	if err := passportPrompt.Execute(&b, data); err != nil {
		panic("generation: executing passport prompt: " + err.Error())
	}
	return b.String()
}

// jsonString quotes s as a JSON string literal so the example structure stays
// valid JSON whatever the traveler typed.
func jsonString(s string) string {
	out, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(out)
}
