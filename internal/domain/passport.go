package domain

import "strings"

// PassportRequest is the traveler input for a single passport generation.
// It is never persisted.
type PassportRequest struct {
	Name     string `json:"name"     validate:"required"`
	Likes    string `json:"likes"    validate:"required"`
	Language string `json:"language" validate:"required"`
}

// Validate checks that every field carries non-blank text.
// Fields are reported in declaration order.
func (r PassportRequest) Validate() error {
	switch {
	case strings.TrimSpace(r.Name) == "":
		return NewValidationError("name", "is required", ErrValidation)
	case strings.TrimSpace(r.Likes) == "":
		return NewValidationError("likes", "is required", ErrValidation)
	case strings.TrimSpace(r.Language) == "":
		return NewValidationError("language", "is required", ErrValidation)
	}
	return nil
}

// PassportLabels holds the card captions, translated into the requested language.
type PassportLabels struct {
	PlanetLabel       string `json:"planet_label"`
	SpeciesLabel      string `json:"species_label"`
	OccupationLabel   string `json:"occupation_label"`
	RegNumberLabel    string `json:"reg_number_label"`
	TaglineLabel      string `json:"tagline_label"`
	RestrictionsLabel string `json:"restrictions_label"`
}

// PassportDocument is the structured content a text provider returns for a
// passport. It is built once per request and not modified afterwards.
type PassportDocument struct {
	Name                string         `json:"name"`
	SpaceName           string         `json:"space_name"`
	PlanetOfOrigin      string         `json:"planet_of_origin"`
	Species             string         `json:"species"`
	Occupation          string         `json:"occupation"`
	RegistrationNumber  string         `json:"registration_number"`
	ProfileTagline      string         `json:"profile_tagline"`
	Restrictions        string         `json:"restrictions"`
	PassportStampSVG    string         `json:"passport_stamp_svg"`
	PassportImagePrompt string         `json:"passport_image_prompt"`
	TweetText           string         `json:"tweet_text"`
	Labels              PassportLabels `json:"labels"`
}

// RequiredDocumentFields lists the top-level string fields every document must carry.
var RequiredDocumentFields = []string{
	"name",
	"space_name",
	"planet_of_origin",
	"species",
	"occupation",
	"registration_number",
	"profile_tagline",
	"restrictions",
	"passport_stamp_svg",
	"passport_image_prompt",
	"tweet_text",
}

// RequiredLabelFields lists the keys of the nested labels object.
var RequiredLabelFields = []string{
	"planet_label",
	"species_label",
	"occupation_label",
	"reg_number_label",
	"tagline_label",
	"restrictions_label",
}

// Passport is a generated passport as returned to clients: the document,
// the theme it was generated with and, when portraits are enabled, the
// hosted portrait URL.
type Passport struct {
	PassportDocument
	Theme    Theme  `json:"theme"`
	ImageURL string `json:"imageUrl,omitempty"`
}
