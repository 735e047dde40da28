package generation

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/phrazzld/passport-api/internal/domain"
	"github.com/tidwall/gjson"
)

const fence = "```"

// StripCodeFence removes a markdown code fence wrapped around provider text,
// e.g. "```json\n{...}\n```". Only a leading and a trailing marker are
// trimmed; the content itself is not interpreted as markdown.
func StripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, fence) {
		s = strings.TrimPrefix(s, fence)
		// info string, e.g. "json"
		s = strings.TrimLeftFunc(s, unicode.IsLetter)
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, fence)
	return strings.TrimSpace(s)
}

// ParseDocument converts raw provider text into a PassportDocument.
//
// Failures are classified so callers can tell them apart from provider errors:
//   - ErrMalformedOutput when the text is not a JSON object or the emblem is
//     not usable SVG
//   - *MissingFieldError (matching ErrMissingField) naming every required
//     field that is absent, not a string, or blank
//
// The emblem SVG is sanitized before the document is returned.
func ParseDocument(raw string) (*domain.PassportDocument, error) {
	body := StripCodeFence(raw)
	if body == "" {
		return nil, fmt.Errorf("%w: empty response", ErrMalformedOutput)
	}

	if !gjson.Valid(body) {
		return nil, fmt.Errorf("%w: response is not valid JSON", ErrMalformedOutput)
	}

	parsed := gjson.Parse(body)
	if !parsed.IsObject() {
		return nil, fmt.Errorf("%w: response is not a JSON object", ErrMalformedOutput)
	}

	if missing := missingFields(parsed); len(missing) > 0 {
		return nil, &MissingFieldError{Fields: missing}
	}

	var doc domain.PassportDocument
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to decode document: %v", ErrMalformedOutput, err)
	}

	// A duplicated key is probed at its first occurrence but decoded from its
	// last, so the decoded values are checked again.
	missing, err := decodedMissingFields(&doc)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to re-encode document: %v", ErrMalformedOutput, err)
	}
	if len(missing) > 0 {
		return nil, &MissingFieldError{Fields: missing}
	}

	svg, err := SanitizeSVG(doc.PassportStampSVG)
	if err != nil {
		return nil, fmt.Errorf("%w: passport_stamp_svg: %v", ErrMalformedOutput, err)
	}
	doc.PassportStampSVG = svg

	return &doc, nil
}

// missingFields returns the sorted paths of required fields that are absent,
// not strings, or blank.
func missingFields(parsed gjson.Result) []string {
	var missing []string

	for _, field := range domain.RequiredDocumentFields {
		if !isNonBlankString(parsed.Get(field)) {
			missing = append(missing, field)
		}
	}

	labels := parsed.Get("labels")
	if !labels.IsObject() {
		for _, field := range domain.RequiredLabelFields {
			missing = append(missing, "labels."+field)
		}
	} else {
		for _, field := range domain.RequiredLabelFields {
			if !isNonBlankString(labels.Get(field)) {
				missing = append(missing, "labels."+field)
			}
		}
	}

	sort.Strings(missing)
	return missing
}

// decodedMissingFields runs the required-field check over doc as decoded.
func decodedMissingFields(doc *domain.PassportDocument) ([]string, error) {
	canonical, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return missingFields(gjson.ParseBytes(canonical)), nil
}

func isNonBlankString(v gjson.Result) bool {
	return v.Exists() && v.Type == gjson.String && strings.TrimSpace(v.Str) != ""
}
