package generation

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// allowedSVGElements are the drawing elements kept in a passport stamp.
// Keys are lower-cased; output keeps the element's original spelling.
var allowedSVGElements = map[string]bool{
	"svg":            true,
	"g":              true,
	"path":           true,
	"circle":         true,
	"ellipse":        true,
	"line":           true,
	"polyline":       true,
	"polygon":        true,
	"rect":           true,
	"text":           true,
	"tspan":          true,
	"defs":           true,
	"title":          true,
	"desc":           true,
	"lineargradient": true,
	"radialgradient": true,
	"stop":           true,
}

// SanitizeSVG reduces provider-generated SVG to a safe drawing subset before
// it reaches any renderer. Elements outside the allowlist are removed with
// their whole subtree (script, foreignObject, image, use, style, a, ...), as
// are event handler attributes, style attributes, links, and attribute values
// that reference scripts, data URLs or external resources. Comments,
// processing instructions and directives are dropped.
//
// The root element must be <svg>; anything after it is ignored.
func SanitizeSVG(markup string) (string, error) {
	markup = strings.TrimSpace(markup)
	if markup == "" {
		return "", fmt.Errorf("%w: empty markup", ErrInvalidSVG)
	}

	dec := xml.NewDecoder(strings.NewReader(markup))
	dec.Entity = xml.HTMLEntity

	var (
		out      strings.Builder
		depth    int
		skip     int
		rootSeen bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidSVG, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if skip > 0 {
				skip++
				continue
			}
			if !rootSeen {
				if !strings.EqualFold(t.Name.Local, "svg") {
					return "", fmt.Errorf("%w: root element is <%s>, want <svg>", ErrInvalidSVG, t.Name.Local)
				}
				rootSeen = true
				writeStart(&out, t, true)
				depth++
				continue
			}
			if !allowedSVGElements[strings.ToLower(t.Name.Local)] {
				skip = 1
				continue
			}
			writeStart(&out, t, false)
			depth++

		case xml.EndElement:
			if skip > 0 {
				skip--
				continue
			}
			out.WriteString("</")
			out.WriteString(t.Name.Local)
			out.WriteString(">")
			depth--
			if depth == 0 {
				return out.String(), nil
			}

		case xml.CharData:
			if skip > 0 || !rootSeen {
				continue
			}
			if err := xml.EscapeText(&out, t); err != nil {
				return "", fmt.Errorf("%w: %v", ErrInvalidSVG, err)
			}
		}
	}

	if !rootSeen {
		return "", fmt.Errorf("%w: no <svg> element", ErrInvalidSVG)
	}
	return "", fmt.Errorf("%w: unterminated <svg> element", ErrInvalidSVG)
}

func writeStart(out *strings.Builder, el xml.StartElement, root bool) {
	out.WriteString("<")
	out.WriteString(el.Name.Local)

	hasXMLNS := false
	for _, attr := range el.Attr {
		if attr.Name.Space == "" && attr.Name.Local == "xmlns" {
			hasXMLNS = true
			writeAttr(out, "xmlns", svgNamespace)
			continue
		}
		if !safeAttr(attr) {
			continue
		}
		writeAttr(out, attr.Name.Local, attr.Value)
	}
	if root && !hasXMLNS {
		writeAttr(out, "xmlns", svgNamespace)
	}

	out.WriteString(">")
}

func writeAttr(out *strings.Builder, name, value string) {
	out.WriteString(" ")
	out.WriteString(name)
	out.WriteString(`="`)
	// strings.Builder writes never fail
	_ = xml.EscapeText(out, []byte(value))
	out.WriteString(`"`)
}

func safeAttr(attr xml.Attr) bool {
	// namespaced attributes (xlink:href, xmlns:xlink, xml:base, ...) are never needed
	if attr.Name.Space != "" {
		return false
	}

	name := strings.ToLower(attr.Name.Local)
	switch {
	case strings.HasPrefix(name, "on"):
		return false
	case name == "style", name == "href", name == "src":
		return false
	}

	value := strings.ToLower(strings.Join(strings.Fields(attr.Value), ""))
	switch {
	case strings.Contains(value, "javascript:"),
		strings.Contains(value, "vbscript:"),
		strings.Contains(value, "data:"):
		return false
	case strings.Contains(value, "url(") && !onlyLocalURLRefs(value):
		return false
	}
	return true
}

// onlyLocalURLRefs reports whether every url(...) in v points at a fragment
// inside the same document, e.g. url(#glow).
func onlyLocalURLRefs(v string) bool {
	for {
		i := strings.Index(v, "url(")
		if i < 0 {
			return true
		}
		ref := strings.TrimLeft(v[i+len("url("):], `'"`)
		if !strings.HasPrefix(ref, "#") {
			return false
		}
		v = v[i+len("url("):]
	}
}
