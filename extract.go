package pbirview

import (
	"fmt"
	"strings"
)

// VisualTypeError is returned when a visual document declares neither
// visual.visualType nor visualGroup.displayName.
type VisualTypeError struct {
	Path string // Path of the offending visual.json
}

// Error implements the error interface.
func (e *VisualTypeError) Error() string {
	return fmt.Sprintf("unable to determine visual type: expected either visual.visualType or visualGroup.displayName in %s", e.Path)
}

// VisualType resolves the type of the visual described by doc.
// Group containers carry no visualType, so their display name is used instead.
func VisualType(doc Document, path string) (string, error) {
	if vt, ok := nonEmpty(doc.String("visual", "visualType")); ok {
		return vt, nil
	}
	if name, ok := nonEmpty(doc.String("visualGroup", "displayName")); ok {
		return name, nil
	}
	return "", &VisualTypeError{Path: path}
}

// TitleText returns the literal title text of the visual, if any.
// It reads visual.visualContainerObjects.title[0].properties.text.expr.Literal.Value.
func TitleText(doc Document) (string, bool) {
	v, ok := doc.Lookup("visual", "visualContainerObjects", "title")
	if !ok {
		return "", false
	}
	titles, ok := v.([]any)
	if !ok || len(titles) == 0 {
		return "", false
	}
	first, ok := titles[0].(map[string]any)
	if !ok {
		return "", false
	}
	raw, ok := Document(first).String("properties", "text", "expr", "Literal", "Value")
	if !ok {
		return "", false
	}
	title := StripLiteralQuotes(raw)
	return title, title != ""
}

// StripLiteralQuotes removes one layer of single-quote literal quoting,
// turning "'Sales And Marketing'" into "Sales And Marketing".
func StripLiteralQuotes(value string) string {
	s := strings.TrimSpace(value)
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		s = s[1 : len(s)-1]
	}
	return strings.TrimSpace(s)
}

// Rect returns the visual's position block, defaulting absent fields
// to the unit rectangle.
func Rect(doc Document) Rectangle {
	r := UnitRectangle
	if x, ok := doc.Number("position", "x"); ok {
		r.X = x
	}
	if y, ok := doc.Number("position", "y"); ok {
		r.Y = y
	}
	if w, ok := doc.Number("position", "width"); ok {
		r.Width = w
	}
	if h, ok := doc.Number("position", "height"); ok {
		r.Height = h
	}
	return r
}

func nonEmpty(s string, ok bool) (string, bool) {
	s = strings.TrimSpace(s)
	return s, ok && s != ""
}
