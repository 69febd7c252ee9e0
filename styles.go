package pbirview

// Color is a hex color string in "#RRGGBB" form. The empty Color means the
// terminal default.
type Color string

// Palette holds the semantic colors used to preview a layout summary.
type Palette struct {
	Background Color
	Foreground Color

	// Markdown elements
	Heading  Color
	Emphasis Color
	Code     Color
	Link     Color
	Comment  Color

	// Change size markers
	Added   Color
	Deleted Color

	// Status bar
	UIBackground Color
	UIForeground Color
	UIAccent     Color
}

// Theme supplies the palette used by the preview.
type Theme interface {
	Palette() Palette
}
