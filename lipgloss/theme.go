// Package lipgloss provides preview themes for Lipgloss-styled terminals.
package lipgloss

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/pbirview"
)

// Compile-time interface verification.
var _ pbirview.Theme = (*Theme)(nil)

// Theme implements pbirview.Theme with Lipgloss-compatible colors.
type Theme struct {
	palette pbirview.Palette
}

// Palette returns the semantic color palette for this theme.
func (t *Theme) Palette() pbirview.Palette {
	return t.palette
}

// DefaultTheme picks the dark or light theme to match the terminal background.
func DefaultTheme() *Theme {
	return ThemeFor(lipgloss.HasDarkBackground())
}

// ThemeFor returns DarkTheme when dark is true, LightTheme otherwise.
func ThemeFor(dark bool) *Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}

// DarkTheme returns a theme for dark terminal backgrounds (Catppuccin Mocha).
func DarkTheme() *Theme {
	return &Theme{
		palette: pbirview.Palette{
			Background: "#1e1e2e",
			Foreground: "#cdd6f4",

			Heading:  "#89b4fa",
			Emphasis: "#f9e2af",
			Code:     "#a6e3a1",
			Link:     "#89dceb",
			Comment:  "#6c7086",

			Added:   "#a6e3a1",
			Deleted: "#f38ba8",

			UIBackground: "#313244",
			UIForeground: "#a6adc8",
			UIAccent:     "#89b4fa",
		},
	}
}

// LightTheme returns a theme for light terminal backgrounds (Catppuccin Latte).
func LightTheme() *Theme {
	return &Theme{
		palette: pbirview.Palette{
			Background: "#eff1f5",
			Foreground: "#4c4f69",

			Heading:  "#1e66f5",
			Emphasis: "#df8e1d",
			Code:     "#40a02b",
			Link:     "#04a5e5",
			Comment:  "#9ca0b0",

			Added:   "#40a02b",
			Deleted: "#d20f39",

			UIBackground: "#e6e9ef",
			UIForeground: "#6c6f85",
			UIAccent:     "#1e66f5",
		},
	}
}
