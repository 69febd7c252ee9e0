package lipgloss_test

import (
	"testing"

	"github.com/fwojciec/pbirview"
	"github.com/fwojciec/pbirview/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestThemes(t *testing.T) {
	t.Parallel()

	themes := map[string]*lipgloss.Theme{
		"dark":  lipgloss.DarkTheme(),
		"light": lipgloss.LightTheme(),
	}
	for name, theme := range themes {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var _ pbirview.Theme = theme
			p := theme.Palette()

			assert.NotEmpty(t, p.Foreground)
			assert.NotEmpty(t, p.Heading)
			assert.NotEmpty(t, p.Code)
			assert.NotEmpty(t, p.UIBackground)
			assert.NotEqual(t, p.Added, p.Deleted, "change markers must be distinguishable")
			assert.NotEqual(t, p.Foreground, p.Background)
		})
	}
}

func TestThemeFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lipgloss.DarkTheme().Palette(), lipgloss.ThemeFor(true).Palette())
	assert.Equal(t, lipgloss.LightTheme().Palette(), lipgloss.ThemeFor(false).Palette())
}
