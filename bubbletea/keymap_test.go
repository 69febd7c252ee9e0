package bubbletea_test

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/pbirview/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDefaultKeyMap(t *testing.T) {
	t.Parallel()

	km := bubbletea.DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		msgs    []tea.KeyMsg
	}{
		{"up", km.Up, []tea.KeyMsg{runeKey('k'), {Type: tea.KeyUp}}},
		{"down", km.Down, []tea.KeyMsg{runeKey('j'), {Type: tea.KeyDown}}},
		{"half page up", km.HalfPageUp, []tea.KeyMsg{{Type: tea.KeyCtrlU}}},
		{"half page down", km.HalfPageDown, []tea.KeyMsg{{Type: tea.KeyCtrlD}}},
		{"go to top", km.GotoTop, []tea.KeyMsg{runeKey('g')}},
		{"go to bottom", km.GotoBottom, []tea.KeyMsg{runeKey('G')}},
		{"copy", km.Copy, []tea.KeyMsg{runeKey('y')}},
		{"quit", km.Quit, []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for _, msg := range tt.msgs {
				assert.True(t, key.Matches(msg, tt.binding), "%s should match", msg.String())
			}
			assert.NotEmpty(t, tt.binding.Help().Key)
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestKeyMap_StatusHint(t *testing.T) {
	t.Parallel()

	t.Run("summarizes default bindings", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "j/k:scroll  y:copy  q:quit", bubbletea.DefaultKeyMap().StatusHint())
	})

	t.Run("follows rebound keys", func(t *testing.T) {
		t.Parallel()

		km := bubbletea.DefaultKeyMap()
		km.Copy = key.NewBinding(key.WithKeys("c"))

		assert.Equal(t, "j/k:scroll  c:copy  q:quit", km.StatusHint())
	})
}
