package bubbletea

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap binds the keys of the comment preview. Scrolling follows vim; Copy
// places the raw markdown on the clipboard for pasting into a pull request.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
	GotoTop      key.Binding // Pressed twice, as gg
	GotoBottom   key.Binding
	Copy         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the preview's bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:           key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "previous line")),
		Down:         key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next line")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "half page up")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "half page down")),
		GotoTop:      key.NewBinding(key.WithKeys("g"), key.WithHelp("gg", "first line")),
		GotoBottom:   key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "last line")),
		Copy:         key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy markdown")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// StatusHint returns the compact key summary shown in the status bar,
// such as "j/k:scroll  y:copy  q:quit".
func (km KeyMap) StatusHint() string {
	hints := []string{
		firstKey(km.Down) + "/" + firstKey(km.Up) + ":scroll",
		firstKey(km.Copy) + ":copy",
		firstKey(km.Quit) + ":quit",
	}
	return strings.Join(hints, "  ")
}

func firstKey(b key.Binding) string {
	if keys := b.Keys(); len(keys) > 0 {
		return keys[0]
	}
	return ""
}
