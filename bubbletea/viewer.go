// Package bubbletea provides a terminal preview of composed PR comments
// using the Bubble Tea framework.
package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/pbirview"
)

// Compile-time interface verification.
var _ pbirview.Viewer = (*Viewer)(nil)

// Status messages shown after a copy attempt.
const (
	StatusCopied      = "copied to clipboard"
	StatusNoClipboard = "no clipboard available"
	statusCopyFailed  = "copy failed: %v"
)

// Model is the Bubble Tea model for previewing a composed comment.
type Model struct {
	markdown string
	content  string
	viewport viewport.Model
	ready    bool
	width    int

	keymap     KeyMap
	pendingKey string
	status     string

	palette   pbirview.Palette
	renderer  *lipgloss.Renderer
	clipboard pbirview.Clipboard
}

type modelConfig struct {
	theme     pbirview.Theme
	tokenizer pbirview.Tokenizer
	language  string
	renderer  *lipgloss.Renderer
	clipboard pbirview.Clipboard
}

// ModelOption configures a Model.
type ModelOption func(*modelConfig)

// WithTheme sets the color theme.
func WithTheme(t pbirview.Theme) ModelOption {
	return func(c *modelConfig) {
		c.theme = t
	}
}

// WithTokenizer enables syntax highlighting.
func WithTokenizer(t pbirview.Tokenizer) ModelOption {
	return func(c *modelConfig) {
		c.tokenizer = t
	}
}

// WithLanguage sets the highlighting language. Markdown is used when unset.
func WithLanguage(language string) ModelOption {
	return func(c *modelConfig) {
		c.language = language
	}
}

// WithRenderer sets a custom lipgloss renderer.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(c *modelConfig) {
		c.renderer = r
	}
}

// WithClipboard enables copying the raw markdown.
func WithClipboard(cb pbirview.Clipboard) ModelOption {
	return func(c *modelConfig) {
		c.clipboard = cb
	}
}

// NewModel creates a Model previewing markdown.
func NewModel(markdown string, opts ...ModelOption) Model {
	var cfg modelConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var palette pbirview.Palette
	if cfg.theme != nil {
		palette = cfg.theme.Palette()
	}

	return Model{
		markdown: markdown,
		content: renderMarkdown(renderConfig{
			markdown:  markdown,
			language:  cfg.language,
			palette:   palette,
			renderer:  cfg.renderer,
			tokenizer: cfg.tokenizer,
		}),
		keymap:    DefaultKeyMap(),
		palette:   palette,
		renderer:  cfg.renderer,
		clipboard: cfg.clipboard,
	}
}

// Status returns the last status message, if any.
func (m Model) Status() string {
	return m.status
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.pendingKey == "g" && key.Matches(msg, m.keymap.GotoTop) {
			m.viewport.GotoTop()
			m.pendingKey = ""
			return m, nil
		}
		if key.Matches(msg, m.keymap.GotoTop) {
			m.pendingKey = "g"
			return m, nil
		}
		m.pendingKey = ""

		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Copy):
			m.status = m.copyMarkdown()
			return m, nil
		case key.Matches(msg, m.keymap.GotoBottom):
			m.viewport.GotoBottom()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageUp):
			m.viewport.HalfPageUp()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageDown):
			m.viewport.HalfPageDown()
			return m, nil
		case key.Matches(msg, m.keymap.Up):
			m.viewport.ScrollUp(1)
			return m, nil
		case key.Matches(msg, m.keymap.Down):
			m.viewport.ScrollDown(1)
			return m, nil
		}
	case tea.WindowSizeMsg:
		statusBarHeight := 1
		m.width = msg.Width
		height := max(msg.Height-statusBarHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.statusBarView())
}

func (m Model) copyMarkdown() string {
	if m.clipboard == nil {
		return StatusNoClipboard
	}
	if err := m.clipboard.Copy(m.markdown); err != nil {
		return fmt.Sprintf(statusCopyFailed, err)
	}
	return StatusCopied
}

// statusBarView renders scroll position, key help and the last status message.
func (m Model) statusBarView() string {
	barStyle := newStyle(m.renderer)
	dimStyle := newStyle(m.renderer)
	accentStyle := newStyle(m.renderer).Bold(true)
	if m.palette.UIBackground != "" {
		bg := lipgloss.Color(m.palette.UIBackground)
		barStyle = barStyle.Background(bg).Foreground(lipgloss.Color(m.palette.Foreground))
		dimStyle = dimStyle.Background(bg).Foreground(lipgloss.Color(m.palette.UIForeground))
		accentStyle = accentStyle.Background(bg).Foreground(lipgloss.Color(m.palette.UIAccent))
	}

	sep := dimStyle.Render(" │ ")
	content := barStyle.Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100)) + sep +
		dimStyle.Render(m.keymap.StatusHint())
	if m.status != "" {
		content += sep + accentStyle.Render(m.status)
	}
	content += barStyle.Render(" ")

	if w := lipgloss.Width(content); m.width > w {
		content += barStyle.Render(strings.Repeat(" ", m.width-w))
	}
	return content
}

// Viewer implements pbirview.Viewer using a Bubble Tea TUI.
type Viewer struct {
	opts []ModelOption
}

// NewViewer creates a Viewer whose models are built with opts.
func NewViewer(opts ...ModelOption) *Viewer {
	return &Viewer{opts: opts}
}

// View displays the markdown and blocks until the user exits.
func (v *Viewer) View(ctx context.Context, markdown string) error {
	p := tea.NewProgram(NewModel(markdown, v.opts...),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
