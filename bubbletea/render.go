package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/pbirview"
)

// defaultLanguage is the highlighting language of a composed comment.
const defaultLanguage = "markdown"

// renderConfig holds the rendering parameters for renderMarkdown.
type renderConfig struct {
	markdown  string
	language  string
	palette   pbirview.Palette
	renderer  *lipgloss.Renderer
	tokenizer pbirview.Tokenizer
}

// renderMarkdown styles the comment source line by line. Without a tokenizer,
// or for an unsupported language, lines are rendered in the base color.
func renderMarkdown(cfg renderConfig) string {
	source := ExpandTabs(cfg.markdown)
	base := newStyle(cfg.renderer)
	if cfg.palette.Foreground != "" {
		base = base.Foreground(lipgloss.Color(cfg.palette.Foreground))
	}

	var lines [][]pbirview.Token
	if cfg.tokenizer != nil {
		language := cfg.language
		if language == "" {
			language = defaultLanguage
		}
		lines = cfg.tokenizer.TokenizeLines(language, source)
	}
	if lines == nil {
		return renderPlain(source, base)
	}

	rendered := make([]string, len(lines))
	for i, tokens := range lines {
		var sb strings.Builder
		for _, tok := range tokens {
			sb.WriteString(tokenStyle(tok.Style, base).Render(tok.Text))
		}
		rendered[i] = sb.String()
	}
	return strings.Join(rendered, "\n")
}

func renderPlain(source string, base lipgloss.Style) string {
	lines := strings.Split(strings.TrimSuffix(source, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = base.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// tokenStyle layers a token's style over the base style.
func tokenStyle(s pbirview.Style, base lipgloss.Style) lipgloss.Style {
	style := base
	if s.Foreground != "" {
		style = style.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Bold {
		style = style.Bold(true)
	}
	return style
}

// newStyle creates a lipgloss style using renderer, or the default renderer when nil.
func newStyle(renderer *lipgloss.Renderer) lipgloss.Style {
	if renderer != nil {
		return renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}
