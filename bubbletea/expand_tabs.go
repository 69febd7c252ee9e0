package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// tabWidth is the tab stop interval of the preview.
const tabWidth = 8

// ExpandTabs replaces tabs in a comment with spaces up to the next tab stop.
// Columns restart at every newline and are measured in display cells, so
// wide runes in page or visual names keep the stops aligned.
func ExpandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			n := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n':
			sb.WriteRune(r)
			col = 0
		default:
			sb.WriteRune(r)
			col += lipgloss.Width(string(r))
		}
	}
	return sb.String()
}
