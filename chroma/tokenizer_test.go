package chroma_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/pbirview"
	"github.com/fwojciec/pbirview/chroma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPalette = pbirview.Palette{
	Heading:  "#89b4fa",
	Emphasis: "#f9e2af",
	Code:     "#a6e3a1",
	Link:     "#89dceb",
	Comment:  "#6c7086",
}

func newTokenizer(t *testing.T) *chroma.Tokenizer {
	t.Helper()
	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(testPalette))
	require.NoError(t, err)
	return tokenizer
}

func lineText(tokens []pbirview.Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

func TestNewTokenizer(t *testing.T) {
	t.Parallel()

	_, err := chroma.NewTokenizer(nil)

	assert.Error(t, err)
}

func TestTokenizer_TokenizeLines(t *testing.T) {
	t.Parallel()

	t.Run("splits markdown into lines preserving text", func(t *testing.T) {
		t.Parallel()

		source := "## Report: _Sales_\n\nplain text\n   ```text\n   +--+\n   ```\n"
		lines := newTokenizer(t).TokenizeLines("markdown", source)

		require.Len(t, lines, 6)
		assert.Equal(t, "## Report: _Sales_", lineText(lines[0]))
		assert.Empty(t, lines[1])
		assert.Equal(t, "plain text", lineText(lines[2]))
		assert.Equal(t, "   +--+", lineText(lines[4]))
	})

	t.Run("styles headings", func(t *testing.T) {
		t.Parallel()

		lines := newTokenizer(t).TokenizeLines("markdown", "# Title\nbody")

		require.Len(t, lines, 2)
		require.NotEmpty(t, lines[0])
		assert.Equal(t, string(testPalette.Heading), lines[0][0].Style.Foreground)
		assert.True(t, lines[0][0].Style.Bold)
	})

	t.Run("returns nil for unsupported language", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, newTokenizer(t).TokenizeLines("nonexistent-language-xyz", "text"))
	})

	t.Run("handles empty source", func(t *testing.T) {
		t.Parallel()

		lines := newTokenizer(t).TokenizeLines("markdown", "")

		assert.NotNil(t, lines)
		assert.Empty(t, lines)
	})
}
