// Package chroma provides syntax highlighting for previews using the chroma library.
package chroma

import (
	"errors"
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/pbirview"
)

// Compile-time interface verification.
var _ pbirview.Tokenizer = (*Tokenizer)(nil)

// StyleFunc maps chroma token types to pbirview styles.
type StyleFunc func(chromalib.TokenType) pbirview.Style

// Tokenizer extracts styled tokens using chroma.
type Tokenizer struct {
	styleFunc StyleFunc
}

// NewTokenizer creates a chroma-based tokenizer with the given style function.
// Use StyleFromPalette to derive one from a pbirview.Palette.
func NewTokenizer(styleFunc StyleFunc) (*Tokenizer, error) {
	if styleFunc == nil {
		return nil, errors.New("chroma: styleFunc cannot be nil")
	}
	return &Tokenizer{styleFunc: styleFunc}, nil
}

// TokenizeLines tokenizes source with full context, then splits tokens by line,
// so constructs spanning lines such as fenced code blocks keep their style.
// Returns nil if the language is not supported or lexing fails.
// Returns an empty slice for empty source.
func (t *Tokenizer) TokenizeLines(language, source string) [][]pbirview.Token {
	if source == "" {
		return [][]pbirview.Token{}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var tokens []pbirview.Token
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		tokens = append(tokens, pbirview.Token{
			Text:  token.Value,
			Style: t.styleFunc(token.Type),
		})
	}
	return splitTokensByLine(tokens)
}

// splitTokensByLine splits a flat token list into per-line slices, breaking
// tokens that span lines at newline boundaries. Blank lines yield nil slices.
func splitTokensByLine(tokens []pbirview.Token) [][]pbirview.Token {
	var result [][]pbirview.Token
	var line []pbirview.Token

	for _, tok := range tokens {
		if !strings.Contains(tok.Text, "\n") {
			line = append(line, tok)
			continue
		}
		parts := strings.Split(tok.Text, "\n")
		for i, part := range parts {
			if part != "" {
				line = append(line, pbirview.Token{Text: part, Style: tok.Style})
			}
			if i < len(parts)-1 {
				result = append(result, line)
				line = nil
			}
		}
	}
	if len(line) > 0 {
		result = append(result, line)
	}
	if result == nil {
		return [][]pbirview.Token{}
	}
	return result
}
