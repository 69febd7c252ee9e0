package pbirview

// Token is a styled segment of previewed text.
type Token struct {
	Text  string
	Style Style
}

// Style is the visual styling of a token.
type Style struct {
	Foreground string // Hex color such as "#ff0000", or empty for the terminal default
	Bold       bool
}

// Tokenizer splits source text into styled tokens.
type Tokenizer interface {
	// TokenizeLines tokenizes source as a whole and returns the tokens of
	// each line. Returns nil if the language is not supported.
	TokenizeLines(language, source string) [][]Token
}

// LanguageDetector determines a highlighting language from a file path.
type LanguageDetector interface {
	// DetectFromPath returns the language name for path, or an empty string.
	DetectFromPath(path string) string
}
