package chroma

import (
	"path"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/pbirview"
)

// Compile-time interface verification.
var _ pbirview.LanguageDetector = (*Detector)(nil)

// Detector detects highlighting languages from file paths using chroma.
type Detector struct{}

// NewDetector creates a new chroma-based language detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectFromPath returns the language name for the given path,
// or an empty string if the language cannot be determined.
func (d *Detector) DetectFromPath(p string) string {
	lexer := lexers.Match(path.Base(pbirview.NormalizePath(p)))
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}
