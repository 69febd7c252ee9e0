// Package gitdiff implements diff parsing using bluekeyes/go-gitdiff.
package gitdiff

import (
	"io"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/fwojciec/pbirview"
)

// Compile-time interface verification.
var _ pbirview.Parser = (*Parser)(nil)

// Parser parses unified diff content using go-gitdiff.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads diff content and returns per-file change summaries.
func (p *Parser) Parse(r io.Reader) (*pbirview.Diff, error) {
	files, _, err := gitdiff.Parse(r)
	if err != nil {
		return nil, err
	}

	result := &pbirview.Diff{
		Files: make([]pbirview.FileChange, 0, len(files)),
	}
	for _, f := range files {
		result.Files = append(result.Files, convertFile(f))
	}
	return result, nil
}

func convertFile(f *gitdiff.File) pbirview.FileChange {
	fc := pbirview.FileChange{
		OldPath:  f.OldName,
		NewPath:  f.NewName,
		IsBinary: f.IsBinary,
	}

	switch {
	case f.IsNew:
		fc.Operation = pbirview.FileAdded
	case f.IsDelete:
		fc.Operation = pbirview.FileDeleted
	case f.IsRename:
		fc.Operation = pbirview.FileRenamed
	case f.IsCopy:
		fc.Operation = pbirview.FileCopied
	default:
		fc.Operation = pbirview.FileModified
	}

	// Binary patches have no text fragments, so their counts stay zero.
	for _, frag := range f.TextFragments {
		fc.Insertions += int(frag.LinesAdded)
		fc.Deletions += int(frag.LinesDeleted)
	}
	return fc
}
