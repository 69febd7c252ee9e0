// Package mock provides test doubles for pbirview interfaces.
package mock

import (
	"io"

	"github.com/fwojciec/pbirview"
)

// Compile-time interface verification.
var _ pbirview.Parser = (*Parser)(nil)

// Parser is a mock implementation of pbirview.Parser.
type Parser struct {
	ParseFn func(r io.Reader) (*pbirview.Diff, error)
}

func (p *Parser) Parse(r io.Reader) (*pbirview.Diff, error) {
	return p.ParseFn(r)
}
