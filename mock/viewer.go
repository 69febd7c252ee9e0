package mock

import (
	"context"

	"github.com/fwojciec/pbirview"
)

// Compile-time interface verification.
var (
	_ pbirview.Viewer    = (*Viewer)(nil)
	_ pbirview.Clipboard = (*Clipboard)(nil)
)

// Viewer is a mock implementation of pbirview.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, markdown string) error
}

func (v *Viewer) View(ctx context.Context, markdown string) error {
	return v.ViewFn(ctx, markdown)
}

// Clipboard is a mock implementation of pbirview.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
