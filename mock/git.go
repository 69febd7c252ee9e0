package mock

import (
	"context"

	"github.com/fwojciec/pbirview"
)

// Compile-time interface verification.
var _ pbirview.GitRunner = (*GitRunner)(nil)

// GitRunner is a mock implementation of pbirview.GitRunner.
type GitRunner struct {
	ChangedFilesFn func(ctx context.Context, repoPath, base, head string) ([]string, error)
	DiffFn         func(ctx context.Context, repoPath, base, head string) (string, error)
}

func (g *GitRunner) ChangedFiles(ctx context.Context, repoPath, base, head string) ([]string, error) {
	return g.ChangedFilesFn(ctx, repoPath, base, head)
}

func (g *GitRunner) Diff(ctx context.Context, repoPath, base, head string) (string, error) {
	return g.DiffFn(ctx, repoPath, base, head)
}
