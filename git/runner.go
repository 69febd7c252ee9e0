// Package git provides access to git operations via shell commands.
package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/fwojciec/pbirview"
)

// Compile-time interface verification.
var _ pbirview.GitRunner = (*Runner)(nil)

// Runner executes git commands via shell.
type Runner struct{}

// NewRunner creates a new git runner.
func NewRunner() *Runner {
	return &Runner{}
}

// ChangedFiles returns repo-relative paths changed between base and head,
// with forward slashes. Paths are returned verbatim, without git's quoting
// of non-ASCII characters.
func (r *Runner) ChangedFiles(ctx context.Context, repoPath, base, head string) ([]string, error) {
	output, err := r.run(ctx, "diff", repoPath,
		"-c", "core.quotePath=false", "diff", "--name-only", "-z", base, head)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, name := range strings.Split(output, "\x00") {
		if name != "" {
			paths = append(paths, pbirview.NormalizePath(name))
		}
	}
	return paths, nil
}

// Diff returns the unified diff between base and head.
func (r *Runner) Diff(ctx context.Context, repoPath, base, head string) (string, error) {
	return r.run(ctx, "diff", repoPath, "diff", "--no-color", "--no-ext-diff", base, head)
}

func (r *Runner) run(ctx context.Context, name, repoPath string, args ...string) (string, error) {
	args = append([]string{"-C", repoPath}, args...)
	cmd := exec.CommandContext(ctx, "git", args...)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("git %s failed: %s", name, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git %s failed: %w", name, err)
	}
	return string(output), nil
}
