package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/fwojciec/pbirview"
)

// IndexApp builds the report index of a repository and saves the mapping.
type IndexApp struct {
	Root        string // Absolute repository root, recorded in the mapping
	FS          fs.FS  // Tree rooted at Root
	Out         string
	Suffix      string
	SkipInvalid bool
	Store       pbirview.IndexStore
	Stdout      io.Writer
	Logger      *log.Logger // Receives skipped-visual warnings; nil discards them
}

// Run indexes the tree and writes the mapping.
func (a *IndexApp) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	opts := []pbirview.IndexOption{pbirview.WithReportSuffix(a.Suffix)}
	if a.SkipInvalid {
		opts = append(opts, pbirview.WithVisualErrorHandler(func(err error) error {
			if a.Logger != nil {
				a.Logger.Printf("skipping visual: %v", err)
			}
			return nil
		}))
	}

	index, err := pbirview.BuildIndex(a.FS, a.Root, opts...)
	if err != nil {
		return err
	}
	if err := a.Store.Save(a.Out, index); err != nil {
		return fmt.Errorf("writing mapping: %w", err)
	}
	fmt.Fprintf(a.Stdout, "Wrote mapping: %s (pages=%d)\n", a.Out, len(index.Pages))
	return nil
}

// CommentApp composes the layout summary comment for a range of commits.
type CommentApp struct {
	RepoPath    string
	MappingPath string
	Out         string
	BaseSHA     string
	HeadSHA     string
	Composer    pbirview.Composer
	Store       pbirview.IndexStore
	Git         pbirview.GitRunner
	Parser      pbirview.Parser
	WriteFile   func(path string, data []byte) error
	Stdout      io.Writer
}

// Run correlates the changed files with the mapping and writes the comment.
func (a *CommentApp) Run(ctx context.Context) error {
	index, err := a.Store.Load(a.MappingPath)
	if err != nil {
		return err
	}

	changed, err := a.Git.ChangedFiles(ctx, a.RepoPath, a.BaseSHA, a.HeadSHA)
	if err != nil {
		return fmt.Errorf("listing changed files: %w", err)
	}
	raw, err := a.Git.Diff(ctx, a.RepoPath, a.BaseSHA, a.HeadSHA)
	if err != nil {
		return fmt.Errorf("computing diff stats: %w", err)
	}
	diff, err := a.Parser.Parse(strings.NewReader(raw))
	if err != nil {
		return fmt.Errorf("parsing diff: %w", err)
	}

	groups := pbirview.Correlate(index, changed)
	body := a.Composer.Compose(pbirview.GroupByReport(groups), pbirview.StatsByPath(diff))

	if err := a.WriteFile(a.Out, []byte(body)); err != nil {
		return fmt.Errorf("writing comment: %w", err)
	}
	fmt.Fprintf(a.Stdout, "Wrote comment: %s (pages=%d)\n", a.Out, len(groups))
	return nil
}

// PostApp posts a composed comment to a pull request.
type PostApp struct {
	CommentPath string
	Marker      string
	PRNumber    int
	Service     pbirview.CommentService
	ReadFile    func(path string) ([]byte, error)
	Stdout      io.Writer
}

// Run creates the comment, or updates the one already carrying the marker.
func (a *PostApp) Run(ctx context.Context) error {
	body, err := readComment(a.ReadFile, a.CommentPath)
	if err != nil {
		return err
	}

	res, err := pbirview.UpsertComment(ctx, a.Service, a.PRNumber, a.Marker, body)
	if err != nil {
		return err
	}
	if res.Updated {
		fmt.Fprintf(a.Stdout, "Updating existing PR comment (id=%d)\n", res.CommentID)
	} else {
		fmt.Fprintln(a.Stdout, "Creating new PR comment")
	}
	fmt.Fprintln(a.Stdout, "PR comment posted successfully")
	return nil
}

// PreviewApp shows a composed comment in the terminal.
type PreviewApp struct {
	CommentPath string
	ReadFile    func(path string) ([]byte, error)
	Viewer      pbirview.Viewer
}

// Run displays the comment and blocks until the viewer exits.
func (a *PreviewApp) Run(ctx context.Context) error {
	body, err := readComment(a.ReadFile, a.CommentPath)
	if err != nil {
		return err
	}
	return a.Viewer.View(ctx, body)
}

// readComment reads a comment file, rejecting missing and blank files.
func readComment(readFile func(string) ([]byte, error), path string) (string, error) {
	data, err := readFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("comment file not found: %s", path)
	}
	if err != nil {
		return "", fmt.Errorf("reading comment file: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("%w: %s", pbirview.ErrEmptyComment, path)
	}
	return string(data), nil
}
