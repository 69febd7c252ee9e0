package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fwojciec/pbirview"
	"github.com/fwojciec/pbirview/bubbletea"
	"github.com/fwojciec/pbirview/chroma"
	"github.com/fwojciec/pbirview/clipboard"
	"github.com/fwojciec/pbirview/config"
	"github.com/fwojciec/pbirview/fs"
	"github.com/fwojciec/pbirview/git"
	"github.com/fwojciec/pbirview/gitdiff"
	"github.com/fwojciec/pbirview/github"
	"github.com/fwojciec/pbirview/jsonfile"
	"github.com/fwojciec/pbirview/lipgloss"
)

// Version is the current version of pbirview.
var Version = "0.1.0"

// deps holds the process-level collaborators of the commands.
type deps struct {
	stdout io.Writer
	stderr io.Writer
	env    func() config.Env
}

func newRootCmd(d deps) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "pbirview",
		Short: "Summarize Power BI report layout changes on pull requests",
		Long: `pbirview indexes the pages and visuals of Power BI reports stored in the
PBIR folder format and turns a pull request's changes into a review comment
listing the affected pages and visuals, with an ASCII map of each page.

Typical CI usage:
  pbirview index                 # on the base revision, writes the mapping
  pbirview comment               # needs REPO, BASE_SHA, HEAD_SHA
  pbirview post                  # needs GITHUB_TOKEN, REPO, PR_NUMBER

Settings may also be read from ` + config.FileName + ` at the repository root.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(d.stdout)
	root.SetErr(d.stderr)
	root.PersistentFlags().StringVar(&configPath, "config", config.FileName, "Path to config file")

	load := func() (*config.Config, error) {
		return config.LoadFromPath(configPath)
	}

	root.AddCommand(
		newIndexCmd(load),
		newCommentCmd(d, load),
		newPostCmd(d, load),
		newPreviewCmd(load),
	)
	return root
}

type configLoader func() (*config.Config, error)

func newIndexCmd(load configLoader) *cobra.Command {
	var (
		rootDir     string
		out         string
		skipInvalid bool
	)
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Build the page and visual mapping of every report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			abs, err := filepath.Abs(rootDir)
			if err != nil {
				return err
			}
			app := &IndexApp{
				Root:        abs,
				FS:          os.DirFS(abs),
				Out:         firstNonEmpty(out, cfg.Index.MappingPath),
				Suffix:      cfg.Index.ReportSuffix,
				SkipInvalid: skipInvalid || cfg.Index.SkipInvalid,
				Store:       jsonfile.NewStore(),
				Stdout:      cmd.OutOrStdout(),
				Logger:      log.New(cmd.ErrOrStderr(), "pbirview: ", 0),
			}
			return app.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&rootDir, "root", ".", "Repo root to scan")
	cmd.Flags().StringVar(&out, "out", "", "Output mapping JSON path (default "+fs.DefaultMappingPath+")")
	cmd.Flags().BoolVar(&skipInvalid, "skip-invalid", false, "Skip visuals whose type cannot be determined")
	return cmd
}

func newCommentCmd(d deps, load configLoader) *cobra.Command {
	var (
		rootDir      string
		mapping      string
		out          string
		workflowFile string
	)
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Compose the layout summary comment for BASE_SHA..HEAD_SHA",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := d.env().RequireComment()
			if err != nil {
				return err
			}
			cfg, err := load()
			if err != nil {
				return err
			}
			app := &CommentApp{
				RepoPath:    rootDir,
				MappingPath: firstNonEmpty(mapping, cfg.Index.MappingPath),
				Out:         firstNonEmpty(out, cfg.Comment.CommentPath),
				BaseSHA:     env.BaseSHA,
				HeadSHA:     env.HeadSHA,
				Composer: pbirview.Composer{
					Repo:         env.Repo,
					PRNumber:     env.PRNumber,
					HeadSHA:      env.HeadSHA,
					WorkflowFile: firstNonEmpty(workflowFile, cfg.Comment.WorkflowFile),
					Cols:         cfg.Comment.Cols,
					Rows:         cfg.Comment.Rows,
				},
				Store:     jsonfile.NewStore(),
				Git:       git.NewRunner(),
				Parser:    gitdiff.NewParser(),
				WriteFile: fs.WriteFile,
				Stdout:    cmd.OutOrStdout(),
			}
			return app.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&rootDir, "root", ".", "Git repository to diff")
	cmd.Flags().StringVar(&mapping, "mapping", "", "Mapping JSON path (default "+fs.DefaultMappingPath+")")
	cmd.Flags().StringVar(&out, "out", "", "Output markdown path (default "+fs.DefaultCommentPath+")")
	cmd.Flags().StringVar(&workflowFile, "workflow-file", "", "Workflow filename under .github/workflows/ (default "+pbirview.DefaultWorkflowFile+")")
	return cmd
}

func newPostCmd(d deps, load configLoader) *cobra.Command {
	var (
		comment string
		marker  string
	)
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Create or update the layout summary comment on PR_NUMBER",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env := d.env()
			pr, err := env.RequirePost()
			if err != nil {
				return err
			}
			cfg, err := load()
			if err != nil {
				return err
			}

			var opts []github.Option
			if env.APIURL != "" {
				opts = append(opts, github.WithBaseURL(env.APIURL))
			}
			client, err := github.NewClient(env.Token, env.Repo, opts...)
			if err != nil {
				return err
			}

			app := &PostApp{
				CommentPath: firstNonEmpty(comment, cfg.Comment.CommentPath),
				Marker:      firstNonEmpty(marker, cfg.Comment.Marker),
				PRNumber:    pr,
				Service:     client,
				ReadFile:    os.ReadFile,
				Stdout:      cmd.OutOrStdout(),
			}
			return app.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&comment, "comment", "", "Markdown file to post (default "+fs.DefaultCommentPath+")")
	cmd.Flags().StringVar(&marker, "marker", "", "Hidden marker used to find the existing comment (default "+pbirview.DefaultMarker+")")
	return cmd
}

func newPreviewCmd(load configLoader) *cobra.Command {
	var comment string
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview a composed comment in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			path := firstNonEmpty(comment, cfg.Comment.CommentPath)

			theme := lipgloss.DefaultTheme()
			tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(theme.Palette()))
			if err != nil {
				return err
			}
			opts := []bubbletea.ModelOption{
				bubbletea.WithTheme(theme),
				bubbletea.WithTokenizer(tokenizer),
				bubbletea.WithLanguage(chroma.NewDetector().DetectFromPath(path)),
			}
			// Without a clipboard command the preview still works; copying reports it.
			if cb, err := clipboard.Detect(); err == nil {
				opts = append(opts, bubbletea.WithClipboard(cb))
			}

			app := &PreviewApp{
				CommentPath: path,
				ReadFile:    os.ReadFile,
				Viewer:      bubbletea.NewViewer(opts...),
			}
			return app.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&comment, "comment", "", "Markdown file to preview (default "+fs.DefaultCommentPath+")")
	return cmd
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
