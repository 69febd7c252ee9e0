// Package pbirview provides domain types for indexing Power BI report layouts
// and summarizing layout changes for pull request review.
package pbirview

import (
	"context"
	"errors"
	"io"
)

// IndexVersion is the format tag written to every persisted ReportIndex.
const IndexVersion = 1

// ErrIndexNotFound is returned when a persisted ReportIndex does not exist.
var ErrIndexNotFound = errors.New("mapping not found")

// ReportIndex is the flat mapping of every indexed page and visual.
// It is built by a single indexing pass and treated as read-only afterwards.
type ReportIndex struct {
	Version int    `json:"version"`
	Root    string `json:"root"`
	Pages   []Page `json:"pages"`
}

// Page represents one page of a report and the visuals placed on it.
type Page struct {
	ID      string   `json:"id"`      // Declared name, or the page directory name
	Name    string   `json:"name"`    // Display name, or ID
	Report  string   `json:"report"`  // Owning report's display name
	Path    string   `json:"path"`    // Root-relative, forward-slash path to page.json
	Visuals []Visual `json:"visuals"` // In directory order
}

// Visual represents one element placed on a page.
type Visual struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	VisualType string  `json:"visualType"`
	TitleText  *string `json:"titleText"` // nil when the visual carries no literal title
	Path       string  `json:"path"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

// Title returns the visual's title text, or an empty string.
func (v Visual) Title() string {
	if v.TitleText == nil {
		return ""
	}
	return *v.TitleText
}

// Rect returns the visual's rectangle in page coordinates.
func (v Visual) Rect() Rectangle {
	return Rectangle{X: v.X, Y: v.Y, Width: v.Width, Height: v.Height}
}

// Rectangle is a floating-point rectangle in a page's coordinate space.
type Rectangle struct {
	X, Y, Width, Height float64
}

// UnitRectangle is the rectangle used when a visual declares no position.
var UnitRectangle = Rectangle{X: 0, Y: 0, Width: 1, Height: 1}

// IndexStore persists and retrieves a ReportIndex.
type IndexStore interface {
	Load(path string) (*ReportIndex, error)
	Save(path string, index *ReportIndex) error
}

// GitRunner provides access to the git operations needed to describe a change.
type GitRunner interface {
	// ChangedFiles returns repo-relative paths changed between base and head.
	ChangedFiles(ctx context.Context, repoPath, base, head string) ([]string, error)
	// Diff returns the unified diff between base and head.
	Diff(ctx context.Context, repoPath, base, head string) (string, error)
}

// Parser parses unified diff content.
type Parser interface {
	Parse(r io.Reader) (*Diff, error)
}

// Comment is a pull request comment as returned by a CommentService.
type Comment struct {
	ID   int64
	Body string
}

// CommentService lists, creates and updates pull request comments.
type CommentService interface {
	ListComments(ctx context.Context, pr int) ([]Comment, error)
	CreateComment(ctx context.Context, pr int, body string) error
	UpdateComment(ctx context.Context, id int64, body string) error
}

// Viewer displays a composed comment for local review.
type Viewer interface {
	// View displays the markdown and blocks until the user exits.
	View(ctx context.Context, markdown string) error
}

// Clipboard provides access to the system clipboard.
type Clipboard interface {
	Copy(content string) error
}
