package pbirview

import (
	"io/fs"
	"path"
	"strings"
)

// Directory and file names of the PBIR folder convention.
const (
	ReportSuffix      = ".Report"
	PageFileName      = "page.json"
	VisualFileName    = "visual.json"
	BookmarksDirName  = "bookmarks"
	pagesRelativePath = "definition/pages"
	visualsDirName    = "visuals"
	gitDirName        = ".git"
)

// IndexOption configures BuildIndex.
type IndexOption func(*indexer)

// WithVisualErrorHandler installs a handler for visuals whose type cannot be
// resolved. Returning nil skips the visual; returning an error aborts indexing.
// Without a handler the first such error aborts indexing.
func WithVisualErrorHandler(fn func(err error) error) IndexOption {
	return func(ix *indexer) {
		if fn != nil {
			ix.onVisualError = fn
		}
	}
}

// WithReportSuffix overrides the directory suffix that marks a report container.
func WithReportSuffix(suffix string) IndexOption {
	return func(ix *indexer) {
		if suffix != "" {
			ix.suffix = suffix
		}
	}
}

type indexer struct {
	fsys          fs.FS
	suffix        string
	onVisualError func(error) error
}

// BuildIndex walks fsys for report containers and returns the flat index of
// their pages and visuals. Paths in the index are relative to the root of fsys.
// root is recorded verbatim in the returned index.
func BuildIndex(fsys fs.FS, root string, opts ...IndexOption) (*ReportIndex, error) {
	ix := &indexer{
		fsys:   fsys,
		suffix: ReportSuffix,
		onVisualError: func(err error) error {
			return err
		},
	}
	for _, opt := range opts {
		opt(ix)
	}

	reports, err := ix.findReports()
	if err != nil {
		return nil, err
	}

	index := &ReportIndex{
		Version: IndexVersion,
		Root:    root,
		Pages:   []Page{},
	}
	for _, dir := range reports {
		pages, err := ix.collectPages(dir)
		if err != nil {
			return nil, err
		}
		index.Pages = append(index.Pages, pages...)
	}
	return index, nil
}

// findReports returns report container directories in lexical order.
func (ix *indexer) findReports() ([]string, error) {
	var dirs []string
	err := fs.WalkDir(ix.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are not part of the layout surface.
			if p == "." {
				return err
			}
			return fs.SkipDir
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == gitDirName {
			return fs.SkipDir
		}
		if p != "." && strings.HasSuffix(d.Name(), ix.suffix) {
			dirs = append(dirs, p)
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dirs, nil
}

func (ix *indexer) collectPages(reportDir string) ([]Page, error) {
	report := strings.TrimSuffix(path.Base(reportDir), ix.suffix)
	pagesRoot := path.Join(reportDir, pagesRelativePath)

	var pages []Page
	for _, dirName := range ix.subdirs(pagesRoot) {
		pageDir := path.Join(pagesRoot, dirName)
		pagePath := path.Join(pageDir, PageFileName)
		if underBookmarks(pagePath) || !ix.isFile(pagePath) {
			continue
		}

		doc := ReadDocument(ix.fsys, pagePath)
		id := doc.stringOr(dirName, "name")
		page := Page{
			ID:      id,
			Name:    doc.stringOr(id, "displayName"),
			Report:  report,
			Path:    pagePath,
			Visuals: []Visual{},
		}

		visuals, err := ix.collectVisuals(path.Join(pageDir, visualsDirName))
		if err != nil {
			return nil, err
		}
		page.Visuals = append(page.Visuals, visuals...)
		pages = append(pages, page)
	}
	return pages, nil
}

func (ix *indexer) collectVisuals(visualsRoot string) ([]Visual, error) {
	var visuals []Visual
	for _, dirName := range ix.subdirs(visualsRoot) {
		visualPath := path.Join(visualsRoot, dirName, VisualFileName)
		if underBookmarks(visualPath) || !ix.isFile(visualPath) {
			continue
		}

		v, err := ExtractVisual(ReadDocument(ix.fsys, visualPath), visualPath, dirName)
		if err != nil {
			if herr := ix.onVisualError(err); herr != nil {
				return nil, herr
			}
			continue
		}
		visuals = append(visuals, v)
	}
	return visuals, nil
}

// ExtractVisual builds a Visual from its definition document.
// dirName is the visual's directory name, used when the document declares no name.
func ExtractVisual(doc Document, visualPath, dirName string) (Visual, error) {
	visualType, err := VisualType(doc, visualPath)
	if err != nil {
		return Visual{}, err
	}
	r := Rect(doc)
	v := Visual{
		ID:         doc.stringOr(dirName, "name", "id"),
		Name:       doc.stringOr(dirName, "name"),
		VisualType: visualType,
		Path:       visualPath,
		X:          r.X,
		Y:          r.Y,
		Width:      r.Width,
		Height:     r.Height,
	}
	if title, ok := TitleText(doc); ok {
		v.TitleText = &title
	}
	return v, nil
}

// subdirs returns the names of the directories directly under dir, sorted.
// A missing or unreadable directory has no subdirectories.
func (ix *indexer) subdirs(dir string) []string {
	entries, err := fs.ReadDir(ix.fsys, dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}

func (ix *indexer) isFile(name string) bool {
	info, err := fs.Stat(ix.fsys, name)
	return err == nil && info.Mode().IsRegular()
}

// underBookmarks reports whether any segment of p names a bookmarks directory.
func underBookmarks(p string) bool {
	for _, seg := range strings.Split(p, "/") {
		if strings.EqualFold(seg, BookmarksDirName) {
			return true
		}
	}
	return false
}
