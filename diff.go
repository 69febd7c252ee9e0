package pbirview

import "strings"

// Diff represents a complete diff containing one or more file changes.
type Diff struct {
	Files []FileChange
}

// FileChange summarizes the changes to a single file.
type FileChange struct {
	OldPath    string // Empty for new files
	NewPath    string // Empty for deleted files
	Operation  FileOp // Added, Deleted, Modified, Renamed, Copied
	IsBinary   bool   // Binary files carry no line counts
	Insertions int
	Deletions  int
}

// Path returns the path the change is reported under.
// Deleted files are reported under their old path.
func (f FileChange) Path() string {
	if f.NewPath != "" {
		return NormalizePath(f.NewPath)
	}
	return NormalizePath(f.OldPath)
}

// FileOp represents the type of operation performed on a file.
type FileOp int

// File operation types.
const (
	FileModified FileOp = iota
	FileAdded
	FileDeleted
	FileRenamed
	FileCopied
)

// LineStats holds insertion and deletion counts for one file.
type LineStats struct {
	Insertions int
	Deletions  int
}

// StatsByPath returns per-file line counts keyed by forward-slash path.
// Paths absent from the result should be treated as zero counts.
func StatsByPath(d *Diff) map[string]LineStats {
	stats := make(map[string]LineStats)
	if d == nil {
		return stats
	}
	for _, f := range d.Files {
		path := f.Path()
		if path == "" {
			continue
		}
		if f.IsBinary {
			stats[path] = LineStats{}
			continue
		}
		stats[path] = LineStats{Insertions: f.Insertions, Deletions: f.Deletions}
	}
	return stats
}

// NormalizePath converts host path separators to forward slashes.
func NormalizePath(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
