// Package fs provides file helpers for the artifacts handed between runs.
package fs

import (
	"os"
	"path/filepath"
)

// DefaultArtifactDir holds the mapping and comment artifacts by default.
const DefaultArtifactDir = "_build_artifacts"

// Default artifact paths.
var (
	DefaultMappingPath = filepath.Join(DefaultArtifactDir, "pbir-mapping.json")
	DefaultCommentPath = filepath.Join(DefaultArtifactDir, "pbir-comment.md")
)

// WriteFile replaces the file at path with data, creating parent directories.
// The data is written to a temporary file in the same directory and renamed
// into place.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
