// Package jsonfile persists the report index as a JSON mapping file.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fwojciec/pbirview"
	"github.com/fwojciec/pbirview/fs"
)

// Compile-time interface verification.
var _ pbirview.IndexStore = (*Store)(nil)

// Store reads and writes ReportIndex mapping files.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the mapping at path. A missing file yields an error wrapping
// pbirview.ErrIndexNotFound.
func (s *Store) Load(path string) (*pbirview.ReportIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", pbirview.ErrIndexNotFound, path)
		}
		return nil, err
	}

	var index pbirview.ReportIndex
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("parsing mapping %s: %w", path, err)
	}
	if index.Version > pbirview.IndexVersion {
		return nil, fmt.Errorf("mapping %s: unsupported version %d", path, index.Version)
	}
	return &index, nil
}

// Save replaces the mapping at path with index. Output is indented and
// deterministic, so an unchanged index produces identical bytes.
func (s *Store) Save(path string, index *pbirview.ReportIndex) error {
	data, err := Marshal(index)
	if err != nil {
		return err
	}
	return fs.WriteFile(path, data)
}

// Marshal encodes index the way Save writes it.
func Marshal(index *pbirview.ReportIndex) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(index); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
