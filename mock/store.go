package mock

import "github.com/fwojciec/pbirview"

// Compile-time interface verification.
var _ pbirview.IndexStore = (*IndexStore)(nil)

// IndexStore is a mock implementation of pbirview.IndexStore.
type IndexStore struct {
	LoadFn func(path string) (*pbirview.ReportIndex, error)
	SaveFn func(path string, index *pbirview.ReportIndex) error
}

func (s *IndexStore) Load(path string) (*pbirview.ReportIndex, error) {
	return s.LoadFn(path)
}

func (s *IndexStore) Save(path string, index *pbirview.ReportIndex) error {
	return s.SaveFn(path, index)
}
