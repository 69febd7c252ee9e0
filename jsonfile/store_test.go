package jsonfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/pbirview"
	"github.com/fwojciec/pbirview/jsonfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleIndex() *pbirview.ReportIndex {
	title := "Sales <by> Region"
	return &pbirview.ReportIndex{
		Version: pbirview.IndexVersion,
		Root:    "/repo",
		Pages: []pbirview.Page{
			{
				ID:     "p1",
				Name:   "Overview",
				Report: "Sales",
				Path:   "Sales.Report/definition/pages/p1/page.json",
				Visuals: []pbirview.Visual{
					{
						ID:         "v1",
						Name:       "v1",
						VisualType: "barChart",
						TitleText:  &title,
						Path:       "Sales.Report/definition/pages/p1/visuals/v1/visual.json",
						X:          10,
						Y:          20.5,
						Width:      300,
						Height:     200,
					},
					{
						ID:         "v2",
						Name:       "v2",
						VisualType: "card",
						Path:       "Sales.Report/definition/pages/p1/visuals/v2/visual.json",
						Width:      1,
						Height:     1,
					},
				},
			},
		},
	}
}

func TestStore_SaveLoad(t *testing.T) {
	t.Parallel()

	t.Run("round trips an index", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out", "mapping.json")
		store := jsonfile.NewStore()

		require.NoError(t, store.Save(path, sampleIndex()))
		loaded, err := store.Load(path)

		require.NoError(t, err)
		assert.Equal(t, sampleIndex(), loaded)
	})

	t.Run("writes identical bytes for an unchanged index", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := jsonfile.NewStore()
		first := filepath.Join(dir, "first.json")
		second := filepath.Join(dir, "second.json")

		require.NoError(t, store.Save(first, sampleIndex()))
		require.NoError(t, store.Save(second, sampleIndex()))

		a, err := os.ReadFile(first)
		require.NoError(t, err)
		b, err := os.ReadFile(second)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	t.Run("uses the mapping field names", func(t *testing.T) {
		t.Parallel()

		data, err := jsonfile.Marshal(sampleIndex())

		require.NoError(t, err)
		out := string(data)
		assert.Contains(t, out, `"version": 1`)
		assert.Contains(t, out, `"visualType": "barChart"`)
		assert.Contains(t, out, `"titleText": "Sales <by> Region"`)
		assert.Contains(t, out, `"titleText": null`)
		assert.Contains(t, out, `"path": "Sales.Report/definition/pages/p1/page.json"`)
	})
}

func TestStore_Load(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrIndexNotFound for missing file", func(t *testing.T) {
		t.Parallel()

		store := jsonfile.NewStore()
		_, err := store.Load(filepath.Join(t.TempDir(), "missing.json"))

		require.ErrorIs(t, err, pbirview.ErrIndexNotFound)
	})

	t.Run("returns error for malformed JSON", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		store := jsonfile.NewStore()
		_, err := store.Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing mapping")
	})

	t.Run("rejects newer versions", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "future.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"version": 2, "root": ".", "pages": []}`), 0o644))

		store := jsonfile.NewStore()
		_, err := store.Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported version 2")
	})
}
