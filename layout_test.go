package pbirview_test

import (
	"math"
	"strings"
	"testing"

	"github.com/fwojciec/pbirview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbered(n int, x, y, w, h float64) pbirview.NumberedVisual {
	return pbirview.NumberedVisual{
		Number: n,
		Visual: pbirview.Visual{X: x, Y: y, Width: w, Height: h},
	}
}

func TestRenderLayout(t *testing.T) {
	t.Parallel()

	t.Run("returns nil without visuals", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, pbirview.RenderLayout(nil, 10, 4))
	})

	t.Run("full extent visual touches the frame", func(t *testing.T) {
		t.Parallel()

		lines := pbirview.RenderLayout([]pbirview.NumberedVisual{numbered(1, 0, 0, 100, 50)}, 10, 4)

		assert.Equal(t, []string{
			"+----------+",
			"|+--------+|",
			"||        ||",
			"||   1    ||",
			"|+--------+|",
			"+----------+",
		}, lines)
	})

	t.Run("scales side by side visuals", func(t *testing.T) {
		t.Parallel()

		lines := pbirview.RenderLayout([]pbirview.NumberedVisual{
			numbered(1, 0, 0, 50, 40),
			numbered(2, 50, 0, 50, 40),
		}, 10, 4)

		require.Len(t, lines, 6)
		assert.Equal(t, "|+----+---+|", lines[1])
		assert.Contains(t, lines[3], "1")
		assert.Contains(t, lines[3], "2")
		assert.Less(t, strings.IndexByte(lines[3], '1'), strings.IndexByte(lines[3], '2'))
	})

	t.Run("defaults non-positive dimensions", func(t *testing.T) {
		t.Parallel()

		lines := pbirview.RenderLayout([]pbirview.NumberedVisual{numbered(1, 0, 0, 10, 10)}, 0, -3)

		require.Len(t, lines, pbirview.DefaultRows+2)
		for _, line := range lines {
			assert.Len(t, line, pbirview.DefaultCols+2)
		}
	})

	t.Run("keeps shape for degenerate geometry", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name    string
			visuals []pbirview.NumberedVisual
			cols    int
			rows    int
		}{
			{"zero size", []pbirview.NumberedVisual{numbered(1, 0, 0, 0, 0)}, 8, 3},
			{"negative origin", []pbirview.NumberedVisual{numbered(1, -50, -50, 10, 10)}, 8, 3},
			{"negative size", []pbirview.NumberedVisual{numbered(1, 50, 50, -40, -40)}, 8, 3},
			{"negative width", []pbirview.NumberedVisual{numbered(1, 0, 0, 10, 10), numbered(2, 5, 0, -20, 10)}, 8, 3},
			{"not a number", []pbirview.NumberedVisual{numbered(1, math.NaN(), 0, math.Inf(1), 5)}, 8, 3},
			{"single cell grid", []pbirview.NumberedVisual{numbered(12, 0, 0, 5, 5)}, 1, 1},
			{"wide label", []pbirview.NumberedVisual{numbered(12345, 0, 0, 1, 1)}, 3, 2},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				lines := pbirview.RenderLayout(tt.visuals, tt.cols, tt.rows)

				require.Len(t, lines, tt.rows+2)
				for _, line := range lines {
					assert.Len(t, line, tt.cols+2)
				}
			})
		}
	})

	t.Run("two digit label spills onto a narrow outline", func(t *testing.T) {
		t.Parallel()

		lines := pbirview.RenderLayout([]pbirview.NumberedVisual{
			numbered(1, 2, 0, 8, 4),
			numbered(12, 0, 0, 2, 4),
		}, 10, 4)

		assert.Equal(t, []string{
			"+----------+",
			"|+-+------+|",
			"|| |      ||",
			"|12|  1   ||",
			"|+-+------+|",
			"+----------+",
		}, lines)
	})

	t.Run("keeps every number of many visuals", func(t *testing.T) {
		t.Parallel()

		visuals := make([]pbirview.NumberedVisual, 0, 12)
		for i := 0; i < 11; i++ {
			visuals = append(visuals, numbered(i+1, 40, float64(i)*60, 1240, 60))
		}
		visuals = append(visuals, numbered(12, 0, 0, 40, 700))

		lines := pbirview.RenderLayout(visuals, 60, 16)

		require.Len(t, lines, 18)
		assert.True(t, strings.HasPrefix(lines[9], "|12|"), lines[9])
	})

	t.Run("labels every visual", func(t *testing.T) {
		t.Parallel()

		lines := pbirview.RenderLayout([]pbirview.NumberedVisual{
			numbered(1, 0, 0, 1280, 360),
			numbered(2, 0, 360, 640, 360),
			numbered(3, 640, 360, 640, 360),
		}, 60, 16)

		joined := strings.Join(lines, "\n")
		for _, label := range []string{"1", "2", "3"} {
			assert.Contains(t, joined, label)
		}
	})
}

