package pbirview

import (
	"math"
	"strconv"
	"strings"
)

// Default diagram size in character cells, excluding the frame.
const (
	DefaultCols = 60
	DefaultRows = 16
)

// Glyphs used to draw the diagram.
const (
	glyphCorner     = '+'
	glyphHorizontal = '-'
	glyphVertical   = '|'
	glyphBlank      = ' '
)

// NumberedVisual pairs a visual with the label it is drawn with.
type NumberedVisual struct {
	Number int
	Visual Visual
}

// RenderLayout draws each visual as a rectangle scaled onto a cols x rows
// character grid, with its number centered inside, and frames the grid.
// It returns rows+2 lines of cols+2 characters, or nil when there are no visuals.
// Non-positive dimensions fall back to DefaultCols and DefaultRows.
//
// Visuals are drawn in order; later rectangles overwrite earlier ones where
// they overlap.
func RenderLayout(visuals []NumberedVisual, cols, rows int) []string {
	if len(visuals) == 0 {
		return nil
	}
	if cols <= 0 {
		cols = DefaultCols
	}
	if rows <= 0 {
		rows = DefaultRows
	}

	maxRight, maxBottom := 0.0, 0.0
	for _, nv := range visuals {
		r := nv.Visual.Rect()
		maxRight = math.Max(maxRight, r.X+r.Width)
		maxBottom = math.Max(maxBottom, r.Y+r.Height)
	}
	// Also catches NaN extents.
	if !(maxRight > 0) || !(maxBottom > 0) {
		maxRight, maxBottom = 1, 1
	}
	sx := float64(cols) / maxRight
	sy := float64(rows) / maxBottom

	g := newGrid(cols, rows)
	for _, nv := range visuals {
		r := nv.Visual.Rect()
		left, right := span(cell(r.X, sx, cols), cell(r.X+r.Width, sx, cols), cols)
		top, bottom := span(cell(r.Y, sy, rows), cell(r.Y+r.Height, sy, rows), rows)
		g.box(left, top, right, bottom)
		g.label(strconv.Itoa(nv.Number), left, top, right, bottom)
	}
	return g.lines()
}

// cell maps a coordinate onto the nearest cell index in [0, limit-1].
func cell(v, scale float64, limit int) int {
	f := math.Round(v * scale)
	switch {
	case math.IsNaN(f), f < 0:
		return 0
	case f > float64(limit-1):
		return limit - 1
	}
	return int(f)
}

// span widens a collapsed or inverted [lo, hi] range to one cell, keeping it
// inside [0, limit-1].
func span(lo, hi, limit int) (int, int) {
	switch {
	case hi > lo:
		return lo, hi
	case lo < limit-1:
		return lo, lo + 1
	case limit >= 2:
		return limit - 2, limit - 1
	}
	return lo, lo
}

type grid struct {
	cols, rows int
	cells      [][]byte
}

func newGrid(cols, rows int) *grid {
	cells := make([][]byte, rows)
	for i := range cells {
		cells[i] = []byte(strings.Repeat(string(glyphBlank), cols))
	}
	return &grid{cols: cols, rows: rows, cells: cells}
}

func (g *grid) box(left, top, right, bottom int) {
	for c := left + 1; c < right; c++ {
		g.cells[top][c] = glyphHorizontal
		g.cells[bottom][c] = glyphHorizontal
	}
	for r := top + 1; r < bottom; r++ {
		g.cells[r][left] = glyphVertical
		g.cells[r][right] = glyphVertical
	}
	g.cells[top][left] = glyphCorner
	g.cells[top][right] = glyphCorner
	g.cells[bottom][left] = glyphCorner
	g.cells[bottom][right] = glyphCorner
}

// label centers text inside the rectangle's interior. Text wider than the
// interior spills onto the left and right outline, and is truncated only when
// wider than the whole rectangle. Rectangles too thin to have an interior row
// take the label on their outline.
func (g *grid) label(text string, left, top, right, bottom int) {
	il, ir := left+1, right-1
	if il > ir || len(text) > ir-il+1 {
		il, ir = left, right
	}
	it, ib := top+1, bottom-1
	if it > ib {
		it, ib = top, bottom
	}

	width := ir - il + 1
	if len(text) > width {
		text = text[:width]
	}
	row := it + (ib-it+1)/2
	col := il + (width-len(text))/2
	copy(g.cells[row][col:], text)
}

func (g *grid) lines() []string {
	border := string(glyphCorner) + strings.Repeat(string(glyphHorizontal), g.cols) + string(glyphCorner)
	out := make([]string, 0, g.rows+2)
	out = append(out, border)
	for _, row := range g.cells {
		out = append(out, string(glyphVertical)+string(row)+string(glyphVertical))
	}
	return append(out, border)
}
