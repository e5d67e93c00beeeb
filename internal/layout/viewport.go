package layout

import (
	"fmt"

	"github.com/san-kum/figural/internal/figural"
	"github.com/san-kum/figural/internal/geometry"
)

// Vertical padding of the shared window, in multiples of the dot
// spacing. The bottom gets extra room for labels.
const (
	topPadding    = 1.0
	bottomPadding = 2.0
)

// Borders flags which panel edges are drawn. Suppressing the top and
// left edges everywhere but the first row and column yields one
// connected grid instead of per-cell boxes.
type Borders struct {
	Top, Bottom, Left, Right bool
}

// Panel is one cell of a composed grid: the index it shows, its window
// in drawing coordinates, its grid position, and its border flags.
type Panel struct {
	Index    int
	Row, Col int
	Window   geometry.Rect
	Borders  Borders
}

// Grid is the composed viewport for an index range.
type Grid struct {
	Rows, Cols int
	Panels     []Panel
}

// Compose lays out the panels for indices [start, end] over cols
// columns. Every panel gets a window of identical size, derived from the
// largest index of the range: the figure bounds of end, padded by one
// spacing left and right, one above, and two below. The window is
// re-anchored per panel at that panel's own horizontal center and
// bottom, so shapes stay comparable in scale across the grid.
func Compose(f figural.Family, start, end int, distance float64, cols int) (*Grid, error) {
	if start < 1 {
		return nil, fmt.Errorf("%w: start %d", figural.ErrInvalidIndex, start)
	}
	if end < start {
		return nil, fmt.Errorf("%w: [%d, %d]", figural.ErrInvalidRange, start, end)
	}
	if cols < 1 {
		return nil, fmt.Errorf("%w: %d columns", figural.ErrInvalidRange, cols)
	}

	count := end - start + 1
	rows := (count + cols - 1) / cols

	max := f.Bounds(end, distance)
	width := max.Width() + 2*distance
	height := max.Height() + (topPadding+bottomPadding)*distance

	g := &Grid{Rows: rows, Cols: cols, Panels: make([]Panel, 0, count)}
	for idx := 0; idx < count; idx++ {
		n := start + idx
		row, col := idx/cols, idx%cols

		b := f.Bounds(n, distance)
		cx := (b.XMin + b.XMax) / 2
		bottom := b.YMin - bottomPadding*distance

		g.Panels = append(g.Panels, Panel{
			Index: n,
			Row:   row,
			Col:   col,
			Window: geometry.Rect{
				XMin: cx - width/2,
				XMax: cx + width/2,
				YMin: bottom,
				YMax: bottom + height,
			},
			Borders: Borders{
				Top:    row == 0,
				Bottom: true,
				Left:   col == 0,
				Right:  true,
			},
		})
	}
	return g, nil
}
