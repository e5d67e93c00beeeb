package layout

import (
	"fmt"

	"github.com/san-kum/figural/internal/figural"
	"github.com/san-kum/figural/internal/geometry"
)

// Label is an optional text annotation anchored below an arrangement.
type Label struct {
	Anchor geometry.Point
	Text   string
}

// Layout is the point arrangement of one figural number. Points are in
// emission order; Outlines are closed vertex loops drawn under the dots.
type Layout struct {
	Family   figural.Family
	Index    int
	Value    int64
	Points   []geometry.Point
	Outlines [][]geometry.Point
	Label    *Label
}

// Of builds the n-th arrangement of family f with the given dot spacing.
// The outline loops and the label are optional. The point count always
// equals f.Ith(n); indices below 1 return ErrInvalidIndex.
func Of(f figural.Family, n int, distance float64, withOutline, withLabel bool) (*Layout, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", figural.ErrInvalidIndex, n)
	}

	value := f.Ith(n)
	lay := &Layout{
		Family: f,
		Index:  n,
		Value:  value,
		Points: make([]geometry.Point, 0, value),
	}

	for k := 1; k <= n; k++ {
		lay.Points = append(lay.Points, f.Ring(n, k, distance)...)
		if withOutline {
			if loop := f.Outline(n, k, distance); loop != nil {
				lay.Outlines = append(lay.Outlines, loop)
			}
		}
	}

	if withLabel {
		lay.Label = &Label{
			Anchor: f.LabelAnchor(n, distance),
			Text:   fmt.Sprintf("%s(%d) = %d", f.Symbol(), n, value),
		}
	}
	return lay, nil
}
