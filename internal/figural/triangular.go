package figural

import (
	"math"

	"github.com/san-kum/figural/internal/geometry"
)

// Triangular is the family of triangular numbers T(i) = i(i+1)/2. The
// n-th arrangement stacks n rows of dots: the base row of n dots sits at
// the origin and every following row shifts by (distance/2, distance),
// centering progressively toward the apex.
type Triangular struct{}

func (Triangular) Name() string   { return "triangular" }
func (Triangular) Symbol() string { return "T" }

func (Triangular) Ith(i int) int64 {
	n := int64(i)
	return n * (n + 1) / 2
}

func (Triangular) InverseIndex(x float64) float64 {
	return (-1 + math.Sqrt(1+8*x)) / 2
}

func (Triangular) GnomonStep() int64 { return 1 }

// Ring emits layer k as a row of n+1−k collinear dots. Layer 1 is the
// base row of n dots at y=0; each next layer starts (distance/2, distance)
// above the previous one, ending with the single apex dot.
func (Triangular) Ring(n, k int, distance float64) []geometry.Point {
	count := n + 1 - k
	origin := geometry.Point{
		X: float64(k-1) * distance / 2,
		Y: float64(k-1) * distance,
	}
	pts := make([]geometry.Point, 0, count)
	for i := 0; i < count; i++ {
		pts = append(pts, geometry.Point{X: origin.X + float64(i)*distance, Y: origin.Y})
	}
	return pts
}

// Outline draws the single triangle connecting the three corner dots.
// Only the final layer contributes it, and a lone dot has no outline.
func (Triangular) Outline(n, k int, distance float64) []geometry.Point {
	if k != n || n <= 1 {
		return nil
	}
	side := float64(n-1) * distance
	return []geometry.Point{
		{X: 0, Y: 0},
		{X: side, Y: 0},
		{X: side / 2, Y: side},
		{X: 0, Y: 0},
	}
}

func (Triangular) LabelAnchor(n int, distance float64) geometry.Point {
	return geometry.Point{X: float64(n-1) * distance / 2, Y: -distance / 2}
}

func (Triangular) Bounds(n int, distance float64) geometry.Rect {
	side := float64(n-1) * distance
	return geometry.Rect{XMin: 0, XMax: side, YMin: 0, YMax: side}
}
