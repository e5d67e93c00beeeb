package figural

import (
	"math"

	"github.com/san-kum/figural/internal/geometry"
)

// phi is the golden ratio, governing the relative radii of the wide rays.
var phi = (1 + math.Sqrt(5)) / 2

// rayAngles are the four fixed ray directions of the pentagonal
// construction, in degrees. The two inner ("wide") rays at −72° and
// −108° carry their vertices at radius r·φ, the outer pair at radius r.
var rayAngles = [4]float64{-36, -72, -108, -144}

// Pentagonal is the family of pentagonal numbers P(i) = (3i²−i)/2. The
// n-th arrangement grows from a shared apex at the origin by nested
// gnomon rings: ring k places its corner vertices on the four fixed rays
// and fills the three connecting edges with k evenly spaced dots each,
// sharing the edge boundaries.
type Pentagonal struct{}

func (Pentagonal) Name() string   { return "pentagonal" }
func (Pentagonal) Symbol() string { return "P" }

func (Pentagonal) Ith(i int) int64 {
	n := int64(i)
	return (3*n*n - n) / 2
}

func (Pentagonal) InverseIndex(x float64) float64 {
	return (1 + math.Sqrt(1+24*x)) / 6
}

func (Pentagonal) GnomonStep() int64 { return 3 }

// ringCorners returns the four ray vertices of ring k.
func ringCorners(k int, distance float64) [4]geometry.Point {
	r := float64(k-1) * distance
	return [4]geometry.Point{
		geometry.Polar(r, rayAngles[0]),
		geometry.Polar(r*phi, rayAngles[1]),
		geometry.Polar(r*phi, rayAngles[2]),
		geometry.Polar(r, rayAngles[3]),
	}
}

// Ring emits the apex for layer 1, and for layer k >= 2 the three edges
// p1→p2, p2→p3, p3→p4 of the k-th gnomon with k dots each. The shared
// vertices p2 and p3 are emitted exactly once, by skipping the start of
// every edge after the first, so ring k contributes 3k−2 dots and the
// running total stays equal to the closed form.
func (Pentagonal) Ring(n, k int, distance float64) []geometry.Point {
	if k == 1 {
		return []geometry.Point{{X: 0, Y: 0}}
	}
	c := ringCorners(k, distance)
	pts := make([]geometry.Point, 0, 3*k-2)
	pts = append(pts, geometry.Segment(c[0], c[1], k, false)...)
	pts = append(pts, geometry.Segment(c[1], c[2], k, true)...)
	pts = append(pts, geometry.Segment(c[2], c[3], k, true)...)
	return pts
}

// Outline draws the nested pentagon of ring k, closed through the apex.
func (Pentagonal) Outline(n, k int, distance float64) []geometry.Point {
	if k <= 1 {
		return nil
	}
	c := ringCorners(k, distance)
	return []geometry.Point{
		{X: 0, Y: 0}, c[0], c[1], c[2], c[3], {X: 0, Y: 0},
	}
}

func (Pentagonal) LabelAnchor(n int, distance float64) geometry.Point {
	rMax := float64(n-1) * distance
	yMin := rMax * phi * math.Sin(rayAngles[1]*math.Pi/180)
	return geometry.Point{X: 0, Y: yMin - distance}
}

func (Pentagonal) Bounds(n int, distance float64) geometry.Rect {
	c := ringCorners(n, distance)
	return geometry.BoundsOf([]geometry.Point{{X: 0, Y: 0}, c[0], c[1], c[2], c[3]})
}
