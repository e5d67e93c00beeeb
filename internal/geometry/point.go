// Package geometry provides the 2D primitives shared by the layout and
// render packages: points, axis-aligned rectangles, and evenly spaced
// point interpolation along a segment.
package geometry

import "math"

// Point is a position in the abstract drawing plane (y grows upward).
type Point struct {
	X, Y float64
}

// Polar returns the point at radius r along the direction angleDeg,
// measured in degrees counterclockwise from the positive x axis.
func Polar(r, angleDeg float64) Point {
	rad := angleDeg * math.Pi / 180
	return Point{X: r * math.Cos(rad), Y: r * math.Sin(rad)}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p scaled by factor about the origin.
func (p Point) Scale(factor float64) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}
