package geometry

// Rect is an axis-aligned bounding box.
type Rect struct {
	XMin, XMax float64
	YMin, YMax float64
}

func (r Rect) Width() float64  { return r.XMax - r.XMin }
func (r Rect) Height() float64 { return r.YMax - r.YMin }

// Center returns the midpoint of the box.
func (r Rect) Center() Point {
	return Point{X: (r.XMin + r.XMax) / 2, Y: (r.YMin + r.YMax) / 2}
}

// Contains reports whether p lies inside the box (edges inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.XMin && p.X <= r.XMax && p.Y >= r.YMin && p.Y <= r.YMax
}

// Expand grows the box by pad on every side.
func (r Rect) Expand(pad float64) Rect {
	return Rect{XMin: r.XMin - pad, XMax: r.XMax + pad, YMin: r.YMin - pad, YMax: r.YMax + pad}
}

// BoundsOf computes the bounding box of a point set. The zero Rect is
// returned for an empty set.
func BoundsOf(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	b := Rect{XMin: pts[0].X, XMax: pts[0].X, YMin: pts[0].Y, YMax: pts[0].Y}
	for _, p := range pts[1:] {
		if p.X < b.XMin {
			b.XMin = p.X
		}
		if p.X > b.XMax {
			b.XMax = p.X
		}
		if p.Y < b.YMin {
			b.YMin = p.Y
		}
		if p.Y > b.YMax {
			b.YMax = p.Y
		}
	}
	return b
}
