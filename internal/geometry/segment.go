package geometry

// Segment returns n evenly spaced points from a to b, endpoints included.
// When skipFirst is set the point at a is omitted; segment boundaries that
// are shared between consecutive segments of a loop can then be emitted
// exactly once by skipping the start of every segment after the first.
//
// n <= 1 degenerates to the single point a (or nothing with skipFirst).
func Segment(a, b Point, n int, skipFirst bool) []Point {
	if n <= 1 {
		if skipFirst {
			return nil
		}
		return []Point{a}
	}

	pts := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		pts = append(pts, Point{
			X: a.X + t*(b.X-a.X),
			Y: a.Y + t*(b.Y-a.Y),
		})
	}
	if skipFirst {
		return pts[1:]
	}
	return pts
}
