package geometry

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b Point) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestPolar(t *testing.T) {
	tests := []struct {
		r, deg float64
		want   Point
	}{
		{1, 0, Point{1, 0}},
		{1, 90, Point{0, 1}},
		{2, 180, Point{-2, 0}},
		{1, -90, Point{0, -1}},
	}
	for _, tt := range tests {
		if got := Polar(tt.r, tt.deg); !almostEqual(got, tt.want) {
			t.Errorf("Polar(%g, %g) = %+v, want %+v", tt.r, tt.deg, got, tt.want)
		}
	}
}

func TestSegmentCount(t *testing.T) {
	a, b := Point{0, 0}, Point{3, 0}

	pts := Segment(a, b, 4, false)
	if len(pts) != 4 {
		t.Fatalf("expected 4 points, got %d", len(pts))
	}
	if !almostEqual(pts[0], a) || !almostEqual(pts[3], b) {
		t.Errorf("endpoints wrong: %+v ... %+v", pts[0], pts[3])
	}
	if !almostEqual(pts[1], Point{1, 0}) {
		t.Errorf("interior point = %+v, want (1,0)", pts[1])
	}
}

func TestSegmentSkipFirst(t *testing.T) {
	a, b := Point{0, 0}, Point{0, 2}

	pts := Segment(a, b, 3, true)
	if len(pts) != 2 {
		t.Fatalf("expected 2 points, got %d", len(pts))
	}
	if !almostEqual(pts[0], Point{0, 1}) {
		t.Errorf("first emitted point = %+v, want (0,1)", pts[0])
	}
}

func TestSegmentDegenerate(t *testing.T) {
	a := Point{1, 1}

	if pts := Segment(a, Point{5, 5}, 1, false); len(pts) != 1 || !almostEqual(pts[0], a) {
		t.Errorf("n=1 should yield just the start, got %+v", pts)
	}
	if pts := Segment(a, Point{5, 5}, 1, true); len(pts) != 0 {
		t.Errorf("n=1 with skipFirst should yield nothing, got %+v", pts)
	}
	if pts := Segment(a, Point{5, 5}, 0, false); len(pts) != 1 {
		t.Errorf("n=0 should degenerate to the start, got %+v", pts)
	}
}

func TestBoundsOf(t *testing.T) {
	pts := []Point{{1, 2}, {-3, 5}, {4, -1}}
	b := BoundsOf(pts)
	want := Rect{XMin: -3, XMax: 4, YMin: -1, YMax: 5}
	if b != want {
		t.Errorf("BoundsOf = %+v, want %+v", b, want)
	}

	if z := BoundsOf(nil); z != (Rect{}) {
		t.Errorf("BoundsOf(nil) = %+v, want zero", z)
	}
}

func TestRect(t *testing.T) {
	r := Rect{XMin: 0, XMax: 4, YMin: -2, YMax: 2}
	if r.Width() != 4 || r.Height() != 4 {
		t.Errorf("size = %gx%g, want 4x4", r.Width(), r.Height())
	}
	if c := r.Center(); !almostEqual(c, Point{2, 0}) {
		t.Errorf("center = %+v, want (2,0)", c)
	}
	if !r.Contains(Point{0, 2}) {
		t.Error("edge point should be contained")
	}
	if r.Contains(Point{5, 0}) {
		t.Error("outside point should not be contained")
	}
	if e := r.Expand(1); e.Width() != 6 || e.Height() != 6 {
		t.Errorf("Expand = %+v", e)
	}
}
