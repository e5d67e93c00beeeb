package figural

import (
	"math"

	"github.com/san-kum/figural/internal/geometry"
)

// Family is the capability a figural-number family provides: an exact
// closed form, the real-valued inverse used for classification, and the
// geometric rule producing the points of each drawing layer.
//
// Layers are numbered 1..n in emission order. The union of all layers of
// the n-th arrangement contains exactly Ith(n) points; each family
// guarantees that by construction.
type Family interface {
	// Name is the lowercase family name ("triangular", "pentagonal").
	Name() string

	// Symbol is the single-letter sequence symbol used in labels.
	Symbol() string

	// Ith returns the i-th value of the sequence using exact integer
	// arithmetic. i is 1-based.
	Ith(i int) int64

	// InverseIndex returns the real index n with Ith(n) == x. Integer
	// results identify members of the sequence.
	InverseIndex(x float64) float64

	// GnomonStep is the step of the arithmetic progression whose
	// cumulative sums form the sequence (1 for triangular, 3 for
	// pentagonal; both progressions start at 1).
	GnomonStep() int64

	// Ring returns the points of layer k (1-based, emission order) of
	// the n-th arrangement with the given dot spacing.
	Ring(n, k int, distance float64) []geometry.Point

	// Outline returns the closed outline loop contributed by layer k,
	// or nil when the layer draws none.
	Outline(n, k int, distance float64) []geometry.Point

	// LabelAnchor returns the anchor point of the arrangement label,
	// placed below the figure.
	LabelAnchor(n int, distance float64) geometry.Point

	// Bounds returns the extent of the n-th arrangement's points.
	Bounds(n int, distance float64) geometry.Rect
}

// Arange returns the first n−1 values of the family's sequence via
// cumulative summation of its gnomon progression. Both families treat
// n <= 1 uniformly and return an empty sequence.
func Arange(f Family, n int) []int64 {
	if n <= 1 {
		return nil
	}
	seq := make([]int64, 0, n-1)
	step := f.GnomonStep()
	var sum, gnomon int64 = 0, 1
	for i := 1; i < n; i++ {
		sum += gnomon
		gnomon += step
		seq = append(seq, sum)
	}
	return seq
}

// Classify reports whether x is a member of the family's sequence. Any
// x below 1 is unconditionally false. The inverse index is computed in
// float64 and compared by exact floor equality, which is reliable for
// inputs up to about 1e15.
func Classify(f Family, x int64) bool {
	if x < 1 {
		return false
	}
	n := f.InverseIndex(float64(x))
	return math.Floor(n) == n
}

// ClassifySlice classifies every element of xs. When any element is
// below 1 the whole result is false, not just that element; the scalar
// guard short-circuits before the element-wise test.
func ClassifySlice(f Family, xs []int64) []bool {
	out := make([]bool, len(xs))
	for _, x := range xs {
		if x < 1 {
			return out
		}
	}
	for i, x := range xs {
		out[i] = Classify(f, x)
	}
	return out
}

// Families returns the supported families in presentation order.
func Families() []Family {
	return []Family{Triangular{}, Pentagonal{}}
}

// ByName returns the family with the given name, or nil.
func ByName(name string) Family {
	for _, f := range Families() {
		if f.Name() == name {
			return f
		}
	}
	return nil
}
