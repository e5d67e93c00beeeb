// Package figural provides the sequence engines for figural numbers.
//
// A figural number counts the dots of a regular geometric arrangement.
// The package defines the family capability and its two implementations:
//
//   - [Family]: closed form, inverse form, and per-layer point rule
//   - [Triangular]: T(i) = i(i+1)/2, row-stacked lattice
//   - [Pentagonal]: P(i) = (3i²−i)/2, golden-ratio ray construction
//
// # Sequence operations
//
// The generic operations work over any Family:
//
//	tri := figural.Triangular{}
//	figural.Arange(tri, 5)        // [1 3 6 10]
//	figural.Classify(tri, 6)      // true
//	tri.Ith(10)                   // 55
//
// # Classification precision
//
// Classification inverts the closed form through a float64 square root
// and compares by exact floor equality. This is reliable for inputs up
// to about 1e15; beyond that the square root loses integer resolution.
package figural
