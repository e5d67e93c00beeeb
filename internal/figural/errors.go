package figural

import "errors"

// Domain errors for layout and range operations. Classification never
// errors: out-of-domain input degrades to false.
var (
	// ErrInvalidIndex indicates an arrangement index below 1.
	ErrInvalidIndex = errors.New("figural: index must be >= 1")

	// ErrInvalidRange indicates an empty or inverted index range, or a
	// grid shape that cannot hold it.
	ErrInvalidRange = errors.New("figural: invalid index range")
)
