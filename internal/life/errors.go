package life

import "errors"

// Domain errors for grid operations.
var (
	// ErrInvalidSize indicates a grid dimension that is zero or negative.
	ErrInvalidSize = errors.New("life: grid dimensions must be positive")

	// ErrUnknownPattern indicates a pattern name with no registered shape.
	ErrUnknownPattern = errors.New("life: unknown pattern")

	// ErrPatternBounds indicates a pattern that does not fit on the grid.
	ErrPatternBounds = errors.New("life: pattern does not fit the grid")
)
