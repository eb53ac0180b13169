package grid

import "errors"

var (
	// ErrInvalidDimensions indicates the input has fewer than two rows or
	// columns, fewer rows than columns, or rows of differing lengths.
	ErrInvalidDimensions = errors.New("grid: need rows >= 2, cols >= 2, rows >= cols and equal-length rows")
	// ErrIndexOutOfRange indicates a row or column index outside the grid.
	ErrIndexOutOfRange = errors.New("grid: index out of range")
)
