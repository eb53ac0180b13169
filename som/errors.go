package som

import "errors"

var (
	// ErrNilGrid indicates New was given no training data.
	ErrNilGrid = errors.New("som: training grid is nil")
	// ErrInvalidEpochs indicates a non-positive epoch count.
	ErrInvalidEpochs = errors.New("som: epochs must be > 0")
	// ErrInsufficientRows indicates width*height exceeds the number of rows,
	// so the initial weights cannot be drawn without replacement.
	ErrInsufficientRows = errors.New("som: node count exceeds number of rows")
	// ErrAlreadyInitialized indicates Init was called twice.
	ErrAlreadyInitialized = errors.New("som: trainer already initialized")
	// ErrAlreadyTrained indicates Train was called on a trained map.
	ErrAlreadyTrained = errors.New("som: trainer already trained")
	// ErrNotInitialized indicates weights were requested before Init.
	ErrNotInitialized = errors.New("som: trainer not initialized")
	// ErrNotTrained indicates assignments were requested before Train.
	ErrNotTrained = errors.New("som: trainer not trained")
	// ErrDimensionMismatch indicates a vector of the wrong length.
	ErrDimensionMismatch = errors.New("som: vector length does not match feature count")
)
