package dataset

import "errors"

var (
	// ErrEmpty indicates the input has no header line.
	ErrEmpty = errors.New("dataset: input is empty")
	// ErrTooFewColumns indicates a header with fewer than two fields.
	ErrTooFewColumns = errors.New("dataset: at least two columns are required")
	// ErrNotNumeric indicates a field that does not parse as a finite number.
	ErrNotNumeric = errors.New("dataset: field is not a finite number")
	// ErrJagged indicates a row with fewer fields than the header.
	ErrJagged = errors.New("dataset: row has fewer fields than the header")
	// ErrTooFewRows indicates fewer data rows than columns.
	ErrTooFewRows = errors.New("dataset: at least as many data rows as columns are required")
)
