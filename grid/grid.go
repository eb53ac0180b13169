package grid

import (
	"fmt"

	"github.com/katalvlaran/kohonen/matrix"
)

// MinRows and MinCols bound the smallest grid New accepts.
const (
	MinRows = 2
	MinCols = 2
)

// Grid is a non-jagged r×c table of observations (rows) by features (columns).
// It is immutable except for Standardize, which rewrites it in place.
type Grid struct {
	data *matrix.Dense
}

// New validates rows and copies them into a new Grid. The caller keeps
// ownership of rows: nothing written to rows afterwards reaches the Grid,
// and Standardize never touches the caller's buffer.
//
// Returns ErrInvalidDimensions if len(rows) < 2, len(rows[0]) < 2,
// len(rows) < len(rows[0]) or any row length differs from the first.
// Complexity: O(r×c) time and memory.
func New(rows [][]float64) (*Grid, error) {
	if len(rows) < MinRows {
		return nil, fmt.Errorf("grid: %d rows: %w", len(rows), ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	if c < MinCols {
		return nil, fmt.Errorf("grid: %d columns: %w", c, ErrInvalidDimensions)
	}
	if r < c {
		return nil, fmt.Errorf("grid: %d rows < %d columns: %w", r, c, ErrInvalidDimensions)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("grid: row %d has %d values, want %d: %w", i, len(row), c, ErrInvalidDimensions)
		}
	}
	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}

	return &Grid{data: d}, nil
}

// Rows returns the number of observations.
func (g *Grid) Rows() int { return g.data.Rows() }

// Cols returns the number of features.
func (g *Grid) Cols() int { return g.data.Cols() }

// At returns the value at (row, col).
func (g *Grid) At(row, col int) (float64, error) {
	v, err := g.data.At(row, col)
	if err != nil {
		return 0, fmt.Errorf("grid: %v: %w", err, ErrIndexOutOfRange)
	}

	return v, nil
}

// Row returns a copy of observation i.
func (g *Grid) Row(i int) ([]float64, error) {
	row, err := g.data.Row(i)
	if err != nil {
		return nil, fmt.Errorf("grid: %v: %w", err, ErrIndexOutOfRange)
	}

	return row, nil
}

// RowView returns observation i without copying. The slice aliases the
// grid; callers must treat it as read-only. Panics if i is out of range.
func (g *Grid) RowView(i int) []float64 {
	return g.data.RowView(i)
}

// Column returns a copy of feature j.
func (g *Grid) Column(j int) ([]float64, error) {
	if j < 0 || j >= g.Cols() {
		return nil, fmt.Errorf("grid: column %d: %w", j, ErrIndexOutOfRange)
	}

	return g.column(j), nil
}

// column gathers feature j into a fresh slice; j must be valid.
func (g *Grid) column(j int) []float64 {
	r := g.Rows()
	out := make([]float64, r)
	for i := 0; i < r; i++ {
		out[i] = g.data.RowView(i)[j]
	}

	return out
}

// ToRows returns a deep copy of the grid contents.
func (g *Grid) ToRows() [][]float64 {
	return g.data.ToRows()
}

// String renders one observation per line, values separated by spaces.
func (g *Grid) String() string {
	return g.data.String()
}
