// SPDX-License-Identifier: MIT

// Package matrix: Dense is a concrete, row-major implementation of the
// Matrix interface, storing elements in a flat slice for performance and
// cache friendliness.
package matrix

import (
	"strconv"
	"strings"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("NewDense", ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows copies a rectangular [][]float64 into a new Dense.
// The caller keeps ownership of rows; later writes to rows never reach
// the returned matrix.
//
// Errors:
//   - ErrInvalidDimensions if there are no rows or the first row is empty.
//   - ErrDimensionMismatch if any row length differs from the first.
//
// Complexity: O(r*c) time and memory.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf("NewDenseFromRows", ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	data := make([]float64, 0, r*c)
	for _, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf("NewDenseFromRows", ErrDimensionMismatch)
		}
		data = append(data, row...)
	}

	return &Dense{r: r, c: c, data: data}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i, or ErrIndexOutOfBounds.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// RowView returns row i as a slice sharing the matrix storage. Writes
// through the view mutate the matrix. It panics if i is out of range, like
// a slice index would; callers are expected to loop over [0, Rows()).
// Complexity: O(1).
func (m *Dense) RowView(i int) []float64 {
	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// SetRow copies src into row i.
// Errors: ErrIndexOutOfBounds for a bad row, ErrDimensionMismatch when
// len(src) != Cols().
func (m *Dense) SetRow(i int, src []float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf("SetRow", i, 0, ErrIndexOutOfBounds)
	}
	if len(src) != m.c {
		return matrixErrorf("Dense.SetRow", ErrDimensionMismatch)
	}
	copy(m.data[i*m.c:(i+1)*m.c], src)

	return nil
}

// Flatten returns a copy of all elements in row-major order.
// Complexity: O(r*c).
func (m *Dense) Flatten() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// ToRows returns a deep [][]float64 copy of the matrix.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String renders one row per line with space-separated values.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
