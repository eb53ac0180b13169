package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kohonen/grid"
)

// TestNew_ShapeContract checks that New accepts iff rows≥2, cols≥2,
// rows≥cols and no row is jagged.
func TestNew_ShapeContract(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		ok   bool
	}{
		{"nil", nil, false},
		{"single row", [][]float64{{1, 2}}, false},
		{"single column", [][]float64{{1}, {2}, {3}}, false},
		{"more columns than rows", [][]float64{{1, 2, 3}, {4, 5, 6}}, false},
		{"jagged short", [][]float64{{1, 2}, {3}, {4, 5}}, false},
		{"jagged long", [][]float64{{1, 2}, {3, 4, 5}, {6, 7}}, false},
		{"square 2x2", [][]float64{{1, 2}, {3, 4}}, true},
		{"tall 3x2", [][]float64{{1, 1}, {2, 2}, {3, 3}}, true},
		{"tall 4x3", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}, {0, 0, 1}}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.rows)
			if !tc.ok {
				require.ErrorIs(t, err, grid.ErrInvalidDimensions)
				require.Nil(t, g)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tc.rows), g.Rows())
			assert.Equal(t, len(tc.rows[0]), g.Cols())
		})
	}
}

// TestNew_CopiesInput verifies the caller's buffer never aliases the grid.
func TestNew_CopiesInput(t *testing.T) {
	rows := [][]float64{{1, 1}, {2, 2}, {3, 3}}
	g, err := grid.New(rows)
	require.NoError(t, err)

	rows[0][0] = 42
	v, err := g.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	require.True(t, g.Standardize())
	assert.Equal(t, 2.0, rows[1][0], "Standardize must not write through to caller rows")
}

// TestAccessors covers At, Row, Column and their range checks.
func TestAccessors(t *testing.T) {
	g, err := grid.New([][]float64{{1, 5}, {2, 6}, {3, 7}})
	require.NoError(t, err)

	v, err := g.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
	_, err = g.At(3, 0)
	assert.ErrorIs(t, err, grid.ErrIndexOutOfRange)

	row, err := g.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 6}, row)
	_, err = g.Row(-1)
	assert.ErrorIs(t, err, grid.ErrIndexOutOfRange)

	col, err := g.Column(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6, 7}, col)
	_, err = g.Column(2)
	assert.ErrorIs(t, err, grid.ErrIndexOutOfRange)

	assert.Equal(t, []float64{1, 5}, g.RowView(0))
	assert.Equal(t, "1 5\n2 6\n3 7\n", g.String())
}
