package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kohonen/grid"
)

const tol = 1e-9

func TestMeanAndPopulationVariance(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 5.0, grid.Mean(x), tol)
	// population variance divides by n (=8), not n-1
	assert.InDelta(t, 4.0, grid.PopulationVariance(x), tol)

	assert.True(t, math.IsNaN(grid.Mean(nil)))
	assert.True(t, math.IsNaN(grid.PopulationVariance(nil)))
	assert.Equal(t, 0.0, grid.PopulationVariance([]float64{3, 3, 3}))
}

func TestColumnStatistics(t *testing.T) {
	g, err := grid.New([][]float64{{1, 10}, {2, 20}, {3, 30}})
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{2, 20}, g.ColumnMeans(), tol)
	assert.InDeltaSlice(t, []float64{2.0 / 3.0, 200.0 / 3.0}, g.ColumnVariances(), tol)
}

// TestStandardize_Diagonal: rows [[1,1],[2,2],[3,3]] standardize to ±sqrt(1.5).
func TestStandardize_Diagonal(t *testing.T) {
	g, err := grid.New([][]float64{{1, 1}, {2, 2}, {3, 3}})
	require.NoError(t, err)
	require.False(t, g.HasZeroVarianceColumn())

	require.True(t, g.Standardize())

	want := [][]float64{{-1.2247, -1.2247}, {0, 0}, {1.2247, 1.2247}}
	got := g.ToRows()
	for i := range want {
		assert.InDeltaSlice(t, want[i], got[i], 1e-4, "row %d", i)
	}
}

// TestStandardize_ZeroVarianceIsNoop: a constant column blocks the transform.
func TestStandardize_ZeroVarianceIsNoop(t *testing.T) {
	rows := [][]float64{{1, 5}, {1, 6}, {1, 7}}
	g, err := grid.New(rows)
	require.NoError(t, err)
	require.True(t, g.HasZeroVarianceColumn())

	require.False(t, g.Standardize())
	assert.Equal(t, rows, g.ToRows())
}

// TestHasZeroVarianceColumn_RoundingProofConstant: a column of 0.1 has a
// mean that is not exactly 0.1 in binary floating point; it is still constant.
func TestHasZeroVarianceColumn_RoundingProofConstant(t *testing.T) {
	g, err := grid.New([][]float64{{0.1, 1}, {0.1, 2}, {0.1, 3}})
	require.NoError(t, err)
	assert.True(t, g.HasZeroVarianceColumn())

	g, err = grid.New([][]float64{{0.1, 1}, {0.1000001, 2}, {0.1, 3}})
	require.NoError(t, err)
	assert.False(t, g.HasZeroVarianceColumn())
}

// TestStandardize_Idempotent: after one pass each column has mean≈0 and
// variance≈1, and a second pass leaves values within tolerance.
func TestStandardize_Idempotent(t *testing.T) {
	g, err := grid.New([][]float64{
		{3.2, -1, 100},
		{1.5, 4, 250},
		{9.9, 0.5, 175},
		{-4, 2, 90},
		{0, 8, 300},
	})
	require.NoError(t, err)
	require.True(t, g.Standardize())

	for j, m := range g.ColumnMeans() {
		assert.InDelta(t, 0, m, tol, "mean of column %d", j)
	}
	for j, v := range g.ColumnVariances() {
		assert.InDelta(t, 1, v, tol, "variance of column %d", j)
	}

	first := g.ToRows()
	require.True(t, g.Standardize())
	second := g.ToRows()
	for i := range first {
		assert.InDeltaSlice(t, first[i], second[i], tol, "row %d", i)
	}
}
