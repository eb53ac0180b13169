package grid

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of x. Mean of an empty slice is NaN.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}

	return stat.Mean(x, nil)
}

// PopulationVariance returns Σ(x-mean)²/n, the biased (population)
// estimator. Variance of an empty slice is NaN.
func PopulationVariance(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	_, v := stat.PopMeanVariance(x, nil)
	if v < 0 {
		// compensated summation can dip a hair below zero on constant input
		v = 0
	}

	return v
}

// isConstant reports whether every element equals the first.
func isConstant(x []float64) bool {
	for _, v := range x[1:] {
		if v != x[0] {
			return false
		}
	}

	return true
}

// ColumnMeans returns the mean of every column.
// Complexity: O(r×c).
func (g *Grid) ColumnMeans() []float64 {
	out := make([]float64, g.Cols())
	for j := range out {
		out[j] = Mean(g.column(j))
	}

	return out
}

// ColumnVariances returns the population variance of every column.
// Complexity: O(r×c).
func (g *Grid) ColumnVariances() []float64 {
	out := make([]float64, g.Cols())
	for j := range out {
		out[j] = PopulationVariance(g.column(j))
	}

	return out
}

// HasZeroVarianceColumn reports whether any column holds the same value in
// every row. Constant columns are matched by value as well as by variance
// so that rounding in the mean (e.g. a column of 0.1s) cannot hide them.
// Complexity: O(r×c).
func (g *Grid) HasZeroVarianceColumn() bool {
	for j := 0; j < g.Cols(); j++ {
		col := g.column(j)
		if isConstant(col) || PopulationVariance(col) == 0 {
			return true
		}
	}

	return false
}

// Standardize rewrites every column as (x - mean) / sqrt(variance) in place
// and reports true. If any column has zero variance the grid is left
// untouched and Standardize reports false.
//
// Standardizing an already standardized grid changes values only by
// floating-point noise.
// Complexity: O(r×c).
func (g *Grid) Standardize() bool {
	if g.HasZeroVarianceColumn() {
		return false
	}
	r, c := g.Rows(), g.Cols()
	for j := 0; j < c; j++ {
		col := g.column(j)
		mean, variance := stat.PopMeanVariance(col, nil)
		sd := math.Sqrt(variance)
		for i := 0; i < r; i++ {
			g.data.RowView(i)[j] = (col[i] - mean) / sd
		}
	}

	return true
}
