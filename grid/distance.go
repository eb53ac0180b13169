package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/kohonen/matrix"
)

// PairwiseChebyshevDistance returns the r×r matrix D with
// D[i][j] = max_k |g[i][k] - g[j][k]|.
//
// On a two-column grid read as (x, y) points this is
// max(|x_i - x_j|, |y_i - y_j|). Wider grids are not truncated to their
// first two columns: every column takes part in the maximum, so a third
// feature can raise a distance that the (x, y) pair alone would not.
// The result is symmetric with a zero diagonal; only the upper triangle is
// computed and then mirrored.
//
// Returns matrix.ErrNaNInf if any cell is NaN or ±Inf.
//
// Complexity: O(r²×c) time, O(r²) memory.
func (g *Grid) PairwiseChebyshevDistance() (*matrix.Dense, error) {
	if err := matrix.ValidateFinite(g.data); err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	n := g.Rows()
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	inf := math.Inf(1)
	var i, j int
	var d float64
	for i = 0; i < n; i++ {
		a := g.data.RowView(i)
		for j = i + 1; j < n; j++ {
			d = floats.Distance(a, g.data.RowView(j), inf)
			out.RowView(i)[j] = d
			out.RowView(j)[i] = d
		}
	}

	return out, nil
}
