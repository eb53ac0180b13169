package som_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kohonen/grid"
)

// blobs builds n rows of c features around three well-separated centers.
func blobs(n, c int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	centers := []float64{-10, 0, 10}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, c)
		center := centers[i%len(centers)]
		for j := range rows[i] {
			rows[i][j] = center + rng.NormFloat64()
		}
	}
	return rows
}

func mustGrid(t testing.TB, rows [][]float64) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows)
	require.NoError(t, err)
	return g
}

func sqDist(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}
