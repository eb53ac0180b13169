package som

import "math"

// nearest scans nodes in index order and returns the one with the smallest
// squared Euclidean distance to x. A node replaces the current best only
// when strictly closer, so ties resolve to the lowest index.
//
// The per-node sum stops as soon as it exceeds the best so far. Partial
// sums of squares never decrease, so this cannot change the result.
//
// Complexity: O(N×c) worst case.
func (t *Trainer) nearest(x []float64) (int, float64) {
	best, bestDist := 0, math.Inf(1)
	n := t.weights.Rows()
	for node := 0; node < n; node++ {
		d := squaredDistanceBounded(x, t.weights.RowView(node), bestDist)
		if d < bestDist {
			best, bestDist = node, d
		}
	}
	return best, bestDist
}

// squaredDistanceBounded returns Σ(a-b)², or a partial sum > bound once the
// accumulation passes bound.
func squaredDistanceBounded(a, b []float64, bound float64) float64 {
	var sum, d float64
	for i := range a {
		d = a[i] - b[i]
		sum += d * d
		if sum > bound {
			return sum
		}
	}
	return sum
}
