package heatmap

import "sort"

// Regions finds contiguous groups of occupied nodes (count ≥ minCount) on
// the lattice, using 4-neighbor adjacency (N, E, S, W). Each region lists
// its node indices in ascending order; regions are ordered by their lowest
// node. minCount values below 1 are treated as 1.
//
// On a trained map, separate regions hint at separate clusters in the data.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (m *Map) Regions(minCount int) [][]int {
	if minCount < 1 {
		minCount = 1
	}
	threshold := float64(minCount)
	seen := make([]bool, len(m.counts))
	offsets := [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

	var regions [][]int
	for start := range m.counts {
		if seen[start] || m.counts[start] < threshold {
			continue
		}
		seen[start] = true
		queue := []int{start}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ux, uy := u/m.height, u%m.height
			for _, d := range offsets {
				vx, vy := ux+d[0], uy+d[1]
				if vx < 0 || vx >= m.width || vy < 0 || vy >= m.height {
					continue
				}
				v := vx*m.height + vy
				if seen[v] || m.counts[v] < threshold {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		sort.Ints(queue)
		regions = append(regions, queue)
	}
	return regions
}
