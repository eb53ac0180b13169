package topology

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/kohonen/matrix"
)

// New builds the lattice and its distance matrix.
// Returns ErrInvalidTopology if width <= 0 or height <= 0.
// Complexity: O(N²) time and memory, N = width*height.
func New(width, height int) (*Topology, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("topology: %dx%d: %w", width, height, ErrInvalidTopology)
	}
	n := width * height

	coords := make([]Coordinate, 0, n)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			coords = append(coords, Coordinate{X: x, Y: y})
		}
	}

	dist, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("topology: %w", err)
	}
	var i, j int
	var d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = Manhattan(coords[i], coords[j])
			dist.RowView(i)[j] = d
			dist.RowView(j)[i] = d
		}
	}

	return &Topology{width: width, height: height, coords: coords, dist: dist}, nil
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Coordinate) float64 {
	return float64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Width returns the number of lattice columns.
func (t *Topology) Width() int { return t.width }

// Height returns the number of lattice rows.
func (t *Topology) Height() int { return t.height }

// NodeCount returns Width*Height.
func (t *Topology) NodeCount() int { return len(t.coords) }

// InBounds reports whether (x,y) lies within the lattice.
func (t *Topology) InBounds(x, y int) bool {
	return x >= 0 && x < t.width && y >= 0 && y < t.height
}

// Index maps (x,y) to its node index x*Height + y.
func (t *Topology) Index(x, y int) (int, error) {
	if !t.InBounds(x, y) {
		return 0, fmt.Errorf("topology: (%d,%d): %w", x, y, ErrNodeOutOfRange)
	}

	return x*t.height + y, nil
}

// Coordinate converts a node index back to its lattice position.
func (t *Topology) Coordinate(node int) (Coordinate, error) {
	if node < 0 || node >= len(t.coords) {
		return Coordinate{}, fmt.Errorf("topology: node %d: %w", node, ErrNodeOutOfRange)
	}

	return t.coords[node], nil
}

// Coordinates returns a copy of all node positions in index order.
func (t *Topology) Coordinates() []Coordinate {
	out := make([]Coordinate, len(t.coords))
	copy(out, t.coords)

	return out
}

// Distance returns the Manhattan distance between nodes i and j.
// Panics if either index is out of range; this is the hot-path accessor.
func (t *Topology) Distance(i, j int) float64 {
	return t.dist.RowView(i)[j]
}

// DistancesFrom returns a read-only view of the distances from node i to
// every node. The slice aliases internal storage and must not be written.
func (t *Topology) DistancesFrom(i int) []float64 {
	return t.dist.RowView(i)
}

// DistanceMatrix returns a copy of the full N×N distance matrix.
func (t *Topology) DistanceMatrix() *matrix.Dense {
	return t.dist.Clone()
}

// DistanceVariance returns the population variance of all N² entries of the
// distance matrix, zeros on the diagonal included. A 1×1 lattice yields 0.
func (t *Topology) DistanceVariance() float64 {
	_, v := stat.PopMeanVariance(t.dist.Flatten(), nil)
	if v < 0 {
		v = 0
	}

	return v
}
