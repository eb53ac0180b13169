package topology

import "github.com/katalvlaran/kohonen/matrix"

// Coordinate is the integer lattice position of a node.
type Coordinate struct {
	X, Y int
}

// Topology is an immutable Width×Height rectangular lattice.
// coords[i] is the position of node i; dist is the NodeCount×NodeCount
// Manhattan distance matrix (symmetric, zero diagonal).
type Topology struct {
	width, height int
	coords        []Coordinate
	dist          *matrix.Dense
}
