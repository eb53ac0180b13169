package topology

import "errors"

var (
	// ErrInvalidTopology indicates a non-positive width or height.
	ErrInvalidTopology = errors.New("topology: width and height must be > 0")
	// ErrNodeOutOfRange indicates a node index or coordinate outside the lattice.
	ErrNodeOutOfRange = errors.New("topology: node out of range")
)
