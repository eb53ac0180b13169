package heatmap

import "errors"

var (
	// ErrInvalidShape indicates a non-positive width or height.
	ErrInvalidShape = errors.New("heatmap: width and height must be > 0")
	// ErrNodeOutOfRange indicates an assignment outside [0, width*height)
	// or a lattice coordinate off the map.
	ErrNodeOutOfRange = errors.New("heatmap: node index out of range")
	// ErrUnknownChannel indicates a shading channel name other than red, green or blue.
	ErrUnknownChannel = errors.New("heatmap: unknown channel")
)
