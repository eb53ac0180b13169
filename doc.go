// Package kohonen is an in-memory toolkit for fitting self-organizing maps
// (Kohonen networks) to rectangular numeric data and looking at the result.
//
// 🚀 What is in the box?
//
//	• grid/     : validated r×c dataset: column statistics, standardization,
//	              zero-variance detection, pairwise Chebyshev distance
//	• topology/ : rectangular node lattice + Manhattan distance matrix
//	• som/      : online SOM trainer: bootstrap init, decaying learning rate
//	              and radius, best-matching-unit search, final assignment
//	• matrix/   : dense row-major storage and distance-matrix validators
//	• dataset/  : CSV reader with a header line and strict numeric rows
//	• heatmap/  : per-node counts rendered as a red/green/blue shaded grid
//	• cmd/kohonen : command line front end tying it all together
//
// ✨ Why kohonen?
//
//   - Deterministic – every random draw comes from a caller-supplied seed
//   - Honest errors – sentinel errors matched with errors.Is, no panics on input
//   - Small – single-threaded, no hidden global state
//
// Quick start:
//
//	g, _ := grid.New(rows)
//	tr, _ := som.New(g, 5, 5, 20)
//	_ = tr.Train(som.NewRand(42))
//	nodes, _ := tr.Nodes()
//	m, _ := heatmap.New(nodes, 5, 5)
//	_ = m.Save("som.png", heatmap.Red, "my data", 12*vg.Centimeter)
//
//	go install github.com/katalvlaran/kohonen/cmd/kohonen@latest
package kohonen
