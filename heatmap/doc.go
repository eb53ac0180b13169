// Package heatmap turns SOM node assignments into per-node observation
// counts and renders them as a shaded Width×Height grid.
//
// Node i sits at lattice position (x, y) = (i / Height, i % Height), the
// same enumeration the topology package uses. A cell's shade in the chosen
// channel (Red, Green or Blue) is proportional to its count divided by the
// largest count; empty cells are black.
//
// Rendering uses gonum.org/v1/plot: Map implements plotter.GridXYZ and
// Palette implements palette.Palette.
package heatmap
