// Package topology describes the rectangular lattice a self-organizing map
// lays its nodes on, and the Manhattan distances between them.
//
// Nodes are enumerated column by column: x runs 0..Width-1 in the outer
// loop and y runs 0..Height-1 in the inner loop, so node index
// = x*Height + y.
//
// Two metrics live side by side in a SOM and must not be confused:
// data vectors are matched to prototypes by squared Euclidean distance,
// while the neighborhood of a node is measured on this lattice with the
// L1 (Manhattan) distance |x1-x2| + |y1-y2|.
//
// A Topology is a pure function of (width, height): no randomness, no
// mutation after New.
//
// Complexity:
//
//   - New: O(N²) time and memory, N = Width*Height.
//   - Distance, Index, Coordinate: O(1).
package topology
