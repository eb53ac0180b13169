// Package som fits a self-organizing map (Kohonen network) to a rectangular
// numeric dataset by online competitive learning.
//
// 🚀 What is a SOM?
//
//	A SOM places Width×Height prototype vectors ("nodes") on a 2-D lattice
//	and pulls them toward the data one observation at a time. Nodes that are
//	close on the lattice end up close in data space, so per-node observation
//	counts give a low-dimensional picture of the data's distribution.
//
// ✨ Training loop (iterations T = epochs × rows):
//
//  1. Draw an observation uniformly at random.
//  2. Find its best-matching unit (BMU): the node with the smallest squared
//     Euclidean distance; ties go to the lowest node index.
//  3. Decay: rate -= rate₀/T; radius = radius₀·exp(-3·t/T).
//  4. Stop early once rate ≤ 0 or radius ≤ 0.
//  5. Every node whose lattice (Manhattan) distance to the BMU is ≤ radius
//     moves toward the observation: w += rate·(x - w).
//
// Initialization standardizes the data in place (skipped when a column has
// zero variance), seeds each node with a distinct row drawn without
// replacement, and sets radius₀ = 1.75 × variance of the lattice distance
// matrix.
//
// After training every observation is assigned its nearest node and the
// squared residual distance.
//
// ⚙️ Usage:
//
//	g, _ := grid.New(rows)
//	tr, err := som.New(g, 5, 5, 20)
//	if err != nil { ... }
//	if err := tr.Train(som.NewRand(42)); err != nil { ... }
//	nodes, _ := tr.Nodes()
//	dists, _ := tr.Distances()
//
// Randomness is always an explicit *rand.Rand: identical seeds and inputs
// give identical results. A Trainer is not safe for concurrent use.
package som
