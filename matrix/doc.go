// Package matrix provides the dense, row-major float64 storage shared by the
// kohonen packages.
//
// The matrix package provides:
//
//   - Dense: a flat, cache-friendly r×c matrix with bounds-checked At/Set.
//   - Row views for tight loops that must not pay for per-element checks
//     (distance scans, weight updates).
//   - Validators for the structural contracts distance matrices must honor
//     (square, symmetric within eps, zero diagonal).
//
// Every constructor copies its input; a Dense never aliases a caller's
// buffer unless a method documents that it returns a view.
//
// See the examples in this package for usage patterns.
package matrix
