// Package grid wraps a validated rectangular numeric dataset and the
// column-wise statistics a distance-based learner needs.
//
// What:
//
//   - Grid owns an r×c float64 table copied from the caller (rows ≥ 2,
//     cols ≥ 2, rows ≥ cols, non-jagged).
//   - Column means and population variances (denominator n, no Bessel
//     correction).
//   - In-place standardization to zero mean and unit variance per column.
//   - Zero-variance (constant column) detection.
//   - Pairwise Chebyshev (L∞) distance between rows.
//
// Why:
//
//	Distance-based learners such as self-organizing maps are sensitive to
//	feature scale. Standardizing first makes results independent of units.
//	A constant column cannot be standardized, so Standardize leaves the
//	grid untouched and reports false; callers that care must query
//	HasZeroVarianceColumn.
//
// Complexity:
//
//   - New, Standardize, HasZeroVarianceColumn: O(r·c).
//   - PairwiseChebyshevDistance: O(r²·c) time, O(r²) memory.
//
// Errors:
//
//   - ErrInvalidDimensions: construction input violates the shape contract.
package grid
