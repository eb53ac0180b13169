// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for structural checks on distance
//    matrices (square, symmetric, zero diagonal, finite).
//  - Return sentinel errors tagged with the validator name so call sites
//    can match them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense inside the interface is also rejected.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNilMatrix if nil, ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks |m[i,j] - m[j,i]| <= eps for all i<j.
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square), ErrAsymmetry.
// Complexity: O(n²).
func ValidateSymmetric(m Matrix, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	n := m.Rows()
	var i, j int
	var a, b float64
	var err error
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if a, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if b, err = m.At(j, i); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if math.Abs(a-b) > eps {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks |m[i,i]| <= eps for all i.
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square), ErrNonZeroDiagonal.
// Complexity: O(n).
func ValidateZeroDiagonal(m Matrix, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateZeroDiagonal", err)
	}
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return validatorErrorf("ValidateZeroDiagonal", err)
		}
		if math.Abs(v) > eps {
			return validatorErrorf("ValidateZeroDiagonal", ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateFinite rejects any NaN or ±Inf entry.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	if d, ok := m.(*Dense); ok {
		for _, v := range d.data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite", ErrNaNInf)
			}
		}

		return nil
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite", ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateDistanceMatrix is the composite check a metric matrix must pass:
// Square → ZeroDiagonal → Symmetric.
func ValidateDistanceMatrix(m Matrix, eps float64) error {
	if err := ValidateZeroDiagonal(m, eps); err != nil {
		return validatorErrorf("ValidateDistanceMatrix", err)
	}
	if err := ValidateSymmetric(m, eps); err != nil {
		return validatorErrorf("ValidateDistanceMatrix", err)
	}

	return nil
}
