// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Relation).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// A typed nil *Dense stored in the interface is also rejected.
// Returns ErrNilMatrix if m == nil.
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

// ValidateShape – Ensures both dimensions are positive.
//
// Assumes m is not nil (caller must ensure).
// Complexity: O(1).
func ValidateShape(m Matrix) error {
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return validatorErrorf("ValidateShape", ErrInvalidDimensions)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// Conformable reports whether a (r1×c1) and b (r2×c2) can be multiplied,
// i.e. c1 == r2. It is the plain relation behind ValidateMulCompatible and
// is usable before any matrix exists (dimension-only checks in the session).
func Conformable(aCols, bRows int) bool { return aCols == bRows }

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil and well-shaped.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch (in that priority).
// Complexity: O(1).
// AI-Hints: Always called before the product buffer is allocated.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateShape(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateShape(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if !Conformable(a.Cols(), b.Rows()) {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}
