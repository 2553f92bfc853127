// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Dense storage and the kernels.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Element is the scalar type stored in every matrix.
// Storage is int64 so that 32-bit inputs can be accumulated exactly; the
// OverflowWrap32 policy narrows arithmetic back to 32 bits on demand.
type Element = int64

// Matrix represents a two-dimensional mutable array of signed integers.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (Element, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v Element) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
