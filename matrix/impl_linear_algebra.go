// SPDX-License-Identifier: MIT
// Package matrix provides the integer product kernels on any Matrix
// implementation: matrix multiplication, left-to-right chain products,
// transpose and exact equality. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical kernels used across the package and the console session.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opMulChain  = "MulChain"
	opTranspose = "Transpose"
	opEqual     = "Equal"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// macFunc performs one multiply-accumulate step acc + a*b under a policy.
// ok=false reports overflow (never returned by the wrapping variant).
type macFunc func(acc, a, b Element) (Element, bool)

// macFor returns the multiply-accumulate step for the given policy.
func macFor(p OverflowPolicy) macFunc {
	if p == OverflowWrap32 {
		return macWrap32
	}

	return macChecked
}

// macChecked computes acc + a*b exactly in int64 and reports overflow.
// Complexity: O(1).
func macChecked(acc, a, b Element) (Element, bool) {
	p, ok := mulChecked(a, b)
	if !ok {
		return 0, false
	}

	return addChecked(acc, p)
}

// macWrap32 computes acc + a*b with 32-bit two's-complement wrapping on
// both the multiply and the add, matching a native int accumulator.
func macWrap32(acc, a, b Element) (Element, bool) {
	p := int32(a) * int32(b) // wraps
	s := int32(acc) + p      // wraps

	return Element(s), true
}

// mulChecked returns a*b and false if the exact product leaves int64.
func mulChecked(a, b Element) (Element, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}

	return p, true
}

// addChecked returns a+b and false if the exact sum leaves int64.
func addChecked(a, b Element) (Element, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}

	return s, true
}

// Mul returns the matrix product a × b as a freshly allocated *Dense.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); no allocation happens on failure.
//   - Stage 2: allocate Dense(a.Rows(), b.Cols()).
//   - Stage 3: fast-path when both are *Dense (flat-buffer i→k→j);
//     otherwise generic i→j→k through At/Set.
//
// Behavior highlights:
//   - For every (i,j) the partial sums are formed in the same k=0..c1-1 order on
//     both paths, so successful results agree bit-for-bit.
//   - Under OverflowChecked both paths fail with ErrOverflow, but the reported
//     cell may differ: the fast path stops at the first overflow in i→k→j
//     order, the fallback at the first in i→j→k order.
//   - Operands are never mutated; the result shares no storage with them.
//
// Inputs:
//   - a: r1×c1, b: r2×c2 with c1 == r2.
//   - opts: WithOverflowPolicy / WithWrap32 / WithChecked.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch (validation).
//   - ErrOverflow (OverflowChecked only), wrapped with the output cell.
//
// Complexity:
//   - Time O(r1·c1·c2), Space O(r1·c2). No blocking, no Strassen.
//
// AI-Hints:
//   - Pass concrete *Dense operands to hit the flat-slice fast path.
func Mul(a, b Matrix, opts ...Option) (*Dense, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	o := gatherOptions(opts...)
	mac := macFor(o.overflow)

	// Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int // loop iterators
		av, bv  Element
		current Element
		ok      bool
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // zero row entry contributes nothing under either policy
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						current, ok = mac(res.data[rowOffsetR+j], av, db.data[rowOffsetB+j])
						if !ok {
							return nil, matrixErrorf(opMul, denseErrorf(ctxSet, i, j, ErrOverflow))
						}
						res.data[rowOffsetR+j] = current
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = 0
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current, ok = mac(current, av, bv)
				if !ok {
					return nil, matrixErrorf(opMul, denseErrorf(ctxSet, i, j, ErrOverflow))
				}
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// MulChain folds the operands left to right: ((m0·m1)·m2)·…
// All links are validated for conformability before any product is computed,
// so a mismatch anywhere in the chain performs no arithmetic.
//
// Errors:
//   - ErrEmptyChain when called without operands.
//   - Any Mul error, wrapped with the link index ("MulChain: link 2: ...").
//
// Complexity: sum of the individual Mul costs.
func MulChain(ms []Matrix, opts ...Option) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opMulChain, ErrEmptyChain)
	}
	var i int
	for i = 0; i < len(ms); i++ {
		if err := ValidateNotNil(ms[i]); err != nil {
			return nil, matrixErrorf(opMulChain, fmt.Errorf("operand %d: %w", i, err))
		}
	}
	for i = 1; i < len(ms); i++ {
		if err := ValidateMulCompatible(ms[i-1], ms[i]); err != nil {
			return nil, matrixErrorf(opMulChain, fmt.Errorf("link %d: %w", i, err))
		}
	}
	if len(ms) == 1 {
		if err := ValidateShape(ms[0]); err != nil {
			return nil, matrixErrorf(opMulChain, err)
		}
		return toDense(ms[0])
	}

	acc, err := Mul(ms[0], ms[1], opts...)
	if err != nil {
		return nil, matrixErrorf(opMulChain, fmt.Errorf("link 1: %w", err))
	}
	for i = 2; i < len(ms); i++ {
		if acc, err = Mul(acc, ms[i], opts...); err != nil {
			return nil, matrixErrorf(opMulChain, fmt.Errorf("link %d: %w", i, err))
		}
	}

	return acc, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if err := ValidateShape(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	var v Element
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and identical elements.
// Shape differences yield (false, nil); nil operands yield ErrNilMatrix.
// Complexity: O(r*c).
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if ValidateSameShape(a, b) != nil {
		return false, nil
	}
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if da.data[idx] != db.data[idx] {
					return false, nil
				}
			}
			return true, nil
		}
	}
	var (
		i, j   int
		av, bv Element
		err    error
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opEqual, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opEqual, err)
			}
			if av != bv {
				return false, nil
			}
		}
	}

	return true, nil
}

// toDense returns an independent *Dense copy of m.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	res, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v Element
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			res.data[i*m.Cols()+j] = v
		}
	}

	return res, nil
}
