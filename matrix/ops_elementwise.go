// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise integer kernels (Add, Sub, Scale) under the same overflow
//     policy as Mul, so identities such as A·(B+C) = A·B + A·C can be checked
//     exactly.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 on *Dense, i→j otherwise).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

const (
	opAdd   = "Add"
	opSub   = "Sub"
	opScale = "Scale"
)

// binFunc combines two elements under a policy; ok=false reports overflow.
type binFunc func(a, b Element) (Element, bool)

func addFor(p OverflowPolicy) binFunc {
	if p == OverflowWrap32 {
		return func(a, b Element) (Element, bool) { return Element(int32(a) + int32(b)), true }
	}

	return addChecked
}

func subFor(p OverflowPolicy) binFunc {
	if p == OverflowWrap32 {
		return func(a, b Element) (Element, bool) { return Element(int32(a) - int32(b)), true }
	}

	return subChecked
}

func mulFor(p OverflowPolicy) binFunc {
	if p == OverflowWrap32 {
		return func(a, b Element) (Element, bool) { return Element(int32(a) * int32(b)), true }
	}

	return mulChecked
}

// subChecked returns a-b and false if the exact difference leaves int64.
func subChecked(a, b Element) (Element, bool) {
	s := a - b
	if (a >= 0 && b < 0 && s < 0) || (a < 0 && b > 0 && s >= 0) {
		return 0, false
	}

	return s, true
}

// Add returns the element-wise sum a + b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shape differs).
//   - ErrOverflow (OverflowChecked only).
//
// Complexity: O(r·c) time and memory.
func Add(a, b Matrix, opts ...Option) (*Dense, error) {
	return elementwise(opAdd, a, b, addFor(gatherOptions(opts...).overflow))
}

// Sub returns the element-wise difference a - b.
// Errors and complexity as Add.
func Sub(a, b Matrix, opts ...Option) (*Dense, error) {
	return elementwise(opSub, a, b, subFor(gatherOptions(opts...).overflow))
}

// Scale returns alpha·m.
func Scale(m Matrix, alpha Element, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if err := ValidateShape(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	mul := mulFor(gatherOptions(opts...).overflow)
	res, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	var ok bool
	for idx, v := range res.data {
		if res.data[idx], ok = mul(v, alpha); !ok {
			return nil, matrixErrorf(opScale, denseErrorf(ctxSet, idx/res.c, idx%res.c, ErrOverflow))
		}
	}

	return res, nil
}

// elementwise applies f cell by cell after the shared validation stage.
func elementwise(op string, a, b Matrix, f binFunc) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	var ok bool
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				if res.data[idx], ok = f(da.data[idx], db.data[idx]); !ok {
					return nil, matrixErrorf(op, denseErrorf(ctxSet, idx/cols, idx%cols, ErrOverflow))
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface loop
	var (
		i, j   int
		av, bv Element
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(op, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(op, err)
			}
			if res.data[i*cols+j], ok = f(av, bv); !ok {
				return nil, matrixErrorf(op, denseErrorf(ctxSet, i, j, ErrOverflow))
			}
		}
	}

	return res, nil
}
