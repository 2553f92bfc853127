// Package matrix offers a dense, row-major integer matrix and the classic
// triple-loop product.
//
// The matrix package provides:
//
//   - Dense: bounds-checked storage sized exactly to its dimensions.
//   - Mul / MulChain: conformability-checked products with a selectable
//     overflow policy (exact int64 with ErrOverflow, or 32-bit wrapping).
//   - Add / Sub / Scale: element-wise kernels under the same policy.
//   - Transpose, Equal, NewIdentity and row helpers for tests and callers.
//
// Every error is a package sentinel (ErrDimensionMismatch, ErrOverflow, ...)
// wrapped with its call site; match them with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
