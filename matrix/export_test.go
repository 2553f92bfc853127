// SPDX-License-Identifier: MIT

package matrix

// Test bridge for white-box checks of the scalar kernels.
//
// Purpose:
//   - Expose the unexported checked/wrapping arithmetic to matrix_test only.
//   - Lives in a _test.go file, so it never widens the production API.

var (
	MulChecked_TestOnly = mulChecked
	AddChecked_TestOnly = addChecked
	SubChecked_TestOnly = subChecked
	MacWrap32_TestOnly  = macWrap32
)

// PanicOverflowPolicyInvalid_TestOnly avoids magic strings in panic tests.
const PanicOverflowPolicyInvalid_TestOnly = panicOverflowPolicyInvalid
