// Package intmat multiplies integer matrices typed at the console.
//
// What is inside?
//
//	A small toolkit around the classic triple-loop product:
//		• Dense integer matrices with bounds-checked access
//		• Conformability checks that fail before any element is read
//		• Exact int64 arithmetic with overflow detection, or 32-bit wrapping
//		• A console dialogue that composes with pipes
//		• A four-function calculator on the same command line
//
// Everything is organized under these subpackages:
//
//	matrix/   - Dense storage, Mul, MulChain, Add, Sub, Scale, Transpose, Equal
//	session/  - the read-dimensions / read-elements / print-product dialogue
//	render/   - plain and bordered-grid output of a matrix
//	calc/     - Add, Sub, Mul, Div on float64 and the four-results view
//	internal/ - config (viper) and colored diagnostics (fatih/color)
//	cmd/      - the intmat command line (urfave/cli)
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]int64{{1, 2}, {3, 4}})
//	p, _ := matrix.Mul(a, a)
//	fmt.Print(p) // [7, 10]\n[15, 22]\n
//
// From the shell:
//
//	$ printf '2 2 2 2\n1 2 3 4\n1 2 3 4\n' | intmat multiply
//	7 10
//	15 22
package intmat
