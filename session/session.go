// SPDX-License-Identifier: MIT

// Package session runs the console dialogue around the matrix product:
// read the dimensions, refuse non-conformable operands before reading any
// element, read the elements row-major, print the product.
//
// Prompts are optional. With prompts off the session writes nothing but the
// product (or the fixed mismatch message), so it composes with pipes.
package session

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/intmat/matrix"
	"github.com/katalvlaran/intmat/render"
)

// Fixed console texts.
const (
	MsgNotPossible = "The product is not possible"
	MsgProduct     = "The product of the matrices is:"
	msgRows        = "Enter the number of rows in the %s matrix:"
	msgCols        = "Enter the number of columns in the %s matrix:"
	msgElements    = "Enter the elements of the %s matrix:"
)

// DefaultMaxDim bounds rows and columns when Options.MaxDim is zero.
const DefaultMaxDim = 1000

// Options configures a Session.
type Options struct {
	Prompts    bool                  // print prompts and the result header
	MaxDim     int                   // upper bound for every dimension; 0 selects DefaultMaxDim
	Int32Input bool                  // restrict elements to the int32 range
	Format     render.Format         // product renderer
	Overflow   matrix.OverflowPolicy // product arithmetic
}

// Shape is a (rows, cols) pair read from the console.
type Shape struct {
	Rows, Cols int
}

// Result is the outcome of a completed dialogue.
type Result struct {
	Operands []*matrix.Dense
	Product  *matrix.Dense
}

// Session is one console dialogue over in/out.
type Session struct {
	in   *Scanner
	out  io.Writer
	opts Options
}

// New creates a session reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts Options) *Session {
	if opts.MaxDim <= 0 {
		opts.MaxDim = DefaultMaxDim
	}

	return &Session{in: NewScanner(in), out: out, opts: opts}
}

// Run multiplies two matrices read from the input.
//
// On a dimension mismatch it prints MsgNotPossible, reads nothing further and
// returns an error matching matrix.ErrDimensionMismatch.
func (s *Session) Run() (*Result, error) {
	return s.RunChain(2)
}

// RunChain multiplies n ≥ 1 matrices left to right. All n shapes are read
// and every adjacent pair is checked before any element is read.
func (s *Session) RunChain(n int) (*Result, error) {
	if n < 1 {
		return nil, fmt.Errorf("session: chain length %d: %w", n, matrix.ErrEmptyChain)
	}

	shapes, err := s.readShapes(n)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if !matrix.Conformable(shapes[i-1].Cols, shapes[i].Rows) {
			s.println(MsgNotPossible)
			return nil, fmt.Errorf("session: columns of %s matrix (%d) != rows of %s matrix (%d): %w",
				ordinal(i-1), shapes[i-1].Cols, ordinal(i), shapes[i].Rows, matrix.ErrDimensionMismatch)
		}
	}

	operands := make([]*matrix.Dense, n)
	for i := 0; i < n; i++ {
		s.prompt(msgElements, ordinal(i))
		if operands[i], err = s.readMatrix(label(i), shapes[i]); err != nil {
			return nil, err
		}
	}

	chain := make([]matrix.Matrix, n)
	for i, m := range operands {
		chain[i] = m
	}
	product, err := matrix.MulChain(chain, matrix.WithOverflowPolicy(s.opts.Overflow))
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	if s.opts.Prompts {
		s.println(MsgProduct)
	}
	if err = render.Write(s.out, product, s.opts.Format); err != nil {
		return nil, fmt.Errorf("session: writing product: %w", err)
	}

	return &Result{Operands: operands, Product: product}, nil
}

func (s *Session) readShapes(n int) ([]Shape, error) {
	shapes := make([]Shape, n)
	var err error
	for i := 0; i < n; i++ {
		s.prompt(msgRows, ordinal(i))
		if shapes[i].Rows, err = s.in.Dim(fmt.Sprintf("rows of %s", label(i)), s.opts.MaxDim); err != nil {
			return nil, err
		}
		s.prompt(msgCols, ordinal(i))
		if shapes[i].Cols, err = s.in.Dim(fmt.Sprintf("columns of %s", label(i)), s.opts.MaxDim); err != nil {
			return nil, err
		}
	}

	return shapes, nil
}

// readMatrix reads sh.Rows×sh.Cols elements in row-major order.
func (s *Session) readMatrix(name string, sh Shape) (*matrix.Dense, error) {
	m, err := matrix.NewDense(sh.Rows, sh.Cols)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	lo, hi := int64(math.MinInt64), int64(math.MaxInt64)
	if s.opts.Int32Input {
		lo, hi = math.MinInt32, math.MaxInt32
	}
	var (
		i, j int
		v    int64
	)
	for i = 0; i < sh.Rows; i++ {
		for j = 0; j < sh.Cols; j++ {
			if v, err = s.in.Int(fmt.Sprintf("element %s[%d][%d]", name, i, j), lo, hi); err != nil {
				return nil, err
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("session: %w", err)
			}
		}
	}

	return m, nil
}

func (s *Session) prompt(format string, a ...interface{}) {
	if s.opts.Prompts {
		fmt.Fprintf(s.out, format+"\n", a...)
	}
}

func (s *Session) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

var ordinals = []string{"first", "second", "third", "fourth", "fifth", "sixth", "seventh", "eighth", "ninth", "tenth"}

// ordinal returns "first", "second", ... for a zero-based index.
func ordinal(i int) string {
	if i < len(ordinals) {
		return ordinals[i]
	}

	n := i + 1
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}

	return fmt.Sprintf("%d%s", n, suffix)
}

// label names operand i as A, B, C, ... then M27, M28, ...
func label(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}

	return fmt.Sprintf("M%d", i+1)
}
