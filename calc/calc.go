// SPDX-License-Identifier: MIT

// Package calc implements a four-function calculator core: addition,
// subtraction, multiplication and division on float64 operands.
//
// All computes every operation at once, mirroring a calculator face that
// shows the four results side by side; division by zero is reported per
// result instead of failing the whole evaluation.
package calc

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDivideByZero is returned by Div and Apply(OpDiv, a, 0).
	ErrDivideByZero = errors.New("calc: cannot divide by zero")

	// ErrUnknownOp is returned by ParseOp and Apply for unsupported operators.
	ErrUnknownOp = errors.New("calc: unsupported operator")

	// ErrNotFinite signals a NaN or ±Inf operand or result.
	ErrNotFinite = errors.New("calc: NaN or Inf encountered")
)

// Op is one of the four calculator operations.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

// Ops lists the operations in display order.
var Ops = []Op{OpAdd, OpSub, OpMul, OpDiv}

// String returns the operator symbol.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Name returns the long name used in labelled output.
func (o Op) Name() string {
	switch o {
	case OpAdd:
		return "Addition"
	case OpSub:
		return "Subtraction"
	case OpMul:
		return "Multiplication"
	case OpDiv:
		return "Division"
	default:
		return o.String()
	}
}

// ParseOp maps "+", "-", "*", "/" (and "x") to an Op.
func ParseOp(s string) (Op, error) {
	switch s {
	case "+":
		return OpAdd, nil
	case "-":
		return OpSub, nil
	case "*", "x", "X":
		return OpMul, nil
	case "/":
		return OpDiv, nil
	default:
		return 0, fmt.Errorf("ParseOp(%q): %w", s, ErrUnknownOp)
	}
}

// Add returns a + b.
func Add(a, b float64) float64 { return a + b }

// Sub returns a - b.
func Sub(a, b float64) float64 { return a - b }

// Mul returns a * b.
func Mul(a, b float64) float64 { return a * b }

// Div returns a / b, or ErrDivideByZero when b == 0.
func Div(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}

	return a / b, nil
}

// Apply evaluates a <op> b.
// Non-finite operands and results are rejected with ErrNotFinite.
func Apply(op Op, a, b float64) (float64, error) {
	if !finite(a) || !finite(b) {
		return 0, fmt.Errorf("%s: %w", op, ErrNotFinite)
	}
	var (
		v   float64
		err error
	)
	switch op {
	case OpAdd:
		v = Add(a, b)
	case OpSub:
		v = Sub(a, b)
	case OpMul:
		v = Mul(a, b)
	case OpDiv:
		v, err = Div(a, b)
	default:
		return 0, fmt.Errorf("%s: %w", op, ErrUnknownOp)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if !finite(v) {
		return 0, fmt.Errorf("%s: %w", op, ErrNotFinite)
	}

	return v, nil
}

// Result is one cell of the calculator face.
type Result struct {
	Op    Op
	Value float64
	Err   error
}

// Results holds the four outcomes of All in Ops order.
type Results [4]Result

// All evaluates every operation on (a, b).
func All(a, b float64) Results {
	var out Results
	for i, op := range Ops {
		v, err := Apply(op, a, b)
		out[i] = Result{Op: op, Value: v, Err: err}
	}

	return out
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
