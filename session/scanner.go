// SPDX-License-Identifier: MIT

package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

var (
	// ErrUnexpectedEOF signals that input ended before all values were read.
	ErrUnexpectedEOF = errors.New("session: unexpected end of input")

	// ErrMalformedInput signals a token that is not a base-10 integer.
	ErrMalformedInput = errors.New("session: malformed integer")

	// ErrValueOutOfRange signals an integer outside the accepted element range.
	ErrValueOutOfRange = errors.New("session: value out of range")

	// ErrNonPositiveDimension signals a row or column count < 1.
	ErrNonPositiveDimension = errors.New("session: dimension must be a positive integer")

	// ErrDimensionTooLarge signals a row or column count above the configured limit.
	ErrDimensionTooLarge = errors.New("session: dimension exceeds limit")
)

// Scanner reads whitespace-separated integers. Values may be spread over
// lines in any way: one per line, one row per line, or all on one line.
type Scanner struct {
	sc    *bufio.Scanner
	count int // tokens consumed so far
}

// NewScanner wraps r.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &Scanner{sc: sc}
}

// Consumed returns how many tokens have been read.
func (s *Scanner) Consumed() int { return s.count }

// Int reads the next token as an integer within [lo, hi].
// what names the value in error messages, e.g. "element A[1][0]".
func (s *Scanner) Int(what string, lo, hi int64) (int64, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return 0, fmt.Errorf("reading %s: %w", what, err)
		}
		return 0, fmt.Errorf("reading %s: %w", what, ErrUnexpectedEOF)
	}
	s.count++
	tok := s.sc.Text()
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("reading %s: %q: %w", what, tok, ErrValueOutOfRange)
		}
		return 0, fmt.Errorf("reading %s: %q: %w", what, tok, ErrMalformedInput)
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("reading %s: %d not in [%d, %d]: %w", what, v, lo, hi, ErrValueOutOfRange)
	}

	return v, nil
}

// Dim reads a dimension in [1, max].
func (s *Scanner) Dim(what string, max int) (int, error) {
	v, err := s.Int(what, math.MinInt64, math.MaxInt64)
	if err != nil {
		return 0, err
	}
	if v < 1 {
		return 0, fmt.Errorf("reading %s: %d: %w", what, v, ErrNonPositiveDimension)
	}
	if v > int64(max) {
		return 0, fmt.Errorf("reading %s: %d > %d: %w", what, v, max, ErrDimensionTooLarge)
	}

	return int(v), nil
}
