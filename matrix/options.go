// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the arithmetic kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Overflow policy:
//   - OverflowChecked (default) keeps exact int64 arithmetic and reports
//     ErrOverflow when any intermediate product or partial sum leaves int64.
//   - OverflowWrap32 narrows every multiply and add to int32 with two's-complement
//     wrapping, which reproduces a native 32-bit accumulator bit for bit.
package matrix

import "fmt"

// OverflowPolicy selects how the product kernel treats integer overflow.
type OverflowPolicy int

const (
	// OverflowChecked accumulates in int64 and fails with ErrOverflow.
	OverflowChecked OverflowPolicy = iota
	// OverflowWrap32 wraps every intermediate value to int32.
	OverflowWrap32
)

// DefaultOverflowPolicy is the policy used when no option overrides it.
const DefaultOverflowPolicy = OverflowChecked

// ---------- Internal panic messages (no magic strings) ----------

const panicOverflowPolicyInvalid = "matrix: WithOverflowPolicy: unknown policy"

// String returns the config-file spelling of the policy.
func (p OverflowPolicy) String() string {
	switch p {
	case OverflowChecked:
		return "checked"
	case OverflowWrap32:
		return "wrap32"
	default:
		return fmt.Sprintf("OverflowPolicy(%d)", int(p))
	}
}

// ParseOverflowPolicy maps "checked" / "wrap32" to a policy.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch s {
	case "checked", "":
		return OverflowChecked, nil
	case "wrap32":
		return OverflowWrap32, nil
	default:
		return OverflowChecked, fmt.Errorf("matrix: unknown overflow policy %q (want checked|wrap32)", s)
	}
}

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	overflow OverflowPolicy // DefaultOverflowPolicy
}

// Overflow returns the resolved overflow policy.
func (o Options) Overflow() OverflowPolicy { return o.overflow }

// WithOverflowPolicy selects the overflow policy for Mul / MulChain.
// Panics on values outside the declared constants (programmer error).
func WithOverflowPolicy(p OverflowPolicy) Option {
	if p != OverflowChecked && p != OverflowWrap32 {
		panic(panicOverflowPolicyInvalid)
	}

	return func(o *Options) { o.overflow = p }
}

// WithWrap32 is shorthand for WithOverflowPolicy(OverflowWrap32).
func WithWrap32() Option { return WithOverflowPolicy(OverflowWrap32) }

// WithChecked is shorthand for WithOverflowPolicy(OverflowChecked).
func WithChecked() Option { return WithOverflowPolicy(OverflowChecked) }

// NewMatrixOptions resolves opts into an Options snapshot.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters apply in order (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{overflow: DefaultOverflowPolicy}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
