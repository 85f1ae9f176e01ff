// SPDX-License-Identifier: MIT
// Package braces: tunable options and sentinel error definitions.

package braces

import (
	"errors"
	"fmt"
)

// Sentinel errors for brace expansion.
var (
	// ErrUnbalanced is returned when the pattern's braces do not pair up.
	ErrUnbalanced = errors.New("braces: unbalanced braces in pattern")

	// ErrExpansionLimit is returned when a pass materializes more
	// candidates than the configured limit allows.
	ErrExpansionLimit = errors.New("braces: expansion exceeds candidate limit")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("braces: invalid option supplied")
)

// DefaultLimit bounds the number of candidates a single pass may
// materialize when no WithLimit option is given. Patterns below the
// limit expand normally; pathological alternation blowups fail fast
// with ErrExpansionLimit instead of exhausting memory.
const DefaultLimit = 65536

// Option configures expansion behavior via functional arguments.
// If an Option is invalid (e.g. a negative limit), it is recorded
// internally and surfaced as ErrOptionViolation when Expand or
// Strings is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing an expansion run.
type Options struct {
	// Limit caps the candidates materialized per pass (and therefore
	// the final result size). Zero means DefaultLimit.
	Limit int

	// OnExpand is called for every rewritten candidate, including
	// intermediate ones that still contain brace groups.
	OnExpand func(candidate string)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Limit = DefaultLimit
//   - no-op OnExpand hook
//   - error slot clear.
func DefaultOptions() Options {
	return Options{
		Limit:    DefaultLimit,
		OnExpand: func(string) {},
		err:      nil,
	}
}

// WithLimit caps the number of candidates materialized per pass.
//
//	n > 0: limit to n candidates
//	n == 0: explicit DefaultLimit
//	n < 0: invalid option → ErrOptionViolation
func WithLimit(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Limit cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Limit = DefaultLimit
		default:
			o.Limit = n
		}
	}
}

// WithOnExpand registers a callback observing every rewrite as it is
// produced.
func WithOnExpand(fn func(candidate string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
