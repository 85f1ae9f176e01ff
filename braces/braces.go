// SPDX-License-Identifier: MIT
// Package braces: the worklist fixed-point expansion engine.

package braces

import (
	"fmt"
	"iter"
	"strings"
)

const (
	braceOpen  = '{'
	braceClose = '}'
	altSep     = ","
)

// Expand produces every string obtained by choosing one alternative
// from each brace group of pattern, applied recursively until no
// braces remain, duplicates removed in first-seen order. A pattern
// without braces expands to itself; an empty alternative ({a,})
// substitutes the empty string.
//
// Returns ErrUnbalanced for malformed patterns, ErrExpansionLimit when
// a pass materializes more candidates than Options.Limit allows, and
// ErrOptionViolation for invalid options.
//
// Time: O(P·L) where P is the number of passes (the maximum group
// nesting plus one) and L the total length of live candidates.
func Expand(pattern string, opts ...Option) ([]string, error) {
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := validate(pattern); err != nil {
		return nil, err
	}

	return newExpander(pattern, o).run()
}

// Strings is the sequence form of Expand: it validates and expands
// eagerly (all errors surface here, not mid-iteration), then returns a
// rewindable iter.Seq over the results — ranging twice replays the
// same expansion, and breaking out early is the only cancellation
// needed.
func Strings(pattern string, opts ...Option) (iter.Seq[string], error) {
	results, err := Expand(pattern, opts...)
	if err != nil {
		return nil, err
	}

	return func(yield func(string) bool) {
		for _, s := range results {
			if !yield(s) {
				return
			}
		}
	}, nil
}

// validate rejects unbalanced braces before any rewriting happens, so
// the fixed-point loop always terminates on accepted input.
func validate(pattern string) error {
	depth := 0
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case braceOpen:
			depth++
		case braceClose:
			depth--
			if depth < 0 {
				return fmt.Errorf("%w: unmatched %q at byte %d", ErrUnbalanced, braceClose, i)
			}
		}
	}
	if depth != 0 {
		return fmt.Errorf("%w: %d unclosed %q", ErrUnbalanced, depth, braceOpen)
	}

	return nil
}

// findInnermost locates the first innermost brace group of s: scanning
// left to right, the first closing brace pairs with the most recent
// opening one, and a group closed that way cannot contain another.
// Returns the indices of the braces, or ok=false when s has no group.
func findInnermost(s string) (start, end int, ok bool) {
	start = -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case braceOpen:
			start = i
		case braceClose:
			if start >= 0 {
				return start, i, true
			}
		}
	}

	return 0, 0, false
}

// expander carries one expansion run's mutable state: the current
// candidate list and the next pass under construction.
type expander struct {
	opts Options
	work []string            // current candidates, first-seen order
	out  []string            // accumulator for the pass being built
	seen map[string]struct{} // dedup guard for out
}

func newExpander(pattern string, o Options) *expander {
	return &expander{opts: o, work: []string{pattern}}
}

// run drives passes to the fixed point: the final pass finds no group
// in any candidate and leaves work as the result.
func (e *expander) run() ([]string, error) {
	for {
		progressed, err := e.pass()
		if err != nil {
			return nil, err
		}
		if !progressed {
			return e.work, nil
		}
	}
}

// pass rewrites every candidate once — innermost group first — and
// reports whether any rewrite happened. Candidates without groups are
// carried over unchanged. Deduplication applies to the whole pass
// output, preserving first-seen order.
func (e *expander) pass() (bool, error) {
	e.out = make([]string, 0, len(e.work))
	e.seen = make(map[string]struct{}, len(e.work))

	progressed := false
	for _, cand := range e.work {
		start, end, ok := findInnermost(cand)
		if !ok {
			if err := e.keep(cand); err != nil {
				return false, err
			}

			continue
		}

		progressed = true
		prefix, suffix := cand[:start], cand[end+1:]
		for _, alt := range strings.Split(cand[start+1:end], altSep) {
			rewrite := prefix + alt + suffix
			e.opts.OnExpand(rewrite)
			if err := e.keep(rewrite); err != nil {
				return false, err
			}
		}
	}
	e.work = e.out

	return progressed, nil
}

// keep appends s to the pass output unless it is a duplicate,
// enforcing the materialization cap.
func (e *expander) keep(s string) error {
	if _, dup := e.seen[s]; dup {
		return nil
	}
	if len(e.out) >= e.opts.Limit {
		return fmt.Errorf("%w: more than %d candidates", ErrExpansionLimit, e.opts.Limit)
	}
	e.seen[s] = struct{}{}
	e.out = append(e.out, s)

	return nil
}
