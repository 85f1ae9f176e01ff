// Package braces expands alternation patterns: every balanced
// brace group {a,b,…} in the input is replaced by each of its
// comma-separated alternatives in turn, recursively, until no braces
// remain.
//
// What:
//
//	Expand("~/{Downloads,Pictures}/*.{jpg,gif,png}") yields the six
//	concrete paths; Strings returns the same results as a rewindable
//	iter.Seq. Nested groups work the natural way:
//
//	    It{{em,alic}iz,erat}e{d,}, please.
//	      → Itemized,   Itemize,
//	        Iterated,   Iterate,
//	        Italicized, Italicize   (each "…, please.")
//
// How:
//
//	A worklist fixed point. Each pass rewrites every candidate once,
//	replacing its first innermost group (the first '}' pairs with the
//	most recent '{', and a group closed that way contains no other)
//	with one candidate per alternative; pass output is deduplicated
//	preserving first-seen order. Outer groups become innermost once
//	their inner groups have been flattened away, so nesting needs no
//	recursion.
//
// Edge behavior:
//
//	No braces — the input is the sole result. Empty alternatives
//	({a,}) substitute the empty string. Single-alternative groups
//	({solo}) just drop their braces. Duplicate alternatives collapse.
//
// Options:
//
//	WithLimit caps how many candidates a pass may materialize
//	(DefaultLimit 65536) so redundant alternations cannot blow up
//	memory; WithOnExpand observes every rewrite as it is produced.
//
// Complexity:
//
//	O(P·L): P passes (maximum nesting depth plus one), L the total
//	bytes of live candidates per pass.
//
// Errors:
//
//	ErrUnbalanced      — braces do not pair up (checked up front)
//	ErrExpansionLimit  — a pass exceeded the candidate cap
//	ErrOptionViolation — invalid option (negative limit)
//
// All errors are sentinels; match with errors.Is. Expansion is pure
// and deterministic: safe for concurrent use from any number of
// goroutines.
package braces
