// Package rosetta is a compact toolbox of classic combinatorial, string
// and grid algorithms — each one small, pure, and production-hardened.
//
// 🚀 What is rosetta?
//
//	A modern, zero-dependency library collecting five timeless routines:
//		• Compass rose: the full 32-point rose with azimuths & names
//		• Brace expansion: shell-style {a,b}-alternation, nested & lazy
//		• Zigzag scan: JPEG-style serpentine ordering of square matrices
//		• Domino chains: Eulerian-path feasibility & row construction
//		• Range notation: "0-2,5,7-9" extraction and re-expansion
//
// ✨ Why choose rosetta?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – a given input always produces the same output
//
// Everything is organized under five independent subpackages:
//
//	braces/   — fixed-point expansion of {…,…} alternation patterns
//	compass/  — the 32-point compass rose and heading lookup
//	dominoes/ — domino-row feasibility checks and chain building
//	ranges/   — run-length range extraction and expansion
//	zigzag/   — anti-diagonal serpentine ordering for n×n grids
//
// Quick ASCII example:
//
//	0 1 5
//	2 4 6      ← zigzag.Matrix(3): consecutive integers trace a
//	3 7 8        continuous serpentine path over the grid.
//
// None of the subpackages share state; every function is safe to call
// concurrently from any number of goroutines.
//
//	go get github.com/katalvlaran/rosetta
package rosetta
