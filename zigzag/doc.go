// Package zigzag orders the cells of a square grid along its
// anti-diagonals in alternating direction — the serpentine scan JPEG
// uses to serialize frequency coefficients.
//
// What:
//
//	Matrix(n) builds the n×n table whose cells hold their own visit
//	step (0 in the top-left corner, n²-1 in the bottom-right);
//	Path(n) lists the same traversal as coordinates; Scan(m) reads an
//	existing square matrix in that order.
//
// Why:
//
//	The zigzag order visits cells by increasing Row+Col, so values
//	that cluster near the top-left corner (low frequencies in a DCT
//	block, small keys in a distance table) come out first. The walk is
//	continuous: each step moves to a neighboring cell.
//
// Traversal:
//
//	The 2n-1 anti-diagonals split into two phases — expanding ones
//	anchored on the top and left edges, then clipped ones pushed off
//	the bottom and right edges. Odd diagonals run down-left, even ones
//	up-right, which pins Matrix(2) to
//
//	    0 1
//	    2 3
//
// Complexity:
//
//	O(n²) time and memory for all three operations.
//
// Errors:
//
//	ErrDimension    — Matrix/Path with n < 1
//	ErrEmptyMatrix  — Scan input without cells
//	ErrNonSquare    — Scan input with rows ≠ cols or ragged rows
//
// All errors are sentinels; match with errors.Is.
package zigzag
