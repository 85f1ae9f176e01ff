// SPDX-License-Identifier: MIT
// Package zigzag: serpentine anti-diagonal traversal of square grids.

package zigzag

import "fmt"

// Path returns the zigzag visit order of an n×n grid as coordinates:
// anti-diagonals (cells of constant Row+Col) taken in order of
// increasing index, odd diagonals running down-left from their top
// end, even diagonals running up-right from their bottom end. The walk
// is continuous: consecutive coordinates are always grid neighbors
// (diagonal steps included).
//
// Returns ErrDimension when n < 1.
//
// Complexity: O(n²) time, O(n²) output.
func Path(n int) ([]Coord, error) {
	if n < minDimension {
		return nil, fmt.Errorf("%w: got n=%d", ErrDimension, n)
	}

	path := make([]Coord, 0, n*n)

	// Phase 1 — expanding: diagonals 0..n-1 grow one cell at a time,
	// anchored on the top and left edges (rows 0..d).
	for d := 0; d < n; d++ {
		path = appendDiagonal(path, d, 0, d)
	}

	// Phase 2 — clipped: diagonals n..2n-2 shrink as they are pushed
	// off the bottom and right edges (rows d-n+1..n-1).
	for d := n; d <= 2*n-2; d++ {
		path = appendDiagonal(path, d, d-n+1, n-1)
	}

	return path, nil
}

// appendDiagonal emits anti-diagonal d restricted to rows lo..hi.
// The direction flip lives here and only here: odd diagonals walk
// rows ascending (down-left), even diagonals descending (up-right).
// The column is d-row throughout.
func appendDiagonal(path []Coord, d, lo, hi int) []Coord {
	if d%2 == 1 {
		for r := lo; r <= hi; r++ {
			path = append(path, Coord{Row: r, Col: d - r})
		}

		return path
	}
	for r := hi; r >= lo; r-- {
		path = append(path, Coord{Row: r, Col: d - r})
	}

	return path
}

// Matrix returns the n×n grid whose cells hold their own visit step:
// cell (r,c) contains k exactly when Path(n)[k] == (r,c). The top-left
// corner is always 0 and the bottom-right corner n²-1.
//
//	Matrix(5):
//	 0  1  5  6 14
//	 2  4  7 13 15
//	 3  8 12 16 21
//	 9 11 17 20 22
//	10 18 19 23 24
//
// Returns ErrDimension when n < 1.
//
// Complexity: O(n²) time and memory.
func Matrix(n int) ([][]int, error) {
	path, err := Path(n)
	if err != nil {
		return nil, err
	}

	m := make([][]int, n)
	for r := range m {
		m[r] = make([]int, n)
	}
	for step, cell := range path {
		m[cell.Row][cell.Col] = step
	}

	return m, nil
}

// Scan reads any square matrix in zigzag order — the traversal JPEG
// uses to serialize 8×8 DCT blocks so low-frequency coefficients come
// first. Scan(Matrix(n)) is the identity permutation 0..n²-1.
//
// Returns ErrEmptyMatrix when m has no cells, ErrNonSquare when rows
// and columns disagree (ragged rows included).
//
// Complexity: O(n²) time, O(n²) output.
func Scan(m [][]int) ([]int, error) {
	if err := validateSquare(m); err != nil {
		return nil, err
	}

	path, err := Path(len(m))
	if err != nil {
		return nil, err
	}

	out := make([]int, 0, len(path))
	for _, cell := range path {
		out = append(out, m[cell.Row][cell.Col])
	}

	return out, nil
}

// validateSquare rejects cell-less and non-square inputs before any
// traversal work happens.
func validateSquare(m [][]int) error {
	if len(m) == 0 || len(m[0]) == 0 {
		return ErrEmptyMatrix
	}
	for r, row := range m {
		if len(row) != len(m) {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonSquare, r, len(row), len(m))
		}
	}

	return nil
}
