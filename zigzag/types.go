// SPDX-License-Identifier: MIT
// Package zigzag: shared types, constants and sentinel errors.

package zigzag

import "errors"

// Sentinel errors, matched by callers via errors.Is.
var (
	// ErrDimension indicates a requested size below minDimension.
	ErrDimension = errors.New("zigzag: dimension must be at least 1")

	// ErrEmptyMatrix indicates a Scan input with no cells.
	ErrEmptyMatrix = errors.New("zigzag: matrix is empty")

	// ErrNonSquare indicates a Scan input whose rows and columns disagree,
	// including ragged rows.
	ErrNonSquare = errors.New("zigzag: matrix must be square")
)

// minDimension is the smallest grid Matrix and Path will generate.
const minDimension = 1

// Coord addresses one cell of the grid.
type Coord struct {
	Row, Col int
}
