// Package compass generates the traditional 32-point compass rose:
// abbreviations, display names, and azimuths at 11.25° spacing.
//
// 🚀 What is the 32-point rose?
//
//	Mariners divide the horizon into 32 named sectors ("points"):
//	4 cardinals (N, E, S, W), 4 intercardinals (NE, SE, SW, NW),
//	8 half-winds (NNE, ENE, …) and 16 quarter-winds ("by" points,
//	e.g. NbE = "North by east"). Every name is derivable from its
//	position in the quadrant, so the whole table is generated, not
//	hand-typed.
//
// ✨ Key features:
//   - Points() — the full ordered table, one Point per 11.25° step
//   - FromAzimuth(deg) — boxes any finite heading to its nearest point
//   - fresh slices on every call; nothing to mutate, nothing shared
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rosetta/compass"
//
//	for _, p := range compass.Points() {
//	    fmt.Printf("%6.2f° %-4s %s\n", p.Azimuth, p.Abbr, p.Name)
//	}
//
//	p, err := compass.FromAzimuth(354.38) // → N (wraps past north)
//
// Performance:
//
//   - Time:   O(1) per point, O(32) for the table
//   - Memory: O(32) per Points() call
//
// Errors: FromAzimuth rejects NaN and ±Inf with ErrBadAzimuth; every
// finite heading (negative, or beyond 360°) is normalized instead.
package compass
