package compass

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrBadAzimuth indicates a heading that is NaN or ±Inf.
var ErrBadAzimuth = errors.New("compass: azimuth must be a finite number")

const (
	// PointCount is the number of points on the traditional rose.
	PointCount = 32

	// SectorWidth is the angular width of one point, in degrees.
	SectorWidth = 360.0 / PointCount

	// pointsPerQuadrant is how many points lie between two cardinals.
	pointsPerQuadrant = PointCount / 4

	fullCircle = 360.0

	byAbbr = "b"    // quarter-wind marker in abbreviations  (NbE)
	byWord = " by " // quarter-wind marker in display names   (North by east)
)

// cardinals in clockwise order; quadrant q spans cardinals[q] to
// cardinals[(q+1)%4].
var cardinals = [4]string{"N", "E", "S", "W"}

// Point is one entry of the 32-point rose.
type Point struct {
	// Abbr is the standard abbreviation, e.g. "NbE", "NNE", "NE".
	Abbr string
	// Name is the display name, e.g. "North by east".
	Name string
	// Azimuth is the point's heading in degrees, in [0, 360).
	Azimuth float64
}

// Points returns the full rose in azimuth order: index 0 is North (0°),
// each subsequent point SectorWidth degrees clockwise. The slice is
// freshly allocated on every call.
func Points() []Point {
	pts := make([]Point, PointCount)
	for i := range pts {
		pts[i] = pointAt(i)
	}

	return pts
}

// FromAzimuth boxes an arbitrary finite heading to the nearest of the
// 32 points. The heading is first normalized into [0,360) (negative and
// oversized angles wrap), then rounded to the closest multiple of
// SectorWidth; a heading exactly on a sector boundary resolves to the
// clockwise point. Returns ErrBadAzimuth for NaN or ±Inf.
func FromAzimuth(deg float64) (Point, error) {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return Point{}, fmt.Errorf("%w: got %v", ErrBadAzimuth, deg)
	}
	norm := math.Mod(deg, fullCircle)
	if norm < 0 {
		norm += fullCircle
	}
	// Round half away from zero: the boundary between two sectors
	// belongs to the clockwise neighbor.
	idx := int(math.Round(norm/SectorWidth)) % PointCount

	return pointAt(idx), nil
}

// pointAt derives point i of the rose from its quadrant position.
// Within quadrant q (cardinal A → next cardinal B, intercardinal C),
// the eight points follow the fixed pattern
//
//	A, AbB, AC, CbA, C, CbB, BC, BbA
//
// which yields N, NbE, NNE, NEbN, NE, NEbE, ENE, EbN for q=0 and the
// rotated equivalents elsewhere.
func pointAt(i int) Point {
	q, j := i/pointsPerQuadrant, i%pointsPerQuadrant
	a, b := cardinals[q], cardinals[(q+1)%len(cardinals)]

	// The intercardinal names north/south before east/west: NE, SE, SW, NW.
	c := a + b
	if q%2 == 1 {
		c = b + a
	}

	var abbr, name string
	switch j {
	case 0:
		abbr, name = a, title(expand(a))
	case 1:
		abbr, name = a+byAbbr+b, title(expand(a))+byWord+expand(b)
	case 2:
		abbr, name = a+c, title(expand(a))+"-"+expand(c)
	case 3:
		abbr, name = c+byAbbr+a, title(expand(c))+byWord+expand(a)
	case 4:
		abbr, name = c, title(expand(c))
	case 5:
		abbr, name = c+byAbbr+b, title(expand(c))+byWord+expand(b)
	case 6:
		abbr, name = b+c, title(expand(b))+"-"+expand(c)
	case 7:
		abbr, name = b+byAbbr+a, title(expand(b))+byWord+expand(a)
	}

	return Point{Abbr: abbr, Name: name, Azimuth: float64(i) * SectorWidth}
}

// expand spells out an abbreviation letter-by-letter: "NE" → "northeast".
func expand(abbr string) string {
	var sb strings.Builder
	for _, r := range abbr {
		switch r {
		case 'N':
			sb.WriteString("north")
		case 'E':
			sb.WriteString("east")
		case 'S':
			sb.WriteString("south")
		case 'W':
			sb.WriteString("west")
		}
	}

	return sb.String()
}

// title upper-cases the first letter of an ASCII word.
func title(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
