package geom

import (
	"math"

	"github.com/blevesearch/geo/r2"
)

// Point is a point or free vector in the Euclidean plane. It is a named
// alias for r2.Point so that latticedraw can use that package's vector
// arithmetic (Add, Sub, Mul, Dot, Cross, Norm, ...) directly on
// coordinates, angles, and displacements throughout the module.
type Point = r2.Point

// NewPoint constructs a Point from its two coordinates.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Angle returns the polar angle (atan2(dy, dx)) of the vector from p to q,
// the quantity the rotation system is ordered by.
func Angle(p, q Point) float64 {
	d := q.Sub(p)
	return math.Atan2(d.Y, d.X)
}

// Dist returns the Euclidean distance between p and q.
func Dist(p, q Point) float64 {
	return p.Sub(q).Norm()
}

// Dist2 returns the squared Euclidean distance between p and q, avoiding a
// sqrt call in hot paths (the continuous density score sums 1/Dist2 over
// vertex pairs).
func Dist2(p, q Point) float64 {
	d := p.Sub(q)
	return d.Dot(d)
}

// IsRounded reports whether both coordinates of p are already integers.
func IsRounded(p Point) bool {
	return p.X == math.Floor(p.X) && p.Y == math.Floor(p.Y)
}

// Round rounds both coordinates of p to the nearest integer, half away
// from zero, matching math.Round.
func Round(p Point) Point {
	return Point{X: math.Round(p.X), Y: math.Round(p.Y)}
}

// RoundAway returns the integer adjacent to t on the opposite side from the
// nearest-integer rounding: ceil(t) when t rounds down, floor(t) when t
// rounds up. It is the "other" grid-adjacent integer used by the greedy
// rounder's fallback attempts.
func RoundAway(t float64) float64 {
	if t < math.Round(t) {
		return math.Floor(t)
	}
	return math.Ceil(t)
}

// Lerp linearly interpolates from 'from' to 'to' at parameter t (t=0 gives
// from, t=1 gives to), used by the cartogram back-off.
func Lerp(from, to Point, t float64) Point {
	return Point{
		X: t*to.X + (1-t)*from.X,
		Y: t*to.Y + (1-t)*from.Y,
	}
}
