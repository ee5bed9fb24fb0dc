package planarity

import "github.com/latticedraw/latticedraw/geom"

// segmentsIntersect reports whether closed segments p1p2 and p3p4 share any
// point, including a collinear overlap, a touching endpoint, or a
// zero-length segment. Callers are responsible for exempting edge pairs
// that share an endpoint by construction (see checkBin) — this predicate
// alone would also report that trivial case as an intersection.
//
// Intersection is decided by the classic orientation-sign / on-segment
// tests built on geom.Point's cross product; only the sign of the
// orientation determinant matters, never its magnitude.
// Complexity: O(1).
func segmentsIntersect(p1, p2, p3, p4 geom.Point) bool {
	d1 := orientation(p3, p4, p1)
	d2 := orientation(p3, p4, p2)
	d3 := orientation(p1, p2, p3)
	d4 := orientation(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	if d1 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, p4) {
		return true
	}
	return false
}

// orientation returns the signed area of the triangle (a, b, c): positive
// if c is to the left of the directed line a->b, negative if to the
// right, zero if collinear. This is exactly the cross product of (b-a)
// and (c-a).
func orientation(a, b, c geom.Point) float64 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	return ab.Cross(ac)
}

// onSegment reports whether point p, known to be collinear with segment
// a-b, lies within that segment's bounding box (and therefore on it).
func onSegment(a, b, p geom.Point) bool {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}
