package cartogram

import (
	"github.com/latticedraw/latticedraw/geom"
)

// triangle holds three indices into a shared points slice. Bowyer-Watson
// builds every triangle in counter-clockwise order; flipEdge does not
// preserve that winding.
type triangle struct {
	a, b, c int
}

func (t triangle) edges() [3][2]int {
	return [3][2]int{{t.a, t.b}, {t.b, t.c}, {t.c, t.a}}
}

func (t triangle) hasVertex(i int) bool {
	return t.a == i || t.b == i || t.c == i
}

// triangulate runs Bowyer-Watson incremental Delaunay triangulation over
// points, then recovers every edge in constraints as an actual edge of the
// mesh via Sloan's edge-flip algorithm, and returns the finite edge set
// (undirected, deduplicated) of the resulting constrained triangulation.
//
// constraints should list each required edge once, as a pair of indices
// into points. Points must be in general position (no three collinear,
// no four concyclic); latticedraw's drawings satisfy this in practice
// because real-valued vertex coordinates essentially never land on such a
// degeneracy, and the annealers never call this path on lattice-exact
// input.
//
// Complexity:
//   - Time: O(n²) for the incremental insertion (each of the n insertions
//     scans all current triangles, of which there are O(n)), plus
//     constraint recovery at O(T) triangles scanned per flip, with flips
//     per constraint capped (see recoverConstraints).
//   - Space: O(n) triangles.
func triangulate(points []geom.Point, constraints [][2]int) [][2]int {
	if len(points) < 3 {
		edges := make([][2]int, 0, len(constraints))
		edges = append(edges, constraints...)
		return dedupeEdges(edges)
	}

	all, tris, superA, superB, superC := bowyerWatson(points)
	tris = recoverConstraints(all, tris, constraints)
	tris = dropSuperTriangles(tris, superA, superB, superC)

	edgeSet := make(map[[2]int]bool)
	for _, t := range tris {
		for _, e := range t.edges() {
			edgeSet[normalizeEdge(e[0], e[1])] = true
		}
	}
	edges := make([][2]int, 0, len(edgeSet))
	for e := range edgeSet {
		edges = append(edges, e)
	}
	return dedupeEdges(edges)
}

func normalizeEdge(i, j int) [2]int {
	if i > j {
		i, j = j, i
	}
	return [2]int{i, j}
}

func dedupeEdges(edges [][2]int) [][2]int {
	seen := make(map[[2]int]bool, len(edges))
	out := edges[:0]
	for _, e := range edges {
		n := normalizeEdge(e[0], e[1])
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// bowyerWatson builds an unconstrained Delaunay triangulation of points by
// incremental insertion. It appends three super-triangle vertices to
// points's conceptual index space (superA, superB, superC) so that every
// insertion has a well-defined enclosing triangle to start from, and returns
// that extended point slice as all; callers must strip any triangle
// touching those indices before using the result.
func bowyerWatson(points []geom.Point) (all []geom.Point, tris []triangle, superA, superB, superC int) {
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		minX, maxX = minF(minX, p.X), maxF(maxX, p.X)
		minY, maxY = minF(minY, p.Y), maxF(maxY, p.Y)
	}
	dx, dy := maxX-minX, maxY-minY
	deltaMax := maxF(dx, dy)
	if deltaMax == 0 {
		deltaMax = 1
	}
	midX, midY := (minX+maxX)/2, (minY+maxY)/2

	all = make([]geom.Point, len(points), len(points)+3)
	copy(all, points)
	superA = len(all)
	all = append(all, geom.NewPoint(midX-20*deltaMax, midY-deltaMax))
	superB = len(all)
	all = append(all, geom.NewPoint(midX, midY+20*deltaMax))
	superC = len(all)
	all = append(all, geom.NewPoint(midX+20*deltaMax, midY-deltaMax))

	tris = []triangle{{superA, superC, superB}}

	for i := range points {
		tris = insertPoint(all, tris, i)
	}
	return all, tris, superA, superB, superC
}

// insertPoint splits the triangulation around point p: every triangle
// whose circumcircle contains p is removed, and the boundary of the
// resulting cavity is re-fanned to p.
// Complexity: O(T) circumcircle tests over the current triangle count T.
func insertPoint(points []geom.Point, tris []triangle, p int) []triangle {
	var bad []triangle
	var good []triangle
	for _, t := range tris {
		if inCircumcircle(points[t.a], points[t.b], points[t.c], points[p]) {
			bad = append(bad, t)
		} else {
			good = append(good, t)
		}
	}

	boundary := polygonBoundary(bad)
	for _, e := range boundary {
		good = append(good, triangle{e[0], e[1], p})
	}
	return good
}

// polygonBoundary returns the edges of bad that are not shared by two
// triangles in bad, oriented so that the removed cavity is to their left
// (i.e. in the winding order the original triangles used).
func polygonBoundary(bad []triangle) [][2]int {
	count := make(map[[2]int]int)
	order := make(map[[2]int][2]int)
	for _, t := range bad {
		for _, e := range t.edges() {
			key := normalizeEdge(e[0], e[1])
			count[key]++
			order[key] = e
		}
	}
	var boundary [][2]int
	for key, c := range count {
		if c == 1 {
			boundary = append(boundary, order[key])
		}
	}
	return boundary
}

func dropSuperTriangles(tris []triangle, superA, superB, superC int) []triangle {
	out := tris[:0]
	for _, t := range tris {
		if t.hasVertex(superA) || t.hasVertex(superB) || t.hasVertex(superC) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// inCircumcircle reports whether d lies strictly inside the circumcircle
// of triangle (a,b,c), assuming (a,b,c) is given in counter-clockwise
// order (Bowyer-Watson always constructs its triangles that way).
func inCircumcircle(a, b, c, d geom.Point) bool {
	ax, ay := a.X-d.X, a.Y-d.Y
	bx, by := b.X-d.X, b.Y-d.Y
	cx, cy := c.X-d.X, c.Y-d.Y

	ad := ax*ax + ay*ay
	bd := bx*bx + by*by
	cd := cx*cx + cy*cy

	det := ax*(by*cd-bd*cy) - ay*(bx*cd-bd*cx) + ad*(bx*cy-by*cx)
	return det > 0
}

// recoverConstraints forces every pair in constraints to appear as an edge
// of tris, using Sloan's edge-flip algorithm: repeatedly locate a mesh
// edge that properly crosses the constraint segment and flip the diagonal
// of the quadrilateral formed by its two incident triangles. maxFlips
// bounds the search so a degenerate input (near-collinear points) cannot
// spin forever; it is far above what any planar constraint needs in
// practice.
// Complexity: O(maxFlipsPerConstraint · T) per constraint worst case,
// where each flip attempt scans the T current triangles for the crossing
// edge.
func recoverConstraints(points []geom.Point, tris []triangle, constraints [][2]int) []triangle {
	const maxFlipsPerConstraint = 500
	for _, con := range constraints {
		p, q := con[0], con[1]
		if p == q || hasEdge(tris, p, q) {
			continue
		}
		for attempt := 0; attempt < maxFlipsPerConstraint; attempt++ {
			if hasEdge(tris, p, q) {
				break
			}
			i, j, ok := findCrossingEdge(points, tris, p, q)
			if !ok {
				break // could not locate a crossing edge; leave as-is
			}
			tris = flipEdge(tris, i, j)
		}
	}
	return tris
}

func hasEdge(tris []triangle, p, q int) bool {
	for _, t := range tris {
		for _, e := range t.edges() {
			if (e[0] == p && e[1] == q) || (e[0] == q && e[1] == p) {
				return true
			}
		}
	}
	return false
}

// findCrossingEdge returns the indices, into tris, of the two triangles
// sharing an edge that properly crosses segment p-q.
func findCrossingEdge(points []geom.Point, tris []triangle, p, q int) (int, int, bool) {
	type edgeOwner struct {
		a, b  int
		owner int
	}
	var owners []edgeOwner
	for ti, t := range tris {
		for _, e := range t.edges() {
			if e[0] == p || e[1] == p || e[0] == q || e[1] == q {
				continue
			}
			if segmentsProperlyCross(points[p], points[q], points[e[0]], points[e[1]]) {
				owners = append(owners, edgeOwner{e[0], e[1], ti})
			}
		}
	}
	for oi := 0; oi < len(owners); oi++ {
		for oj := oi + 1; oj < len(owners); oj++ {
			if normalizeEdge(owners[oi].a, owners[oi].b) == normalizeEdge(owners[oj].a, owners[oj].b) {
				return owners[oi].owner, owners[oj].owner, true
			}
		}
	}
	return 0, 0, false
}

func segmentsProperlyCross(p1, p2, p3, p4 geom.Point) bool {
	d1 := orient(p3, p4, p1)
	d2 := orient(p3, p4, p2)
	d3 := orient(p1, p2, p3)
	d4 := orient(p1, p2, p4)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func orient(a, b, c geom.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// flipEdge replaces the two triangles at indices ti and tj (which must
// share exactly one edge) with the two triangles formed by swapping that
// edge's diagonal.
func flipEdge(tris []triangle, ti, tj int) []triangle {
	t1, t2 := tris[ti], tris[tj]
	shared, only1, only2, ok := sharedEdgeAndOpposites(t1, t2)
	if !ok {
		return tris
	}
	newT1 := triangle{shared[0], only1, only2}
	newT2 := triangle{shared[1], only2, only1}
	tris[ti] = newT1
	tris[tj] = newT2
	return tris
}

// sharedEdgeAndOpposites finds the edge shared by t1 and t2 and the
// vertex of each triangle not on that edge.
func sharedEdgeAndOpposites(t1, t2 triangle) (shared [2]int, only1, only2 int, ok bool) {
	v1 := []int{t1.a, t1.b, t1.c}
	v2 := []int{t2.a, t2.b, t2.c}
	var common []int
	for _, x := range v1 {
		for _, y := range v2 {
			if x == y {
				common = append(common, x)
			}
		}
	}
	if len(common) != 2 {
		return shared, 0, 0, false
	}
	shared = [2]int{common[0], common[1]}
	for _, x := range v1 {
		if x != shared[0] && x != shared[1] {
			only1 = x
		}
	}
	for _, y := range v2 {
		if y != shared[0] && y != shared[1] {
			only2 = y
		}
	}
	return shared, only1, only2, true
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
