package planarity

import "github.com/latticedraw/latticedraw/drawing"

// Validator answers planarity and rotation-system questions about a
// drawing. It owns the W×W scratch bin grid used by the intersection
// broad-phase filter; that buffer is allocated once, at construction, and
// cleared (not reallocated) on every check — a Validator value must not be
// shared between concurrently-running validations, but reusing one across
// many sequential calls (the common case: one per annealing step) is the
// whole point.
type Validator struct {
	grid *binGrid
}

// NewValidator allocates a Validator with its scratch bin grid ready to use.
func NewValidator() *Validator {
	return &Validator{grid: newBinGrid()}
}

// VertexOverlapOK reports whether no other rounded vertex in vertices has
// coordinates equal to v's. Non-rounded vertices never collide by this
// definition (fractional positions are not compared against anything).
// Complexity: O(V).
func VertexOverlapOK(vertices []*drawing.Vertex, v *drawing.Vertex) bool {
	for _, u := range vertices {
		if u == v || !u.IsRounded {
			continue
		}
		if u.Current.X == v.Current.X && u.Current.Y == v.Current.Y {
			return false
		}
	}
	return true
}

// CheckIntersections runs the binned broad-phase filter followed by the
// authoritative per-bin pairwise segment-intersection test over every edge
// in edges, given the current positions of vertices. It reports true iff
// no two edges that do not share an endpoint intersect.
//
// Complexity:
//   - Time: O(V + W² + E·B + Σ k²) — bounds scan, bin clear, rasterizing
//     each edge into its B spanned bins, and the pairwise test over the k
//     edges sharing each bin. The quadratic term is what the binning is
//     for: k stays small for drawings that are not pathologically bunched.
//   - Space: O(W²) scratch, owned by the Validator and reused across calls.
func (val *Validator) CheckIntersections(vertices []*drawing.Vertex, edges []*drawing.Edge) bool {
	if len(vertices) == 0 || len(edges) == 0 {
		return true
	}
	g := val.grid
	g.computeBounds(vertices)
	g.clear()
	for _, e := range edges {
		g.drawEdge(e)
	}
	for _, bin := range g.bins {
		if !checkBin(bin) {
			return false
		}
	}
	return true
}

// checkBin runs the brute-force pairwise intersection test over the edges
// that landed in one bin, skipping any pair sharing an endpoint.
// Complexity: O(k²) for k edges in the bin.
func checkBin(edges []*drawing.Edge) bool {
	for i := 0; i < len(edges)-1; i++ {
		e1 := edges[i]
		for j := i + 1; j < len(edges); j++ {
			e2 := edges[j]
			if sharesEndpoint(e1, e2) {
				continue
			}
			if segmentsIntersect(e1.A.Current, e1.B.Current, e2.A.Current, e2.B.Current) {
				return false
			}
		}
	}
	return true
}

func sharesEndpoint(e1, e2 *drawing.Edge) bool {
	return e1.A == e2.A || e1.A == e2.B || e1.B == e2.A || e1.B == e2.B
}

// CheckAfterMove reports whether the drawing remains a valid planar
// embedding after v was just mutated in place: v's own vertex-overlap
// status, v's and its neighbors' rotation systems, and the global
// intersection test. This is equivalent in outcome to CheckFull but avoids
// re-checking rotation systems for vertices the move could not have
// affected.
//
// Complexity: dominated by CheckIntersections; the local rotation-system
// sweep adds only O(d(v) + Σ d(u) log d(u)) over v's neighbors u.
func (val *Validator) CheckAfterMove(v *drawing.Vertex, vertices []*drawing.Vertex, edges []*drawing.Edge) bool {
	if !VertexOverlapOK(vertices, v) {
		return false
	}
	if !NeighborhoodRotSysOK(v) {
		return false
	}
	return val.CheckIntersections(vertices, edges)
}

// CheckFull runs the complete validation: vertex-overlap and rotation-system
// checks for every vertex, plus the global intersection test.
// Complexity: O(V²) for the overlap sweep plus one CheckIntersections call.
func (val *Validator) CheckFull(vertices []*drawing.Vertex, edges []*drawing.Edge) bool {
	for _, v := range vertices {
		if !VertexOverlapOK(vertices, v) {
			return false
		}
		if !RotSysOK(v) {
			return false
		}
	}
	return val.CheckIntersections(vertices, edges)
}
