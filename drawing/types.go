// Package drawing defines the Vertex, Edge, and Drawing types that the rest
// of latticedraw operates on, and the line-graph text I/O contract that
// feeds and persists them.
//
// Vertices carry both an Original (immutable input) position and a Current
// (mutable working) position; edges are owned by the Drawing and referenced
// by both endpoints' Neighbors lists, which encode the rotation system — the
// cyclic order edges are considered to leave a vertex in. That order is
// fixed once, at construction (SetRotationSystems), and is never re-sorted;
// every later mutation is instead validated against it.
package drawing

import (
	"errors"

	"github.com/latticedraw/latticedraw/geom"
)

// Sentinel errors for drawing construction and I/O.
var (
	// ErrVertexNotFound names a vertex id outside [0, n). No function in
	// this package returns it: LoadLineGraph reports an out-of-range
	// endpoint id as ErrMalformedLineGraph.
	ErrVertexNotFound = errors.New("drawing: vertex not found")

	// ErrMalformedLineGraph indicates the line-graph text format could not
	// be parsed (wrong field count, unparsable number, bad endpoint id).
	ErrMalformedLineGraph = errors.New("drawing: malformed line-graph file")
)

// Vertex is one node of a drawing. ID is dense in [0, n) and assigned once,
// at construction, and never reused (removal is not supported — the core
// algorithms never delete vertices, only move them).
type Vertex struct {
	ID int

	// Original is the immutable input position.
	Original geom.Point

	// Current is the mutable working position. IsRounded must be kept in
	// sync with it: call RefreshRounded after any direct write to Current
	// that does not go through SetCurrent.
	Current geom.Point

	// IsRounded is true iff both components of Current are integers.
	IsRounded bool

	// Density is a scratch field written by the density annealer's score
	// functions; it has no meaning outside of that computation.
	Density float64

	// Neighbors holds this vertex's incident edges, ordered by the polar
	// angle of the vector to their other endpoint as of the last call to
	// SetRotationSystems. This order is the rotation system and is not
	// re-derived automatically.
	Neighbors []*Edge
}

// SetCurrent assigns p to v.Current and refreshes IsRounded.
func (v *Vertex) SetCurrent(p geom.Point) {
	v.Current = p
	v.RefreshRounded()
}

// RefreshRounded recomputes IsRounded from the current value of Current.
// Call this whenever Current is mutated directly (e.g. through a pointer
// taken via CurrentSlot) rather than through SetCurrent.
func (v *Vertex) RefreshRounded() {
	v.IsRounded = geom.IsRounded(v.Current)
}

// CurrentSlot returns a pointer to v.Current, for use with checkpoint.New.
// Callers that mutate *CurrentSlot() directly are responsible for calling
// RefreshRounded afterward.
func (v *Vertex) CurrentSlot() *geom.Point {
	return &v.Current
}

// Edge connects two vertices. The pair is unordered in meaning but stored
// in the order the edge was created (A, B); Other returns whichever
// endpoint is not the vertex passed in.
type Edge struct {
	A, B *Vertex
}

// Other returns the endpoint of e that is not v. It panics if v is neither
// endpoint, which would indicate a caller bug (every edge reachable from a
// vertex's Neighbors list necessarily has that vertex as an endpoint).
func (e *Edge) Other(v *Vertex) *Vertex {
	switch v {
	case e.A:
		return e.B
	case e.B:
		return e.A
	default:
		panic("drawing: Edge.Other called with a vertex that is not an endpoint")
	}
}

// Angle returns the polar angle, measured at v's Current position, of the
// vector to e's other endpoint.
func (e *Edge) Angle(v *Vertex) float64 {
	return geom.Angle(v.Current, e.Other(v).Current)
}

// Drawing owns a set of vertices and edges. Vertex ids are dense in
// [0, len(Vertices)). Edges are deduplicated at construction: AddEdge
// between two already-connected vertices is a silent no-op, matching the
// "multi-edges forbidden" invariant from the data model.
type Drawing struct {
	Vertices []*Vertex
	Edges    []*Edge

	// adjacent tracks, for each unordered vertex-id pair (stored smaller id
	// first, see edgeKey), whether an edge
	// already connects them, so AddEdge's duplicate check is O(1) instead
	// of scanning the edge list.
	adjacent map[[2]int]bool
}

// New creates an empty Drawing.
func New() *Drawing {
	return &Drawing{adjacent: make(map[[2]int]bool)}
}

// AddVertex appends a new vertex at position p and returns it. Its ID is
// the next dense integer, i.e. len(Vertices) before the call.
func (d *Drawing) AddVertex(p geom.Point) *Vertex {
	v := &Vertex{
		ID:       len(d.Vertices),
		Original: p,
		Current:  p,
	}
	v.RefreshRounded()
	d.Vertices = append(d.Vertices, v)
	return v
}

// AddEdge connects vertices a and b. If they are already connected (in
// either order), this is a silent no-op and returns (nil, false) — the
// shared edge-factory contract every loader must go through. Self-loops
// (a == b) are likewise rejected as a no-op, since the rotation-system
// model has no meaning for a loop.
// Complexity: O(1) amortized.
func (d *Drawing) AddEdge(a, b *Vertex) (*Edge, bool) {
	if a == nil || b == nil || a == b {
		return nil, false
	}
	key := edgeKey(a.ID, b.ID)
	if d.adjacent[key] {
		return nil, false
	}
	e := &Edge{A: a, B: b}
	d.Edges = append(d.Edges, e)
	a.Neighbors = append(a.Neighbors, e)
	b.Neighbors = append(b.Neighbors, e)
	d.adjacent[key] = true
	return e, true
}

func edgeKey(i, j int) [2]int {
	if i > j {
		i, j = j, i
	}
	return [2]int{i, j}
}

// SetRotationSystems sorts every vertex's Neighbors by the polar angle of
// the edge at the vertex's current position. This establishes the
// embedding and is meant to be called exactly once, right after a drawing
// is loaded (and again, deliberately, after a cartogram preprocess changes
// positions wholesale) — never inside the annealing loops, which instead
// reject moves that would violate the order this call fixes.
// Complexity: O(Σ d(v)²) — insertion sort per vertex; see sortByAngle.
func (d *Drawing) SetRotationSystems() {
	for _, v := range d.Vertices {
		sortByAngle(v)
	}
}

func sortByAngle(v *Vertex) {
	n := v.Neighbors
	// Small-degree insertion sort keeps this allocation-free; vertex
	// degree in planar drawings is typically tiny.
	for i := 1; i < len(n); i++ {
		cur := n[i]
		curAngle := cur.Angle(v)
		j := i - 1
		for j >= 0 && n[j].Angle(v) > curAngle {
			n[j+1] = n[j]
			j--
		}
		n[j+1] = cur
	}
}
