package cartogram

import (
	"math"

	"github.com/latticedraw/latticedraw/drawing"
	"github.com/latticedraw/latticedraw/geom"
)

// Fixed constraint weights and target lengths. sqrt(2) is the length of a
// unit grid cell's diagonal.
const (
	positionWeight = 0.1

	edgeWeight    = 1.0
	edgeMinLength = math.Sqrt2

	tooNearWeight   = 1.0
	tooNearDistance = math.Sqrt2

	delaunayWeight    = 1.0
	delaunayMinLength = math.Sqrt2
)

// triplet is one (row, column, value) entry of the sparse constraint
// matrix A.
type triplet struct {
	row, col int
	value    float64
}

// system is the assembled sparse least-squares problem A x = rhs, in
// coordinate (triplet) form, together with the number of unknowns (the
// column count of A); the row count is len(rhs).
type system struct {
	triplets []triplet
	rhs      []float64
	numVars  int
}

func xID(i int) int { return 2 * i }
func yID(i int) int { return 2*i + 1 }

// buildSystem assembles the constraint system for vertices and edges, with
// four constraint families in order:
// position (pulls each vertex toward its original location), edge (targets
// each edge's original displacement, optionally lengthened to at least
// edgeMinLength), too-near (pushes apart any pair of vertices that started
// closer than tooNearDistance, when spaceNearby is set), and Delaunay
// (pushes apart any pair connected by a short edge of the current
// positions' Delaunay triangulation, when addCDT is set).
//
// Complexity: O(V + E) rows for the always-present families; spaceNearby
// scans all V² ordered pairs (emitting each close pair twice, once per
// direction); addCDT adds the triangulation cost (see triangulate).
func buildSystem(vertices []*drawing.Vertex, edges []*drawing.Edge, enlargeShortEdges, spaceNearby, addCDT bool) system {
	n := len(vertices)
	sys := system{numVars: 2 * n}

	row := 0
	for _, v := range vertices {
		sys.triplets = append(sys.triplets,
			triplet{row, xID(v.ID), positionWeight},
		)
		sys.rhs = append(sys.rhs, positionWeight*v.Original.X)
		row++
		sys.triplets = append(sys.triplets,
			triplet{row, yID(v.ID), positionWeight},
		)
		sys.rhs = append(sys.rhs, positionWeight*v.Original.Y)
		row++
	}

	for _, e := range edges {
		dx := e.B.Original.X - e.A.Original.X
		dy := e.B.Original.Y - e.A.Original.Y
		if enlargeShortEdges {
			length := math.Hypot(dx, dy)
			if length > 0 && length < edgeMinLength {
				dx *= edgeMinLength / length
				dy *= edgeMinLength / length
			}
		}
		row = appendDisplacementRows(&sys, row, e.A.ID, e.B.ID, edgeWeight, dx, dy)
	}

	if spaceNearby {
		for _, a := range vertices {
			for _, b := range vertices {
				if a == b {
					continue
				}
				dx := b.Original.X - a.Original.X
				dy := b.Original.Y - a.Original.Y
				length := math.Hypot(dx, dy)
				if length > 0 && length < tooNearDistance {
					dx *= tooNearDistance / length
					dy *= tooNearDistance / length
					row = appendDisplacementRows(&sys, row, a.ID, b.ID, tooNearWeight, dx, dy)
				}
			}
		}
	}

	if addCDT {
		constraints := make([][2]int, 0, len(edges))
		for _, e := range edges {
			constraints = append(constraints, [2]int{e.A.ID, e.B.ID})
		}
		points := make([]geom.Point, n)
		for _, v := range vertices {
			points[v.ID] = v.Current
		}
		for _, e := range triangulate(points, constraints) {
			a, b := vertices[e[0]], vertices[e[1]]
			dx := b.Original.X - a.Original.X
			dy := b.Original.Y - a.Original.Y
			length := math.Hypot(dx, dy)
			if length > 0 && length < delaunayMinLength {
				dx *= delaunayMinLength / length
				dy *= delaunayMinLength / length
				row = appendDisplacementRows(&sys, row, a.ID, b.ID, delaunayWeight, dx, dy)
			}
		}
	}

	return sys
}

// appendDisplacementRows appends the two rows (x and y) encoding "the
// displacement from vertex a to vertex b should be (dx, dy), weighted by
// w" and returns the next free row index.
func appendDisplacementRows(sys *system, row, aID, bID int, w, dx, dy float64) int {
	sys.triplets = append(sys.triplets,
		triplet{row, xID(aID), -w},
		triplet{row, xID(bID), w},
	)
	sys.rhs = append(sys.rhs, w*dx)
	row++
	sys.triplets = append(sys.triplets,
		triplet{row, yID(aID), -w},
		triplet{row, yID(bID), w},
	)
	sys.rhs = append(sys.rhs, w*dy)
	row++
	return row
}
