package planarity

import (
	"sort"

	"github.com/latticedraw/latticedraw/drawing"
)

// RotSysOK reports whether v's incident-edge angle sequence, in its stored
// (rotation-system) order, still satisfies the embedding invariant: at most
// one descending step in the cyclic sequence, and no two incident edges at
// the same angle. Vertices of degree <= 2 are trivially valid — with zero
// or one incident edge there is nothing to order, and with exactly two
// edges any ordering is a valid rotation system.
//
// Complexity: O(d log d), where d is the number of incident edges (the
// descent scan is linear; the duplicate check sorts a copy of the angles).
func RotSysOK(v *drawing.Vertex) bool {
	n := v.Neighbors
	if len(n) <= 2 {
		return true
	}

	angles := make([]float64, len(n))
	for i, e := range n {
		angles[i] = e.Angle(v)
	}

	jumped := false
	for i := 1; i < len(angles); i++ {
		if angles[i-1] > angles[i] {
			if jumped {
				return false
			}
			jumped = true
		}
	}
	if angles[len(angles)-1] > angles[0] && jumped {
		return false
	}

	sort.Float64s(angles)
	for i := 1; i < len(angles); i++ {
		if angles[i] == angles[i-1] {
			return false
		}
	}
	return true
}

// NeighborhoodRotSysOK reports whether v's own rotation system is valid and
// every neighbor's rotation system (as seen from that neighbor) is also
// valid. A move at v can only ever disturb v's own incidence order and the
// order at each of v's neighbors (because an edge's angle depends on the
// positions of both endpoints), so this local check stands in for the full
// per-vertex sweep after a single-vertex move.
// Complexity: O(Σ d(u) log d(u)) over u ∈ {v} ∪ N(v).
func NeighborhoodRotSysOK(v *drawing.Vertex) bool {
	if !RotSysOK(v) {
		return false
	}
	for _, e := range v.Neighbors {
		if !RotSysOK(e.Other(v)) {
			return false
		}
	}
	return true
}
