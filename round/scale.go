package round

import (
	"github.com/latticedraw/latticedraw/drawing"
	"github.com/latticedraw/latticedraw/geom"
	"github.com/latticedraw/latticedraw/planarity"
)

// ScaleAndGreedy multiplies every vertex's original position by an
// increasing integer factor f = 1, 2, 3, ... and, at each factor, tries to
// greedy-round every vertex in index order. It stops at the first factor
// for which every vertex rounds successfully, and marks all vertices
// rounded before returning. It terminates once the drawing is sparse
// enough that grid-adjacent rounding never conflicts, which is guaranteed
// to happen for some finite factor.
//
// Complexity: O(F·V·C) where F is the accepted factor and C the cost of
// one validator call; F is finite for any drawing whose original
// positions are pairwise distinct, but no a-priori bound on it is made.
func ScaleAndGreedy(d *drawing.Drawing, val *planarity.Validator) {
	for factor := 1.0; ; factor++ {
		for _, v := range d.Vertices {
			v.SetCurrent(v.Original.Mul(factor))
		}
		allOK := true
		for _, v := range d.Vertices {
			if !Greedy(v, d.Vertices, d.Edges, val) {
				allOK = false
				break
			}
		}
		if allOK {
			break
		}
	}
	markAllRounded(d)
}

// ScaleAndRound is the simpler sibling of ScaleAndGreedy: at each factor it
// sets every vertex's position to round(f * original) with no per-vertex
// backtracking, and asks the validator whether the result, as a whole, is
// still a valid planar embedding.
// Complexity: O(F·(V + C)) — one CheckFull per factor instead of
// ScaleAndGreedy's per-vertex attempts.
func ScaleAndRound(d *drawing.Drawing, val *planarity.Validator) {
	for factor := 1.0; ; factor++ {
		for _, v := range d.Vertices {
			v.SetCurrent(geom.Round(v.Original.Mul(factor)))
		}
		if val.CheckFull(d.Vertices, d.Edges) {
			break
		}
	}
	markAllRounded(d)
}

func markAllRounded(d *drawing.Drawing) {
	for _, v := range d.Vertices {
		v.IsRounded = true
	}
}
