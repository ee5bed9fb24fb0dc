package hillclimb

import (
	"log/slog"

	"github.com/latticedraw/latticedraw/checkpoint"
	"github.com/latticedraw/latticedraw/drawing"
	"github.com/latticedraw/latticedraw/geom"
	"github.com/latticedraw/latticedraw/internal/obslog"
	"github.com/latticedraw/latticedraw/planarity"
)

// offsets enumerates the eight integer neighbors of a grid point in
// row-major (dx outer, dy inner) order. The order is load-bearing: ties
// between equally-improving moves resolve to the earliest offset, so
// changing it changes output.
var offsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1} /* (0,0) skipped */, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// climbOne tries every offset around v and applies the strictly best one
// that both lowers v's rounding cost and keeps the drawing valid. It
// reports whether a move was applied.
// Complexity: eight CheckAfterMove calls (the dominant cost) plus O(1)
// bookkeeping per offset.
func climbOne(v *drawing.Vertex, vertices []*drawing.Vertex, edges []*drawing.Edge, val *planarity.Validator) bool {
	bestScore := roundingCost(v)
	bestDX, bestDY := 0, 0
	found := false

	origin := v.Current
	for _, off := range offsets {
		dx, dy := off[0], off[1]
		candidate := geom.NewPoint(origin.X+float64(dx), origin.Y+float64(dy))
		checkpoint.Try(v.CurrentSlot(),
			func() { v.Current = candidate },
			func() bool {
				scoreHere := roundingCost(v)
				if scoreHere < bestScore && val.CheckAfterMove(v, vertices, edges) {
					bestScore = scoreHere
					bestDX, bestDY = dx, dy
					found = true
				}
				return false // never keep a trial move; we re-apply the best one below
			},
		)
	}

	if !found {
		return false
	}
	v.SetCurrent(geom.NewPoint(origin.X+float64(bestDX), origin.Y+float64(bestDY)))
	return true
}

func roundingCost(v *drawing.Vertex) float64 {
	return geom.Dist(v.Current, v.Original)
}

// Run repeats climbOne for every vertex, in passes, until a full pass makes
// no change to any vertex. It returns the number of passes performed.
//
// Complexity: O(P·V·C) for P passes and C the cost of one validator call.
// P is finite because every applied move strictly decreases one vertex's
// displacement, which is bounded below by zero and changes by discrete
// grid steps.
func Run(d *drawing.Drawing, val *planarity.Validator, logger *slog.Logger) int {
	if logger == nil {
		logger = obslog.Logger()
	}
	logger.Info("hillclimbing for quality", "vertices", len(d.Vertices))

	rounds := 0
	changed := true
	for changed {
		rounds++
		changed = false
		for _, v := range d.Vertices {
			for climbOne(v, d.Vertices, d.Edges, val) {
				changed = true
			}
		}
	}
	logger.Info("hillclimbed for quality", "rounds", rounds)
	return rounds
}
