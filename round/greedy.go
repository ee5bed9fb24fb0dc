package round

import (
	"math"

	"github.com/latticedraw/latticedraw/checkpoint"
	"github.com/latticedraw/latticedraw/drawing"
	"github.com/latticedraw/latticedraw/geom"
	"github.com/latticedraw/latticedraw/planarity"
)

// Greedy attempts, in order, up to four grid-adjacent integer positions for
// v — (round(x),round(y)), the two single-axis "round away" combinations
// ordered by which axis is farther from its nearest integer, then the full
// diagonal round-away — accepting the first that keeps the drawing a valid
// planar embedding. It reports whether any attempt succeeded; on success
// v.IsRounded is true and v.Current holds the accepted position. On
// failure v is left bit-identical to how it started.
//
// Complexity: at most four CheckAfterMove calls, each dominated by the
// global intersection test; everything else here is O(1).
func Greedy(v *drawing.Vertex, vertices []*drawing.Vertex, edges []*drawing.Edge, val *planarity.Validator) bool {
	if attemptMove(v, geom.Round(v.Current), vertices, edges, val) {
		return true
	}

	dx := math.Abs(v.Current.X - math.Round(v.Current.X))
	dy := math.Abs(v.Current.Y - math.Round(v.Current.Y))

	roundedX, roundedY := math.Round(v.Current.X), math.Round(v.Current.Y)
	awayX, awayY := geom.RoundAway(v.Current.X), geom.RoundAway(v.Current.Y)

	if dx >= dy {
		if attemptMove(v, geom.NewPoint(awayX, roundedY), vertices, edges, val) {
			return true
		}
		if attemptMove(v, geom.NewPoint(roundedX, awayY), vertices, edges, val) {
			return true
		}
	} else {
		if attemptMove(v, geom.NewPoint(roundedX, awayY), vertices, edges, val) {
			return true
		}
		if attemptMove(v, geom.NewPoint(awayX, roundedY), vertices, edges, val) {
			return true
		}
	}

	return attemptMove(v, geom.NewPoint(awayX, awayY), vertices, edges, val)
}

// attemptMove moves v to p under a checkpoint, accepting iff the move keeps
// the drawing valid; on acceptance it refreshes v.IsRounded.
func attemptMove(v *drawing.Vertex, p geom.Point, vertices []*drawing.Vertex, edges []*drawing.Edge, val *planarity.Validator) bool {
	return checkpoint.Try(v.CurrentSlot(),
		func() { v.Current = p },
		func() bool {
			ok := val.CheckAfterMove(v, vertices, edges)
			if ok {
				v.RefreshRounded()
			}
			return ok
		},
	)
}
