package anneal

import (
	"math"

	"github.com/latticedraw/latticedraw/drawing"
	"github.com/latticedraw/latticedraw/geom"
)

// Mutate perturbs v.Current in place. If v is already rounded, it adds a
// uniformly random non-zero integer offset in {-1,0,1}^2 (the move the
// quality annealer always uses, and the move density annealing uses once a
// vertex has become rounded). If v is not rounded, it independently
// rounds each coordinate down or up with probability 1/2 — a move that can
// make the vertex rounded in one step.
func Mutate(v *drawing.Vertex, rng *RNG) {
	if v.IsRounded {
		dx, dy := rng.NonZeroOffset2D()
		v.Current = geom.NewPoint(v.Current.X+float64(dx), v.Current.Y+float64(dy))
		return
	}
	x := v.Current.X
	if rng.Bernoulli(0.5) {
		x = math.Floor(x)
	} else {
		x = math.Ceil(x)
	}
	y := v.Current.Y
	if rng.Bernoulli(0.5) {
		y = math.Floor(y)
	} else {
		y = math.Ceil(y)
	}
	v.Current = geom.NewPoint(x, y)
}
