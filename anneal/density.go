package anneal

import (
	"log/slog"

	"github.com/latticedraw/latticedraw/checkpoint"
	"github.com/latticedraw/latticedraw/drawing"
	"github.com/latticedraw/latticedraw/internal/obslog"
	"github.com/latticedraw/latticedraw/planarity"
	"github.com/latticedraw/latticedraw/round"
)

// DensityOptions configures DensityAnneal. MaxIterations bounds the search
// so the call returns control (and an error) to its caller instead of
// spinning forever on a pathological input. Logger defaults to
// obslog.Logger() when nil.
type DensityOptions struct {
	Score         ScoreFunc
	MaxIterations int
	Logger        *slog.Logger
}

func (o DensityOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return obslog.Logger()
}

// DensityAnneal repeatedly greedy-rounds every unrounded vertex and, failing
// that, perturbs a density-weighted random vertex under Metropolis
// acceptance, until every vertex is rounded (feasibility) or MaxIterations
// is exhausted. Each iteration greedy-rounds every unrounded vertex before
// sampling; zeroes already-rounded vertices' sampling weight on odd
// iterations (so fresh vertices get first pick at narrowing the search
// every other pass); multiplies an unrounded vertex's weight by 10; and
// always accepts a move that newly rounds a vertex, regardless of the
// Metropolis test.
//
// Complexity:
//   - Time: O(I·(V·C + S)) worst case over I iterations — each iteration
//     greedy-rounds up to V vertices (C = one validator call) and may
//     re-evaluate the score (S = cost of opts.Score; O(V²) for
//     ContinuousDensity, O(V) for the others).
//   - Space: O(V) for the sampling weights.
func DensityAnneal(d *drawing.Drawing, val *planarity.Validator, rng *RNG, opts DensityOptions) error {
	vertices, edges := d.Vertices, d.Edges
	log := opts.logger()

	numRounded := 0
	for _, v := range vertices {
		if v.IsRounded {
			numRounded++
		}
	}
	if numRounded == len(vertices) {
		log.Info("input already feasible, skipping density annealing")
		return nil
	}

	score := opts.Score.Evaluate(vertices)
	temperature := 1.0
	const cooling = 1.0
	weights := make([]float64, len(vertices))

	log.Info("annealing for feasibility", "vertices", len(vertices), "max_iterations", opts.MaxIterations)

	for iteration := 1; iteration <= opts.MaxIterations; iteration++ {
		temperature *= cooling

		greedyChanged := false
		for _, v := range vertices {
			if !v.IsRounded && round.Greedy(v, vertices, edges, val) {
				numRounded++
				greedyChanged = true
			}
		}
		if greedyChanged {
			score = opts.Score.Evaluate(vertices)
		}
		if numRounded == len(vertices) {
			log.Info("found feasible drawing by greedy", "iterations", iteration)
			return nil
		}

		for _, v := range vertices {
			w := v.Density
			switch {
			case !v.IsRounded:
				w *= 10
			case iteration%2 == 1:
				w = 0
			}
			weights[v.ID] = w
		}
		v := vertices[rng.DiscreteWeighted(weights)]

		accepted := checkpoint.Try(v.CurrentSlot(),
			func() { Mutate(v, rng) },
			func() bool {
				if !val.CheckAfterMove(v, vertices, edges) {
					return false
				}
				newScore := opts.Score.Evaluate(vertices)
				wasRounded := v.IsRounded
				v.RefreshRounded()
				if !wasRounded && v.IsRounded {
					numRounded++
					score = newScore
					return true
				}
				if acceptMove(temperature, score, newScore, rng) {
					score = newScore
					return true
				}
				v.IsRounded = wasRounded
				return false
			},
		)
		_ = accepted

		if numRounded == len(vertices) {
			log.Info("found feasible drawing", "iterations", iteration)
			return nil
		}
	}

	log.Error("density annealing failed to find a feasible solution", "iterations", opts.MaxIterations)
	return ErrDensityAnnealFailed
}
