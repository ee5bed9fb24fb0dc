package anneal

import (
	"log/slog"

	"github.com/latticedraw/latticedraw/checkpoint"
	"github.com/latticedraw/latticedraw/drawing"
	"github.com/latticedraw/latticedraw/internal/obslog"
	"github.com/latticedraw/latticedraw/planarity"
)

// stepMutate runs a single annealing step against v: it records v's
// rounding cost before mutating, applies Mutate, and returns a function
// that computes the drawing's would-be total score from the recorded
// before-cost and v's cost after the mutation, without re-summing every
// other vertex.
func stepMutate(v *drawing.Vertex, rng *RNG, score float64) (apply func() float64) {
	before := VertexRoundingCost(v)
	Mutate(v, rng)
	return func() float64 {
		return score - before + VertexRoundingCost(v)
	}
}

// QualityOptions configures QualityAnneal.
type QualityOptions struct {
	// Steps is the number of annealing iterations to run.
	Steps int

	// StartTemp is the initial temperature.
	StartTemp float64

	// MinTemp is the floor temperature: once Cooling has driven the
	// running temperature below it, temperature is clamped to MinTemp and
	// cooling is disabled for the rest of the run, rather than letting an
	// exponential schedule asymptote forever.
	MinTemp float64

	// Cooling is the per-step multiplicative cooling factor. Ignored if
	// AutoCool is true.
	Cooling float64

	// AutoCool, if true, derives Cooling from ExponentialSchedule(StartTemp,
	// MinTemp, Steps) instead of using the Cooling field.
	AutoCool bool

	Logger *slog.Logger
}

func (o QualityOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return obslog.Logger()
}

// QualityAnneal runs uniform-random-vertex, integer-offset-only annealing
// to minimize total rounding cost (summed vertex displacement from
// Original), for a drawing that is already fully rounded. Every step
// samples one vertex uniformly, mutates it, and accepts the move under
// Metropolis acceptance iff the move keeps the drawing valid; once
// temperature decays to MinTemp, cooling is disabled and temperature pins
// at the floor for the remainder of the run.
//
// Complexity: O(Steps·C) where C is one CheckAfterMove call; the score is
// maintained incrementally (see stepMutate), so each step's bookkeeping
// beyond validation is O(1).
func QualityAnneal(d *drawing.Drawing, val *planarity.Validator, rng *RNG, opts QualityOptions) {
	vertices, edges := d.Vertices, d.Edges
	log := opts.logger()
	if len(vertices) == 0 || opts.Steps <= 0 {
		return
	}

	cooling := opts.Cooling
	if opts.AutoCool {
		cooling = ExponentialSchedule(opts.StartTemp, opts.MinTemp, opts.Steps)
		log.Info("derived cooling schedule", "start_temp", opts.StartTemp, "min_temp", opts.MinTemp, "steps", opts.Steps, "cooling", cooling)
	}

	temperature := opts.StartTemp
	score := evaluateRoundingCost(vertices)

	log.Info("annealing for quality", "vertices", len(vertices), "steps", opts.Steps, "start_temp", temperature)

	for step := 0; step < opts.Steps; step++ {
		temperature *= cooling
		if temperature < opts.MinTemp {
			temperature = opts.MinTemp
			cooling = 1.0
		}

		v := vertices[rng.Intn(len(vertices))]

		var computeNewScore func() float64
		checkpoint.Try(v.CurrentSlot(),
			func() { computeNewScore = stepMutate(v, rng, score) },
			func() bool {
				if !val.CheckAfterMove(v, vertices, edges) {
					return false
				}
				newScore := computeNewScore()
				if acceptMove(temperature, score, newScore, rng) {
					score = newScore
					return true
				}
				return false
			},
		)
	}

	log.Info("annealed for quality", "steps", opts.Steps, "average_cost_per_vertex", score/float64(len(vertices)))
}
