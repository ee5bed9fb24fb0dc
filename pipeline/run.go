package pipeline

import (
	"bytes"
	"math"

	"github.com/latticedraw/latticedraw/anneal"
	"github.com/latticedraw/latticedraw/cartogram"
	"github.com/latticedraw/latticedraw/drawing"
	"github.com/latticedraw/latticedraw/geom"
	"github.com/latticedraw/latticedraw/hillclimb"
	"github.com/latticedraw/latticedraw/planarity"
	"github.com/latticedraw/latticedraw/round"
)

// Run executes the full processing sequence against d, in place: an
// optional grid rescale and centering, an optional cartogram preprocess,
// the chosen feasibility strategy, mandatory quality annealing, and an
// optional hill-climb postprocess. d's rotation systems must already be
// set (drawing.SetRotationSystems) before calling Run; cartogram re-sorts
// them itself after moving vertices wholesale, the one legitimate moment
// to re-derive the embedding rather than validate against it.
func Run(d *drawing.Drawing, opts Options) (Result, error) {
	log := opts.logger()
	val := planarity.NewValidator()
	rng := anneal.NewRNG(opts.Seed)

	if opts.Grid > 0 {
		rescaleToGrid(d, opts.Grid)
	}
	if !opts.NoCenter {
		center(d)
	}

	if opts.Carto {
		log.Info("running cartogram preprocess")
		if err := cartogram.Apply(d, val, opts.CartoOptions); err != nil {
			return Result{}, err
		}
	}

	if err := runFeasibility(d, val, rng, opts); err != nil {
		return Result{}, err
	}

	var feasibleSnapshot bytes.Buffer
	if err := drawing.WriteLineGraph(&feasibleSnapshot, d); err != nil {
		return Result{}, err
	}

	anneal.QualityAnneal(d, val, rng, anneal.QualityOptions{
		Steps:     opts.Steps,
		StartTemp: opts.StartTemp,
		MinTemp:   opts.MinTemp,
		Cooling:   opts.Cooling,
		AutoCool:  opts.AutoCool,
		Logger:    log,
	})

	rounds := 0
	if opts.HillClimb {
		rounds = hillclimb.Run(d, val, log)
	}

	return Result{Feasible: feasibleSnapshot.Bytes(), Rounds: rounds}, nil
}

func runFeasibility(d *drawing.Drawing, val *planarity.Validator, rng *anneal.RNG, opts Options) error {
	switch opts.Feasibility {
	case FeasibilityRound:
		round.ScaleAndRound(d, val)
		return nil
	case FeasibilityGreedy:
		round.ScaleAndGreedy(d, val)
		return nil
	case FeasibilityNone:
		for _, v := range d.Vertices {
			v.IsRounded = true
		}
		return nil
	case FeasibilityAnneal, FeasibilityGrid, FeasibilityCost:
		score := scoreForFeasibility(opts.Feasibility)
		return anneal.DensityAnneal(d, val, rng, anneal.DensityOptions{
			Score:         score,
			MaxIterations: opts.MaxDensityIterations,
		})
	default:
		return ErrUnknownFeasibility
	}
}

func scoreForFeasibility(f Feasibility) anneal.ScoreFunc {
	switch f {
	case FeasibilityGrid:
		return anneal.GridDensity
	case FeasibilityCost:
		return anneal.RoundingCost
	default:
		return anneal.ContinuousDensity
	}
}

// rescaleToGrid multiplies every vertex's Original and Current position so
// that the drawing's largest coordinate extent (the greater of the x and y
// spans of the Original positions) equals extent.
func rescaleToGrid(d *drawing.Drawing, extent float64) {
	if len(d.Vertices) == 0 {
		return
	}
	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
	for _, v := range d.Vertices {
		minX, maxX = math.Min(minX, v.Original.X), math.Max(maxX, v.Original.X)
		minY, maxY = math.Min(minY, v.Original.Y), math.Max(maxY, v.Original.Y)
	}
	span := math.Max(maxX-minX, maxY-minY)
	if span == 0 {
		return
	}
	factor := extent / span
	for _, v := range d.Vertices {
		v.Original = geom.NewPoint(v.Original.X*factor, v.Original.Y*factor)
		v.SetCurrent(geom.NewPoint(v.Current.X*factor, v.Current.Y*factor))
	}
}

// center translates every vertex so the drawing's bounding-box center sits
// at the origin, applied identically to both Original and Current so the
// rounding-cost objective still measures displacement from the (now
// re-centered) input rather than picking up a spurious translation term.
func center(d *drawing.Drawing) {
	if len(d.Vertices) == 0 {
		return
	}
	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
	for _, v := range d.Vertices {
		minX, maxX = math.Min(minX, v.Original.X), math.Max(maxX, v.Original.X)
		minY, maxY = math.Min(minY, v.Original.Y), math.Max(maxY, v.Original.Y)
	}
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	for _, v := range d.Vertices {
		v.Original = geom.NewPoint(v.Original.X-cx, v.Original.Y-cy)
		v.SetCurrent(geom.NewPoint(v.Current.X-cx, v.Current.Y-cy))
	}
}
