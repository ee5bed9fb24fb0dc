package pipeline

import (
	"log/slog"

	"github.com/latticedraw/latticedraw/cartogram"
	"github.com/latticedraw/latticedraw/internal/obslog"
)

// Feasibility selects which operator (or none) drives a drawing onto
// integer coordinates before quality annealing runs.
type Feasibility string

// Recognized feasibility strategies, matching the CLI's --feasibility
// values one-for-one.
const (
	FeasibilityRound  Feasibility = "round"  // round.ScaleAndRound
	FeasibilityGreedy Feasibility = "greedy" // round.ScaleAndGreedy
	FeasibilityAnneal Feasibility = "anneal" // anneal.DensityAnneal with ContinuousDensity
	FeasibilityGrid   Feasibility = "grid"   // anneal.DensityAnneal with GridDensity
	FeasibilityCost   Feasibility = "cost"   // anneal.DensityAnneal with RoundingCost
	FeasibilityNone   Feasibility = "none"   // assume the input is already feasible
)

// Options configures one end-to-end Run, mirroring the CLI surface one
// option at a time.
type Options struct {
	// Feasibility selects the feasibility strategy. Defaults to
	// FeasibilityNone's zero value behaving like FeasibilityRound if left
	// unset is NOT assumed — callers should set this explicitly; Run
	// returns ErrUnknownFeasibility for an empty or unrecognized value.
	Feasibility Feasibility

	// Carto, if true, runs the cartogram preprocessor before feasibility.
	Carto        bool
	CartoOptions cartogram.Options

	// Steps is the quality-annealing iteration budget (CLI default 10000).
	Steps int
	// StartTemp is the initial quality temperature (CLI default 1.0).
	StartTemp float64
	// MinTemp is the quality temperature floor (CLI default 0).
	MinTemp float64
	// Cooling is the per-step quality cooling factor (CLI default 0.99),
	// ignored when AutoCool is set.
	Cooling float64
	// AutoCool derives Cooling from (StartTemp, MinTemp, Steps) instead of
	// using the Cooling field.
	AutoCool bool

	// MaxDensityIterations bounds DensityAnneal's search when Feasibility
	// is one of anneal/grid/cost.
	MaxDensityIterations int

	// HillClimb, if true, runs the hill-climb postprocess after quality
	// annealing.
	HillClimb bool

	// Grid, if positive, rescales the input so its largest coordinate
	// extent (max over x and y of max-min) equals Grid before any other
	// processing runs.
	Grid float64

	// NoCenter, if true, skips the default centering step (translating the
	// drawing so its bounding-box center sits at the origin) that Run
	// otherwise performs right after loading/rescaling.
	NoCenter bool

	// Seed seeds the deterministic RNG shared by the density and quality
	// annealers.
	Seed int64

	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return obslog.Logger()
}

// Result carries both the final output and the intermediate feasible
// drawing, so a caller mirroring the CLI's --dump flag can persist the
// latter without re-running the feasibility phase.
type Result struct {
	// Feasible is a snapshot of the line-graph text encoding of the
	// drawing immediately after the feasibility phase (and before quality
	// annealing), matching the CLI's feasible.agf dump target.
	Feasible []byte

	// Rounds is the number of hill-climb passes performed, counting the
	// final pass that found no improving move (0 if HillClimb was false; 1
	// if the first pass already found no improving move).
	Rounds int
}
