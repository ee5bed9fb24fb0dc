package cartogram

import (
	"log/slog"

	"github.com/latticedraw/latticedraw/drawing"
	"github.com/latticedraw/latticedraw/geom"
	"github.com/latticedraw/latticedraw/internal/obslog"
	"github.com/latticedraw/latticedraw/planarity"
)

// Options selects which of the three optional constraint families the
// least-squares system includes, beyond the always-present position and
// edge families.
type Options struct {
	// EnlargeShortEdges lengthens an edge's target displacement up to
	// edgeMinLength when its original length falls short of it.
	EnlargeShortEdges bool

	// SpaceNearbyVertices adds a too-near constraint for every pair of
	// vertices whose original positions are closer than tooNearDistance.
	SpaceNearbyVertices bool

	// AddDelaunayConstraints triangulates the current positions and adds a
	// constraint for every short edge of that triangulation.
	AddDelaunayConstraints bool

	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return obslog.Logger()
}

// Apply solves the cartogram least-squares system for d and moves every
// vertex's Current position toward the solution, backing off linearly
// (solution weight t stepping down by 0.1 from 1.0) until the result is a
// valid planar embedding. t = 0 always succeeds, since it reproduces the
// untouched Original positions, so Apply always returns a valid drawing.
func Apply(d *drawing.Drawing, val *planarity.Validator, opts Options) error {
	log := opts.logger()
	n := len(d.Vertices)
	if n < 2 {
		return ErrDegenerateInput
	}

	sys := buildSystem(d.Vertices, d.Edges, opts.EnlargeShortEdges, opts.SpaceNearbyVertices, opts.AddDelaunayConstraints)
	numRows := len(sys.rhs)

	x, err := solveLeastSquares(sys, numRows)
	if err != nil {
		return err
	}

	solved := make([]geom.Point, n)
	for _, v := range d.Vertices {
		solved[v.ID] = geom.NewPoint(x.AtVec(xID(v.ID)), x.AtVec(yID(v.ID)))
	}

	t := backOff(d, val, solved, log)
	log.Info("accepting cartogram result", "t", t)
	d.SetRotationSystems()
	return nil
}

// backOff moves every vertex toward its solved position, starting at the
// full solution (t = 1.0) and stepping t down by 0.1 until the drawing
// validates. It returns the accepted t. Termination is guaranteed: at t = 0
// the positions are exactly the Original ones, which are valid by the
// caller's precondition.
// Complexity: at most eleven CheckFull calls.
func backOff(d *drawing.Drawing, val *planarity.Validator, solved []geom.Point, log *slog.Logger) float64 {
	t := 1.0
	applyAt(d, solved, t)
	for !val.CheckFull(d.Vertices, d.Edges) {
		t -= 0.1
		log.Info("checking cartogram result", "t", t)
		applyAt(d, solved, t)
	}
	return t
}

// applyAt sets every vertex's Current to the lerp between its Original and
// its solved position at parameter t.
func applyAt(d *drawing.Drawing, solved []geom.Point, t float64) {
	for _, v := range d.Vertices {
		v.SetCurrent(geom.Lerp(v.Original, solved[v.ID], t))
	}
}
