package cartogram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticedraw/latticedraw/drawing"
	"github.com/latticedraw/latticedraw/geom"
	"github.com/latticedraw/latticedraw/planarity"
)

func squareDrawing() *drawing.Drawing {
	d := drawing.New()
	a := d.AddVertex(geom.NewPoint(0, 0))
	b := d.AddVertex(geom.NewPoint(2, 0))
	c := d.AddVertex(geom.NewPoint(2, 2))
	e := d.AddVertex(geom.NewPoint(0, 2))
	d.AddEdge(a, b)
	d.AddEdge(b, c)
	d.AddEdge(c, e)
	d.AddEdge(e, a)
	d.SetRotationSystems()
	return d
}

func TestApplyReturnsValidDrawing(t *testing.T) {
	d := squareDrawing()
	val := planarity.NewValidator()

	err := Apply(d, val, Options{EnlargeShortEdges: true, SpaceNearbyVertices: true})
	require.NoError(t, err)
	assert.True(t, val.CheckFull(d.Vertices, d.Edges))
}

func TestApplyWithDelaunayConstraintsStillValid(t *testing.T) {
	d := squareDrawing()
	val := planarity.NewValidator()

	err := Apply(d, val, Options{AddDelaunayConstraints: true})
	require.NoError(t, err)
	assert.True(t, val.CheckFull(d.Vertices, d.Edges))
}

func TestApplyRejectsDegenerateInput(t *testing.T) {
	d := drawing.New()
	d.AddVertex(geom.NewPoint(0, 0))
	val := planarity.NewValidator()

	err := Apply(d, val, Options{})
	assert.ErrorIs(t, err, ErrDegenerateInput)
}

// TestBackOffDescendsToOriginalOnHostileSolution rigs a solved position set
// that keeps two disjoint edges crossing at every interpolation step t >=
// 0.1, so the back-off must walk all the way down to (numerically) t = 0,
// where the drawing reverts to its valid original positions.
func TestBackOffDescendsToOriginalOnHostileSolution(t *testing.T) {
	d := drawing.New()
	a := d.AddVertex(geom.NewPoint(0, -1))
	b := d.AddVertex(geom.NewPoint(0, 1))
	c := d.AddVertex(geom.NewPoint(1, 0))
	e := d.AddVertex(geom.NewPoint(3, 0))
	d.AddEdge(a, b)
	d.AddEdge(c, e)
	d.SetRotationSystems()
	val := planarity.NewValidator()
	require.True(t, val.CheckFull(d.Vertices, d.Edges))

	// Send c far into negative x: lerp(c, t).X = 1 - 101t crosses the
	// vertical edge a-b for every t > 1/101, so every back-off step down
	// to t = 0.1 stays invalid.
	solved := []geom.Point{a.Original, b.Original, geom.NewPoint(-100, 0), e.Original}

	accepted := backOff(d, val, solved, Options{}.logger())
	assert.Less(t, accepted, 0.1)
	assert.True(t, val.CheckFull(d.Vertices, d.Edges))
	assert.InDelta(t, c.Original.X, d.Vertices[2].Current.X, 1e-9)
}

// TestBackOffKeepsFullSolutionWhenValid is the happy path: a solved set
// identical to the originals validates immediately at t = 1.
func TestBackOffKeepsFullSolutionWhenValid(t *testing.T) {
	d := squareDrawing()
	val := planarity.NewValidator()
	solved := make([]geom.Point, len(d.Vertices))
	for _, v := range d.Vertices {
		solved[v.ID] = v.Original
	}
	accepted := backOff(d, val, solved, Options{}.logger())
	assert.Equal(t, 1.0, accepted)
}
