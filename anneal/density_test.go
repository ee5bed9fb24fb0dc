package anneal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticedraw/latticedraw/drawing"
	"github.com/latticedraw/latticedraw/geom"
	"github.com/latticedraw/latticedraw/planarity"
)

func TestDensityAnnealAlreadyFeasibleIsNoop(t *testing.T) {
	d := drawing.New()
	a := d.AddVertex(geom.NewPoint(0, 0))
	b := d.AddVertex(geom.NewPoint(1, 0))
	d.AddEdge(a, b)
	d.SetRotationSystems()
	val := planarity.NewValidator()

	before := []geom.Point{a.Current, b.Current}
	err := DensityAnneal(d, val, NewRNG(1), DensityOptions{Score: ContinuousDensity, MaxIterations: 100})
	require.NoError(t, err)
	assert.Equal(t, before[0], a.Current)
	assert.Equal(t, before[1], b.Current)
}

func TestDensityAnnealReachesFeasibilitySquare(t *testing.T) {
	d := drawing.New()
	a := d.AddVertex(geom.NewPoint(0.4, 0.4))
	b := d.AddVertex(geom.NewPoint(1.6, 0.4))
	c := d.AddVertex(geom.NewPoint(1.6, 1.6))
	e := d.AddVertex(geom.NewPoint(0.4, 1.6))
	d.AddEdge(a, b)
	d.AddEdge(b, c)
	d.AddEdge(c, e)
	d.AddEdge(e, a)
	d.SetRotationSystems()
	val := planarity.NewValidator()

	err := DensityAnneal(d, val, NewRNG(5), DensityOptions{Score: ContinuousDensity, MaxIterations: 10000})
	require.NoError(t, err)
	for _, v := range d.Vertices {
		assert.True(t, v.IsRounded)
	}
	assert.True(t, val.CheckFull(d.Vertices, d.Edges))
}

func TestDensityAnnealReachesFeasibilityWithGridDensityScore(t *testing.T) {
	d := drawing.New()
	a := d.AddVertex(geom.NewPoint(0.2, 0.2))
	b := d.AddVertex(geom.NewPoint(0.2, 0.8))
	d.AddEdge(a, b)
	d.SetRotationSystems()
	val := planarity.NewValidator()

	err := DensityAnneal(d, val, NewRNG(2), DensityOptions{Score: GridDensity, MaxIterations: 10000})
	require.NoError(t, err)
	for _, v := range d.Vertices {
		assert.True(t, v.IsRounded)
	}
}

func TestDensityAnnealFailsWhenOutOfIterations(t *testing.T) {
	d := drawing.New()
	a := d.AddVertex(geom.NewPoint(0.3, 0.3))
	b := d.AddVertex(geom.NewPoint(0.3, 0.7))
	d.AddEdge(a, b)
	d.SetRotationSystems()
	val := planarity.NewValidator()

	err := DensityAnneal(d, val, NewRNG(1), DensityOptions{Score: ContinuousDensity, MaxIterations: 0})
	assert.ErrorIs(t, err, ErrDensityAnnealFailed)
}
