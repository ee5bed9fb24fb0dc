package hillclimb

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/latticedraw/latticedraw/drawing"
	"github.com/latticedraw/latticedraw/geom"
	"github.com/latticedraw/latticedraw/planarity"
)

func TestRunIsNoopOnAlreadyIntegerDrawing(t *testing.T) {
	d := drawing.New()
	a := d.AddVertex(geom.NewPoint(0, 0))
	b := d.AddVertex(geom.NewPoint(1, 0))
	d.AddEdge(a, b)
	d.SetRotationSystems()
	val := planarity.NewValidator()

	before := []geom.Point{a.Current, b.Current}
	rounds := Run(d, val, nil)
	assert.Equal(t, 1, rounds)
	assert.Equal(t, before[0], a.Current)
	assert.Equal(t, before[1], b.Current)
}

func TestRunMovesVertexCloserToOriginal(t *testing.T) {
	d := drawing.New()
	v := d.AddVertex(geom.NewPoint(0, 0))
	v.SetCurrent(geom.NewPoint(5, 5))
	val := planarity.NewValidator()

	Run(d, val, nil)
	assert.Less(t, geom.Dist(v.Current, v.Original), geom.Dist(geom.NewPoint(5, 5), v.Original))
}

func TestRunNeverLeavesInvalidDrawing(t *testing.T) {
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
	val := planarity.NewValidator()

	Run(d, val, nil)
	assert.True(t, val.CheckFull(d.Vertices, d.Edges))
}
