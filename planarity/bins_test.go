package planarity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/latticedraw/latticedraw/drawing"
	"github.com/latticedraw/latticedraw/geom"
)

func TestBinGridClearIsIdempotent(t *testing.T) {
	g := newBinGrid()
	d := drawing.New()
	a := d.AddVertex(geom.NewPoint(0, 0))
	b := d.AddVertex(geom.NewPoint(10, 10))
	e, _ := d.AddEdge(a, b)

	g.computeBounds(d.Vertices)
	g.clear()
	g.drawEdge(e)

	total := 0
	for _, bin := range g.bins {
		total += len(bin)
	}
	assert.Greater(t, total, 0)

	g.clear()
	total = 0
	for _, bin := range g.bins {
		total += len(bin)
	}
	assert.Equal(t, 0, total)
}

func TestBinGridVerticalEdge(t *testing.T) {
	g := newBinGrid()
	d := drawing.New()
	a := d.AddVertex(geom.NewPoint(0, 0))
	b := d.AddVertex(geom.NewPoint(0, 10))
	e, _ := d.AddEdge(a, b)
	g.computeBounds(d.Vertices)
	g.clear()
	g.drawEdge(e)
	total := 0
	for _, bin := range g.bins {
		total += len(bin)
	}
	assert.Greater(t, total, 0)
}

func TestBinGridNearHorizontalEdge(t *testing.T) {
	g := newBinGrid()
	d := drawing.New()
	a := d.AddVertex(geom.NewPoint(0, 0))
	b := d.AddVertex(geom.NewPoint(10, 1e-16))
	e, _ := d.AddEdge(a, b)
	g.computeBounds(d.Vertices)
	g.clear()
	g.drawEdge(e)
	total := 0
	for _, bin := range g.bins {
		total += len(bin)
	}
	assert.Greater(t, total, 0)
}
