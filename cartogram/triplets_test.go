package cartogram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/latticedraw/latticedraw/drawing"
	"github.com/latticedraw/latticedraw/geom"
)

func TestBuildSystemPositionRowsTargetOriginal(t *testing.T) {
	d := drawing.New()
	a := d.AddVertex(geom.NewPoint(3, 4))
	d.AddVertex(geom.NewPoint(5, 6))
	_ = a

	sys := buildSystem(d.Vertices, d.Edges, false, false, false)
	assert.Equal(t, positionWeight*3, sys.rhs[0])
	assert.Equal(t, positionWeight*4, sys.rhs[1])
	assert.Equal(t, positionWeight*5, sys.rhs[2])
	assert.Equal(t, positionWeight*6, sys.rhs[3])
}

func TestBuildSystemEnlargesShortEdges(t *testing.T) {
	d := drawing.New()
	a := d.AddVertex(geom.NewPoint(0, 0))
	b := d.AddVertex(geom.NewPoint(0.1, 0))
	d.AddEdge(a, b)

	sys := buildSystem(d.Vertices, d.Edges, true, false, false)
	// rows 0-3 are position rows (two vertices), row 4 is the edge's x row.
	assert.InDelta(t, edgeWeight*edgeMinLength, sys.rhs[4], 1e-9)
}

func TestBuildSystemTooNearAddsRowsForClosePairs(t *testing.T) {
	d := drawing.New()
	a := d.AddVertex(geom.NewPoint(0, 0))
	b := d.AddVertex(geom.NewPoint(0.5, 0))
	d.AddEdge(a, b)

	without := buildSystem(d.Vertices, d.Edges, false, false, false)
	with := buildSystem(d.Vertices, d.Edges, false, true, false)
	assert.Greater(t, len(with.rhs), len(without.rhs))
}
