package planarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticedraw/latticedraw/drawing"
	"github.com/latticedraw/latticedraw/geom"
)

func square() *drawing.Drawing {
	d := drawing.New()
	a := d.AddVertex(geom.NewPoint(0, 0))
	b := d.AddVertex(geom.NewPoint(1, 0))
	c := d.AddVertex(geom.NewPoint(1, 1))
	e := d.AddVertex(geom.NewPoint(0, 1))
	d.AddEdge(a, b)
	d.AddEdge(b, c)
	d.AddEdge(c, e)
	d.AddEdge(e, a)
	d.SetRotationSystems()
	return d
}

func TestCheckFullValidSquare(t *testing.T) {
	d := square()
	v := NewValidator()
	assert.True(t, v.CheckFull(d.Vertices, d.Edges))
}

func TestCheckFullEmptyEdgeSet(t *testing.T) {
	d := drawing.New()
	d.AddVertex(geom.NewPoint(0, 0))
	v := NewValidator()
	assert.True(t, v.CheckFull(d.Vertices, d.Edges))
}

func TestCheckFullSingleVertexNoEdges(t *testing.T) {
	d := drawing.New()
	d.AddVertex(geom.NewPoint(3, 4))
	v := NewValidator()
	assert.True(t, v.CheckFull(d.Vertices, d.Edges))
}

func TestCheckFullDetectsCrossing(t *testing.T) {
	d := drawing.New()
	a := d.AddVertex(geom.NewPoint(0, 0))
	b := d.AddVertex(geom.NewPoint(1, 1))
	c := d.AddVertex(geom.NewPoint(0, 1))
	e := d.AddVertex(geom.NewPoint(1, 0))
	d.AddEdge(a, b) // diagonal
	d.AddEdge(c, e) // crossing diagonal
	v := NewValidator()
	assert.False(t, v.CheckIntersections(d.Vertices, d.Edges))
}

func TestCheckFullDetectsVertexOverlap(t *testing.T) {
	d := drawing.New()
	a := d.AddVertex(geom.NewPoint(0, 0))
	b := d.AddVertex(geom.NewPoint(0, 0))
	v := NewValidator()
	assert.False(t, VertexOverlapOK(d.Vertices, a))
	assert.False(t, VertexOverlapOK(d.Vertices, b))
	assert.False(t, v.CheckFull(d.Vertices, d.Edges))
}

func TestVertexTwoEdgesAlwaysValidRotsys(t *testing.T) {
	d := drawing.New()
	center := d.AddVertex(geom.NewPoint(0, 0))
	a := d.AddVertex(geom.NewPoint(1, 1))
	b := d.AddVertex(geom.NewPoint(-1, -1)) // same angle direction, opposite side
	d.AddEdge(center, a)
	d.AddEdge(center, b)
	assert.True(t, RotSysOK(center))
}

func TestRotSysRejectsDuplicateAngle(t *testing.T) {
	d := drawing.New()
	center := d.AddVertex(geom.NewPoint(0, 0))
	a := d.AddVertex(geom.NewPoint(1, 0))
	b := d.AddVertex(geom.NewPoint(2, 0)) // exact same angle as a, from center
	c := d.AddVertex(geom.NewPoint(0, 1))
	d.AddEdge(center, a)
	d.AddEdge(center, b)
	d.AddEdge(center, c)
	assert.False(t, RotSysOK(center))
}

func TestSharedEndpointEdgesNeverReportIntersecting(t *testing.T) {
	d := drawing.New()
	center := d.AddVertex(geom.NewPoint(0, 0))
	a := d.AddVertex(geom.NewPoint(1, 0))
	b := d.AddVertex(geom.NewPoint(0, 1))
	d.AddEdge(center, a)
	d.AddEdge(center, b)
	v := NewValidator()
	assert.True(t, v.CheckIntersections(d.Vertices, d.Edges))
}

// TestValidatorAgreement checks that the validator's components agree:
// CheckFull(D) iff every v satisfies RotSysOK and VertexOverlapOK, and
// the global intersection test passes.
func TestValidatorAgreement(t *testing.T) {
	d := square()
	v := NewValidator()
	full := v.CheckFull(d.Vertices, d.Edges)

	allOK := true
	for _, vert := range d.Vertices {
		if !RotSysOK(vert) || !VertexOverlapOK(d.Vertices, vert) {
			allOK = false
		}
	}
	allOK = allOK && v.CheckIntersections(d.Vertices, d.Edges)

	require.Equal(t, allOK, full)
}
