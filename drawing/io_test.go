package drawing

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticedraw/latticedraw/geom"
)

func TestLineGraphRoundTrip(t *testing.T) {
	d := New()
	a := d.AddVertex(geom.NewPoint(0.5, 0.5))
	b := d.AddVertex(geom.NewPoint(1.5, 0.5))
	c := d.AddVertex(geom.NewPoint(1.5, 1.5))
	d.AddEdge(a, b)
	d.AddEdge(b, c)

	var buf bytes.Buffer
	require.NoError(t, WriteLineGraph(&buf, d))

	got, err := LoadLineGraph(&buf)
	require.NoError(t, err)
	require.Len(t, got.Vertices, 3)
	require.Len(t, got.Edges, 2)
	assert.Equal(t, geom.NewPoint(0.5, 0.5), got.Vertices[0].Original)
	assert.Equal(t, 0, got.Edges[0].A.ID)
	assert.Equal(t, 1, got.Edges[0].B.ID)
}

func TestLoadLineGraphMalformed(t *testing.T) {
	_, err := LoadLineGraph(strings.NewReader("not-a-number\n0\n"))
	assert.ErrorIs(t, err, ErrMalformedLineGraph)

	_, err = LoadLineGraph(strings.NewReader("1\n0\n1 2 3\n")) // missing field
	assert.ErrorIs(t, err, ErrMalformedLineGraph)

	_, err = LoadLineGraph(strings.NewReader("1\n1\n0 0 0 0\n5 0\n")) // bad endpoint id
	assert.ErrorIs(t, err, ErrMalformedLineGraph)
}
