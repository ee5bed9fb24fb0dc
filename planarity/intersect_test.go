package planarity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/latticedraw/latticedraw/geom"
)

func TestSegmentsIntersectProperCrossing(t *testing.T) {
	assert.True(t, segmentsIntersect(
		geom.NewPoint(0, 0), geom.NewPoint(2, 2),
		geom.NewPoint(0, 2), geom.NewPoint(2, 0),
	))
}

func TestSegmentsIntersectDisjoint(t *testing.T) {
	assert.False(t, segmentsIntersect(
		geom.NewPoint(0, 0), geom.NewPoint(1, 0),
		geom.NewPoint(0, 5), geom.NewPoint(1, 5),
	))
}

func TestSegmentsIntersectCollinearOverlap(t *testing.T) {
	assert.True(t, segmentsIntersect(
		geom.NewPoint(0, 0), geom.NewPoint(2, 0),
		geom.NewPoint(1, 0), geom.NewPoint(3, 0),
	))
}

func TestSegmentsIntersectTouchingEndpoint(t *testing.T) {
	assert.True(t, segmentsIntersect(
		geom.NewPoint(0, 0), geom.NewPoint(1, 1),
		geom.NewPoint(1, 1), geom.NewPoint(2, 0),
	))
}

func TestSegmentsIntersectZeroLength(t *testing.T) {
	// A degenerate (zero-length) segment that sits exactly on the other.
	assert.True(t, segmentsIntersect(
		geom.NewPoint(0.5, 0.5), geom.NewPoint(0.5, 0.5),
		geom.NewPoint(0, 0), geom.NewPoint(1, 1),
	))
}

func TestSegmentsIntersectCollinearButSeparate(t *testing.T) {
	assert.False(t, segmentsIntersect(
		geom.NewPoint(0, 0), geom.NewPoint(1, 0),
		geom.NewPoint(2, 0), geom.NewPoint(3, 0),
	))
}
