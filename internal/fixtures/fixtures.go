// Package fixtures builds small synthetic drawings for tests: the two
// hand-placed scenario drawings (Square, PathOfThree) plus parameterized
// Cycle, Grid, and Star generators. Every fixture carries real-valued
// coordinates, so a feasibility strategy can operate on it directly. Only
// this package's own tests use it; the other packages' tests build their
// drawings inline.
package fixtures

import (
	"math"

	"github.com/latticedraw/latticedraw/drawing"
	"github.com/latticedraw/latticedraw/geom"
)

// Square returns a four-vertex quadrilateral whose corners sit at the
// centers of four adjacent unit cells — (0.5,0.5), (1.5,0.5), (1.5,1.5),
// (0.5,1.5) — connected as a 4-cycle. Every corner is equidistant from
// the four grid points of its cell, which makes it a useful worst-tie
// input for the rounding operators.
func Square() *drawing.Drawing {
	d := drawing.New()
	a := d.AddVertex(geom.NewPoint(0.5, 0.5))
	b := d.AddVertex(geom.NewPoint(1.5, 0.5))
	c := d.AddVertex(geom.NewPoint(1.5, 1.5))
	e := d.AddVertex(geom.NewPoint(0.5, 1.5))
	d.AddEdge(a, b)
	d.AddEdge(b, c)
	d.AddEdge(c, e)
	d.AddEdge(e, a)
	d.SetRotationSystems()
	return d
}

// PathOfThree returns the three-vertex path (0,0)-(0.25,0.6)-(0,1.2). At
// unit scale its middle vertex rounds onto the segment between the outer
// two, so feasibility requires scaling up first.
func PathOfThree() *drawing.Drawing {
	d := drawing.New()
	a := d.AddVertex(geom.NewPoint(0, 0))
	b := d.AddVertex(geom.NewPoint(0.25, 0.6))
	c := d.AddVertex(geom.NewPoint(0, 1.2))
	d.AddEdge(a, b)
	d.AddEdge(b, c)
	d.SetRotationSystems()
	return d
}

// Cycle returns an n-vertex simple cycle (n >= 3) whose vertices sit on a
// regular polygon of the given radius, centered at the origin.
// Complexity: O(n) time, O(n) space.
func Cycle(n int, radius float64) *drawing.Drawing {
	d := drawing.New()
	verts := make([]*drawing.Vertex, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		verts[i] = d.AddVertex(geom.NewPoint(radius*math.Cos(theta), radius*math.Sin(theta)))
	}
	for i := 0; i < n; i++ {
		d.AddEdge(verts[i], verts[(i+1)%n])
	}
	d.SetRotationSystems()
	return d
}

// Grid returns a rows x cols orthogonal grid drawing with unit spacing and
// 4-neighbor (right, down) connectivity. jitter perturbs each coordinate
// by up to that amount, deterministically per seed, so tests can exercise
// near-integer but not exactly-integer inputs.
// Complexity: O(rows·cols) time and space.
func Grid(rows, cols int, jitter float64, seed int64) *drawing.Drawing {
	d := drawing.New()
	verts := make([][]*drawing.Vertex, rows)
	rng := newJitterSource(seed)
	for r := 0; r < rows; r++ {
		verts[r] = make([]*drawing.Vertex, cols)
		for c := 0; c < cols; c++ {
			x := float64(c) + jitter*rng.signedUnit()
			y := float64(r) + jitter*rng.signedUnit()
			verts[r][c] = d.AddVertex(geom.NewPoint(x, y))
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				d.AddEdge(verts[r][c], verts[r][c+1])
			}
			if r+1 < rows {
				d.AddEdge(verts[r][c], verts[r+1][c])
			}
		}
	}
	d.SetRotationSystems()
	return d
}

// Star returns a hub-and-spoke drawing: one center vertex at the origin
// and n-1 leaves placed on a circle of the given radius. The hub's high
// degree makes it the drawing most sensitive to rotation-system checks.
func Star(n int, radius float64) *drawing.Drawing {
	d := drawing.New()
	hub := d.AddVertex(geom.NewPoint(0, 0))
	for i := 1; i < n; i++ {
		theta := 2 * math.Pi * float64(i-1) / float64(n-1)
		leaf := d.AddVertex(geom.NewPoint(radius*math.Cos(theta), radius*math.Sin(theta)))
		d.AddEdge(hub, leaf)
	}
	d.SetRotationSystems()
	return d
}

// jitterSource is a tiny deterministic linear-congruential generator used
// only to perturb Grid's vertex positions reproducibly, without pulling
// anneal's RNG (a stochastic-search concern) into a fixtures helper.
type jitterSource struct{ state uint64 }

func newJitterSource(seed int64) *jitterSource {
	s := uint64(seed)
	if s == 0 {
		s = 1
	}
	return &jitterSource{state: s}
}

func (j *jitterSource) signedUnit() float64 {
	j.state = j.state*6364136223846793005 + 1442695040888963407
	frac := float64(j.state>>11) / float64(1<<53)
	return 2*frac - 1
}
