package planarity

import (
	"math"

	"github.com/latticedraw/latticedraw/drawing"
)

// W is the fixed bin-grid width/height used by the broad-phase intersection
// filter.
const W = 512

// binGrid is the scratch structure the broad-phase filter rasterizes edges
// into. Its lifetime spans a single CheckIntersections call; it is cleared
// (not reallocated) at the start of each call and must never be shared
// between concurrent validations.
type binGrid struct {
	bins                   [][]*drawing.Edge
	minX, minY, maxX, maxY float64
}

func newBinGrid() *binGrid {
	return &binGrid{bins: make([][]*drawing.Edge, W*W)}
}

// clear empties every bin, keeping the backing arrays for reuse.
// Complexity: O(W²).
func (g *binGrid) clear() {
	for i := range g.bins {
		if len(g.bins[i]) > 0 {
			g.bins[i] = g.bins[i][:0]
		}
	}
}

// computeBounds records the bounding box of every Current position, which
// fixes the world-to-bin-space mapping for this call. Complexity: O(V).
func (g *binGrid) computeBounds(vertices []*drawing.Vertex) {
	g.minX, g.minY = math.MaxFloat64, math.MaxFloat64
	g.maxX, g.maxY = -math.MaxFloat64, -math.MaxFloat64
	for _, v := range vertices {
		g.minX = math.Min(g.minX, v.Current.X)
		g.maxX = math.Max(g.maxX, v.Current.X)
		g.minY = math.Min(g.minY, v.Current.Y)
		g.maxY = math.Max(g.maxY, v.Current.Y)
	}
}

func scaleToUnit(x, min, max float64) float64 {
	if max == min {
		return 0
	}
	return (x - min) / (max - min)
}

// binX and binY map a world coordinate into [1, W-1] bin space.
func (g *binGrid) binX(x float64) float64 { return (W-2.0)*scaleToUnit(x, g.minX, g.maxX) + 1 }
func (g *binGrid) binY(y float64) float64 { return (W-2.0)*scaleToUnit(y, g.minY, g.maxY) + 1 }

func (g *binGrid) drawPixel(x, y int, e *drawing.Edge) {
	if x < 0 || x >= W || y < 0 || y >= W {
		return
	}
	idx := y*W + x
	g.bins[idx] = append(g.bins[idx], e)
}

// drawEdge rasterizes e's segment (in bin space) into the grid via a
// scanline walk: a vertical case, a near-horizontal case (|slope| <
// 1e-14), and the general ascending/descending walk that steps one bin in
// x per iteration and fills the contiguous y-run for that column. The
// touched bins are a superset of the bins the segment truly passes
// through; the per-bin pairwise check is the authoritative test.
//
// Complexity: O(B) where B is the number of bins the segment spans — at
// most O(W) column steps plus the y-run emitted for each column.
func (g *binGrid) drawEdge(e *drawing.Edge) {
	x0, y0 := g.binX(e.A.Current.X), g.binY(e.A.Current.Y)
	x1, y1 := g.binX(e.B.Current.X), g.binY(e.B.Current.Y)

	if x0 == x1 {
		ix := int(math.Floor(x0))
		if y0 < y1 {
			start := int(math.Floor(y0))
			for i := start; i <= int(y1); i++ {
				g.drawPixel(ix, i, e)
			}
		} else {
			start := int(math.Floor(y1))
			for i := start; i <= int(y0); i++ {
				g.drawPixel(ix, i, e)
			}
		}
		return
	}

	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	m := (y0 - y1) / (x0 - x1)
	b := (x0*y1 - x1*y0) / (x0 - x1)
	ix0 := int(math.Floor(x0))
	iy0 := int(math.Floor(y0))

	switch {
	case math.Abs(m) < 1.0e-14:
		for i := ix0; i <= int(x1); i++ {
			g.drawPixel(i, iy0, e)
		}
	case y0 < y1:
		y := m*float64(ix0+1) + b
		for float64(ix0) <= x1-1 {
			for i := iy0; float64(i) < y; i++ {
				g.drawPixel(ix0, i, e)
			}
			iy0 = int(math.Floor(y))
			ix0++
			y += m
		}
		for i := iy0; float64(i) <= y1; i++ {
			g.drawPixel(ix0, i, e)
		}
	default: // y0 > y1
		y := m*float64(ix0+1) + b
		for float64(ix0) <= x1-1 {
			for i := iy0; float64(i) > y-1; i-- {
				g.drawPixel(ix0, i, e)
			}
			iy0 = int(math.Floor(y))
			ix0++
			y += m
		}
		for i := iy0; float64(i) > y1-1; i-- {
			g.drawPixel(ix0, i, e)
		}
	}
}
