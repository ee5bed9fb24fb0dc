package anneal

import (
	"math"

	"github.com/latticedraw/latticedraw/drawing"
	"github.com/latticedraw/latticedraw/geom"
)

// ScoreFunc is the density annealer's injected objective: a scalar score
// over the current drawing, recomputed on demand. DensityAnneal is
// parameterized by one of these rather than a concrete type so that the
// continuous-density, grid-density, and rounding-cost variants below (and
// any caller-supplied alternative) all drive the same search loop.
type ScoreFunc interface {
	Evaluate(vertices []*drawing.Vertex) float64
}

// ScoreFuncFunc adapts a plain function to the ScoreFunc interface.
type ScoreFuncFunc func(vertices []*drawing.Vertex) float64

// Evaluate calls f.
func (f ScoreFuncFunc) Evaluate(vertices []*drawing.Vertex) float64 {
	return f(vertices)
}

// ContinuousDensity is the sum of 1/dist^2 over all vertex pairs. Each
// vertex's share of the total is stashed in its Density field so the
// density annealer's vertex-sampling weights can read it back without
// recomputation.
// Complexity: O(V²) time, O(1) extra space.
var ContinuousDensity ScoreFunc = ScoreFuncFunc(evaluateContinuousDensity)

func evaluateContinuousDensity(vertices []*drawing.Vertex) float64 {
	n := len(vertices)
	score := 0.0
	for i := 0; i < n-1; i++ {
		local := 0.0
		for j := i + 1; j < n; j++ {
			local += 1.0 / geom.Dist2(vertices[i].Current, vertices[j].Current)
		}
		vertices[i].Density = local
		score += local
	}
	return score
}

type gridCell struct{ x, y int }

// GridDensity is the per-integer-cell density score: a rounded vertex
// contributes 1/9 to each cell in its 3x3 neighborhood, a non-rounded
// vertex contributes 1/4 to each of the four integer corners of its
// containing unit cell. Each vertex's own score contribution is the
// squared cell-count at its rounded position.
//
// The cell count is accumulated as a float64 but truncated to int before
// squaring, so fractional corner contributions below 1.0 score as zero.
// Complexity: O(V) time, O(V) space for the cell map.
var GridDensity ScoreFunc = ScoreFuncFunc(evaluateGridDensity)

func evaluateGridDensity(vertices []*drawing.Vertex) float64 {
	density := make(map[gridCell]float64)
	for _, v := range vertices {
		if v.IsRounded {
			const weight = 1.0 / 9.0
			cx, cy := int(v.Current.X), int(v.Current.Y)
			for x := cx - 1; x <= cx+1; x++ {
				for y := cy - 1; y <= cy+1; y++ {
					density[gridCell{x, y}] += weight
				}
			}
		} else {
			const weight = 1.0 / 4.0
			fx, fy := math.Floor(v.Current.X), math.Floor(v.Current.Y)
			cxHi, cyHi := math.Ceil(v.Current.X), math.Ceil(v.Current.Y)
			density[gridCell{int(fx), int(fy)}] += weight
			density[gridCell{int(cxHi), int(fy)}] += weight
			density[gridCell{int(fx), int(cyHi)}] += weight
			density[gridCell{int(cxHi), int(cyHi)}] += weight
		}
	}
	score := 0.0
	for _, v := range vertices {
		cell := gridCell{int(v.Current.X), int(v.Current.Y)}
		here := int(density[cell])
		local := float64(here * here)
		v.Density = local
		score += local
	}
	return score
}

// RoundingCost is Sigma over vertices of the Euclidean distance from
// Current to Original — both the density annealer's "cost" feasibility
// variant and the quality annealer's objective.
// Complexity: O(V).
var RoundingCost ScoreFunc = ScoreFuncFunc(evaluateRoundingCost)

func evaluateRoundingCost(vertices []*drawing.Vertex) float64 {
	score := 0.0
	for _, v := range vertices {
		score += geom.Dist(v.Current, v.Original)
	}
	return score
}

// VertexRoundingCost is the single-vertex displacement the quality
// annealer actually needs per step (it never recomputes the whole-drawing
// sum from scratch inside accept/reject logic for a single move — see
// quality.go).
func VertexRoundingCost(v *drawing.Vertex) float64 {
	return geom.Dist(v.Current, v.Original)
}
