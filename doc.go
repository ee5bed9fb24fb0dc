// Package latticedraw rounds a planar graph drawing's real-valued vertex
// coordinates onto integer grid points while preserving its combinatorial
// embedding (rotation system) and planarity.
//
// The module is organized as a set of small, single-purpose packages, one
// per concern, composed by pipeline.Run into the data flow:
//
//	input -> (optional) cartogram -> feasibility strategy -> quality
//	annealing -> (optional) hill-climb -> output
//
//	geom/        — Point arithmetic, rounding helpers
//	drawing/     — Vertex/Edge/Drawing, rotation systems, line-graph I/O
//	planarity/   — binned intersection + rotation-system validator
//	checkpoint/  — scoped mutate/rollback guard
//	round/       — greedy rounder, scale-and-greedy, scale-and-round
//	anneal/      — density annealer (feasibility) and quality annealer
//	hillclimb/   — 8-neighborhood local-search polish
//	cartogram/   — sparse least-squares position relaxation
//	pipeline/    — end-to-end orchestration of the above
//
// cmd/latticedraw is the CLI front-end; internal/fixtures holds synthetic
// drawings checked by its own tests (the other packages' tests build their
// drawings inline and do not import it).
package latticedraw
