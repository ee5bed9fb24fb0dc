// Package pipeline wires the leaf packages (geom, drawing, planarity,
// checkpoint, round, anneal, hillclimb, cartogram) into the end-to-end
// data flow: an input drawing flows through an optional cartogram
// preprocess, a chosen feasibility strategy, mandatory quality annealing,
// and an optional hill-climb postprocess. This is the package
// cmd/latticedraw's CLI front-end calls into; it holds no state of its own
// beyond the Options a caller supplies for one Run.
package pipeline
