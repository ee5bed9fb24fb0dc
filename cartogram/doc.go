// Package cartogram implements the optional pre-feasibility preprocessing
// step: a sparse least-squares relaxation that pulls a drawing's vertices
// toward satisfying edge-length and vertex-spacing targets before
// feasibility and quality annealing run, plus the linear back-off that
// keeps the result topologically valid.
package cartogram
