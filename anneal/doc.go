// Package anneal implements the two stochastic search phases that turn a
// drawing into, and then polish, an integer-grid planar embedding: the
// density annealer (DensityAnneal, feasibility) and the quality annealer
// (QualityAnneal, post-feasibility displacement minimization). Both share
// a Metropolis acceptance rule, a mutation operator, and a deterministic
// RNG wrapper (rng.go).
package anneal
