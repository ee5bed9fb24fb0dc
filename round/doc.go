// Package round implements the deterministic, non-stochastic feasibility
// operators: the greedy rounder (try up to four grid-adjacent integer
// positions for one vertex) and its two scale-driven callers,
// ScaleAndGreedy and ScaleAndRound.
package round
