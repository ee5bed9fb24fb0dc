// RNG utilities shared by the density and quality annealers.
//
// Determinism: same seed => identical sequence of decisions across
// platforms. The annealers never touch the global rand source; every
// stochastic decision flows through one caller-owned stream so a run can
// be reproduced from its seed alone.
package anneal

import "math/rand"

// defaultSeed is the fixed "zero" seed used when callers pass seed==0,
// matching the convention of always having a reproducible default stream
// even when the caller did not think to pick a seed.
const defaultSeed int64 = 1

// RNG wraps a *rand.Rand with the sampling operations the annealers need:
// uniform integers, uniform reals, Bernoulli coin flips, and discrete
// weighted draws. It is not goroutine-safe — callers run single-threaded,
// per the module's concurrency model.
type RNG struct {
	r *rand.Rand
}

// NewRNG returns a deterministic RNG seeded from seed. seed==0 maps to
// defaultSeed so a caller that forgets to pick one still gets a
// reproducible, non-degenerate stream.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = defaultSeed
	}
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform random int in [0, n).
func (g *RNG) Intn(n int) int {
	return g.r.Intn(n)
}

// Float64 returns a uniform random float64 in [0, 1).
func (g *RNG) Float64() float64 {
	return g.r.Float64()
}

// Bernoulli reports true with probability p (clamped to [0, 1]).
func (g *RNG) Bernoulli(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return g.r.Float64() < p
}

// DiscreteWeighted samples an index in [0, len(weights)) with probability
// proportional to weights[i]. Weights must be non-negative. If they sum to
// zero (the density annealer's weights can, e.g. when every vertex's
// Density is zero), the draw is uniform over all indices instead.
// Complexity: O(n) per draw — a single linear scan, acceptable since the
// caller already pays O(n) to build the weight slice.
func (g *RNG) DiscreteWeighted(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		// Degenerate: fall back to uniform so callers never get stuck.
		return g.Intn(len(weights))
	}
	target := g.r.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if target < acc {
			return i
		}
	}
	return len(weights) - 1
}

// NonZeroOffset2D picks a uniformly random (dx, dy) in {-1,0,1}^2 \ {(0,0)}
// via rejection sampling.
func (g *RNG) NonZeroOffset2D() (int, int) {
	for {
		dx := g.Intn(3) - 1
		dy := g.Intn(3) - 1
		if dx != 0 || dy != 0 {
			return dx, dy
		}
	}
}
