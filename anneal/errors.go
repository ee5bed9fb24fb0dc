package anneal

import "errors"

// ErrDensityAnnealFailed is returned by DensityAnneal when MaxIterations is
// exhausted without every vertex becoming rounded.
var ErrDensityAnnealFailed = errors.New("anneal: density annealing did not reach a feasible drawing")
