package pipeline

import "errors"

// ErrUnknownFeasibility is returned by Run when Options.Feasibility names a
// strategy that is not one of the recognized values.
var ErrUnknownFeasibility = errors.New("pipeline: unknown feasibility strategy")
