package cartogram

import "errors"

// ErrDegenerateInput is returned when a cartogram pass is asked to run on a
// drawing it cannot build a sensible constraint system for (fewer than two
// vertices).
var ErrDegenerateInput = errors.New("cartogram: drawing has too few vertices to preprocess")
