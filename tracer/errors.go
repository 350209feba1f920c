package tracer

import "errors"

// ErrInconsistentEntry indicates the level does not actually cross the
// edgel the walker was told it enters through — an internal assertion
// failure (spec.md §7), reachable only from a corrupted caller-supplied
// starting point, never from a correctly located crossing.
var ErrInconsistentEntry = errors.New("tracer: level does not cross the assumed entry edgel")
