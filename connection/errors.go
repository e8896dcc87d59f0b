package connection

import (
	"fmt"

	"github.com/katalvlaran/morsekit/morerr"
)

// ErrMaxIterationsExceeded indicates Matrix/Tower did not reach a fixed
// point within the configured iteration bound. spec.md §4.9 proves the
// fixed point is reached within complex size + 1 iterations, so this
// error surfaces only when a caller has overridden WithMaxIterations to
// something smaller than that proof's bound.
var ErrMaxIterationsExceeded = fmt.Errorf("connection: fixed point not reached within iteration bound: %w", morerr.ErrContract)
