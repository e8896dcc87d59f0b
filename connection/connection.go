// Package connection drives the graded Morse reduction to its fixed
// point: repeatedly computing a Morse complex of a Morse complex until
// the cell count stops shrinking, per spec.md §4.9.
//
// Grounded on original_source/ConnectionMatrix.h's do/while loop
// comparing successive complex sizes, generalized into Matrix (final
// fixed point only) and Tower (the whole sequence), subsuming
// original_source/Homology.h since the ungraded case is just
// graded.Graded with a constant-zero Value.
package connection

import (
	"github.com/katalvlaran/morsekit/graded"
)

// Option configures Matrix/Tower's iteration bound.
type Option func(*config)

type config struct {
	maxIterations int
}

// WithMaxIterations overrides the default iteration bound
// (base.Complex.Size()+1, the bound spec.md §4.9 proves is always
// sufficient).
func WithMaxIterations(n int) Option {
	return func(cfg *config) { cfg.maxIterations = n }
}

// Matrix iterates graded.Reduce from base until the complex size stops
// shrinking, returning that fixed point.
func Matrix(base graded.Graded, opts ...Option) (graded.Graded, error) {
	tower, err := Tower(base, opts...)
	if err != nil {
		return graded.Graded{}, err
	}
	return tower[len(tower)-1], nil
}

// Tower iterates graded.Reduce from base, returning the full sequence
// [K0, K1, ..., Kfix] ending at the fixed point.
func Tower(base graded.Graded, opts ...Option) ([]graded.Graded, error) {
	cfg := config{maxIterations: base.Complex.Size() + 1}
	for _, o := range opts {
		o(&cfg)
	}

	tower := []graded.Graded{base}
	current := base
	for i := 0; i < cfg.maxIterations; i++ {
		next, err := graded.Reduce(current)
		if err != nil {
			return nil, err
		}
		tower = append(tower, next)
		if next.Complex.Size() == current.Complex.Size() {
			return tower, nil
		}
		current = next
	}

	return nil, ErrMaxIterationsExceeded
}
