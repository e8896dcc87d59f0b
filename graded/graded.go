// Package graded implements the single unified graded-complex type
// spec.md §9's Open Question asks an implementer to resolve: "a
// fibration is a graded complex with the constant-zero grading", so
// there is exactly one type here instead of the original's separate
// Fibration and GradedComplex (see original_source/Fibration.h and
// original_source/GradedComplex.h). An ungraded complex is simply a
// Graded whose Value function always returns 0.
package graded

import (
	"github.com/katalvlaran/morsekit/chain"
	"github.com/katalvlaran/morsekit/cmplx"
	"github.com/katalvlaran/morsekit/matching"
	"github.com/katalvlaran/morsekit/morsecx"
)

// Graded pairs a complex with an integer grading on its cells. The
// grading must be monotone non-increasing across Column (spec.md §4.4's
// closure property): no cell may have a strictly higher-valued face.
// That property is checked incrementally by matching.NewGeneric, not
// here; matching.NewCubical does not check it.
type Graded struct {
	Complex cmplx.Complex
	Value   func(chain.Cell) int
}

// Reduce performs one graded Morse reduction of g: computes a matching
// on g.Complex under g.Value, builds the Morse complex, and carries the
// grading forward by value inheritance (spec.md §4.9): a critical
// cell's new grade is its own old grade, looked up via Include.
func Reduce(g Graded) (Graded, error) {
	m, err := matching.New(g.Complex, g.Value)
	if err != nil {
		return Graded{}, err
	}
	mc, err := morsecx.New(g.Complex, m)
	if err != nil {
		return Graded{}, err
	}

	valueNew := func(a chain.Cell) int {
		included := mc.Include(chain.New(a))
		v := 0
		for _, x := range included.Cells() {
			v = g.Value(x)
		}
		return v
	}

	return Graded{Complex: mc, Value: valueNew}, nil
}
