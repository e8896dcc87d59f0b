// Package matching computes acyclic partial matchings (discrete Morse
// matchings) over a graded cell complex, per spec.md §4.5 and §4.6.
//
// Two constructors are provided: NewGeneric, the coreduction-by-
// boundary-count algorithm that works over any cmplx.Complex, and
// NewCubical, the closed-form recursive matching specific to
// cubical.Complex. New dispatches between them by type-asserting the
// input complex — the Go realization of
// original_source/MorseMatching.hpp's compute_matching dynamic-cast
// dispatch.
package matching

import (
	"github.com/katalvlaran/morsekit/chain"
	"github.com/katalvlaran/morsekit/cmplx"
	"github.com/katalvlaran/morsekit/cubical"
)

// Matching is an acyclic partial matching on a complex's cells.
type Matching interface {
	// Mate returns x's partner in the matching, or x itself if x is
	// critical (an "ace" cell, unmatched).
	Mate(x chain.Cell) chain.Cell
	// Priority orders the cells in a way suitable for Flow's max-heap
	// traversal (spec.md §4.8): higher priority cells are consumed
	// first.
	Priority(x chain.Cell) int64
	// CriticalCells returns the dense per-dimension range table (begin)
	// and the (old index, new index) pairs of the critical cells, in
	// new-index order. The cubical matching leaves right-fringe cells
	// out of this table. morsecx.New does not read it: it renumbers
	// every cell that Mate maps to itself, fringe cells included.
	CriticalCells() (begin []int, reindex [][2]int)
}

// Option configures NewGeneric's candidate-selection policy.
type Option func(*config)

type config struct {
	tieBreak func(candidates []chain.Cell) chain.Cell
}

// WithTieBreak overrides the default lowest-index selection policy
// NewGeneric uses when more than one cell is coreducible/critical in a
// given round. spec.md §5 requires this policy be documented and fixed;
// the default is lowest index.
func WithTieBreak(pick func(candidates []chain.Cell) chain.Cell) Option {
	return func(cfg *config) { cfg.tieBreak = pick }
}

// New dispatches to NewCubical when c is a *cubical.Complex, and to
// NewGeneric otherwise.
func New(c cmplx.Complex, value func(chain.Cell) int, opts ...Option) (Matching, error) {
	if cc, ok := c.(*cubical.Complex); ok {
		return NewCubical(cc, value)
	}
	return NewGeneric(c, value, opts...)
}
