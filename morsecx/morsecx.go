// Package morsecx builds the Morse complex of a graded complex and a
// matching on it: the critical-cell-renumbered chain complex spec.md
// §4.7 and §4.8 describe, together with the include/project/lift/lower
// change-of-basis operations and the Flow algorithm everything else is
// built on.
//
// Grounded on original_source/MorseComplex.h: the renumbering loop, the
// boundary-via-lower(base.boundary(include(ace))) construction, and
// Flow's max-heap traversal — including the pop-time
// canonical.Contains(queen) cancellation check the Design Notes single
// out as essential ("do not replace with a visited-set": repeated
// pushes of the same queen are expected and must be allowed to
// overwrite each other's effect on canonical).
package morsecx

import (
	"container/heap"

	"github.com/katalvlaran/morsekit/chain"
	"github.com/katalvlaran/morsekit/cmplx"
	"github.com/katalvlaran/morsekit/matching"
)

// Complex is the Morse complex reduction of base under matching m: its
// cells are base's critical cells, densely renumbered by dimension.
type Complex struct {
	base cmplx.Complex
	m    matching.Matching
	dim  int

	begin   []int
	include []chain.Cell
	project map[chain.Cell]chain.Cell

	bd  []chain.Chain
	cbd []chain.Chain
}

// New builds the Morse complex of base under m.
func New(base cmplx.Complex, m matching.Matching) (*Complex, error) {
	dim := base.Dimension()
	begin := make([]int, dim+2)
	var include []chain.Cell
	project := make(map[chain.Cell]chain.Cell)

	idx := 0
	for d := 0; d <= dim; d++ {
		begin[d] = idx
		for _, v := range base.Cells(d) {
			if m.Mate(v) == v {
				project[v] = chain.Cell(idx)
				include = append(include, v)
				idx++
			}
		}
	}
	begin[dim+1] = idx

	mc := &Complex{base: base, m: m, dim: dim, begin: begin, include: include, project: project}

	mc.bd = make([]chain.Chain, idx)
	for ace := 0; ace < idx; ace++ {
		old := mc.include[ace]
		canonical, _ := mc.Flow(cmplx.Boundary(base, chain.New(old)))
		mc.bd[ace] = mc.Project(canonical)
	}
	mc.cbd = make([]chain.Chain, idx)
	for ace := 0; ace < idx; ace++ {
		for _, b := range mc.bd[ace].Cells() {
			mc.cbd[b].Add(chain.Cell(ace))
		}
	}

	return mc, nil
}

// Base returns the underlying complex this Morse complex reduces.
func (mc *Complex) Base() cmplx.Complex { return mc.base }

// Matching returns the matching this Morse complex was built from.
func (mc *Complex) Matching() matching.Matching { return mc.m }

// Dimension returns the top dimension, same as the base complex.
func (mc *Complex) Dimension() int { return mc.dim }

// Size returns the number of critical cells.
func (mc *Complex) Size() int { return mc.begin[len(mc.begin)-1] }

// SizeOf returns the number of critical cells of dimension d.
func (mc *Complex) SizeOf(d int) int {
	if d < 0 || d > mc.dim {
		return 0
	}
	return mc.begin[d+1] - mc.begin[d]
}

// Cells returns the dimension-d critical cells in dense ascending order.
func (mc *Complex) Cells(d int) []chain.Cell {
	if d < 0 || d > mc.dim {
		return nil
	}
	lo, hi := mc.begin[d], mc.begin[d+1]
	out := make([]chain.Cell, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, chain.Cell(i))
	}
	return out
}

// Column invokes cb on every face of Morse cell i.
func (mc *Complex) Column(i chain.Cell, cb func(chain.Cell)) {
	for _, x := range mc.bd[i].Cells() {
		cb(x)
	}
}

// Row invokes cb on every coface of Morse cell i.
func (mc *Complex) Row(i chain.Cell, cb func(chain.Cell)) {
	for _, x := range mc.cbd[i].Cells() {
		cb(x)
	}
}

// Include maps a Morse chain back to the base complex by cell identity
// (new index -> original cell).
func (mc *Complex) Include(c chain.Chain) chain.Chain {
	var result chain.Chain
	for _, x := range c.Cells() {
		result.Add(mc.include[x])
	}
	return result
}

// Project maps a base chain to the Morse complex, dropping every
// non-critical (non-ace) cell.
func (mc *Complex) Project(c chain.Chain) chain.Chain {
	var result chain.Chain
	for _, x := range c.Cells() {
		if j, ok := mc.project[x]; ok {
			result.Add(j)
		}
	}
	return result
}

// Lift expresses a Morse chain's include as canonical + a correction
// gamma living in the base complex, so the result is a genuine base
// cycle representative whenever c is a Morse cycle.
func (mc *Complex) Lift(c chain.Chain) chain.Chain {
	included := mc.Include(c)
	_, gamma := mc.Flow(cmplx.Boundary(mc.base, included))
	return chain.Sum(included, gamma)
}

// Lower reduces a base chain to its Morse-complex image via Flow's
// canonical decomposition, then Project.
func (mc *Complex) Lower(c chain.Chain) chain.Chain {
	canonical, _ := mc.Flow(c)
	return mc.Project(canonical)
}

// Flow decomposes input as canonical + ∂gamma, where canonical contains
// no "queen" cell of the matching (only critical cells and kings) and
// gamma contains only kings: spec.md §4.8's algorithm, processing
// queens (the lower-indexed partner of a matched pair) in decreasing
// priority order.
func (mc *Complex) Flow(input chain.Chain) (canonical, gamma chain.Chain) {
	m := mc.m
	isQueen := func(x chain.Cell) bool { return x < m.Mate(x) }

	pq := &queenHeap{priority: m.Priority}

	process := func(x chain.Cell) {
		if isQueen(x) {
			heap.Push(pq, x)
		}
		canonical.Add(x)
	}

	for _, x := range input.Cells() {
		process(x)
	}

	for pq.Len() > 0 {
		queen := heap.Pop(pq).(chain.Cell)
		if !canonical.Contains(queen) {
			continue
		}
		king := m.Mate(queen)
		gamma.Add(king)
		mc.base.Column(king, process)
	}

	return canonical, gamma
}

// queenHeap is a max-heap of cells ordered by descending priority, the
// priority queue Flow pops queens from. A queen is pushed every time it
// is toggled, so the heap may hold duplicates, and a popped entry can
// be stale relative to canonical — that staleness is resolved by the
// caller's canonical.Contains(queen) check, not here.
type queenHeap struct {
	cells    []chain.Cell
	priority func(chain.Cell) int64
}

func (h *queenHeap) Len() int { return len(h.cells) }
func (h *queenHeap) Less(i, j int) bool {
	return h.priority(h.cells[i]) > h.priority(h.cells[j])
}
func (h *queenHeap) Swap(i, j int) { h.cells[i], h.cells[j] = h.cells[j], h.cells[i] }
func (h *queenHeap) Push(x interface{}) {
	h.cells = append(h.cells, x.(chain.Cell))
}
func (h *queenHeap) Pop() interface{} {
	old := h.cells
	n := len(old)
	item := old[n-1]
	h.cells = old[:n-1]
	return item
}
