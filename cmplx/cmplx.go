// Package cmplx defines the Complex capability interface every cell
// complex in morsekit implements, and the handful of free functions
// (boundary, coboundary, star, topstar) that have a single generic
// implementation in terms of that interface.
//
// This is the Go realization of the "small capability set" the Design
// Notes call for in place of a polymorphic base class with virtual
// default methods: Go interfaces carry no method bodies, so the
// defaults that spec.md's Complex contract describes (boundary,
// coboundary, star, topstar in terms of column/row) become ordinary
// functions that accept any Complex, rather than methods with a
// fallback implementation.
//
// A Complex never mutates after construction, and callers must not pass
// out-of-range cell indices to Column/Row — per the kernel's error
// design, that is undefined behavior, not a checked error.
package cmplx

import "github.com/katalvlaran/morsekit/chain"

// Complex is the capability set every cell complex in morsekit exposes:
// dimension and size queries, dense per-dimension iteration, and the
// callback-style boundary/coboundary primitives the rest of the kernel
// is built on.
type Complex interface {
	// Dimension returns the top dimension D of the complex.
	Dimension() int
	// Size returns the total number of cells.
	Size() int
	// SizeOf returns the number of cells of dimension d (0 if d is out of range).
	SizeOf(d int) int
	// Cells returns the cells of dimension d in the canonical dense
	// ascending order. Returns nil if d is out of range.
	Cells(d int) []chain.Cell
	// Column invokes cb on every cell in the boundary of i (mod 2 — no duplicates).
	Column(i chain.Cell, cb func(chain.Cell))
	// Row invokes cb on every cell in the coboundary of i.
	Row(i chain.Cell, cb func(chain.Cell))
}

// TopStarer is implemented by complexes that can compute TopStar more
// efficiently than the generic Star-based closure below — cubical.Complex
// does this via precomputed offsets (spec.md §4.3). Generic algorithms
// that want the fast path type-assert for this interface and fall back
// to the package-level TopStar otherwise.
type TopStarer interface {
	TopStar(cell chain.Cell) []chain.Cell
}

// Boundary applies Column to every member of x and XORs the results.
func Boundary(c Complex, x chain.Chain) chain.Chain {
	var result chain.Chain
	cb := func(y chain.Cell) { result.Add(y) }
	for _, cell := range x.Cells() {
		c.Column(cell, cb)
	}
	return result
}

// Coboundary applies Row to every member of x and XORs the results.
func Coboundary(c Complex, x chain.Chain) chain.Chain {
	var result chain.Chain
	cb := func(y chain.Cell) { result.Add(y) }
	for _, cell := range x.Cells() {
		c.Row(cell, cb)
	}
	return result
}

// Star returns the set of cells reachable from cell by repeated
// coboundary (the reflexive transitive closure of Row). Traversed with
// an explicit stack rather than recursion since star sets can be large
// and unbounded-depth recursion is the wrong trade-off for a hot
// traversal — the same reasoning the teacher applies to its iterative
// DFS-based cycle detection in dfs/cycle.go.
func Star(c Complex, cell chain.Cell) map[chain.Cell]struct{} {
	result := make(map[chain.Cell]struct{})
	stack := []chain.Cell{cell}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := result[v]; seen {
			continue
		}
		result[v] = struct{}{}
		c.Row(v, func(u chain.Cell) {
			if _, seen := result[u]; !seen {
				stack = append(stack, u)
			}
		})
	}
	return result
}

// TopStar restricts Star(c, cell) to cells of top dimension D.
// Prefer calling a complex's own TopStar method (via TopStarer) when
// available — cubical complexes compute this in closed form.
func TopStar(c Complex, cell chain.Cell) []chain.Cell {
	d := c.Dimension()
	nonTop := c.Size() - c.SizeOf(d)
	star := Star(c, cell)
	result := make([]chain.Cell, 0, len(star))
	for v := range star {
		if int(v) >= nonTop {
			result = append(result, v)
		}
	}
	return result
}
