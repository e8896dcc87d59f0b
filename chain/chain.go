// Package chain implements the ℤ/2ℤ chain algebra the kernel is built on.
//
// A Cell is a dense, non-negative integer index into some Complex. A
// Chain is a finite ℤ/2ℤ-formal sum of cells — equivalently, a finite
// set, since the only nonzero coefficient is 1. Addition is symmetric
// difference (XOR): adding a cell already present removes it.
//
// Chain gives amortized O(1) toggle and membership test (backed by a
// Go map, the same "set via map[K]struct{}" idiom the teacher uses for
// adjacency sets in core/adjacency_list.go, generalized from string
// vertex IDs to integer cell indices) and O(|chain|) iteration and sums.
package chain

import "sort"

// Cell is a dense non-negative index into a Complex. Cells are
// partitioned by dimension and enumerated in a fixed, dimension-sorted
// order by the Complex that owns them.
type Cell int

// Chain is a finite ℤ/2ℤ-formal sum of cells, implemented as a set.
// The zero value is the empty chain, ready to use.
type Chain struct {
	set map[Cell]struct{}
}

// New builds a Chain containing exactly the given cells (duplicates
// cancel in pairs, per ℤ/2ℤ arithmetic).
func New(cells ...Cell) Chain {
	var c Chain
	for _, x := range cells {
		c.Add(x)
	}
	return c
}

// Add toggles x into the chain: inserts it if absent, removes it if
// present. This is the chain += cell operation.
func (c *Chain) Add(x Cell) {
	if c.set == nil {
		c.set = make(map[Cell]struct{})
	}
	if _, ok := c.set[x]; ok {
		delete(c.set, x)
	} else {
		c.set[x] = struct{}{}
	}
}

// Union XORs other into c in place: the chain += other_chain operation.
func (c *Chain) Union(other Chain) {
	for x := range other.set {
		c.Add(x)
	}
}

// Sum returns a + b without mutating either operand (chain + other_chain).
func Sum(a, b Chain) Chain {
	result := a.Clone()
	result.Union(b)
	return result
}

// Contains reports whether x is a member of the chain.
func (c Chain) Contains(x Cell) bool {
	if c.set == nil {
		return false
	}
	_, ok := c.set[x]
	return ok
}

// Len returns the number of cells in the chain.
func (c Chain) Len() int {
	return len(c.set)
}

// Cells returns the chain's members in ascending order. Chains are
// small in practice, so sorting on every call keeps fixtures, test
// output, and iteration order reproducible instead of relying on Go's
// randomized map iteration.
func (c Chain) Cells() []Cell {
	out := make([]Cell, 0, len(c.set))
	for x := range c.set {
		out = append(out, x)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns an independent copy of the chain.
func (c Chain) Clone() Chain {
	out := Chain{set: make(map[Cell]struct{}, len(c.set))}
	for x := range c.set {
		out.set[x] = struct{}{}
	}
	return out
}

// Equal reports whether two chains contain exactly the same cells.
func (c Chain) Equal(other Chain) bool {
	if c.Len() != other.Len() {
		return false
	}
	for x := range c.set {
		if !other.Contains(x) {
			return false
		}
	}
	return true
}
