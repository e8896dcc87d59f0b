// Package simplicial builds the auxiliary complex spec.md §3 calls for
// when the input is a list of maximal simplices rather than a cubical
// grid: the closure under the face relation, with cells dimension-sorted
// and densely indexed the same way cubical.Complex lays out its cells.
//
// Grounded on original_source/SimplicialComplex.h: add_closed_simplex's
// explicit-stack closure, a sort that groups cells by dimension, and
// precomputed boundary/coboundary columns. The sort is a stable sort by
// simplex size only: within one dimension, cells keep the order in
// which the closure discovered them.
package simplicial

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/morsekit/chain"
)

// Complex is a simplicial complex built from a set of maximal simplices,
// closed under taking faces.
type Complex struct {
	dim      int
	simplices [][]int
	begin    []int // begin[d]..begin[d+1] is the dense range of dimension-d cells

	boundary   []chain.Chain
	coboundary []chain.Chain
}

// New builds the closure of maxSimplices (each given as a slice of
// vertex labels) and returns the resulting complex. A simplex's
// dimension is len(simplex)-1.
func New(maxSimplices [][]int) *Complex {
	seen := make(map[string]int)
	var simplices [][]int

	var add func(s []int) bool
	add = func(s []int) bool {
		key := simplexKey(s)
		if _, ok := seen[key]; ok {
			return false
		}
		seen[key] = len(simplices)
		simplices = append(simplices, s)
		return true
	}

	var stack [][]int
	for _, s := range maxSimplices {
		stack = append(stack, canonical(s))
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if add(s) {
			for _, face := range faces(s) {
				stack = append(stack, face)
			}
		}
	}

	sort.SliceStable(simplices, func(i, j int) bool {
		return len(simplices[i]) < len(simplices[j])
	})

	idx := make(map[string]int, len(simplices))
	for i, s := range simplices {
		idx[simplexKey(s)] = i
	}

	n := len(simplices)
	dim := -1
	begin := []int{}
	boundary := make([]chain.Chain, n)
	coboundary := make([]chain.Chain, n)
	for i, s := range simplices {
		d := len(s) - 1
		for d > dim {
			dim++
			begin = append(begin, i)
		}
		var bd chain.Chain
		for _, face := range faces(s) {
			j := idx[simplexKey(face)]
			bd.Add(chain.Cell(j))
			coboundary[j].Add(chain.Cell(i))
		}
		boundary[i] = bd
	}
	begin = append(begin, n)

	return &Complex{
		dim:        dim,
		simplices:  simplices,
		begin:      begin,
		boundary:   boundary,
		coboundary: coboundary,
	}
}

// Simplex returns the vertex set of the cell at index i.
func (c *Complex) Simplex(i chain.Cell) []int {
	return append([]int(nil), c.simplices[i]...)
}

// Dimension returns the top dimension of the complex.
func (c *Complex) Dimension() int { return c.dim }

// Size returns the total number of cells.
func (c *Complex) Size() int { return c.begin[len(c.begin)-1] }

// SizeOf returns the number of cells of dimension d.
func (c *Complex) SizeOf(d int) int {
	if d < 0 || d > c.dim {
		return 0
	}
	return c.begin[d+1] - c.begin[d]
}

// Cells returns the dimension-d cells in dense ascending order.
func (c *Complex) Cells(d int) []chain.Cell {
	if d < 0 || d > c.dim {
		return nil
	}
	lo, hi := c.begin[d], c.begin[d+1]
	out := make([]chain.Cell, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, chain.Cell(i))
	}
	return out
}

// Column invokes cb on every face of cell i (its boundary).
func (c *Complex) Column(i chain.Cell, cb func(chain.Cell)) {
	for _, x := range c.boundary[i].Cells() {
		cb(x)
	}
}

// Row invokes cb on every coface of cell i (its coboundary).
func (c *Complex) Row(i chain.Cell, cb func(chain.Cell)) {
	for _, x := range c.coboundary[i].Cells() {
		cb(x)
	}
}

// canonical returns s sorted ascending, the normal form used for
// deduplication and face lookup.
func canonical(s []int) []int {
	out := append([]int(nil), s...)
	sort.Ints(out)
	return out
}

// faces returns the codimension-1 faces of a (canonical) simplex s,
// obtained by deleting one vertex at a time, mirroring
// simplex_boundary in original_source/SimplicialComplex.h.
func faces(s []int) [][]int {
	if len(s) <= 1 {
		return nil
	}
	out := make([][]int, 0, len(s))
	for i := range s {
		face := make([]int, 0, len(s)-1)
		face = append(face, s[:i]...)
		face = append(face, s[i+1:]...)
		out = append(out, face)
	}
	return out
}

// simplexKey returns a canonical string key for map lookup — the same
// "set via map[string]struct{}" idiom the teacher uses for adjacency
// sets, generalized to simplex vertex tuples instead of vertex IDs.
func simplexKey(s []int) string {
	var b strings.Builder
	for i, v := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
