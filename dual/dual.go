// Package dual provides the dual-complex view spec.md §3 lists among
// the auxiliary complexes: reversing dimension (dimension d in the dual
// corresponds to dimension D-d in the original) and swapping boundary
// with coboundary, realized without copying any cell data.
//
// Grounded on original_source/DualComplex.h: cell index i in the dual
// maps to index Size()-i-1 in the original, and column/row are each
// other's row/column under that reindexing.
package dual

import (
	"github.com/katalvlaran/morsekit/chain"
	"github.com/katalvlaran/morsekit/cmplx"
)

// Complex is the dual of an underlying cmplx.Complex: a read-only view,
// never copying cell data.
type Complex struct {
	inner cmplx.Complex
	dim   int
	begin []int
}

// New builds the dual view of c.
func New(c cmplx.Complex) *Complex {
	dim := c.Dimension()
	begin := make([]int, dim+2)
	cumulative := 0
	for d := 0; d <= dim; d++ {
		begin[d] = cumulative
		cumulative += c.SizeOf(dim - d)
	}
	begin[dim+1] = c.Size()
	return &Complex{inner: c, dim: dim, begin: begin}
}

// Dimension returns the top dimension, same as the underlying complex.
func (c *Complex) Dimension() int { return c.dim }

// Size returns the total number of cells.
func (c *Complex) Size() int { return c.inner.Size() }

// SizeOf returns the number of dual cells of dimension d: the number of
// underlying cells of dimension D-d.
func (c *Complex) SizeOf(d int) int {
	if d < 0 || d > c.dim {
		return 0
	}
	return c.inner.SizeOf(c.dim - d)
}

// Cells returns the dimension-d dual cells in dense ascending order.
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

// reindex maps a dual index to its underlying-complex counterpart.
func (c *Complex) reindex(i chain.Cell) chain.Cell {
	return chain.Cell(c.Size() - int(i) - 1)
}

// Column invokes cb on every face of dual cell i: the underlying
// complex's Row at the reindexed cell, reindexed back.
func (c *Complex) Column(i chain.Cell, cb func(chain.Cell)) {
	c.inner.Row(c.reindex(i), func(x chain.Cell) { cb(c.reindex(x)) })
}

// Row invokes cb on every coface of dual cell i: the underlying
// complex's Column at the reindexed cell, reindexed back.
func (c *Complex) Row(i chain.Cell, cb func(chain.Cell)) {
	c.inner.Column(c.reindex(i), func(x chain.Cell) { cb(c.reindex(x)) })
}
