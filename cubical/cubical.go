// Package cubical implements the concrete cubical complex of spec.md §3,
// §4.3: a D-dimensional product of boxes[d] unit boxes with twisted-
// periodic wrap, cells identified by (shape, position). Cell arithmetic
// (Column, Row, CellShape, ...) is the hot path of the whole kernel and
// is written branchless in the per-dimension loop — no allocation, no
// early exits inside the for-range over dimension bits.
//
// Grounded on original_source/CubicalComplex.h for the place-value /
// shape-type / topstar-offset construction, collapsed to the single
// "twisted-with-fringe" model per spec.md §9's Open Question (a) — there
// is no periodic[] flag; every dimension always wraps.
package cubical

import (
	"fmt"
	"math/bits"
	"sort"

	"github.com/katalvlaran/morsekit/chain"
)

// Complex is a D-dimensional cubical complex over boxes[0..D-1] unit
// boxes, with twisted-periodic wrap in every dimension. It implements
// cmplx.Complex (Column/Row/Cells/Size/...) and additionally exposes the
// shape/position arithmetic spec.md §4.3 names as public features.
type Complex struct {
	boxes []int
	dim   int

	placeValues []int // length dim+1: placeValues[0]=1, placeValues[d+1]=placeValues[d]*boxes[d]
	typeSize    int    // placeValues[dim]
	numTypes    int    // 1 << dim

	shapeFromType []int // ST: type index -> shape bitmask (sorted by popcount)
	typeFromShape []int // TS: shape bitmask -> type index

	begin []int // length dim+2: begin[d]..begin[d+1] is the dense range of dimension-d cells

	topstarOffset []int // length numTypes, precomputed per spec.md §4.3
}

// New builds the cubical complex with the given box extents, one per
// dimension. An empty boxes slice is valid and yields the one-point
// (D=0) complex. Every extent must be positive.
func New(boxes []int) (*Complex, error) {
	for d, b := range boxes {
		if b <= 0 {
			return nil, fmt.Errorf("cubical: boxes[%d]=%d: %w", d, b, ErrNonPositiveBox)
		}
	}

	d := len(boxes)
	placeValues := make([]int, d+1)
	placeValues[0] = 1
	for i := 0; i < d; i++ {
		placeValues[i+1] = placeValues[i] * boxes[i]
	}
	typeSize := placeValues[d]
	numTypes := 1 << uint(d)
	n := typeSize * numTypes

	shapeFromType := make([]int, numTypes)
	typeFromShape := make([]int, numTypes)
	for i := range shapeFromType {
		shapeFromType[i] = i
	}
	sort.SliceStable(shapeFromType, func(i, j int) bool {
		return bits.OnesCount(uint(shapeFromType[i])) < bits.OnesCount(uint(shapeFromType[j]))
	})
	for t, shape := range shapeFromType {
		typeFromShape[shape] = t
	}

	begin := make([]int, d+2)
	for i := range begin {
		begin[i] = n
	}
	seen := make([]bool, d+2)
	idx := 0
	for t := 0; t < numTypes; t++ {
		shapeDim := bits.OnesCount(uint(shapeFromType[t]))
		if !seen[shapeDim] {
			begin[shapeDim] = idx
			seen[shapeDim] = true
		}
		idx += typeSize
	}

	topstarOffset := make([]int, numTypes)
	for i := 0; i < numTypes; i++ {
		off := 0
		for dd := 0; dd < d; dd++ {
			if i&(1<<uint(dd)) == 0 {
				off -= placeValues[dd]
			}
		}
		topstarOffset[i] = off
	}

	return &Complex{
		boxes:         append([]int(nil), boxes...),
		dim:           d,
		placeValues:   placeValues,
		typeSize:      typeSize,
		numTypes:      numTypes,
		shapeFromType: shapeFromType,
		typeFromShape: typeFromShape,
		begin:         begin,
		topstarOffset: topstarOffset,
	}, nil
}

// Dimension returns D, the number of box dimensions.
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

// Cells returns the dimension-d cells in canonical ascending order.
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

// Boxes returns the box extents this complex was built with.
func (c *Complex) Boxes() []int { return append([]int(nil), c.boxes...) }

// TypeSize returns the number of cells per shape/type.
func (c *Complex) TypeSize() int { return c.typeSize }

// NumTypes returns 2^D, the number of distinct shapes.
func (c *Complex) NumTypes() int { return c.numTypes }

// CellType returns the type index (position in dimension-sorted shape
// order) of cell.
func (c *Complex) CellType(cell chain.Cell) int { return int(cell) / c.typeSize }

// CellShape returns the D-bit shape mask of cell: bit d set means cell
// has extent in dimension d.
func (c *Complex) CellShape(cell chain.Cell) int { return c.shapeFromType[c.CellType(cell)] }

// CellPosition returns the mixed-radix position component of cell
// (cell modulo TypeSize).
func (c *Complex) CellPosition(cell chain.Cell) int { return int(cell) % c.typeSize }

// CellDim returns the dimension of cell (popcount of its shape).
func (c *Complex) CellDim(cell chain.Cell) int { return bits.OnesCount(uint(c.CellShape(cell))) }

// PlaceValue returns the mixed-radix place value of dimension d (the
// original's PV()[d]): the amount CellPosition changes by when
// coordinate d is incremented by one, before any wrap correction.
func (c *Complex) PlaceValue(d int) int { return c.placeValues[d] }

// CellAt builds the cell with the given position component and shape,
// without decoding/recoding through full coordinates — the hot-path
// primitive matching.NewCubical's mate_ recursion uses to jump to a
// same-position cell of a different shape.
func (c *Complex) CellAt(position, shape int) chain.Cell {
	return chain.Cell(c.typeFromShape[shape]*c.typeSize + position)
}

// Coordinates decodes cell's position into D mixed-radix coordinates.
func (c *Complex) Coordinates(cell chain.Cell) []int {
	pos := c.CellPosition(cell)
	coords := make([]int, c.dim)
	for d := 0; d < c.dim; d++ {
		coords[d] = pos % c.boxes[d]
		pos /= c.boxes[d]
	}
	return coords
}

// CellIndex builds the cell with the given coordinates and shape.
func (c *Complex) CellIndex(coords []int, shape int) chain.Cell {
	pos := 0
	for d := 0; d < c.dim; d++ {
		pos += coords[d] * c.placeValues[d]
	}
	return chain.Cell(c.typeFromShape[shape]*c.typeSize + pos)
}

// coordOf returns cell's coordinate in dimension d without allocating
// the full Coordinates slice — the hot-path helper Column/Row/fringe
// predicates use.
func (c *Complex) coordOf(pos, d int) int {
	return (pos / c.placeValues[d]) % c.boxes[d]
}

// Column invokes cb on every cell in the boundary of cell (spec.md §4.3).
// Branchless in the dimension loop beyond the one skip-if-bit-clear test
// and the twisted-wrap carry test every boundary computation needs.
func (c *Complex) Column(cell chain.Cell, cb func(chain.Cell)) {
	shape := c.CellShape(cell)
	pos := c.CellPosition(cell)
	for d, bit := 0, 1; d < c.dim; d, bit = d+1, bit<<1 {
		if shape&bit == 0 {
			continue
		}
		otherType := c.typeFromShape[shape^bit]
		base := pos + c.typeSize*otherType
		cb(chain.Cell(base))
		if coordD := c.coordOf(pos, d); coordD+1 < c.boxes[d] {
			cb(chain.Cell(base + c.placeValues[d]))
		} else {
			cb(chain.Cell(base + c.placeValues[d] - c.placeValues[d+1]))
		}
	}
}

// Row invokes cb on every cell in the coboundary of cell (spec.md §4.3).
func (c *Complex) Row(cell chain.Cell, cb func(chain.Cell)) {
	shape := c.CellShape(cell)
	pos := c.CellPosition(cell)
	for d, bit := 0, 1; d < c.dim; d, bit = d+1, bit<<1 {
		if shape&bit != 0 {
			continue
		}
		otherType := c.typeFromShape[shape^bit]
		base := pos + c.typeSize*otherType
		cb(chain.Cell(base))
		if coordD := c.coordOf(pos, d); coordD > 0 {
			cb(chain.Cell(base - c.placeValues[d]))
		} else {
			cb(chain.Cell(base - c.placeValues[d] + c.placeValues[d+1]))
		}
	}
}

// TopStar returns the top-dimensional (shape = 2^D-1) cells whose
// closure contains cell, computed in closed form via the precomputed
// topstarOffset table (spec.md §4.3) instead of walking coboundaries.
func (c *Complex) TopStar(cell chain.Cell) []chain.Cell {
	shape := c.CellShape(cell)
	pos := c.CellPosition(cell)
	topType := c.typeFromShape[c.numTypes-1]
	topBase := topType * c.typeSize

	result := make([]chain.Cell, 0, c.numTypes)
	for i := 0; i < c.numTypes; i++ {
		if shape & ^i != 0 {
			continue // shape is not a subset of i
		}
		p := ((pos+c.topstarOffset[i])%c.typeSize + c.typeSize) % c.typeSize
		result = append(result, chain.Cell(topBase+p))
	}
	return result
}

// RightFringe reports whether cell lies on the right fringe: some
// dimension d in which cell has extent (shape bit d set) has
// coordinate boxes[d]-1. Fringe cells exist to make the twisted wrap
// algebraically consistent and are excluded from the acyclic interior.
func (c *Complex) RightFringe(cell chain.Cell) bool {
	shape := c.CellShape(cell)
	pos := c.CellPosition(cell)
	for d, bit := 0, 1; d < c.dim; d, bit = d+1, bit<<1 {
		if shape&bit == 0 {
			continue
		}
		if c.coordOf(pos, d) == c.boxes[d]-1 {
			return true
		}
	}
	return false
}

// LeftFringe reports whether cell lies on the left fringe: some
// dimension in which cell has extent has coordinate 0.
func (c *Complex) LeftFringe(cell chain.Cell) bool {
	shape := c.CellShape(cell)
	pos := c.CellPosition(cell)
	for d, bit := 0, 1; d < c.dim; d, bit = d+1, bit<<1 {
		if shape&bit == 0 {
			continue
		}
		if c.coordOf(pos, d) == 0 {
			return true
		}
	}
	return false
}

// MinCoords returns a D-bit mask with bit d set iff cell's coordinate
// in dimension d is 0, over all D dimensions (not only extent ones).
func (c *Complex) MinCoords(cell chain.Cell) int {
	pos := c.CellPosition(cell)
	mask := 0
	for d := 0; d < c.dim; d++ {
		if c.coordOf(pos, d) == 0 {
			mask |= 1 << uint(d)
		}
	}
	return mask
}

// MaxCoords returns a D-bit mask with bit d set iff cell's coordinate
// in dimension d is boxes[d]-1, over all D dimensions.
func (c *Complex) MaxCoords(cell chain.Cell) int {
	pos := c.CellPosition(cell)
	mask := 0
	for d := 0; d < c.dim; d++ {
		if c.coordOf(pos, d) == c.boxes[d]-1 {
			mask |= 1 << uint(d)
		}
	}
	return mask
}

// ParallelNeighbors returns all cells of the same shape as cell whose
// closure contains a cell in the closure of cell: for each dimension in
// which cell has extent, the position shifted by -1 and +1 (with
// twisted wrap), deduplicated.
func (c *Complex) ParallelNeighbors(cell chain.Cell) []chain.Cell {
	shape := c.CellShape(cell)
	pos := c.CellPosition(cell)
	typ := c.CellType(cell)
	base := typ * c.typeSize

	seen := make(map[int]struct{})
	var result []chain.Cell
	add := func(p int) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		result = append(result, chain.Cell(base+p))
	}

	for d, bit := 0, 1; d < c.dim; d, bit = d+1, bit<<1 {
		if shape&bit == 0 {
			continue
		}
		coordD := c.coordOf(pos, d)
		if coordD+1 < c.boxes[d] {
			add(pos + c.placeValues[d])
		} else {
			add(pos + c.placeValues[d] - c.placeValues[d+1])
		}
		if coordD > 0 {
			add(pos - c.placeValues[d])
		} else {
			add(pos - c.placeValues[d] + c.placeValues[d+1])
		}
	}
	return result
}
