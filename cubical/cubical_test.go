package cubical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/morsekit/chain"
	"github.com/katalvlaran/morsekit/cmplx"
	"github.com/katalvlaran/morsekit/cubical"
)

func TestNew_RejectsNonPositiveBox(t *testing.T) {
	_, err := cubical.New([]int{2, 0, 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, cubical.ErrNonPositiveBox)
}

func TestNew_EmptyBoxesIsOnePoint(t *testing.T) {
	c, err := cubical.New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Dimension())
	assert.Equal(t, 1, c.Size())
	assert.Equal(t, 1, c.SizeOf(0))
}

// PointEdge is the 1D fixture CubicalComplex([1]) from spec.md §8: a
// single box, producing 1 vertex (shape 0) and 1 edge (shape 1)
// wrapped into a single twisted loop.
func TestPointEdge_ShapeCounts(t *testing.T) {
	c, err := cubical.New([]int{1})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Dimension())
	assert.Equal(t, 1, c.SizeOf(0))
	assert.Equal(t, 1, c.SizeOf(1))
	assert.Equal(t, 2, c.Size())
}

// Circle is the 1D fixture CubicalComplex([3]) from spec.md §8: 3
// vertices and 3 edges forming a cycle, β = (1, 1).
func TestCircle_BoundaryOfFullCycleIsEmpty(t *testing.T) {
	c, err := cubical.New([]int{3})
	require.NoError(t, err)
	require.Equal(t, 3, c.SizeOf(0))
	require.Equal(t, 3, c.SizeOf(1))

	var full chain.Chain
	for _, e := range c.Cells(1) {
		full.Add(e)
	}
	bd := cmplx.Boundary(c, full)
	assert.Equal(t, 0, bd.Len(), "the boundary of the full 1-cycle on a circle must vanish")
}

func TestCircle_SingleEdgeBoundaryHasTwoVertices(t *testing.T) {
	c, err := cubical.New([]int{3})
	require.NoError(t, err)
	edges := c.Cells(1)
	require.Len(t, edges, 3)

	bd := cmplx.Boundary(c, chain.New(edges[0]))
	assert.Equal(t, 2, bd.Len())
}

func TestComplex_ColumnIsTransposeOfRow(t *testing.T) {
	c, err := cubical.New([]int{3, 3})
	require.NoError(t, err)

	for _, hi := range c.Cells(1) {
		var faces []chain.Cell
		c.Column(hi, func(lo chain.Cell) { faces = append(faces, lo) })
		for _, lo := range faces {
			var cofaces []chain.Cell
			c.Row(lo, func(hi2 chain.Cell) { cofaces = append(cofaces, hi2) })
			assert.Contains(t, cofaces, hi, "Row must be the transpose of Column")
		}
	}
}

// Disk is the 2D fixture CubicalComplex([2,2]) from spec.md §8.
func TestDisk_DimensionAndShapeCounts(t *testing.T) {
	c, err := cubical.New([]int{2, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Dimension())
	assert.Equal(t, 4, c.SizeOf(0))
	assert.Equal(t, 8, c.SizeOf(1))
	assert.Equal(t, 4, c.SizeOf(2))
}

// Torus is the 2D fixture CubicalComplex([3,3]) from spec.md §8: every
// cell's boundary-of-boundary must vanish, the hallmark ∂∂=0 invariant.
func TestTorus_BoundaryOfBoundaryVanishes(t *testing.T) {
	c, err := cubical.New([]int{3, 3})
	require.NoError(t, err)

	for _, top := range c.Cells(2) {
		b1 := cmplx.Boundary(c, chain.New(top))
		b2 := cmplx.Boundary(c, b1)
		assert.Equal(t, 0, b2.Len(), "∂∂ must vanish on cell %d", top)
	}
}

func TestTorus_VerticesAreNeverFringe(t *testing.T) {
	// A torus (every box extent > 1) still has fringe cells by the
	// literal shape-bit-restricted RightFringe definition: vertices
	// (shape 0) are never fringe since they have no extent dimension.
	c, err := cubical.New([]int{3, 3})
	require.NoError(t, err)
	for _, v := range c.Cells(0) {
		assert.False(t, c.RightFringe(v))
		assert.False(t, c.LeftFringe(v))
	}
}

func TestCellIndex_RoundTripsWithCoordinatesAndShape(t *testing.T) {
	c, err := cubical.New([]int{3, 4})
	require.NoError(t, err)
	for _, cell := range c.Cells(1) {
		shape := c.CellShape(cell)
		coords := c.Coordinates(cell)
		got := c.CellIndex(coords, shape)
		assert.Equal(t, cell, got)
	}
}

func TestTopStar_OnlyReturnsTopDimensionCells(t *testing.T) {
	c, err := cubical.New([]int{2, 2})
	require.NoError(t, err)
	topDim := c.Dimension()
	for _, v := range c.Cells(0) {
		top := c.TopStar(v)
		require.NotEmpty(t, top)
		for _, tc := range top {
			assert.Equal(t, topDim, c.CellDim(tc))
		}
	}
}

func TestParallelNeighbors_AreSameShape(t *testing.T) {
	c, err := cubical.New([]int{4, 4})
	require.NoError(t, err)
	for _, e := range c.Cells(1) {
		shape := c.CellShape(e)
		for _, n := range c.ParallelNeighbors(e) {
			assert.Equal(t, shape, c.CellShape(n))
		}
	}
}

func TestMinMaxCoords_AreBitmasksOverAllDimensions(t *testing.T) {
	c, err := cubical.New([]int{2, 2})
	require.NoError(t, err)
	origin := c.CellIndex([]int{0, 0}, 0)
	assert.Equal(t, 0b11, c.MinCoords(origin))

	corner := c.CellIndex([]int{1, 1}, 0)
	assert.Equal(t, 0b11, c.MaxCoords(corner))
}
