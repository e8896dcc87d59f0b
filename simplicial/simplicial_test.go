package simplicial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/morsekit/chain"
	"github.com/katalvlaran/morsekit/cmplx"
	"github.com/katalvlaran/morsekit/simplicial"
)

func TestNew_ClosesUnderFaceRelation(t *testing.T) {
	// A single triangle {0,1,2}: closure must add 3 edges and 3 vertices.
	c := simplicial.New([][]int{{0, 1, 2}})
	assert.Equal(t, 2, c.Dimension())
	assert.Equal(t, 3, c.SizeOf(0))
	assert.Equal(t, 3, c.SizeOf(1))
	assert.Equal(t, 1, c.SizeOf(2))
}

func TestNew_BoundaryOfBoundaryVanishes(t *testing.T) {
	c := simplicial.New([][]int{{0, 1, 2, 3}})
	for d := 0; d <= c.Dimension(); d++ {
		for _, cell := range c.Cells(d) {
			b1 := cmplx.Boundary(c, chain.New(cell))
			b2 := cmplx.Boundary(c, b1)
			assert.Equal(t, 0, b2.Len(), "∂∂ must vanish")
		}
	}
}

func TestNew_DeduplicatesSharedFaces(t *testing.T) {
	// Two triangles sharing edge {1,2}: the shared edge and its two
	// vertices must appear exactly once.
	c := simplicial.New([][]int{{0, 1, 2}, {1, 2, 3}})
	require.Equal(t, 4, c.SizeOf(0)) // vertices 0,1,2,3
	require.Equal(t, 5, c.SizeOf(1)) // edges 01,02,12,13,23
	assert.Equal(t, 2, c.SizeOf(2))
}
