package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/morsekit/chain"
	"github.com/katalvlaran/morsekit/cubical"
	"github.com/katalvlaran/morsekit/matching"
)

func zeroGrading(chain.Cell) int { return 0 }

func TestNewGeneric_EveryCellIsMatchedOrCritical(t *testing.T) {
	c, err := cubical.New([]int{3, 3})
	require.NoError(t, err)

	m, err := matching.NewGeneric(c, zeroGrading)
	require.NoError(t, err)

	for d := 0; d <= c.Dimension(); d++ {
		for _, v := range c.Cells(d) {
			mate := m.Mate(v)
			if mate == v {
				continue // critical
			}
			assert.Equal(t, v, m.Mate(mate), "matching must be an involution")
		}
	}
}

func TestNewGeneric_CriticalCellsMatchFixedPoints(t *testing.T) {
	c, err := cubical.New([]int{3}) // circle, beta = (1,1)
	require.NoError(t, err)

	m, err := matching.NewGeneric(c, zeroGrading)
	require.NoError(t, err)

	begin, reindex := m.CriticalCells()
	require.Len(t, begin, c.Dimension()+2)

	for _, pair := range reindex {
		v := chain.Cell(pair[0])
		assert.Equal(t, v, m.Mate(v), "every reindexed cell must be a fixed point of Mate")
	}
}

func TestNewCubical_RejectsNonCubicalComplex(t *testing.T) {
	_, err := matching.NewCubical(fakeComplex{}, zeroGrading)
	require.Error(t, err)
	assert.ErrorIs(t, err, matching.ErrNotCubical)
}

func TestNewCubical_EveryNonFringeCellIsMatchedOrCritical(t *testing.T) {
	c, err := cubical.New([]int{4, 4})
	require.NoError(t, err)

	m, err := matching.NewCubical(c, zeroGrading)
	require.NoError(t, err)

	for d := 0; d <= c.Dimension(); d++ {
		for _, v := range c.Cells(d) {
			if c.RightFringe(v) {
				continue
			}
			mate := m.Mate(v)
			if mate == v {
				continue
			}
			assert.Equal(t, v, m.Mate(mate), "cubical matching must be an involution away from the fringe")
		}
	}
}

func TestNew_DispatchesOnComplexType(t *testing.T) {
	c, err := cubical.New([]int{2, 2})
	require.NoError(t, err)
	_, err = matching.New(c, zeroGrading)
	require.NoError(t, err)
}

func TestWithTieBreak_OverridesDefaultSelection(t *testing.T) {
	c, err := cubical.New([]int{3})
	require.NoError(t, err)

	var picked []chain.Cell
	highestFirst := func(candidates []chain.Cell) chain.Cell {
		best := candidates[0]
		for _, x := range candidates[1:] {
			if x > best {
				best = x
			}
		}
		picked = append(picked, best)
		return best
	}

	_, err = matching.NewGeneric(c, zeroGrading, matching.WithTieBreak(highestFirst))
	require.NoError(t, err)
	assert.NotEmpty(t, picked, "custom tie-break must have been consulted at least once")
}

// fakeComplex is a minimal cmplx.Complex stand-in, used only to prove
// NewCubical rejects non-cubical complexes.
type fakeComplex struct{}

func (fakeComplex) Dimension() int                        { return 0 }
func (fakeComplex) Size() int                             { return 0 }
func (fakeComplex) SizeOf(int) int                         { return 0 }
func (fakeComplex) Cells(int) []chain.Cell                 { return nil }
func (fakeComplex) Column(chain.Cell, func(chain.Cell))    {}
func (fakeComplex) Row(chain.Cell, func(chain.Cell))       {}
