package dual_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/morsekit/chain"
	"github.com/katalvlaran/morsekit/cubical"
	"github.com/katalvlaran/morsekit/dual"
)

func TestNew_ReversesDimension(t *testing.T) {
	c, err := cubical.New([]int{2, 2})
	require.NoError(t, err)
	d := dual.New(c)

	assert.Equal(t, c.Dimension(), d.Dimension())
	for dim := 0; dim <= c.Dimension(); dim++ {
		assert.Equal(t, c.SizeOf(c.Dimension()-dim), d.SizeOf(dim))
	}
}

func TestColumn_IsUnderlyingRowReindexed(t *testing.T) {
	c, err := cubical.New([]int{3})
	require.NoError(t, err)
	d := dual.New(c)

	for i := 0; i < d.Size(); i++ {
		var got []chain.Cell
		d.Column(chain.Cell(i), func(x chain.Cell) { got = append(got, x) })

		var want []chain.Cell
		c.Row(chain.Cell(d.Size()-i-1), func(x chain.Cell) {
			want = append(want, chain.Cell(d.Size()-int(x)-1))
		})
		assert.ElementsMatch(t, want, got)
	}
}

func TestDualOfDualRestoresColumn(t *testing.T) {
	c, err := cubical.New([]int{3, 3})
	require.NoError(t, err)
	d1 := dual.New(c)
	d2 := dual.New(d1)

	for i := 0; i < c.Size(); i++ {
		var want, got []chain.Cell
		c.Column(chain.Cell(i), func(x chain.Cell) { want = append(want, x) })
		d2.Column(chain.Cell(i), func(x chain.Cell) { got = append(got, x) })
		assert.ElementsMatch(t, want, got)
	}
}
