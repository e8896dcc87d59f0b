package connection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/morsekit/chain"
	"github.com/katalvlaran/morsekit/connection"
	"github.com/katalvlaran/morsekit/cubical"
	"github.com/katalvlaran/morsekit/graded"
)

func zeroGrading(chain.Cell) int { return 0 }

func TestMatrix_ReachesAFixedPoint(t *testing.T) {
	c, err := cubical.New([]int{3, 3})
	require.NoError(t, err)
	base := graded.Graded{Complex: c, Value: zeroGrading}

	fixed, err := connection.Matrix(base)
	require.NoError(t, err)

	again, err := graded.Reduce(fixed)
	require.NoError(t, err)
	assert.Equal(t, fixed.Complex.Size(), again.Complex.Size(), "a fixed point must reduce no further")
}

func TestTower_EndsAtTheSameFixedPointAsMatrix(t *testing.T) {
	c, err := cubical.New([]int{3})
	require.NoError(t, err)
	base := graded.Graded{Complex: c, Value: zeroGrading}

	tower, err := connection.Tower(base)
	require.NoError(t, err)
	require.NotEmpty(t, tower)

	matrix, err := connection.Matrix(base)
	require.NoError(t, err)

	assert.Equal(t, matrix.Complex.Size(), tower[len(tower)-1].Complex.Size())
}

func TestTower_SizesAreNonIncreasing(t *testing.T) {
	c, err := cubical.New([]int{4, 4})
	require.NoError(t, err)
	base := graded.Graded{Complex: c, Value: zeroGrading}

	tower, err := connection.Tower(base)
	require.NoError(t, err)

	for i := 1; i < len(tower); i++ {
		assert.LessOrEqual(t, tower[i].Complex.Size(), tower[i-1].Complex.Size())
	}
}

func TestMatrix_RespectsWithMaxIterations(t *testing.T) {
	c, err := cubical.New([]int{3, 3})
	require.NoError(t, err)
	base := graded.Graded{Complex: c, Value: zeroGrading}

	_, err = connection.Matrix(base, connection.WithMaxIterations(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, connection.ErrMaxIterationsExceeded)
}
