// SPDX-License-Identifier: MIT
package sparse_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sparseframe/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_SumsDuplicatesAndDropsZeros(t *testing.T) {
	t.Parallel()

	b, err := sparse.NewBuilder(2, 3)
	require.NoError(t, err)

	// Out-of-order adds, a duplicate that sums, and a pair that cancels.
	require.NoError(t, b.Add(1, 2, 5))
	require.NoError(t, b.Add(0, 1, 1))
	require.NoError(t, b.Add(0, 1, 2))
	require.NoError(t, b.Add(1, 0, 4))
	require.NoError(t, b.Add(1, 0, -4))
	require.NoError(t, b.Add(0, 0, 0))

	m := b.Build()
	assert.Equal(t, 2, m.Nnz())
	assert.Equal(t, [][]float64{{0, 3, 0}, {0, 0, 5}}, MustDense(t, m))

	// Build is repeatable.
	again := b.Build()
	eq, err := sparse.Equal(m, again)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestBuilder_Errors(t *testing.T) {
	t.Parallel()

	_, err := sparse.NewBuilder(-1, 0)
	require.ErrorIs(t, err, sparse.ErrBadShape)

	b, err := sparse.NewBuilder(2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, b.Add(2, 0, 1), sparse.ErrOutOfRange)
	require.ErrorIs(t, b.Add(0, 0, math.NaN()), sparse.ErrNaNInf)
	require.ErrorIs(t, b.Add(0, 0, math.Inf(-1)), sparse.ErrNaNInf)
}

func TestFromDense_RaggedAndEmpty(t *testing.T) {
	t.Parallel()

	_, err := sparse.FromDense([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	_, err = sparse.FromDense([][]float64{{math.Inf(1)}})
	require.ErrorIs(t, err, sparse.ErrNaNInf)

	m, err := sparse.FromDense(nil)
	require.NoError(t, err)
	r, c := m.Shape()
	assert.Equal(t, 0, r)
	assert.Equal(t, 0, c)
}
