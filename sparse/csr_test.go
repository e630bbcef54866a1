// SPDX-License-Identifier: MIT
// Package sparse_test contains unit tests for CSR storage and selection.
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparseframe/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCSR_Shapes(t *testing.T) {
	t.Parallel()

	m, err := sparse.NewCSR(2, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Zero(t, m.Nnz())

	empty, err := sparse.NewCSR(0, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows())
	assert.Equal(t, 5, empty.Cols())

	_, err = sparse.NewCSR(-1, 2)
	require.ErrorIs(t, err, sparse.ErrBadShape)
}

func TestCSR_AtAndBounds(t *testing.T) {
	t.Parallel()

	m := MustCSR(t, fixture3x4())
	assert.Equal(t, 4, m.Nnz())

	v, err := m.At(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	v, err = m.At(1, 1) // implicit zero
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	_, err = m.At(3, 0)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
}

func TestCSR_Transpose(t *testing.T) {
	t.Parallel()

	m := MustCSR(t, fixture3x4())
	mt, err := m.Transpose()
	require.NoError(t, err)

	r, c := mt.Shape()
	require.Equal(t, 4, r)
	require.Equal(t, 3, c)
	assert.Equal(t, [][]float64{
		{0, 0, 0},
		{1, 0, 4},
		{0, 0, 0},
		{2, 3, 0},
	}, MustDense(t, mt))

	// Round trip is exact, buffer for buffer.
	back, err := mt.Transpose()
	require.NoError(t, err)
	eq, err := sparse.Equal(m, back)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestCSR_SelectMaskAndPositions(t *testing.T) {
	t.Parallel()

	m := MustCSR(t, fixture3x4())
	cols, err := sparse.MaskFromPositions(4, 1, 3)
	require.NoError(t, err)

	sub, err := m.Select(nil, cols)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {0, 3}, {4, 0}}, MustDense(t, sub))

	// Positional selectors keep order and repeats.
	sub, err = m.Select(sparse.Positions(2, 0, 0), sparse.Positions(3, 1))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 4}, {2, 1}, {2, 1}}, MustDense(t, sub))

	// Repeated columns fan out.
	sub, err = m.Select(sparse.Positions(0), sparse.Positions(3, 3, 1))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, 2, 1}}, MustDense(t, sub))

	// Empty selection is a legal zero-area matrix.
	none, err := sparse.NewMask(3)
	require.NoError(t, err)
	sub, err = m.Select(none, sparse.All())
	require.NoError(t, err)
	r, c := sub.Shape()
	assert.Equal(t, 0, r)
	assert.Equal(t, 4, c)
}

func TestCSR_SelectErrors(t *testing.T) {
	t.Parallel()

	m := MustCSR(t, fixture3x4())

	short := sparse.MaskFromBools([]bool{true, false})
	_, err := m.Select(short, nil)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	_, err = m.Select(nil, sparse.Positions(4))
	require.ErrorIs(t, err, sparse.ErrOutOfRange)

	_, err = m.Select(sparse.Positions(-1), nil)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
}

func TestCSR_CloneIsIndependentValue(t *testing.T) {
	t.Parallel()

	m := MustCSR(t, fixture3x4())
	cl := m.Clone()
	eq, err := sparse.Equal(m, cl)
	require.NoError(t, err)
	assert.True(t, eq)
	assert.NotSame(t, m, cl)
}

func TestEqual_FallbackAndShape(t *testing.T) {
	t.Parallel()

	a := MustCSR(t, fixture3x4())
	b := MustCSR(t, fixture3x4())

	eq, err := sparse.Equal(hide{a}, b)
	require.NoError(t, err)
	assert.True(t, eq)

	other := MustCSR(t, [][]float64{{1, 2}, {3, 4}})
	eq, err = sparse.Equal(a, other)
	require.NoError(t, err)
	assert.False(t, eq)

	_, err = sparse.Equal(nil, a)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

func TestCSR_DoStopsEarly(t *testing.T) {
	t.Parallel()

	m := MustCSR(t, fixture3x4())
	var seen [][3]float64
	m.Do(func(i, j int, v float64) bool {
		seen = append(seen, [3]float64{float64(i), float64(j), v})
		return len(seen) < 2
	})
	assert.Equal(t, [][3]float64{{0, 1, 1}, {0, 3, 2}}, seen)
}

func TestCSR_String(t *testing.T) {
	t.Parallel()

	m := MustCSR(t, [][]float64{{1, 0}, {0, 2.5}})
	assert.Equal(t, "[1, 0]\n[0, 2.5]\n", m.String())
}
