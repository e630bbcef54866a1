// SPDX-License-Identifier: MIT
package sparse_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sparseframe/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReductions_AgainstDense(t *testing.T) {
	t.Parallel()

	// Negative values make Max/Min sensitive to implicit zeros.
	rows := [][]float64{
		{0, 1, -2, 2},
		{0, 0, -1, 3},
		{5, 4, -3, 0},
	}
	m := MustCSR(t, rows)

	tests := []struct {
		name   string
		fn     func(sparse.Matrix, sparse.Axis) (sparse.Reduction, error)
		along  sparse.Axis
		want   []float64
		wantSh []int
	}{
		{"sum/cols", sparse.Sum, sparse.AxisRow, []float64{5, 5, -6, 5}, []int{1, 4}},
		{"sum/rows", sparse.Sum, sparse.AxisCol, []float64{1, 2, 6}, []int{3, 1}},
		{"count/cols", sparse.CountNonZero, sparse.AxisRow, []float64{1, 2, 3, 2}, []int{1, 4}},
		{"count/rows", sparse.CountNonZero, sparse.AxisCol, []float64{3, 2, 3}, []int{3, 1}},
		{"max/cols", sparse.Max, sparse.AxisRow, []float64{5, 4, -1, 3}, []int{1, 4}},
		{"min/cols", sparse.Min, sparse.AxisRow, []float64{0, 0, -3, 0}, []int{1, 4}},
		{"max/rows", sparse.Max, sparse.AxisCol, []float64{2, 3, 5}, []int{3, 1}},
		{"min/rows", sparse.Min, sparse.AxisCol, []float64{-2, -1, -3}, []int{3, 1}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.fn(m, tc.along)
			require.NoError(t, err)
			assert.Equal(t, tc.wantSh, got.Shape())
			flat, err := got.Flatten()
			require.NoError(t, err)
			assert.Equal(t, tc.want, flat)

			// The interface path agrees with the CSR path.
			slow, err := tc.fn(hide{m}, tc.along)
			require.NoError(t, err)
			assert.Equal(t, got.Values, slow.Values)
		})
	}
}

func TestMean_IncludesImplicitZeros(t *testing.T) {
	t.Parallel()

	m := MustCSR(t, [][]float64{{4, 0}, {0, 0}})
	red, err := sparse.Mean(m, sparse.AxisRow)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 0}, red.Values)

	empty, err := sparse.NewCSR(0, 2)
	require.NoError(t, err)
	red, err = sparse.Mean(empty, sparse.AxisRow)
	require.NoError(t, err)
	require.Len(t, red.Values, 2)
	assert.True(t, math.IsNaN(red.Values[0]))
}

func TestReduction_Flatten(t *testing.T) {
	t.Parallel()

	ok := []sparse.Reduction{
		sparse.VectorReduction([]float64{1, 2, 3}),
		{Values: []float64{1, 2, 3}, Dims: []int{1, 3}},
		{Values: []float64{1, 2, 3}, Dims: []int{3, 1}},
	}
	for _, r := range ok {
		flat, err := r.Flatten()
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2, 3}, flat)
	}

	bad := []sparse.Reduction{
		{Values: []float64{1, 2, 3, 4}, Dims: []int{2, 2}},
		{Values: []float64{1, 2}, Dims: []int{3}},
		{Values: []float64{1}, Dims: []int{1, 1, 1}},
		{Values: []float64{}, Dims: []int{-1}},
	}
	for _, r := range bad {
		_, err := r.Flatten()
		require.ErrorIs(t, err, sparse.ErrShape)
	}
}

func TestReductions_Errors(t *testing.T) {
	t.Parallel()

	_, err := sparse.Sum(nil, sparse.AxisRow)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)

	m := MustCSR(t, fixture3x4())
	_, err = sparse.Sum(m, sparse.Axis(7))
	require.ErrorIs(t, err, sparse.ErrUnknownAxis)
}
