// SPDX-License-Identifier: MIT
package frame_test

import (
	"testing"

	"github.com/katalvlaran/sparseframe/frame"
	"github.com/katalvlaran/sparseframe/sparse"
	"github.com/stretchr/testify/require"
)

// docTerm is a 3×4 document×term matrix; columns 1 and 3 have non-zero sums.
//
//	[0 1 0 2]
//	[0 0 0 3]
//	[0 4 0 0]
func docTerm(t testing.TB) *sparse.CSR {
	t.Helper()
	m, err := sparse.FromDense([][]float64{
		{0, 1, 0, 2},
		{0, 0, 0, 3},
		{0, 4, 0, 0},
	})
	require.NoError(t, err)
	return m
}

// square builds a 2×2 matrix, the shape on which lengths match both axes.
func square(t testing.TB) *sparse.CSR {
	t.Helper()
	m, err := sparse.FromDense([][]float64{{1, 0}, {2, 3}})
	require.NoError(t, err)
	return m
}

// mustIndexed wraps m with default integer labels or fails the test.
func mustIndexed(t testing.TB, m sparse.Matrix) *frame.Frame[int] {
	t.Helper()
	f, err := frame.NewIndexed(m)
	require.NoError(t, err)
	return f
}

// dense renders a frame's matrix or fails the test.
func dense[L comparable](t testing.TB, f *frame.Frame[L]) [][]float64 {
	t.Helper()
	d, err := sparse.ToDense(f.Matrix())
	require.NoError(t, err)
	return d
}
