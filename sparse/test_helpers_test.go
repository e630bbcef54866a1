// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers
//
// Purpose:
//   • Small deterministic fixtures shared across the sparse tests.
//   • hide masks *CSR so tests can exercise the generic (interface) paths.

package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparseframe/sparse"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing fallback paths in code under test.
type hide struct{ sparse.Matrix }

// MustCSR builds a CSR from dense rows or fails the test.
func MustCSR(t testing.TB, rows [][]float64) *sparse.CSR {
	t.Helper()
	m, err := sparse.FromDense(rows)
	require.NoError(t, err)
	return m
}

// MustDense materializes m or fails the test.
func MustDense(t testing.TB, m sparse.Matrix) [][]float64 {
	t.Helper()
	d, err := sparse.ToDense(m)
	require.NoError(t, err)
	return d
}

// fixture3x4 is a 3×4 matrix with empty column 0 and empty column 2.
//
//	[0 1 0 2]
//	[0 0 0 3]
//	[0 4 0 0]
func fixture3x4() [][]float64 {
	return [][]float64{
		{0, 1, 0, 2},
		{0, 0, 0, 3},
		{0, 4, 0, 0},
	}
}
