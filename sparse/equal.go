// SPDX-License-Identifier: MIT

package sparse

import "slices"

const opEqual = "Equal"

// Equal reports whether a and b have the same shape and identical values
// (implicit zeros included). Exact comparison; no tolerance.
// Complexity: O(r + nnz_a + nnz_b) for *CSR pairs, O(r*c) otherwise.
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, sparseErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, sparseErrorf(opEqual, err)
	}
	if ValidateSameShape(a, b) != nil {
		return false, nil
	}

	// Fast path: canonical CSR buffers compare directly (no stored zeros).
	ca, okA := a.(*CSR)
	cb, okB := b.(*CSR)
	if okA && okB {
		return slices.Equal(ca.indptr, cb.indptr) &&
			slices.Equal(ca.indices, cb.indices) &&
			slices.Equal(ca.data, cb.data), nil
	}

	// Fallback: dense comparison through At.
	r, c := a.Shape()
	var i, j int
	var va, vb float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if va, err = a.At(i, j); err != nil {
				return false, sparseErrorf(opEqual, err)
			}
			if vb, err = b.At(i, j); err != nil {
				return false, sparseErrorf(opEqual, err)
			}
			if va != vb {
				return false, nil
			}
		}
	}

	return true, nil
}
