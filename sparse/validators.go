// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Single source of truth for nil/shape checks shared by kernels.
//   - Return plain sentinels (tagged with the validator name) so call sites
//     can wrap uniformly.

package sparse

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including typed-nil *CSR.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if c, ok := m.(*CSR); ok && c == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have identical dimensions.
// Assumes both are non-nil.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateAxis ensures a is AxisRow or AxisCol.
func ValidateAxis(a Axis) error {
	if !a.valid() {
		return validatorErrorf("ValidateAxis", ErrUnknownAxis)
	}

	return nil
}
