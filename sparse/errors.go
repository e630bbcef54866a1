// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// All exported operations return these sentinels (optionally wrapped with an
// operation tag via %w); tests match them with errors.Is. No operation panics
// on caller-supplied input.

package sparse

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "sparse: ..." for easy grepping across logs.
// Operations wrap with sparseErrorf(op, ErrX); callers still use errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<0 or cols<0).
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates that a row/column index is outside valid bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible lengths between operands,
	// e.g. a boolean mask whose length differs from the axis it selects.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix was passed to an operation.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrNilMask indicates that a nil *Mask was passed to a mask operation.
	ErrNilMask = errors.New("sparse: nil mask")

	// ErrNaNInf signals a NaN or ±Inf value at ingestion.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrShape signals a reduction whose shape cannot be read as a vector.
	ErrShape = errors.New("sparse: reduction is not a vector")

	// ErrUnknownAxis signals an Axis value other than AxisRow or AxisCol.
	ErrUnknownAxis = errors.New("sparse: unknown axis")
)

// sparseErrorf wraps an underlying error with the given operation tag.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
