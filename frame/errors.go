// SPDX-License-Identifier: MIT
// Package frame: sentinel error set.
// Every failure is reported immediately by the call that detects it; no
// operation returns a partially built Frame or summary. Storage errors from
// package sparse are wrapped with the frame operation tag and remain
// matchable with errors.Is against the sparse sentinels.

package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch: a label array (or summary data) length disagrees
	// with the axis it describes.
	ErrDimensionMismatch = errors.New("frame: dimension mismatch")

	// ErrShape: a vector handed to an axis predicate is not one-dimensional.
	ErrShape = errors.New("frame: vector must be one-dimensional")

	// ErrSummaryShapeMismatch: a reducer's output length matches neither the
	// row count nor the column count (or not the requested axis).
	ErrSummaryShapeMismatch = errors.New("frame: summary length matches no axis")

	// ErrAxisMismatch: boolean summaries combined over different label sequences.
	ErrAxisMismatch = errors.New("frame: summaries index different labels")

	// ErrTypeMismatch: a boolean-only operation was given non-boolean data.
	ErrTypeMismatch = errors.New("frame: summary is not boolean")

	// ErrUnresolvedAxis: a mask matches neither axis of its source frame.
	ErrUnresolvedAxis = errors.New("frame: mask matches no axis of source")

	// ErrMissingSource: Resolve called on a summary without a source frame.
	ErrMissingSource = errors.New("frame: summary has no source frame")

	// ErrAmbiguousAxis: a vector length matches both axes (square frame) and
	// no axis was named.
	ErrAmbiguousAxis = errors.New("frame: vector length matches both axes")

	// ErrNilMatrix: a nil matrix was passed to New.
	ErrNilMatrix = errors.New("frame: nil matrix")

	// ErrLabelScheme: labels were omitted for a label type with no default
	// scheme and no WithLabelFunc.
	ErrLabelScheme = errors.New("frame: no default labels for label type")

	// ErrUnknownLabel: a label lookup found no such row or column.
	ErrUnknownLabel = errors.New("frame: unknown label")
)

// frameErrorf wraps an underlying error with the given operation tag.
func frameErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
