// SPDX-License-Identifier: MIT
// Package: frame
//
// frame.go - Frame[L]: a sparse matrix with synchronized row/column labels.
//
// Contract:
//   - len(rowLabels) == Rows() and len(colLabels) == Cols() for the lifetime of
//     the value; New fails with ErrDimensionMismatch otherwise.
//   - Transpose and SubSelect return new frames; the receiver is never mutated.
//   - Storage is reached only through sparse.Matrix.
//
// Complexity:
//   - New: O(R + C) label copies. T: storage transpose + O(1).
//   - SubSelect: storage select + O(R' + C') label gathers.

package frame

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/katalvlaran/sparseframe/sparse"
)

// Operation name constants for unified error wrapping and log records.
const (
	opNew       = "New"
	opTranspose = "T"
	opSubSelect = "SubSelect"
	opMatches   = "MatchesAxis"
	opAt        = "At"
)

// Frame is a sparse matrix with one label per row and one per column.
type Frame[L comparable] struct {
	m    sparse.Matrix
	rows []L
	cols []L
	log  *slog.Logger

	// label → first position, built on first lookup; safe for concurrent readers.
	rowIndex func() map[L]int
	colIndex func() map[L]int
}

// New wraps m with labels.
// Stage 1 (Validate): m non-nil.
// Stage 2 (Labels): supplied labels must match the axis length; omitted labels
// come from WithLabelFunc or the built-in scheme for L.
// Stage 3 (Finalize): assemble the frame.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrLabelScheme.
func New[L comparable](m sparse.Matrix, opts ...Option[L]) (*Frame[L], error) {
	// Stage 1.
	if sparse.ValidateNotNil(m) != nil {
		return nil, frameErrorf(opNew, ErrNilMatrix)
	}
	o := gatherOptions(opts)
	r, c := m.Shape()

	// Stage 2.
	rows, err := resolveLabels(o.rowLabels, o.rowsSet, r, o.labelFn, "row")
	if err != nil {
		return nil, frameErrorf(opNew, err)
	}
	cols, err := resolveLabels(o.colLabels, o.colsSet, c, o.labelFn, "col")
	if err != nil {
		return nil, frameErrorf(opNew, err)
	}

	// Stage 3.
	return newFrame(m, rows, cols, o.logger), nil
}

// NewIndexed wraps m with integer labels (0-based ranges unless supplied).
// Shorthand for New[int].
func NewIndexed(m sparse.Matrix, opts ...Option[int]) (*Frame[int], error) {
	return New[int](m, opts...)
}

// resolveLabels validates supplied labels or generates defaults for an axis of length n.
func resolveLabels[L comparable](labels []L, set bool, n int, fn LabelFunc[L], axis string) ([]L, error) {
	if set {
		if len(labels) != n {
			return nil, fmt.Errorf("%s labels: got %d, want %d: %w", axis, len(labels), n, ErrDimensionMismatch)
		}
		return labels, nil // already copied by the option
	}
	if fn == nil {
		var zero L
		return nil, fmt.Errorf("%s labels of type %T: %w", axis, zero, ErrLabelScheme)
	}

	return makeLabels(n, fn), nil
}

// newFrame assembles a frame from owned label slices; lengths are trusted.
func newFrame[L comparable](m sparse.Matrix, rows, cols []L, log *slog.Logger) *Frame[L] {
	f := &Frame[L]{m: m, rows: rows, cols: cols, log: log}
	f.rowIndex = sync.OnceValue(func() map[L]int { return indexLabels(f.rows) })
	f.colIndex = sync.OnceValue(func() map[L]int { return indexLabels(f.cols) })

	return f
}

// Matrix returns the underlying storage. Callers must treat it as read-only.
func (f *Frame[L]) Matrix() sparse.Matrix { return f.m }

// DocumentTermMatrix returns the underlying storage.
//
// Deprecated: legacy name from the document-term API; use Matrix.
func (f *Frame[L]) DocumentTermMatrix() sparse.Matrix { return f.m }

// RowLabels returns a copy of the row labels.
func (f *Frame[L]) RowLabels() []L { return slices.Clone(f.rows) }

// ColLabels returns a copy of the column labels.
func (f *Frame[L]) ColLabels() []L { return slices.Clone(f.cols) }

// Rows returns the row count.
func (f *Frame[L]) Rows() int { return len(f.rows) }

// Cols returns the column count.
func (f *Frame[L]) Cols() int { return len(f.cols) }

// Shape returns (rows, cols).
func (f *Frame[L]) Shape() (rows, cols int) { return len(f.rows), len(f.cols) }

// T returns the transposed frame: transposed matrix, row and column labels swapped.
// T(T(x)) equals x label-for-label and value-for-value.
func (f *Frame[L]) T() (*Frame[L], error) {
	mt, err := f.m.Transpose()
	if err != nil {
		return nil, frameErrorf(opTranspose, err)
	}
	out := newFrame(mt, f.cols, f.rows, f.log) // label slices are immutable; share them
	logOp(f.log, opTranspose, out.Rows(), out.Cols())

	return out, nil
}

// SubSelect returns the row-then-column slice of f with correspondingly
// sliced labels. A nil selector keeps every position on its axis. Selector
// validity (mask length, index bounds) is checked by the storage layer and
// surfaces as a wrapped sparse sentinel.
func (f *Frame[L]) SubSelect(rows, cols sparse.Selector) (*Frame[L], error) {
	if rows == nil {
		rows = sparse.All()
	}
	if cols == nil {
		cols = sparse.All()
	}

	// Storage first: it owns selector validation.
	sub, err := f.m.Select(rows, cols)
	if err != nil {
		return nil, frameErrorf(opSubSelect, err)
	}
	rowPos, err := rows.Resolve(len(f.rows))
	if err != nil {
		return nil, frameErrorf(opSubSelect, err)
	}
	colPos, err := cols.Resolve(len(f.cols))
	if err != nil {
		return nil, frameErrorf(opSubSelect, err)
	}

	out := newFrame(sub, takeLabels(f.rows, rowPos), takeLabels(f.cols, colPos), f.log)
	logOp(f.log, opSubSelect, out.Rows(), out.Cols())

	return out, nil
}

// Shaped is any vector-like value that can report its dimensions
// (sparse.Reduction, *sparse.Mask, Vector).
type Shaped interface {
	Shape() []int
}

// Vector adapts a plain length to Shaped; handy for predicates on raw slices,
// e.g. f.MatchesRowAxis(frame.Vector(len(xs))).
type Vector int

// Shape returns the one-dimensional shape [n].
func (v Vector) Shape() []int { return []int{int(v)} }

// MatchesRowAxis reports whether v's length equals the row count.
// Non-one-dimensional vectors fail with ErrShape.
func (f *Frame[L]) MatchesRowAxis(v Shaped) (bool, error) {
	n, err := vectorLen(v)
	if err != nil {
		return false, frameErrorf(opMatches, err)
	}

	return n == len(f.rows), nil
}

// MatchesColumnAxis reports whether v's length equals the column count.
// Non-one-dimensional vectors fail with ErrShape.
func (f *Frame[L]) MatchesColumnAxis(v Shaped) (bool, error) {
	n, err := vectorLen(v)
	if err != nil {
		return false, frameErrorf(opMatches, err)
	}

	return n == len(f.cols), nil
}

// IsColumnVector reports whether v could be a column of f (one entry per row).
func (f *Frame[L]) IsColumnVector(v Shaped) (bool, error) { return f.MatchesRowAxis(v) }

// IsRowVector reports whether v could be a row of f (one entry per column).
func (f *Frame[L]) IsRowVector(v Shaped) (bool, error) { return f.MatchesColumnAxis(v) }

// vectorLen returns the length of a one-dimensional Shaped value. A nil
// *sparse.Mask reports no dims and fails with ErrShape.
func vectorLen(v Shaped) (int, error) {
	if v == nil {
		return 0, ErrShape
	}
	dims := v.Shape()
	if len(dims) != 1 {
		return 0, fmt.Errorf("got %d dims: %w", len(dims), ErrShape)
	}

	return dims[0], nil
}

// RowIndex returns the position of the first row labelled label.
func (f *Frame[L]) RowIndex(label L) (int, bool) {
	i, ok := f.rowIndex()[label]
	return i, ok
}

// ColIndex returns the position of the first column labelled label.
func (f *Frame[L]) ColIndex(label L) (int, bool) {
	j, ok := f.colIndex()[label]
	return j, ok
}

// At returns the value at (row, col) addressed by labels.
// Unknown labels yield ErrUnknownLabel.
func (f *Frame[L]) At(row, col L) (float64, error) {
	i, ok := f.RowIndex(row)
	if !ok {
		return 0, fmt.Errorf("%s: row %v: %w", opAt, row, ErrUnknownLabel)
	}
	j, ok := f.ColIndex(col)
	if !ok {
		return 0, fmt.Errorf("%s: col %v: %w", opAt, col, ErrUnknownLabel)
	}
	v, err := f.m.At(i, j)
	if err != nil {
		return 0, frameErrorf(opAt, err)
	}

	return v, nil
}
