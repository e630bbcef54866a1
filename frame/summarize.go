// SPDX-License-Identifier: MIT

package frame

import (
	"fmt"

	"github.com/katalvlaran/sparseframe/sparse"
)

const (
	opSummarize   = "Summarize"
	opSummarizeOn = "SummarizeOn"
)

// Reducer collapses a matrix along one axis. Its Reduction may be shaped [n],
// [1, n] or [n, 1]; Summarize flattens it before matching axes.
type Reducer func(m sparse.Matrix) (sparse.Reduction, error)

// ColumnSums sums each column (reduces along axis 0). Default reducer.
func ColumnSums(m sparse.Matrix) (sparse.Reduction, error) { return sparse.Sum(m, sparse.AxisRow) }

// RowSums sums each row.
func RowSums(m sparse.Matrix) (sparse.Reduction, error) { return sparse.Sum(m, sparse.AxisCol) }

// ColumnCounts counts non-zero entries per column (document frequency when
// rows are documents).
func ColumnCounts(m sparse.Matrix) (sparse.Reduction, error) {
	return sparse.CountNonZero(m, sparse.AxisRow)
}

// RowCounts counts non-zero entries per row (distinct terms per document).
func RowCounts(m sparse.Matrix) (sparse.Reduction, error) {
	return sparse.CountNonZero(m, sparse.AxisCol)
}

// ColumnMeans averages each column, implicit zeros included.
func ColumnMeans(m sparse.Matrix) (sparse.Reduction, error) { return sparse.Mean(m, sparse.AxisRow) }

// RowMeans averages each row, implicit zeros included.
func RowMeans(m sparse.Matrix) (sparse.Reduction, error) { return sparse.Mean(m, sparse.AxisCol) }

// ColumnMax takes the maximum of each column.
func ColumnMax(m sparse.Matrix) (sparse.Reduction, error) { return sparse.Max(m, sparse.AxisRow) }

// RowMax takes the maximum of each row.
func RowMax(m sparse.Matrix) (sparse.Reduction, error) { return sparse.Max(m, sparse.AxisCol) }

// Summarize applies r to the matrix and indexes the result by whichever axis
// its length matches: the row labels when it equals Rows(), the column labels
// when it equals Cols().
//
// On a square frame the length matches both axes. The reduction's own
// orientation then decides: [n, 1] indexes rows, [1, n] indexes columns. A
// nil r means ColumnSums, whose axis is always columns. A flat [n] result on
// a square frame fails with ErrAmbiguousAxis; use SummarizeOn.
//
// Errors: ErrShape (reducer output not a vector), ErrSummaryShapeMismatch,
// ErrAmbiguousAxis, or the reducer's own error (wrapped).
func (f *Frame[L]) Summarize(r Reducer) (*NumericSummary[L], error) {
	if r == nil {
		return f.summarizeOn(opSummarize, sparse.AxisCol, ColumnSums)
	}

	values, red, err := f.reduce(r)
	if err != nil {
		return nil, frameErrorf(opSummarize, err)
	}

	n := len(values)
	onRows, onCols := n == len(f.rows), n == len(f.cols)
	var axis sparse.Axis
	switch {
	case onRows && onCols:
		o, ok := orientation(red)
		if !ok {
			return nil, fmt.Errorf("%s: length %d on a %dx%d frame: %w",
				opSummarize, n, len(f.rows), len(f.cols), ErrAmbiguousAxis)
		}
		axis = o
	case onRows:
		axis = sparse.AxisRow
	case onCols:
		axis = sparse.AxisCol
	default:
		return nil, fmt.Errorf("%s: length %d on a %dx%d frame: %w",
			opSummarize, n, len(f.rows), len(f.cols), ErrSummaryShapeMismatch)
	}

	return f.newNumeric(opSummarize, values, axis), nil
}

// SummarizeOn applies r and indexes the result by the named axis: sparse.AxisRow
// for one value per row, sparse.AxisCol for one value per column. The result's
// length must match that axis, and a two-dimensional result must be oriented
// along it ([n, 1] for rows, [1, n] for columns); otherwise
// ErrSummaryShapeMismatch. The summary records the axis, so Resolve never has
// to guess on square frames.
//
// Note the two readings of sparse.Axis: sparse.Sum(m, sparse.AxisRow)
// collapses the rows and yields one value per column, so ColumnSums pairs with
// sparse.AxisCol here.
func (f *Frame[L]) SummarizeOn(axis sparse.Axis, r Reducer) (*NumericSummary[L], error) {
	if r == nil {
		r = ColumnSums
	}

	return f.summarizeOn(opSummarizeOn, axis, r)
}

func (f *Frame[L]) summarizeOn(op string, axis sparse.Axis, r Reducer) (*NumericSummary[L], error) {
	if err := sparse.ValidateAxis(axis); err != nil {
		return nil, frameErrorf(op, err)
	}
	values, red, err := f.reduce(r)
	if err != nil {
		return nil, frameErrorf(op, err)
	}
	if want := len(f.labelsOn(axis)); len(values) != want {
		return nil, fmt.Errorf("%s: length %d, %s axis has %d: %w",
			op, len(values), axis, want, ErrSummaryShapeMismatch)
	}
	if o, ok := orientation(red); ok && o != axis {
		return nil, fmt.Errorf("%s: reduction indexes the %s axis, want %s: %w",
			op, o, axis, ErrSummaryShapeMismatch)
	}

	return f.newNumeric(op, values, axis), nil
}

// reduce runs r and flattens its output into a vector; the raw reduction is
// returned alongside for its orientation.
func (f *Frame[L]) reduce(r Reducer) ([]float64, sparse.Reduction, error) {
	red, err := r(f.m)
	if err != nil {
		return nil, sparse.Reduction{}, err
	}
	values, err := red.Flatten()
	if err != nil {
		return nil, sparse.Reduction{}, fmt.Errorf("%w: %w", ErrShape, err)
	}

	return values, red, nil
}

// orientation reads the indexed axis off a reduction's shape: [n, 1] holds one
// value per row, [1, n] one per column. Flat and 1×1 results carry none.
func orientation(red sparse.Reduction) (sparse.Axis, bool) {
	if len(red.Dims) != 2 {
		return 0, false
	}
	switch rows, cols := red.Dims[0], red.Dims[1]; {
	case cols == 1 && rows != 1:
		return sparse.AxisRow, true
	case rows == 1 && cols != 1:
		return sparse.AxisCol, true
	default:
		return 0, false
	}
}

// labelsOn returns the (shared, read-only) label slice of an axis.
func (f *Frame[L]) labelsOn(axis sparse.Axis) []L {
	if axis == sparse.AxisRow {
		return f.rows
	}

	return f.cols
}

// newNumeric builds a summary sourced from f and logs it.
func (f *Frame[L]) newNumeric(op string, values []float64, axis sparse.Axis) *NumericSummary[L] {
	s := &NumericSummary[L]{
		values: values,
		summaryMeta: summaryMeta[L]{
			labels:    f.labelsOn(axis),
			source:    f,
			axis:      axis,
			axisKnown: true,
		},
	}
	logOp(f.log, op, len(f.rows), len(f.cols), logKeyAxis, axis.String(), logKeyCount, len(values))

	return s
}
