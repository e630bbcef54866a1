// SPDX-License-Identifier: MIT

// Package sparse: interfaces shared by the storage engine and its consumers.
// Consumers (frame/) depend on Matrix and Selector only, never on *CSR, so a
// different storage layout can be slotted in without touching label logic.
package sparse

// Axis names one of the two matrix dimensions.
type Axis int

const (
	// AxisRow is dimension 0 (rows).
	AxisRow Axis = iota
	// AxisCol is dimension 1 (columns).
	AxisCol
)

// String implements fmt.Stringer.
func (a Axis) String() string {
	switch a {
	case AxisRow:
		return "row"
	case AxisCol:
		return "col"
	default:
		return "unknown"
	}
}

// valid reports whether a is AxisRow or AxisCol.
func (a Axis) valid() bool { return a == AxisRow || a == AxisCol }

// Matrix is a read-only two-dimensional container of float64 values.
//
// Implementations must never mutate the receiver: Transpose, Select and
// Clone always return independent values.
//
// Complexity notes: Rows/Cols/Shape/Nnz are O(1).
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// Shape returns (Rows(), Cols()).
	Shape() (rows, cols int)

	// At retrieves the element at (i, j); implicit entries read as 0.
	// Returns ErrOutOfRange if the indices are invalid.
	At(i, j int) (float64, error)

	// Nnz returns the number of explicitly stored (non-zero) entries.
	Nnz() int

	// Transpose returns mᵀ as a new Matrix.
	Transpose() (Matrix, error)

	// Select returns the row-then-column slice at the given selectors.
	// A nil selector keeps every position on that axis.
	Select(rows, cols Selector) (Matrix, error)

	// Clone returns a deep copy.
	Clone() Matrix

	// Do visits stored entries in row-major order until f returns false.
	Do(f func(i, j int, v float64) bool)
}

// Selector resolves to an ordered list of positions on an axis of length n.
// Implementations validate themselves against n (mask length, index bounds).
type Selector interface {
	Resolve(n int) ([]int, error)
}
