// SPDX-License-Identifier: MIT

// Package sparse - CSR storage & safe accessors.
//
// Purpose:
//   - Keep only non-zero entries: indptr (len r+1), indices and data (len nnz).
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Keep algorithmic determinism (fixed row-major loop orders, no map iteration).
//   - Stay immutable after construction; every transform allocates a new CSR.
//
// Invariants (established by Builder/newCSR and preserved by every kernel):
//   - indptr[0] == 0, indptr is non-decreasing, indptr[r] == nnz.
//   - Within a row, column indices are strictly increasing.
//   - No stored zeros.
//
// AI-Hints:
//   - Prefer *CSR operands; Select and Transpose run in O(nnz) on the raw buffers.
//   - Zero-area shapes (0×N, N×0) are legal and come out of empty selections.

package sparse

import (
	"fmt"
	"sort"
	"strings"
)

// ---------- error context tags ----------

const (
	opNewCSR    = "NewCSR"
	opAt        = "At"
	opTranspose = "Transpose"
	opSelect    = "Select"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// CSR is a compressed sparse row matrix of float64 values.
type CSR struct {
	r, c    int       // number of rows and columns
	indptr  []int     // row pointers, len == r+1
	indices []int     // column index per stored entry, len == nnz
	data    []float64 // value per stored entry, len == nnz
}

// Compile-time interface check.
var _ Matrix = (*CSR)(nil)

// NewCSR returns an empty rows×cols CSR (all entries implicit zeros).
// Zero-size shapes are legal; negative dimensions yield ErrBadShape.
// Complexity: O(rows).
func NewCSR(rows, cols int) (*CSR, error) {
	// Validate dimensions (0 allowed: empty selections produce them).
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", opNewCSR, rows, cols, ErrBadShape)
	}

	return &CSR{r: rows, c: cols, indptr: make([]int, rows+1)}, nil
}

// newCSR assembles a CSR from buffers that already satisfy the invariants.
// Private: callers inside the package own the buffers they pass.
func newCSR(rows, cols int, indptr, indices []int, data []float64) *CSR {
	return &CSR{r: rows, c: cols, indptr: indptr, indices: indices, data: data}
}

// Rows returns the number of rows. Complexity: O(1).
func (m *CSR) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *CSR) Cols() int { return m.c }

// Shape returns (rows, cols). Complexity: O(1).
func (m *CSR) Shape() (rows, cols int) { return m.r, m.c }

// Nnz returns the number of stored entries. Complexity: O(1).
func (m *CSR) Nnz() int { return len(m.data) }

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check.
// Stage 2 (Execute): binary search the column inside the row segment.
// Complexity: O(log nnz_row).
func (m *CSR) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("CSR.%s(%d,%d): %w", opAt, row, col, ErrOutOfRange)
	}

	lo, hi := m.indptr[row], m.indptr[row+1]
	k := lo + sort.SearchInts(m.indices[lo:hi], col)
	if k < hi && m.indices[k] == col {
		return m.data[k], nil
	}

	return 0, nil // implicit zero
}

// Do visits every stored entry in row-major order until f returns false.
// Complexity: O(r + nnz).
func (m *CSR) Do(f func(i, j int, v float64) bool) {
	var i, k int
	for i = 0; i < m.r; i++ { // deterministic row order
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ { // ascending columns
			if !f(i, m.indices[k], m.data[k]) {
				return
			}
		}
	}
}

// Clone returns a deep copy. Complexity: O(r + nnz).
func (m *CSR) Clone() Matrix {
	return newCSR(m.r, m.c,
		append([]int(nil), m.indptr...),
		append([]int(nil), m.indices...),
		append([]float64(nil), m.data...),
	)
}

// Transpose returns mᵀ as a new CSR.
// Implementation:
//   - Stage 1: count entries per source column (= rows of the result).
//   - Stage 2: prefix-sum the counts into the result indptr.
//   - Stage 3: scatter entries; scanning source rows in ascending order keeps
//     the result's column indices sorted without an extra sort.
//
// Complexity: O(r + c + nnz) time and memory.
func (m *CSR) Transpose() (Matrix, error) {
	nnz := len(m.data)
	indptr := make([]int, m.c+1)
	indices := make([]int, nnz)
	data := make([]float64, nnz)

	// Stage 1: column histogram shifted by one for the prefix sum.
	for _, j := range m.indices {
		indptr[j+1]++
	}
	// Stage 2: prefix sum.
	for j := 0; j < m.c; j++ {
		indptr[j+1] += indptr[j]
	}

	// Stage 3: scatter with a moving write cursor per output row.
	next := append([]int(nil), indptr[:m.c]...)
	var i, k, dst int
	for i = 0; i < m.r; i++ {
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			dst = next[m.indices[k]]
			indices[dst] = i
			data[dst] = m.data[k]
			next[m.indices[k]]++
		}
	}

	return newCSR(m.c, m.r, indptr, indices, data), nil
}

// Select returns the row-then-column slice of m at the given selectors.
// Implementation:
//   - Stage 1: resolve both selectors (nil ⇒ every position); selectors
//     validate mask length and index bounds themselves.
//   - Stage 2: build a column fan-out table source col → output cols
//     (positional selectors may reorder or repeat columns).
//   - Stage 3: copy each selected row's entries through the fan-out table and
//     sort the row segment by output column when the mapping reorders.
//
// Behavior highlights:
//   - Output rows/cols follow selector order exactly (fancy indexing).
//   - Empty selections yield a legal zero-area CSR.
//
// Complexity: O(r' + c + nnz_sel·log nnz_row) time, O(nnz_sel) memory.
func (m *CSR) Select(rows, cols Selector) (Matrix, error) {
	// Stage 1: resolve selectors.
	rowPos, err := resolveSelector(rows, m.r)
	if err != nil {
		return nil, sparseErrorf(opSelect, fmt.Errorf("rows: %w", err))
	}
	colPos, err := resolveSelector(cols, m.c)
	if err != nil {
		return nil, sparseErrorf(opSelect, fmt.Errorf("cols: %w", err))
	}

	// Stage 2: fan-out table; monotone tracks whether sorting can be skipped.
	fanOut := make([][]int, m.c)
	monotone := true
	for k, j := range colPos {
		if len(fanOut[j]) > 0 || (k > 0 && j <= colPos[k-1]) {
			monotone = false // repeat or reorder
		}
		fanOut[j] = append(fanOut[j], k)
	}

	// Stage 3: copy.
	indptr := make([]int, len(rowPos)+1)
	indices := make([]int, 0, len(m.data))
	data := make([]float64, 0, len(m.data))
	var k, start int
	for out, i := range rowPos {
		start = len(indices)
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			for _, dst := range fanOut[m.indices[k]] {
				indices = append(indices, dst)
				data = append(data, m.data[k])
			}
		}
		if !monotone {
			sort.Sort(rowSegment{indices: indices[start:], data: data[start:]})
		}
		indptr[out+1] = len(indices)
	}

	return newCSR(len(rowPos), len(colPos), indptr, indices, data), nil
}

// rowSegment sorts one row's (index, value) pairs by index in lockstep.
type rowSegment struct {
	indices []int
	data    []float64
}

func (s rowSegment) Len() int           { return len(s.indices) }
func (s rowSegment) Less(a, b int) bool { return s.indices[a] < s.indices[b] }
func (s rowSegment) Swap(a, b int) {
	s.indices[a], s.indices[b] = s.indices[b], s.indices[a]
	s.data[a], s.data[b] = s.data[b], s.data[a]
}

// String implements fmt.Stringer (dense rendering; for debugging small matrices).
// Complexity: O(r*c).
func (m *CSR) String() string {
	var sb strings.Builder
	var i, j, k int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		k = m.indptr[i]
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			if k < m.indptr[i+1] && m.indices[k] == j {
				fmt.Fprintf(&sb, "%g", m.data[k])
				k++
				continue
			}
			sb.WriteString("0")
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
