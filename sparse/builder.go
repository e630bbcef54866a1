// SPDX-License-Identifier: MIT
// Package: sparse
//
// builder.go - COO triplet accumulator producing canonical CSR.
//
// Contract:
//   - rows ≥ 0, cols ≥ 0 (else ErrBadShape).
//   - Add rejects out-of-range coordinates (ErrOutOfRange) and NaN/±Inf (ErrNaNInf).
//   - Duplicate coordinates are summed; entries that end up exactly 0 are dropped.
//   - Build is deterministic: entries are ordered by (row, col) regardless of Add order.
//
// Complexity:
//   - Add: O(1) amortized. Build: O(n log n) for n added triplets.

package sparse

import (
	"fmt"
	"math"
	"sort"
)

const (
	opNewBuilder = "NewBuilder"
	opAdd        = "Builder.Add"
)

// cell is an ordered (row, col) coordinate used as the sort key during Build.
type cell struct {
	i int // row index
	j int // column index
}

// triplet is one pending (row, col, value) entry.
type triplet struct {
	cell
	v float64
}

// Builder accumulates triplets and compresses them into a CSR.
// A Builder may be reused after Build; it keeps its triplets.
type Builder struct {
	r, c     int
	triplets []triplet
}

// NewBuilder returns a Builder for a rows×cols matrix.
func NewBuilder(rows, cols int) (*Builder, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", opNewBuilder, rows, cols, ErrBadShape)
	}

	return &Builder{r: rows, c: cols}, nil
}

// Add records v at (i, j). Zero values are accepted and ignored at Build.
func (b *Builder) Add(i, j int, v float64) error {
	if i < 0 || i >= b.r || j < 0 || j >= b.c {
		return fmt.Errorf("%s(%d,%d): %w", opAdd, i, j, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s(%d,%d): %w", opAdd, i, j, ErrNaNInf)
	}
	b.triplets = append(b.triplets, triplet{cell: cell{i: i, j: j}, v: v})

	return nil
}

// Build compresses the accumulated triplets into a new CSR.
// Stage 1: sort a copy of the triplets by (row, col).
// Stage 2: merge runs of equal coordinates by summation, dropping zeros.
// Stage 3: finalize indptr via a prefix sum over per-row counts.
func (b *Builder) Build() *CSR {
	// Stage 1: sort a private copy so Build is repeatable.
	ts := append([]triplet(nil), b.triplets...)
	sort.SliceStable(ts, func(x, y int) bool {
		if ts[x].i != ts[y].i {
			return ts[x].i < ts[y].i
		}
		return ts[x].j < ts[y].j
	})

	// Stage 2: merge duplicates.
	indptr := make([]int, b.r+1)
	indices := make([]int, 0, len(ts))
	data := make([]float64, 0, len(ts))
	for k := 0; k < len(ts); {
		cur := ts[k].cell
		sum := 0.0
		for k < len(ts) && ts[k].cell == cur {
			sum += ts[k].v
			k++
		}
		if sum == 0 {
			continue // no stored zeros
		}
		indices = append(indices, cur.j)
		data = append(data, sum)
		indptr[cur.i+1]++
	}

	// Stage 3: prefix sum.
	for i := 0; i < b.r; i++ {
		indptr[i+1] += indptr[i]
	}

	return newCSR(b.r, b.c, indptr, indices, data)
}
