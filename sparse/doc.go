// SPDX-License-Identifier: MIT

// Package sparse is the storage engine behind sparseframe: a compressed sparse
// row (CSR) matrix of float64 values plus the small toolkit needed to slice
// and summarize it.
//
// What & Why:
//
//	Term-document counts, co-occurrence tables and similar NLP artifacts are
//	overwhelmingly zero. CSR keeps only the non-zeros, which makes row slicing,
//	transposition and axis reductions proportional to nnz instead of rows*cols.
//
// The package provides:
//
//   - Matrix: the read-only interface every consumer (frame/) depends on.
//   - CSR: the canonical implementation; immutable once built.
//   - Builder: COO triplet accumulator (duplicates summed, zeros dropped).
//   - Selector: All(), Positions(...), and *Mask for row/column selection.
//   - Mask: fixed-length boolean vector backed by a roaring bitmap.
//   - Reductions: Sum, CountNonZero, Mean, Max, Min along either axis.
//
// Error handling (sentinel errors, match with errors.Is):
//
//   - ErrBadShape, ErrOutOfRange, ErrDimensionMismatch, ErrNilMatrix,
//     ErrNilMask, ErrNaNInf, ErrShape, ErrUnknownAxis.
//
// Complexity quicksheet:
//
//	At: O(log nnz_row); Transpose: O(r + c + nnz); Select: O(r' + nnz_sel·log);
//	reductions: O(r + c + nnz); Mask And/Or/Not: roaring container ops.
package sparse
