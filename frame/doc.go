// SPDX-License-Identifier: MIT

// Package frame keeps row and column labels synchronized with a sparse
// numeric matrix, and lets predicates on axis summaries drive further
// sub-selection.
//
// Overview:
//
//   - Frame[L]: a sparse.Matrix plus one label per row and one per column.
//     Transpose, SubSelect and Summarize return new frames/summaries; a Frame
//     is never mutated after New.
//   - NumericSummary[L]: a reduction result indexed by one axis's labels, with
//     a shared back-reference to the frame that produced it.
//   - BoolSummary[L]: the result of comparing a NumericSummary to a threshold.
//     Boolean summaries combine with And/Or/Not, list their surviving labels
//     (FilteredLabels) and resolve back into a sub-frame (Resolve).
//
// Typical flow (term filtering on a document×term matrix):
//
//	df, _ := f.Summarize(frame.ColumnCounts)   // document frequency per term
//	common := df.GreaterEqual(2)
//	rare := df.Less(100)
//	keep, _ := common.And(rare)
//	sub, _ := keep.Resolve()                  // same documents, surviving terms
//
// Axis inference:
//
//	Summarize and Resolve infer the axis from vector length. When the frame is
//	square the length fits both axes: Summarize falls back on the reduction's
//	orientation ([n, 1] rows, [1, n] columns) and fails with ErrAmbiguousAxis
//	for flat results; Resolve fails with ErrAmbiguousAxis unless the summary
//	recorded its axis. SummarizeOn names the axis explicitly and rejects a
//	reduction oriented along the other one.
//
// Error handling (sentinel errors, match with errors.Is):
//
//	ErrDimensionMismatch, ErrShape, ErrSummaryShapeMismatch, ErrAxisMismatch,
//	ErrTypeMismatch, ErrUnresolvedAxis, ErrMissingSource, ErrAmbiguousAxis,
//	ErrNilMatrix, ErrLabelScheme, ErrUnknownLabel.
//
// Concurrency:
//
//	Frames and summaries are immutable values; concurrent readers are safe.
package frame
