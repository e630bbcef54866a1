// Package sparseframe is an indexed view over sparse numeric matrices: a
// labeled table backed by CSR storage, with relabeling, sub-selection by
// boolean or positional masks, axis summaries, and boolean-mask algebra that
// feeds summary predicates back into sub-selection.
//
// What is inside:
//
//	sparse/  CSR storage, COO builder, selectors, roaring-backed masks, axis reductions
//	frame/   Frame[L] (matrix + row/column labels) and Numeric/Bool summaries
//
// Quick sketch:
//
//	document × term counts ──Summarize(ColumnCounts)──► df per term
//	df ──GreaterEqual(2)──► mask ──And(...)──► mask ──Resolve()──► pruned frame
//
// Every operation returns a new value; frames and summaries are never
// mutated after construction and are safe for concurrent readers.
//
// Not a dataframe engine: no typed columns, no joins, no I/O.
//
//	go get github.com/katalvlaran/sparseframe
package sparseframe
