// SPDX-License-Identifier: MIT
// Package: frame
//
// summary.go - axis summaries with provenance.
//
// Variants:
//   - NumericSummary: reduction values; exposes comparisons only.
//   - BoolSummary: comparison results; exposes And/Or/Not, FilteredLabels, Resolve.
//
// Every operation returns a new summary carrying the receiver's labels, source
// and axis by reference. Summaries are never mutated after construction.
//
// State flow:
//
//	Numeric --compare--> Bool --And/Or/Not--> Bool --Resolve--> *Frame
//	                      \--FilteredLabels (read-only)

package frame

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/sparseframe/sparse"
)

const (
	opNewSummary = "NewSummary"
	opCompare    = "Compare"
	opAnd        = "And"
	opOr         = "Or"
	opAsBool     = "AsBool"
	opResolve    = "Resolve"
)

// CompareOp selects an elementwise comparison.
type CompareOp int

const (
	// Lt is value < threshold.
	Lt CompareOp = iota
	// Le is value <= threshold.
	Le
	// Gt is value > threshold.
	Gt
	// Ge is value >= threshold.
	Ge
)

// String implements fmt.Stringer.
func (op CompareOp) String() string {
	switch op {
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	default:
		return fmt.Sprintf("CompareOp(%d)", int(op))
	}
}

// eval applies op; any comparison involving NaN is false.
func (op CompareOp) eval(v, t float64) bool {
	switch op {
	case Lt:
		return v < t
	case Le:
		return v <= t
	case Gt:
		return v > t
	case Ge:
		return v >= t
	}
	return false
}

// Summary is the read-only surface shared by both variants.
type Summary[L comparable] interface {
	// Len returns the number of entries.
	Len() int
	// Labels returns a copy of the axis labels.
	Labels() []L
	// Source returns the producing frame, or nil.
	Source() *Frame[L]
	// Axis returns the source axis the labels belong to, if recorded.
	Axis() (sparse.Axis, bool)
}

// summaryMeta is the provenance shared by both variants.
type summaryMeta[L comparable] struct {
	labels    []L       // shared with the source frame; never written
	source    *Frame[L] // optional back-reference; read-only
	axis      sparse.Axis
	axisKnown bool
}

// Len returns the number of entries.
func (s *summaryMeta[L]) Len() int { return len(s.labels) }

// Labels returns a copy of the axis labels.
func (s *summaryMeta[L]) Labels() []L { return slices.Clone(s.labels) }

// Source returns the producing frame, or nil for free-standing summaries.
func (s *summaryMeta[L]) Source() *Frame[L] { return s.source }

// Axis returns the recorded source axis. Summaries built by Summarize and
// SummarizeOn always record it; NewSummary/NewBoolSummary never do.
func (s *summaryMeta[L]) Axis() (sparse.Axis, bool) { return s.axis, s.axisKnown }

// NumericSummary is a reduction result indexed by one axis's labels.
type NumericSummary[L comparable] struct {
	values []float64
	summaryMeta[L]
}

// NewSummary builds a free-standing numeric summary. source may be nil.
// len(values) must equal len(labels), else ErrDimensionMismatch. Both slices are copied.
func NewSummary[L comparable](values []float64, labels []L, source *Frame[L]) (*NumericSummary[L], error) {
	if len(values) != len(labels) {
		return nil, fmt.Errorf("%s: %d values, %d labels: %w",
			opNewSummary, len(values), len(labels), ErrDimensionMismatch)
	}

	return &NumericSummary[L]{
		values:      slices.Clone(values),
		summaryMeta: summaryMeta[L]{labels: slices.Clone(labels), source: source},
	}, nil
}

// Values returns a copy of the summary values.
func (s *NumericSummary[L]) Values() []float64 { return slices.Clone(s.values) }

// Less returns value < t per entry.
func (s *NumericSummary[L]) Less(t float64) *BoolSummary[L] { return s.compareScalar(Lt, t) }

// LessEqual returns value <= t per entry.
func (s *NumericSummary[L]) LessEqual(t float64) *BoolSummary[L] { return s.compareScalar(Le, t) }

// Greater returns value > t per entry.
func (s *NumericSummary[L]) Greater(t float64) *BoolSummary[L] { return s.compareScalar(Gt, t) }

// GreaterEqual returns value >= t per entry.
func (s *NumericSummary[L]) GreaterEqual(t float64) *BoolSummary[L] { return s.compareScalar(Ge, t) }

// Compare applies op against thresholds broadcast over the entries: a single
// threshold applies to every entry, otherwise there must be one per entry
// (ErrDimensionMismatch).
func (s *NumericSummary[L]) Compare(op CompareOp, thresholds ...float64) (*BoolSummary[L], error) {
	n := len(s.values)
	switch len(thresholds) {
	case 1:
		return s.compareScalar(op, thresholds[0]), nil
	case n:
		bs := make([]bool, n)
		for i, v := range s.values {
			bs[i] = op.eval(v, thresholds[i])
		}
		return s.derive(sparse.MaskFromBools(bs)), nil
	default:
		return nil, fmt.Errorf("%s %s: %d thresholds for %d entries: %w",
			opCompare, op, len(thresholds), n, ErrDimensionMismatch)
	}
}

func (s *NumericSummary[L]) compareScalar(op CompareOp, t float64) *BoolSummary[L] {
	bs := make([]bool, len(s.values))
	for i, v := range s.values {
		bs[i] = op.eval(v, t)
	}

	return s.derive(sparse.MaskFromBools(bs))
}

// derive wraps a mask with the receiver's provenance.
func (s *NumericSummary[L]) derive(m *sparse.Mask) *BoolSummary[L] {
	return &BoolSummary[L]{mask: m, summaryMeta: s.summaryMeta}
}

// BoolSummary is a boolean mask indexed by one axis's labels.
type BoolSummary[L comparable] struct {
	mask *sparse.Mask
	summaryMeta[L]
}

// NewBoolSummary builds a free-standing boolean summary. source may be nil.
// mask.Len() must equal len(labels), else ErrDimensionMismatch.
func NewBoolSummary[L comparable](mask *sparse.Mask, labels []L, source *Frame[L]) (*BoolSummary[L], error) {
	if mask == nil {
		return nil, frameErrorf(opNewSummary, sparse.ErrNilMask)
	}
	if mask.Len() != len(labels) {
		return nil, fmt.Errorf("%s: mask length %d, %d labels: %w",
			opNewSummary, mask.Len(), len(labels), ErrDimensionMismatch)
	}

	return &BoolSummary[L]{
		mask:        mask.Clone(),
		summaryMeta: summaryMeta[L]{labels: slices.Clone(labels), source: source},
	}, nil
}

// AsBool narrows a Summary to its boolean variant; numeric summaries fail
// with ErrTypeMismatch.
func AsBool[L comparable](s Summary[L]) (*BoolSummary[L], error) {
	b, ok := s.(*BoolSummary[L])
	if !ok || b == nil {
		return nil, fmt.Errorf("%s: %T: %w", opAsBool, s, ErrTypeMismatch)
	}

	return b, nil
}

// Mask returns the underlying mask (shared; masks are immutable).
func (b *BoolSummary[L]) Mask() *sparse.Mask { return b.mask }

// Bools returns the mask as a []bool.
func (b *BoolSummary[L]) Bools() []bool { return b.mask.Bools() }

// Count returns the number of true entries.
func (b *BoolSummary[L]) Count() int { return b.mask.Count() }

// Positions returns the indices of true entries in ascending order.
func (b *BoolSummary[L]) Positions() []int { return b.mask.Positions() }

// And returns the elementwise conjunction. Both summaries must index the same
// label sequence, element for element (ErrAxisMismatch); a nil other fails
// with ErrTypeMismatch. Provenance is taken from the receiver.
func (b *BoolSummary[L]) And(other *BoolSummary[L]) (*BoolSummary[L], error) {
	return b.combine(opAnd, other, (*sparse.Mask).And)
}

// Or returns the elementwise disjunction; same preconditions as And.
func (b *BoolSummary[L]) Or(other *BoolSummary[L]) (*BoolSummary[L], error) {
	return b.combine(opOr, other, (*sparse.Mask).Or)
}

// Not returns the elementwise negation.
func (b *BoolSummary[L]) Not() *BoolSummary[L] {
	return &BoolSummary[L]{mask: b.mask.Not(), summaryMeta: b.summaryMeta}
}

func (b *BoolSummary[L]) combine(
	op string,
	other *BoolSummary[L],
	fn func(*sparse.Mask, *sparse.Mask) (*sparse.Mask, error),
) (*BoolSummary[L], error) {
	if other == nil {
		return nil, frameErrorf(op, ErrTypeMismatch)
	}
	if !slices.Equal(b.labels, other.labels) {
		return nil, frameErrorf(op, ErrAxisMismatch)
	}
	m, err := fn(b.mask, other.mask)
	if err != nil {
		return nil, frameErrorf(op, err)
	}

	return &BoolSummary[L]{mask: m, summaryMeta: b.summaryMeta}, nil
}

// FilteredLabels returns the labels at true positions, in axis order.
func (b *BoolSummary[L]) FilteredLabels() []L {
	return takeLabels(b.labels, b.mask.Positions())
}

// Resolve sub-selects the source frame with this mask: on the column axis
// when the mask indexes columns, on the row axis when it indexes rows.
//
// Axis choice:
//   - recorded axis (from Summarize/SummarizeOn): used, after re-checking the
//     mask length with the matching axis predicate;
//   - otherwise by length: column match → columns, row match → rows, both →
//     ErrAmbiguousAxis, neither → ErrUnresolvedAxis.
//
// The labels must equal the source's labels on the chosen axis, else
// ErrUnresolvedAxis. Without a source: ErrMissingSource.
func (b *BoolSummary[L]) Resolve() (*Frame[L], error) {
	src := b.source
	if src == nil {
		return nil, frameErrorf(opResolve, ErrMissingSource)
	}

	axis, err := b.resolveAxis(src)
	if err != nil {
		return nil, frameErrorf(opResolve, err)
	}
	if !slices.Equal(b.labels, src.labelsOn(axis)) {
		return nil, fmt.Errorf("%s: labels differ from source %s labels: %w", opResolve, axis, ErrUnresolvedAxis)
	}

	var sub *Frame[L]
	if axis == sparse.AxisCol {
		sub, err = src.SubSelect(nil, b.mask)
	} else {
		sub, err = src.SubSelect(b.mask, nil)
	}
	if err != nil {
		return nil, frameErrorf(opResolve, err)
	}

	return sub, nil
}

// resolveAxis picks the source axis this mask selects on.
func (b *BoolSummary[L]) resolveAxis(src *Frame[L]) (sparse.Axis, error) {
	onCols, err := src.MatchesColumnAxis(b.mask)
	if err != nil {
		return 0, err
	}
	onRows, err := src.MatchesRowAxis(b.mask)
	if err != nil {
		return 0, err
	}

	if b.axisKnown {
		if (b.axis == sparse.AxisCol && onCols) || (b.axis == sparse.AxisRow && onRows) {
			return b.axis, nil
		}
		return 0, fmt.Errorf("mask length %d vs %s axis: %w", b.mask.Len(), b.axis, ErrUnresolvedAxis)
	}

	switch {
	case onCols && onRows:
		return 0, fmt.Errorf("mask length %d: %w", b.mask.Len(), ErrAmbiguousAxis)
	case onCols:
		return sparse.AxisCol, nil
	case onRows:
		return sparse.AxisRow, nil
	default:
		return 0, fmt.Errorf("mask length %d on a %dx%d frame: %w",
			b.mask.Len(), src.Rows(), src.Cols(), ErrUnresolvedAxis)
	}
}
