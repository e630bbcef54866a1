// SPDX-License-Identifier: MIT
// Package: sparse
//
// mask.go - fixed-length boolean vectors backed by roaring bitmaps.
//
// Purpose:
//   - Represent comparison results over summary vectors (one bit per position).
//   - Drive sub-selection: *Mask implements Selector.
//   - Keep mask algebra (And/Or/AndNot/Not) in compressed form; term vocabularies
//     can be large while the surviving set is small or dense runs.
//
// Contract:
//   - Length n is fixed at construction; bits are positions in [0, n).
//   - Positions are stored as uint32 (roaring), so n is capped at MaxMaskLen.
//   - A nil *Mask is a caller error: Len is 0, Shape is nil and Resolve
//     fails with ErrNilMask.
//   - Binary operations require equal lengths (ErrDimensionMismatch).
//   - Every operation returns a new Mask; receivers are never mutated after
//     construction, so a Mask may be shared by several summaries.

package sparse

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

const (
	opMask      = "Mask"
	opMaskAnd   = "Mask.And"
	opMaskOr    = "Mask.Or"
	opMaskNot   = "Mask.AndNot"
	opMaskBuild = "MaskFromPositions"
)

// MaxMaskLen is the largest mask length roaring's 32-bit positions can index.
const MaxMaskLen = 1 << 32

// Mask is a boolean vector of fixed length.
type Mask struct {
	n  int             // logical length
	bm *roaring.Bitmap // set positions, all < n
}

// NewMask returns an all-false mask of length n
// (n < 0 or n > MaxMaskLen ⇒ ErrBadShape).
func NewMask(n int) (*Mask, error) {
	if n < 0 || uint64(n) > MaxMaskLen {
		return nil, fmt.Errorf("%s(%d): %w", opMask, n, ErrBadShape)
	}

	return &Mask{n: n, bm: roaring.New()}, nil
}

// MaskFromBools builds a mask whose bit i equals bs[i].
// len(bs) must not exceed MaxMaskLen.
func MaskFromBools(bs []bool) *Mask {
	bm := roaring.New()
	for i, b := range bs {
		if b {
			bm.Add(uint32(i))
		}
	}

	return &Mask{n: len(bs), bm: bm}
}

// MaskFromPositions builds a length-n mask with the given positions set.
// Positions outside [0, n) yield ErrOutOfRange.
func MaskFromPositions(n int, pos ...int) (*Mask, error) {
	m, err := NewMask(n)
	if err != nil {
		return nil, err
	}
	for _, p := range pos {
		if p < 0 || p >= n {
			return nil, fmt.Errorf("%s: position %d not in [0,%d): %w", opMaskBuild, p, n, ErrOutOfRange)
		}
		m.bm.Add(uint32(p))
	}

	return m, nil
}

// Len returns the logical length.
func (m *Mask) Len() int {
	if m == nil {
		return 0
	}

	return m.n
}

// Shape returns the one-dimensional shape [n]; nil for a nil mask.
func (m *Mask) Shape() []int {
	if m == nil {
		return nil
	}

	return []int{m.n}
}

// Test reports whether position i is set; out-of-range positions read false.
func (m *Mask) Test(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}

	return m.bm.Contains(uint32(i))
}

// Count returns the number of set positions.
func (m *Mask) Count() int { return int(m.bm.GetCardinality()) }

// Positions returns the set positions in ascending order.
func (m *Mask) Positions() []int {
	out := make([]int, 0, m.bm.GetCardinality())
	it := m.bm.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}

// Bools expands the mask into a []bool of length n.
func (m *Mask) Bools() []bool {
	out := make([]bool, m.n)
	it := m.bm.Iterator()
	for it.HasNext() {
		out[it.Next()] = true
	}

	return out
}

// And returns m ∧ o.
func (m *Mask) And(o *Mask) (*Mask, error) {
	if err := m.sameLen(o); err != nil {
		return nil, sparseErrorf(opMaskAnd, err)
	}

	return &Mask{n: m.n, bm: roaring.And(m.bm, o.bm)}, nil
}

// Or returns m ∨ o.
func (m *Mask) Or(o *Mask) (*Mask, error) {
	if err := m.sameLen(o); err != nil {
		return nil, sparseErrorf(opMaskOr, err)
	}

	return &Mask{n: m.n, bm: roaring.Or(m.bm, o.bm)}, nil
}

// AndNot returns m ∧ ¬o.
func (m *Mask) AndNot(o *Mask) (*Mask, error) {
	if err := m.sameLen(o); err != nil {
		return nil, sparseErrorf(opMaskNot, err)
	}

	return &Mask{n: m.n, bm: roaring.AndNot(m.bm, o.bm)}, nil
}

// Not returns ¬m within [0, n).
func (m *Mask) Not() *Mask {
	return &Mask{n: m.n, bm: roaring.Flip(m.bm, 0, uint64(m.n))}
}

// Equal reports whether both masks have the same length and bits.
func (m *Mask) Equal(o *Mask) bool {
	if o == nil {
		return false
	}

	return m.n == o.n && m.bm.Equals(o.bm)
}

// Clone returns a deep copy.
func (m *Mask) Clone() *Mask {
	return &Mask{n: m.n, bm: m.bm.Clone()}
}

// Resolve implements Selector: the mask must cover exactly n positions.
func (m *Mask) Resolve(n int) ([]int, error) {
	if m == nil {
		return nil, sparseErrorf(opMask, ErrNilMask)
	}
	if m.n != n {
		return nil, fmt.Errorf("mask length %d, axis length %d: %w", m.n, n, ErrDimensionMismatch)
	}

	return m.Positions(), nil
}

// String renders the mask as a 0/1 string, e.g. "0101".
func (m *Mask) String() string {
	buf := make([]byte, m.n)
	for i := range buf {
		buf[i] = '0'
	}
	it := m.bm.Iterator()
	for it.HasNext() {
		buf[it.Next()] = '1'
	}

	return string(buf)
}

// sameLen validates that both masks are non-nil and of equal length.
func (m *Mask) sameLen(o *Mask) error {
	if m == nil || o == nil {
		return ErrNilMask
	}
	if o.n != m.n {
		return fmt.Errorf("mask lengths %d and %d: %w", m.n, o.n, ErrDimensionMismatch)
	}

	return nil
}
