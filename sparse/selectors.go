// SPDX-License-Identifier: MIT

package sparse

import "fmt"

// allSelector keeps every position of an axis in order.
type allSelector struct{}

// All returns a Selector that keeps every position on its axis.
// Select treats a nil Selector the same way.
func All() Selector { return allSelector{} }

// Resolve returns 0..n-1.
func (allSelector) Resolve(n int) ([]int, error) {
	if n < 0 {
		return nil, ErrBadShape
	}

	return identity(n), nil
}

// positionSelector is an explicit list of positions (order kept, repeats allowed).
type positionSelector []int

// Positions returns a Selector over explicit positions. Order is preserved and
// repeats are allowed, so Positions(2, 0, 0) reorders and duplicates.
func Positions(idx ...int) Selector {
	return positionSelector(append([]int(nil), idx...))
}

// Resolve validates every position against n.
func (p positionSelector) Resolve(n int) ([]int, error) {
	for _, i := range p {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("position %d not in [0,%d): %w", i, n, ErrOutOfRange)
		}
	}

	return append([]int(nil), p...), nil
}

// resolveSelector resolves s against an axis of length n; nil means All.
func resolveSelector(s Selector, n int) ([]int, error) {
	if s == nil {
		return identity(n), nil
	}

	return s.Resolve(n)
}

// identity returns [0, 1, ..., n-1].
func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
