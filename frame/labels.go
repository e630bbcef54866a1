// SPDX-License-Identifier: MIT

package frame

import (
	"strconv"
)

// LabelFunc generates the label of a row or column from its zero-based index.
// It must be pure and deterministic: the same idx always yields the same label.
type LabelFunc[L comparable] func(idx int) L

// IndexLabel labels a position with itself: 0→0, 42→42.
func IndexLabel(idx int) int { return idx }

// DecimalLabel labels a position with its decimal string: 0→"0", 42→"42".
func DecimalLabel(idx int) string { return strconv.Itoa(idx) }

// PrefixLabel returns a LabelFunc producing prefix + decimal index,
// e.g. PrefixLabel("doc") → "doc0", "doc1", ...
func PrefixLabel(prefix string) LabelFunc[string] {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// defaultLabelFunc returns the built-in 0-based scheme for L, if one exists.
// Integer kinds count 0, 1, 2...; string counts "0", "1", "2"...
// Named types (type Term string) have no default; use WithLabelFunc.
func defaultLabelFunc[L comparable]() (LabelFunc[L], bool) {
	var zero L
	switch any(zero).(type) {
	case int:
		return func(i int) L { return any(i).(L) }, true
	case int32:
		return func(i int) L { return any(int32(i)).(L) }, true
	case int64:
		return func(i int) L { return any(int64(i)).(L) }, true
	case uint:
		return func(i int) L { return any(uint(i)).(L) }, true
	case uint32:
		return func(i int) L { return any(uint32(i)).(L) }, true
	case uint64:
		return func(i int) L { return any(uint64(i)).(L) }, true
	case string:
		return func(i int) L { return any(strconv.Itoa(i)).(L) }, true
	}

	return nil, false
}

// makeLabels materializes fn over 0..n-1.
func makeLabels[L comparable](n int, fn LabelFunc[L]) []L {
	out := make([]L, n)
	for i := range out {
		out[i] = fn(i)
	}

	return out
}

// takeLabels gathers labels at the given positions (order kept, repeats allowed).
func takeLabels[L comparable](labels []L, pos []int) []L {
	out := make([]L, len(pos))
	for k, p := range pos {
		out[k] = labels[p]
	}

	return out
}

// indexLabels maps each label to its first position.
func indexLabels[L comparable](labels []L) map[L]int {
	idx := make(map[L]int, len(labels))
	for i := len(labels) - 1; i >= 0; i-- { // reverse so the first occurrence wins
		idx[labels[i]] = i
	}

	return idx
}
