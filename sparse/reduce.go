// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Axis reductions (Sum, CountNonZero, Mean, Max, Min) over any Matrix.
//   - Reduction: a value vector with an explicit shape, so callers can accept
//     1-D, 1×n and n×1 results and normalize them with Flatten.
//
// Axis convention:
//   - along == AxisRow collapses the rows: one value per column, shape [1, cols].
//   - along == AxisCol collapses the columns: one value per row, shape [rows, 1].
//
// Implicit zeros participate in every reduction: Max of a column holding only
// negative stored values and at least one implicit zero is 0.
//
// Determinism & Performance:
//   - Single pass over stored entries via Do (row-major); O(r + c + nnz).

package sparse

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opSum          = "Sum"
	opCountNonZero = "CountNonZero"
	opMean         = "Mean"
	opMax          = "Max"
	opMin          = "Min"
	opFlatten      = "Reduction.Flatten"
)

// Reduction is the output of an axis reduction: Values laid out row-major in
// a shape of one or two dimensions.
type Reduction struct {
	Values []float64
	Dims   []int
}

// VectorReduction wraps values as a one-dimensional Reduction.
func VectorReduction(values []float64) Reduction {
	return Reduction{Values: values, Dims: []int{len(values)}}
}

// Shape returns a copy of the dimensions.
func (r Reduction) Shape() []int { return append([]int(nil), r.Dims...) }

// Flatten returns the values as a flat vector.
// Accepted shapes: [n], [1, n] and [n, 1]; anything else, or a Values length
// that disagrees with the shape, yields ErrShape.
func (r Reduction) Flatten() ([]float64, error) {
	size := 1
	for _, d := range r.Dims {
		if d < 0 {
			return nil, fmt.Errorf("%s: dims %v: %w", opFlatten, r.Dims, ErrShape)
		}
		size *= d
	}
	if size != len(r.Values) {
		return nil, fmt.Errorf("%s: dims %v hold %d values, got %d: %w",
			opFlatten, r.Dims, size, len(r.Values), ErrShape)
	}

	switch len(r.Dims) {
	case 1:
		// already a vector
	case 2:
		if r.Dims[0] != 1 && r.Dims[1] != 1 {
			return nil, fmt.Errorf("%s: dims %v: %w", opFlatten, r.Dims, ErrShape)
		}
	default:
		return nil, fmt.Errorf("%s: %d dims: %w", opFlatten, len(r.Dims), ErrShape)
	}

	return append([]float64(nil), r.Values...), nil
}

// Sum returns per-slot sums along the given axis.
func Sum(m Matrix, along Axis) (Reduction, error) {
	return reduceAlong(m, along, opSum, func(a slot, _ int) float64 { return a.sum })
}

// CountNonZero returns per-slot counts of stored (non-zero) entries, e.g.
// document frequency when rows are documents and columns are terms.
func CountNonZero(m Matrix, along Axis) (Reduction, error) {
	return reduceAlong(m, along, opCountNonZero, func(a slot, _ int) float64 { return float64(a.count) })
}

// Mean returns per-slot means including implicit zeros. The mean over an
// empty axis (length 0) is NaN.
func Mean(m Matrix, along Axis) (Reduction, error) {
	return reduceAlong(m, along, opMean, func(a slot, n int) float64 {
		if n == 0 {
			return math.NaN()
		}
		return a.sum / float64(n)
	})
}

// Max returns per-slot maxima including implicit zeros. An empty axis yields 0.
func Max(m Matrix, along Axis) (Reduction, error) {
	return reduceAlong(m, along, opMax, func(a slot, n int) float64 {
		if a.count == 0 {
			return 0
		}
		if a.count < n {
			return math.Max(a.max, 0) // at least one implicit zero
		}
		return a.max
	})
}

// Min returns per-slot minima including implicit zeros. An empty axis yields 0.
func Min(m Matrix, along Axis) (Reduction, error) {
	return reduceAlong(m, along, opMin, func(a slot, n int) float64 {
		if a.count == 0 {
			return 0
		}
		if a.count < n {
			return math.Min(a.min, 0)
		}
		return a.min
	})
}

// slot accumulates stored entries that fold into one output position.
type slot struct {
	sum, max, min float64
	count         int
}

// reduceAlong is the shared single-pass kernel behind every reduction.
// Stage 1: validate the matrix and axis.
// Stage 2: fold stored entries into per-slot accumulators.
// Stage 3: finalize each slot with the axis length n (implicit zeros = n - count).
func reduceAlong(m Matrix, along Axis, op string, finish func(a slot, n int) float64) (Reduction, error) {
	// Stage 1.
	if err := ValidateNotNil(m); err != nil {
		return Reduction{}, sparseErrorf(op, err)
	}
	if err := ValidateAxis(along); err != nil {
		return Reduction{}, sparseErrorf(op, err)
	}

	r, c := m.Shape()
	slots, n := c, r // collapse rows: one slot per column
	if along == AxisCol {
		slots, n = r, c // collapse columns: one slot per row
	}

	// Stage 2.
	acc := make([]slot, slots)
	m.Do(func(i, j int, v float64) bool {
		k := j
		if along == AxisCol {
			k = i
		}
		a := &acc[k]
		if a.count == 0 || v > a.max {
			a.max = v
		}
		if a.count == 0 || v < a.min {
			a.min = v
		}
		a.sum += v
		a.count++
		return true
	})

	// Stage 3.
	values := make([]float64, slots)
	for k := range acc {
		values[k] = finish(acc[k], n)
	}

	dims := []int{1, slots}
	if along == AxisCol {
		dims = []int{slots, 1}
	}

	return Reduction{Values: values, Dims: dims}, nil
}
