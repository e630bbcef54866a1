// SPDX-License-Identifier: MIT

package sparse

import "fmt"

const opFromDense = "FromDense"

// FromDense builds a CSR from a rectangular row-major [][]float64.
// Zeros are not stored. Ragged input yields ErrDimensionMismatch; NaN/±Inf
// yields ErrNaNInf. An empty outer slice yields a 0×0 matrix.
//
// Time Complexity: O(r*c)
func FromDense(rows [][]float64) (*CSR, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}

	b, err := NewBuilder(r, c)
	if err != nil {
		return nil, sparseErrorf(opFromDense, err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				opFromDense, i, len(row), c, ErrDimensionMismatch)
		}
		for j, v := range row {
			if v == 0 {
				continue
			}
			if err = b.Add(i, j, v); err != nil {
				return nil, sparseErrorf(opFromDense, err)
			}
		}
	}

	return b.Build(), nil
}

// ToDense materializes m as a row-major [][]float64.
//
// Time Complexity: O(r*c)
// Memory: O(r*c)
func ToDense(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf("ToDense", err)
	}

	r, c := m.Shape()
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
	}
	m.Do(func(i, j int, v float64) bool {
		out[i][j] = v
		return true
	})

	return out, nil
}
