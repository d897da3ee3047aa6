// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Operation tags used in error wrappers.
const (
	opMul      = "Mul"
	opEqual    = "Equal"
	opAllClose = "AllClose"
)

// Mul returns the matrix product a × b as a fresh *Dense.
// Stage 1 (Validate): nil checks and a.Cols == b.Rows.
// Stage 2 (Execute): operands that are not *Dense are copied into one
// first, then a single i-k-j loop runs over the flat slices.
// Complexity: O(r*n*c) time, O(r*c) memory.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res, err := NewDense(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	n := da.c
	for i := 0; i < da.r; i++ {
		rowA := da.data[i*n : (i+1)*n]
		rowR := res.data[i*db.c : (i+1)*db.c]
		for k, av := range rowA {
			if av == 0 {
				continue
			}
			rowB := db.data[k*db.c : (k+1)*db.c]
			for j, bv := range rowB {
				rowR[j] += av * bv
			}
		}
	}

	return res, nil
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy
// read through At.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	d, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if err = d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// Equal reports whether a and b hold exactly the same values.
// Intended for integer-valued matrices where products are exact.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}

	return AllClose(a, b, 0, 0)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Negative tolerances are normalized to their absolute value; NaN/Inf tolerances
// are rejected with ErrNaNInf.
// Time: O(r*c). Space: O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j) // shape validated above; indices are in range
			bv, _ = b.At(i, j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil // early-exit on first violation
			}
		}
	}

	return true, nil
}
