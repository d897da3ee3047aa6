// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Reject NaN/Inf on Set so chain products stay comparable with Equal.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions if rows<=0 or cols<=0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// make() zero-fills the flat buffer deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom builds an r×c matrix from a row-major slice. The slice is
// copied, so later mutations of data do not leak into the matrix.
//
// Errors:
//   - ErrInvalidDimensions if rows<=0 or cols<=0.
//   - ErrDimensionMismatch if len(data) != rows*cols.
//   - ErrNaNInf if any value is not finite.
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf("NewDenseFrom", err)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf("NewDenseFrom", ErrDimensionMismatch)
	}
	for idx, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, denseErrorf("NewDenseFrom", idx/cols, idx%cols, ErrNaNInf)
		}
	}
	copy(d.data, data)

	return d, nil
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.c }

// At returns the element at (i, j) or ErrOutOfRange.
func (d *Dense) At(i, j int) (float64, error) {
	if d == nil {
		return 0, denseErrorf(ctxAt, i, j, ErrNilMatrix)
	}
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return d.data[i*d.c+j], nil
}

// Set writes v at (i, j). Non-finite values are rejected with ErrNaNInf.
func (d *Dense) Set(i, j int, v float64) error {
	if d == nil {
		return denseErrorf(ctxSet, i, j, ErrNilMatrix)
	}
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, i, j, ErrNaNInf)
	}
	d.data[i*d.c+j] = v

	return nil
}

// Clone returns a deep copy with an independent buffer.
func (d *Dense) Clone() Matrix {
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return &Dense{r: d.r, c: d.c, data: buf}
}

// String renders the matrix row by row, e.g. "[1, 2]\n[3, 4]\n".
func (d *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < d.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < d.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", d.data[i*d.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
