// SPDX-License-Identifier: MIT

// Package matrix provides the small dense-matrix toolkit used to evaluate
// matrix chains: a row-major float64 Dense type, bounds-safe accessors, the
// product kernel, exact and tolerant comparison, and seeded random fill.
//
// What lives here:
//
//   - Matrix:     minimal interface (Rows, Cols, At, Set, Clone).
//   - Dense:      contiguous row-major storage, offset = i*cols + j.
//   - Mul:        a × b with a fast path for two *Dense operands.
//   - Equal:      exact element-wise comparison for integer-valued products.
//   - AllClose:   |a-b| ≤ atol + rtol*|b| for floating-point products.
//   - NewRandomInt: integer-valued fill drawn uniformly from [lo, hi].
//
// Error policy:
//
//	Every failure is a package sentinel (errors.go) wrapped with the
//	operation tag, e.g. "Mul: ValidateMulCompatible: matrix: dimension mismatch".
//	Match with errors.Is; never compare strings.
//
// Complexity quicksheet:
//
//	NewDense O(r*c); At/Set O(1); Clone O(r*c); Mul O(r*n*c); Equal/AllClose O(r*c).
package matrix
