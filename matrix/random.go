// SPDX-License-Identifier: MIT

package matrix

import "math/rand"

// NewRandomInt returns a rows×cols matrix whose entries are integers drawn
// uniformly from the closed interval [lo, hi] using rng.
//
// Integer-valued entries keep every product exact in float64 for the sizes used
// by chain tests, so optimal and left-to-right evaluation can be compared with Equal.
//
// Errors:
//   - ErrInvalidDimensions for non-positive shape.
//   - ErrBadRange if lo > hi or rng is nil.
//
// Complexity: O(r*c) time, one RNG draw per entry in row-major order.
func NewRandomInt(rows, cols, lo, hi int, rng *rand.Rand) (*Dense, error) {
	if lo > hi || rng == nil {
		return nil, matrixErrorf("NewRandomInt", ErrBadRange)
	}
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf("NewRandomInt", err)
	}

	span := hi - lo + 1
	for idx := range d.data {
		d.data[idx] = float64(lo + rng.Intn(span))
	}

	return d, nil
}
