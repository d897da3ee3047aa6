// SPDX-License-Identifier: MIT

package fixture

import (
	"fmt"
	"math/rand"
)

// GenerateDims draws a dimension sequence for a chain of n matrices:
// n+1 values, each uniform over the closed interval [lo, hi].
//
// Errors: ErrInvalidConfig if n < 1 or the range is empty/non-positive,
// ErrNeedRandSource if rng is nil.
//
// Complexity: O(n) time, one RNG draw per value.
func GenerateDims(rng *rand.Rand, n, lo, hi int) ([]int, error) {
	if rng == nil {
		return nil, fixtureErrorf("GenerateDims", ErrNeedRandSource)
	}
	if n < 1 || lo < 1 || lo > hi {
		return nil, fixtureErrorf("GenerateDims", fmt.Errorf("%w: n=%d range [%d,%d]", ErrInvalidConfig, n, lo, hi))
	}

	span := hi - lo + 1
	dims := make([]int, n+1)
	for i := range dims {
		dims[i] = lo + rng.Intn(span)
	}

	return dims, nil
}
