package chain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the umbrella sentinel for malformed chains.
// Every input-validation error below matches it via errors.Is.
var ErrInvalidInput = errors.New("chain: invalid input")

var (
	// ErrTooFewDimensions indicates a dimension sequence shorter than 2 (no matrix).
	ErrTooFewDimensions = fmt.Errorf("%w: at least 2 dimensions required", ErrInvalidInput)

	// ErrNonPositiveDimension indicates a dimension value ≤ 0.
	ErrNonPositiveDimension = fmt.Errorf("%w: dimensions must be positive", ErrInvalidInput)

	// ErrEmptyChain indicates Evaluate/DimsOf received no matrices.
	ErrEmptyChain = fmt.Errorf("%w: empty matrix chain", ErrInvalidInput)

	// ErrShapeMismatch indicates adjacent matrices whose shapes cannot be multiplied.
	ErrShapeMismatch = fmt.Errorf("%w: adjacent shapes do not chain", ErrInvalidInput)
)

var (
	// ErrCostOverflow indicates that a subchain cost does not fit in int64.
	ErrCostOverflow = errors.New("chain: cost overflows int64")

	// ErrNoSplitTable indicates that Order/Parenthesize was requested from a Plan
	// solved without ReturnPlan.
	ErrNoSplitTable = errors.New("chain: plan has no split table (set ReturnPlan)")
)

// chainErrorf prefixes err with the calling operation, preserving the sentinel.
func chainErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
