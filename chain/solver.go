package chain

import (
	"fmt"
	"math"
	"math/bits"
)

// Operation tags used in error wrappers.
const (
	opSolve     = "Solve"
	opMinCost   = "MinCost"
	opNaiveCost = "NaiveCost"
)

// unset marks a cost-table entry that has not been computed yet.
// Valid costs are always ≥ 0.
const unset int64 = -1

// costTable is the square memo over subchains (i, j), 0 ≤ i ≤ j < n,
// stored row-major in a flat slice. Entries start at unset, the diagonal
// is 0, and each entry is written exactly once.
type costTable struct {
	n     int
	cost  []int64
	split []int // argmin k per (i, j); nil when no plan is requested
}

// newCostTable allocates an n×n table with the diagonal set to 0 and every
// other entry set to unset.
func newCostTable(n int, withSplit bool) *costTable {
	t := &costTable{n: n, cost: make([]int64, n*n)}
	for idx := range t.cost {
		t.cost[idx] = unset
	}
	for i := 0; i < n; i++ {
		t.cost[i*n+i] = 0
	}
	if withSplit {
		t.split = make([]int, n*n)
		for i := 0; i < n; i++ {
			t.split[i*n+i] = i
		}
	}

	return t
}

// get returns the cached cost of (i, j), or unset.
func (t *costTable) get(i, j int) int64 { return t.cost[i*t.n+j] }

// put records the final cost and split of (i, j).
func (t *costTable) put(i, j int, c int64, k int) {
	t.cost[i*t.n+j] = c
	if t.split != nil {
		t.split[i*t.n+j] = k
	}
}

// MinCost returns the minimum number of scalar multiplications needed to
// evaluate the chain described by dims (length n+1 for n matrices).
//
// A single matrix (len(dims) == 2) costs 0; three dimensions [a,b,c] cost a*b*c.
//
// Errors:
//   - ErrTooFewDimensions     — len(dims) < 2.
//   - ErrNonPositiveDimension — some dims[i] ≤ 0.
//   - ErrCostOverflow         — a subchain cost exceeds int64.
func MinCost(dims []int) (int64, error) {
	p, err := Solve(dims, nil)
	if err != nil {
		return 0, chainErrorf(opMinCost, err)
	}

	return p.Cost, nil
}

// Solve runs the matrix-chain dynamic program over dims.
//
// Recurrence (0-based, matrix i has shape dims[i]×dims[i+1]):
//
//	cost(i, i) = 0
//	cost(i, j) = min_{i ≤ k < j} cost(i, k) + cost(k+1, j) + dims[i]*dims[k+1]*dims[j+1]
//
// The answer is cost(0, n-1). Ties keep the lowest k.
//
// A nil opts means DefaultOptions().
//
// Complexity: O(n³) time, O(n²) memory.
func Solve(dims []int, opts *Options) (*Plan, error) {
	if err := validateDims(dims); err != nil {
		return nil, chainErrorf(opSolve, err)
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	n := len(dims) - 1
	t := newCostTable(n, o.ReturnPlan)

	var err error
	switch o.Strategy {
	case Memoized:
		_, err = t.fillMemoized(dims, 0, n-1)
	default:
		err = t.fillBottomUp(dims)
	}
	if err != nil {
		return nil, chainErrorf(opSolve, err)
	}

	plan := &Plan{
		Dims:  append([]int(nil), dims...),
		Cost:  t.get(0, n-1),
		n:     n,
		split: t.split,
	}

	return plan, nil
}

// validateDims enforces len ≥ 2 and strictly positive entries.
func validateDims(dims []int) error {
	if len(dims) < 2 {
		return ErrTooFewDimensions
	}
	for i, d := range dims {
		if d <= 0 {
			return fmt.Errorf("%w: dims[%d]=%d", ErrNonPositiveDimension, i, d)
		}
	}

	return nil
}

// fillBottomUp computes every (i, j) by increasing width j-i. Each entry
// depends only on strictly narrower entries, which are already final.
func (t *costTable) fillBottomUp(dims []int) error {
	n := t.n
	for width := 1; width < n; width++ {
		for i := 0; i+width < n; i++ {
			j := i + width
			best, bestK, err := t.scan(dims, i, j)
			if err != nil {
				return err
			}
			t.put(i, j, best, bestK)
		}
	}

	return nil
}

// fillMemoized returns cost(i, j), recursing into unset subranges first.
func (t *costTable) fillMemoized(dims []int, i, j int) (int64, error) {
	if c := t.get(i, j); c != unset {
		return c, nil
	}

	// Resolve both halves of every split first so scan reads final values.
	for k := i; k < j; k++ {
		if _, err := t.fillMemoized(dims, i, k); err != nil {
			return 0, err
		}
		if _, err := t.fillMemoized(dims, k+1, j); err != nil {
			return 0, err
		}
	}

	best, bestK, err := t.scan(dims, i, j)
	if err != nil {
		return 0, err
	}
	t.put(i, j, best, bestK)

	return best, nil
}

// scan evaluates every split k of (i, j) from already-final subrange costs
// and returns the minimum and its lowest argmin.
func (t *costTable) scan(dims []int, i, j int) (int64, int, error) {
	best, bestK := unset, i
	for k := i; k < j; k++ {
		mult, ok := mul3(dims[i], dims[k+1], dims[j+1])
		if !ok {
			return 0, 0, fmt.Errorf("%w: split (%d,%d,%d)", ErrCostOverflow, i, k, j)
		}
		c, ok := add3(t.get(i, k), t.get(k+1, j), mult)
		if !ok {
			return 0, 0, fmt.Errorf("%w: split (%d,%d,%d)", ErrCostOverflow, i, k, j)
		}
		if best == unset || c < best {
			best, bestK = c, k
		}
	}

	return best, bestK, nil
}

// NaiveCost returns the cost of evaluating the chain strictly left to right:
// ((A1A2)A3)…An, i.e. Σ_{k=1}^{n-1} dims[0]*dims[k]*dims[k+1].
//
// Errors match MinCost.
func NaiveCost(dims []int) (int64, error) {
	if err := validateDims(dims); err != nil {
		return 0, chainErrorf(opNaiveCost, err)
	}

	var total int64
	for k := 1; k+1 < len(dims); k++ {
		mult, ok := mul3(dims[0], dims[k], dims[k+1])
		if !ok {
			return 0, chainErrorf(opNaiveCost, ErrCostOverflow)
		}
		if total, ok = add3(total, mult, 0); !ok {
			return 0, chainErrorf(opNaiveCost, ErrCostOverflow)
		}
	}

	return total, nil
}

// mul3 returns a*b*c for positive a, b, c, reporting false on int64 overflow.
func mul3(a, b, c int) (int64, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}
	hi, lo = bits.Mul64(lo, uint64(c))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}

	return int64(lo), true
}

// add3 returns a+b+c for non-negative operands, reporting false on overflow.
func add3(a, b, c int64) (int64, bool) {
	if a > math.MaxInt64-b {
		return 0, false
	}
	s := a + b
	if s > math.MaxInt64-c {
		return 0, false
	}

	return s + c, true
}
