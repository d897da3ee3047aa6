package chain

import (
	"fmt"

	"github.com/katalvlaran/chainfix/matrix"
)

// Operation tags for chain evaluation.
const (
	opDimsOf      = "DimsOf"
	opEvaluate    = "Evaluate"
	opLeftToRight = "EvaluateLeftToRight"
)

// DimsOf derives the dimension sequence of a matrix chain:
// [ms[0].Rows(), ms[0].Cols(), ms[1].Cols(), …].
//
// Errors:
//   - ErrEmptyChain    — len(ms) == 0.
//   - matrix.ErrNilMatrix — any element is nil.
//   - ErrShapeMismatch — ms[i].Cols() != ms[i+1].Rows().
func DimsOf(ms []matrix.Matrix) ([]int, error) {
	if len(ms) == 0 {
		return nil, chainErrorf(opDimsOf, ErrEmptyChain)
	}

	dims := make([]int, 0, len(ms)+1)
	for i, m := range ms {
		if err := matrix.ValidateNotNil(m); err != nil {
			return nil, chainErrorf(opDimsOf, fmt.Errorf("matrix %d: %w", i, err))
		}
		if i == 0 {
			dims = append(dims, m.Rows())
		} else if dims[len(dims)-1] != m.Rows() {
			return nil, chainErrorf(opDimsOf, fmt.Errorf("%w: matrix %d has %d cols, matrix %d has %d rows",
				ErrShapeMismatch, i-1, dims[len(dims)-1], i, m.Rows()))
		}
		dims = append(dims, m.Cols())
	}

	return dims, nil
}

// Evaluate multiplies the chain in its optimal order and returns the product
// together with the plan that produced it.
//
// Implementation:
//   - Stage 1: DimsOf + Solve with ReturnPlan.
//   - Stage 2: walk Plan.Order; every entry k merges the group ending at k with
//     the group starting at k+1. Groups are tracked by their leftmost index.
//
// The inputs are never mutated.
func Evaluate(ms []matrix.Matrix) (matrix.Matrix, *Plan, error) {
	dims, err := DimsOf(ms)
	if err != nil {
		return nil, nil, chainErrorf(opEvaluate, err)
	}
	plan, err := Solve(dims, &Options{Strategy: BottomUp, ReturnPlan: true})
	if err != nil {
		return nil, nil, chainErrorf(opEvaluate, err)
	}
	order, err := plan.Order()
	if err != nil {
		return nil, nil, chainErrorf(opEvaluate, err)
	}

	n := len(ms)
	prod := make([]matrix.Matrix, n) // partial product held by each group head
	head := make([]int, n)           // parent links; head[i] == i for a group head
	for i := range ms {
		prod[i] = ms[i]
		head[i] = i
	}
	find := func(x int) int {
		for head[x] != x {
			head[x] = head[head[x]] // path halving
			x = head[x]
		}
		return x
	}

	for _, k := range order {
		left, right := find(k), k+1
		p, err := matrix.Mul(prod[left], prod[right])
		if err != nil {
			return nil, nil, chainErrorf(opEvaluate, err)
		}
		prod[left], prod[right] = p, nil
		head[right] = left
	}

	if n == 1 {
		return ms[0].Clone(), plan, nil
	}

	return prod[0], plan, nil
}

// EvaluateLeftToRight multiplies the chain as ((A1A2)A3)…An. It is the
// reference against which Evaluate is checked.
func EvaluateLeftToRight(ms []matrix.Matrix) (matrix.Matrix, error) {
	if _, err := DimsOf(ms); err != nil {
		return nil, chainErrorf(opLeftToRight, err)
	}

	acc := ms[0].Clone()
	for i := 1; i < len(ms); i++ {
		p, err := matrix.Mul(acc, ms[i])
		if err != nil {
			return nil, chainErrorf(opLeftToRight, err)
		}
		acc = p
	}

	return acc, nil
}
