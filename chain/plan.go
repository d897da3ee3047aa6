package chain

import (
	"fmt"
	"strconv"
	"strings"
)

// Operation tags for Plan accessors.
const (
	opSplit        = "Plan.Split"
	opOrder        = "Plan.Order"
	opParenthesize = "Plan.Parenthesize"
)

// Split returns the optimal split k of subchain (i, j): the product is
// (A_i…A_k)(A_{k+1}…A_j) with 0-based matrix indices. For i == j it returns i.
//
// Errors:
//   - ErrNoSplitTable if the plan was solved without ReturnPlan.
//   - ErrInvalidInput if (i, j) is not a subchain of the plan.
func (p *Plan) Split(i, j int) (int, error) {
	if p.split == nil {
		return 0, chainErrorf(opSplit, ErrNoSplitTable)
	}
	if i < 0 || j >= p.n || i > j {
		return 0, chainErrorf(opSplit, fmt.Errorf("%w: subchain (%d,%d) outside [0,%d)", ErrInvalidInput, i, j, p.n))
	}

	return p.split[i*p.n+j], nil
}

// Order returns the split indices in evaluation order. Entry k means
// "multiply the product that ends at matrix k by the product that starts at
// matrix k+1"; both operands are fully reduced by the time k appears.
// A chain of n matrices yields n-1 entries (none for a single matrix).
//
// Errors: ErrNoSplitTable if the plan was solved without ReturnPlan.
func (p *Plan) Order() ([]int, error) {
	if p.split == nil {
		return nil, chainErrorf(opOrder, ErrNoSplitTable)
	}

	order := make([]int, 0, p.n-1)
	// Iterative post-order over (i, j) ranges; explicit stack bounds depth by heap, not call stack.
	type frame struct {
		i, j    int
		visited bool
	}
	stack := []frame{{i: 0, j: p.n - 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.i == f.j {
			continue
		}
		k := p.split[f.i*p.n+f.j]
		if f.visited {
			order = append(order, k)
			continue
		}
		// Push parent back, then right, then left so left is reduced first.
		stack = append(stack,
			frame{i: f.i, j: f.j, visited: true},
			frame{i: k + 1, j: f.j},
			frame{i: f.i, j: k},
		)
	}

	return order, nil
}

// Parenthesize renders the optimal order with 1-based matrix names,
// e.g. "((A1(A2A3))A4)". A single matrix renders as "A1".
//
// Errors: ErrNoSplitTable if the plan was solved without ReturnPlan.
func (p *Plan) Parenthesize() (string, error) {
	if p.split == nil {
		return "", chainErrorf(opParenthesize, ErrNoSplitTable)
	}

	var sb strings.Builder
	p.writeParens(&sb, 0, p.n-1)

	return sb.String(), nil
}

// writeParens appends the parenthesization of (i, j) to sb.
func (p *Plan) writeParens(sb *strings.Builder, i, j int) {
	if i == j {
		sb.WriteByte('A')
		sb.WriteString(strconv.Itoa(i + 1))
		return
	}
	k := p.split[i*p.n+j]
	sb.WriteByte('(')
	p.writeParens(sb, i, k)
	p.writeParens(sb, k+1, j)
	sb.WriteByte(')')
}
