package chain

// Strategy selects how the cost table is filled.
//
//   - BottomUp — iterate subrange widths 1..n-1; no recursion, fixed loop order.
//   - Memoized — top-down recursion from (0, n-1), filling entries on first use.
//     Recursion depth is bounded by n.
//
// Both strategies evaluate the same recurrence on the same table and return
// identical costs and split choices.
type Strategy int

const (
	// BottomUp fills the table by increasing subrange width.
	BottomUp Strategy = iota

	// Memoized recurses top-down and caches every (i, j) on first computation.
	Memoized
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case BottomUp:
		return "bottom-up"
	case Memoized:
		return "memoized"
	default:
		return "unknown"
	}
}

// Options configures Solve.
//
// Fields:
//   - Strategy   — table-filling strategy (BottomUp by default).
//   - ReturnPlan — also keep the split table so the returned Plan can report
//     Order and Parenthesize. Costs O(n²) extra ints.
type Options struct {
	Strategy   Strategy
	ReturnPlan bool
}

// DefaultOptions returns Options{Strategy: BottomUp, ReturnPlan: false}.
func DefaultOptions() Options {
	return Options{Strategy: BottomUp}
}

// Plan is the outcome of one Solve call.
type Plan struct {
	// Dims is a copy of the input dimension sequence.
	Dims []int
	// Cost is the minimum number of scalar multiplications.
	Cost int64

	n     int   // number of matrices
	split []int // n*n argmin table; nil unless ReturnPlan
}

// Len returns the number of matrices in the chain.
func (p *Plan) Len() int { return p.n }
