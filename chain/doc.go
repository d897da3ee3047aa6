// Package chain solves the matrix-chain-ordering problem: given the
// dimension sequence of a chain A1·A2·…·An, find the parenthesization with
// the fewest scalar multiplications.
//
// 🚀 What is it for?
//
//	Multiplying a 10×100, a 100×5 and a 5×50 matrix costs 7 500 scalar
//	multiplications as (A1A2)A3 and 75 000 as A1(A2A3). The order matters,
//	and the best one is found by a classic O(n³) dynamic program.
//
// ✨ Key features:
//   - MinCost:  the optimal cost only, bottom-up table fill.
//   - Solve:    cost plus split table (Plan) with Order and Parenthesize.
//   - Strategy: BottomUp (default) or Memoized top-down recursion; identical results.
//   - NaiveCost: left-to-right cost, handy as a baseline.
//   - Evaluate: multiply real matrices (package matrix) in the optimal order.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/chainfix/chain"
//
//	cost, err := chain.MinCost([]int{40, 20, 30, 10, 30}) // 26000
//
//	opts := chain.DefaultOptions()
//	opts.ReturnPlan = true
//	plan, err := chain.Solve(dims, &opts)
//	s, _ := plan.Parenthesize() // "((A1(A2A3))A4)"
//
// Performance:
//
//   - Time:   O(n³)
//   - Memory: O(n²) (cost table, plus split table with ReturnPlan)
package chain
