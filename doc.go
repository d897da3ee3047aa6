// Package chainfix generates and checks test fixtures for matrix-chain
// multiplication and geometric point data.
//
// 🚀 What is inside?
//
//	chain/     — matrix-chain-ordering solver: MinCost, Solve (Plan with split
//	             table, Order, Parenthesize), NaiveCost, Evaluate on real matrices
//	matrix/    — small row-major Dense matrix with Mul, Equal/AllClose, random fill
//	fixture/   — random dimension sequences for sizes 2^k, solved and written as
//	             input/answer file pairs; YAML layout config; Verify
//	triangles/ — random 3D point triples (half-normal offsets) as 9-column rows
//	cmd/chainfix — CLI: chain | solve | verify | triangles
//
// Quick example:
//
//	cost, _ := chain.MinCost([]int{40, 20, 30, 10, 30}) // 26000
//
// Every random generator takes an explicit seed or source, so fixtures are
// reproducible byte for byte.
package chainfix
