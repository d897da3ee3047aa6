// SPDX-License-Identifier: MIT

// Package fixture generates matrix-chain test fixtures: for every chain size
// 2^k in a configured exponent range it draws a random dimension sequence,
// solves it with package chain and writes an input/answer file pair.
//
// Layout (defaults):
//
//	tests/input/test_<k-1>.dat       "<n> <d0> <d1> … <dn>"
//	tests/answers/test_<k-1>_ans.dat "<minimum cost>"
//
// Determinism:
//
//	All randomness flows from one *rand.Rand supplied via WithRand/WithSeed
//	(or Config.Seed). The same seed and Config produce byte-identical files.
//
// Errors:
//
//	ErrInvalidConfig, ErrNeedRandSource, ErrIO, ErrMalformedInput and
//	ErrAnswerMismatch are sentinels; check them with errors.Is. Solver errors
//	from package chain are propagated unchanged.
package fixture
