// SPDX-License-Identifier: MIT
// Package: chainfix/fixture
//
// errors.go — sentinel errors for the fixture package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Context is attached with %w at the detection site (fixtureErrorf).
//   • OS errors are kept in the chain next to ErrIO, so errors.Is(err, fs.ErrPermission)
//     still works for callers that care.

package fixture

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates an unusable Config (empty directory names,
// inverted exponent or dimension ranges, sizes beyond the supported limit).
var ErrInvalidConfig = errors.New("fixture: invalid config")

// ErrNeedRandSource indicates that a Writer was built without WithRand/WithSeed
// and without a non-zero Config.Seed.
var ErrNeedRandSource = errors.New("fixture: rng is required")

// ErrIO indicates a failure creating a directory or reading/writing a file.
var ErrIO = errors.New("fixture: i/o failure")

// ErrMalformedInput indicates an input or answer artifact that does not follow
// "<n> <d0> … <dn>" / "<cost>".
var ErrMalformedInput = errors.New("fixture: malformed artifact")

// ErrAnswerMismatch indicates that a stored answer differs from the recomputed cost.
var ErrAnswerMismatch = errors.New("fixture: answer mismatch")

// fixtureErrorf wraps err with the method context: "<method>: <err>".
func fixtureErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// ioErrorf tags an OS error with ErrIO while keeping the OS error matchable.
func ioErrorf(method, path string, err error) error {
	return fmt.Errorf("%s: %w: %s: %w", method, ErrIO, path, err)
}
