package triangles

import (
	"errors"
	"fmt"
)

var (
	// ErrBadCount indicates a non-positive number of triples was requested.
	ErrBadCount = errors.New("triangles: count must be >= 1")

	// ErrNeedRandSource indicates Generate was called without WithSeed/WithSource.
	ErrNeedRandSource = errors.New("triangles: random source is required")

	// ErrMalformedRow indicates a text row that is not exactly 9 numbers.
	ErrMalformedRow = errors.New("triangles: malformed row")

	// ErrIO indicates a failure creating a directory or reading/writing a file.
	ErrIO = errors.New("triangles: i/o failure")
)

// trianglesErrorf wraps err with the method context.
func trianglesErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
