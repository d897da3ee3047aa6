// SPDX-License-Identifier: MIT

package fixture

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxParseChain bounds the declared chain size before allocation.
const maxParseChain = 1 << 20

// FormatInput writes "<n> <d0> <d1> … <dn>\n" where n = len(dims)-1.
func FormatInput(w io.Writer, dims []int) error {
	if len(dims) < 2 {
		return fixtureErrorf("FormatInput", fmt.Errorf("%w: %d dimensions", ErrMalformedInput, len(dims)))
	}

	var sb strings.Builder
	sb.WriteString(strconv.Itoa(len(dims) - 1))
	for _, d := range dims {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(d))
	}
	sb.WriteByte('\n')

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fixtureErrorf("FormatInput", fmt.Errorf("%w: %w", ErrIO, err))
	}

	return nil
}

// ParseInput reads an input artifact: a chain size n ≥ 1 followed by exactly
// n+1 integers, separated by any whitespace. Dimension values are returned as
// read; positivity is left to the solver.
//
// Errors: ErrMalformedInput for a missing, extra or non-integer field.
func ParseInput(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func(what string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("%w: %w", ErrIO, err)
			}
			return 0, fmt.Errorf("%w: missing %s", ErrMalformedInput, what)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q is not an integer", ErrMalformedInput, what, sc.Text())
		}
		return v, nil
	}

	n, err := next("chain size")
	if err != nil {
		return nil, fixtureErrorf("ParseInput", err)
	}
	if n < 1 || n > maxParseChain {
		return nil, fixtureErrorf("ParseInput", fmt.Errorf("%w: chain size %d", ErrMalformedInput, n))
	}

	dims := make([]int, n+1)
	for i := range dims {
		if dims[i], err = next(fmt.Sprintf("dimension %d", i)); err != nil {
			return nil, fixtureErrorf("ParseInput", err)
		}
	}
	if sc.Scan() {
		return nil, fixtureErrorf("ParseInput", fmt.Errorf("%w: unexpected trailing field %q", ErrMalformedInput, sc.Text()))
	}

	return dims, nil
}

// FormatAnswer writes the decimal cost followed by a newline.
func FormatAnswer(w io.Writer, cost int64) error {
	if _, err := io.WriteString(w, strconv.FormatInt(cost, 10)+"\n"); err != nil {
		return fixtureErrorf("FormatAnswer", fmt.Errorf("%w: %w", ErrIO, err))
	}

	return nil
}

// ParseAnswer reads a single non-negative decimal integer.
//
// Errors: ErrMalformedInput for empty input, extra fields, or a negative/non-integer value.
func ParseAnswer(r io.Reader) (int64, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return 0, fixtureErrorf("ParseAnswer", fmt.Errorf("%w: %w", ErrIO, err))
	}
	fields := strings.Fields(string(raw))
	if len(fields) != 1 {
		return 0, fixtureErrorf("ParseAnswer", fmt.Errorf("%w: want 1 field, got %d", ErrMalformedInput, len(fields)))
	}
	v, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil || v < 0 {
		return 0, fixtureErrorf("ParseAnswer", fmt.Errorf("%w: answer %q", ErrMalformedInput, fields[0]))
	}

	return v, nil
}
