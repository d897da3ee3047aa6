// SPDX-License-Identifier: MIT

package fixture

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/chainfix/chain"
)

// ReadCase loads the input/answer pair for index idx under cfg.
//
// Errors: ErrIO (missing or unreadable file), ErrMalformedInput.
func ReadCase(cfg Config, idx int) (Case, error) {
	c := Case{Index: idx, InputPath: cfg.InputPath(idx), AnswerPath: cfg.AnswerPath(idx)}

	in, err := os.Open(c.InputPath)
	if err != nil {
		return Case{}, ioErrorf("ReadCase", c.InputPath, err)
	}
	defer in.Close()
	if c.Dims, err = ParseInput(in); err != nil {
		return Case{}, fixtureErrorf("ReadCase", fmt.Errorf("%s: %w", c.InputPath, err))
	}

	ans, err := os.Open(c.AnswerPath)
	if err != nil {
		return Case{}, ioErrorf("ReadCase", c.AnswerPath, err)
	}
	defer ans.Close()
	if c.Cost, err = ParseAnswer(ans); err != nil {
		return Case{}, fixtureErrorf("ReadCase", fmt.Errorf("%s: %w", c.AnswerPath, err))
	}

	return c, nil
}

// Verify re-reads every case of the configured exponent range, re-solves
// its dimensions and compares the result with the stored answer.
//
// All cases are checked; every failure is collected and returned joined.
// Mismatches match ErrAnswerMismatch; unreadable pairs match ErrIO or
// ErrMalformedInput. The successfully verified cases are returned.
func Verify(cfg Config) ([]Case, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fixtureErrorf("Verify", err)
	}

	var (
		ok   []Case
		errs []error
	)
	for k := cfg.MinExponent; k <= cfg.MaxExponent; k++ {
		c, err := ReadCase(cfg, caseIndex(k))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		got, err := chain.MinCost(c.Dims)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", c.InputPath, err))
			continue
		}
		if got != c.Cost {
			errs = append(errs, fmt.Errorf("%w: %s: stored %d, computed %d", ErrAnswerMismatch, c.AnswerPath, c.Cost, got))
			continue
		}
		ok = append(ok, c)
	}

	if len(errs) > 0 {
		return ok, fixtureErrorf("Verify", errors.Join(errs...))
	}

	return ok, nil
}
