// SPDX-License-Identifier: MIT

package fixture

import (
	"bytes"
	"context"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/katalvlaran/chainfix/chain"
)

// File and directory permissions for generated artifacts.
const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// Case is one generated fixture.
type Case struct {
	Index      int    // file index (exponent-1)
	Dims       []int  // n+1 dimensions
	Cost       int64  // minimum multiplication cost
	InputPath  string // where the input artifact lives
	AnswerPath string // where the answer artifact lives
}

// Size returns the number of matrices in the chain.
func (c Case) Size() int { return len(c.Dims) - 1 }

// Writer generates fixture pairs under a validated Config.
type Writer struct {
	cfg    Config
	rng    *rand.Rand
	logger *log.Logger
}

// NewWriter validates cfg and resolves the random source: WithRand/WithSeed
// first, then a non-zero cfg.Seed.
//
// Errors: ErrInvalidConfig, ErrNeedRandSource.
func NewWriter(cfg Config, opts ...Option) (*Writer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fixtureErrorf("NewWriter", err)
	}

	wc := newWriterConfig(opts...)
	rng := wc.rng
	if rng == nil && cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	if rng == nil {
		return nil, fixtureErrorf("NewWriter", ErrNeedRandSource)
	}

	return &Writer{cfg: cfg, rng: rng, logger: wc.logger}, nil
}

// Config returns the writer's layout.
func (w *Writer) Config() Config { return w.cfg }

// Run generates one case per exponent k in [MinExponent, MaxExponent]:
// chain size 2^k, dims sampled from [DimMin, DimMax]. Cases are written in
// increasing k; ctx is checked before each one. Directories are created
// once, up front.
//
// On error, the cases completed so far are returned with it.
func (w *Writer) Run(ctx context.Context) ([]Case, error) {
	if err := w.ensureDirs(); err != nil {
		return nil, fixtureErrorf("Run", err)
	}

	cases := make([]Case, 0, w.cfg.MaxExponent-w.cfg.MinExponent+1)
	for k := w.cfg.MinExponent; k <= w.cfg.MaxExponent; k++ {
		if err := ctx.Err(); err != nil {
			return cases, fixtureErrorf("Run", err)
		}

		dims, err := GenerateDims(w.rng, 1<<k, w.cfg.DimMin, w.cfg.DimMax)
		if err != nil {
			return cases, fixtureErrorf("Run", err)
		}
		c, err := w.writeCase(caseIndex(k), dims)
		if err != nil {
			return cases, fixtureErrorf("Run", err)
		}
		cases = append(cases, c)
	}

	return cases, nil
}

// WriteCase solves dims and writes the input/answer pair for index idx.
// Directories are created when absent.
//
// Errors: chain validation errors, ErrIO.
func (w *Writer) WriteCase(idx int, dims []int) (Case, error) {
	if err := w.ensureDirs(); err != nil {
		return Case{}, fixtureErrorf("WriteCase", err)
	}

	return w.writeCase(idx, dims)
}

// writeCase is WriteCase without the directory setup; Run has done it.
func (w *Writer) writeCase(idx int, dims []int) (Case, error) {
	cost, err := chain.MinCost(dims)
	if err != nil {
		return Case{}, fixtureErrorf("WriteCase", err)
	}

	c := Case{
		Index:      idx,
		Dims:       append([]int(nil), dims...),
		Cost:       cost,
		InputPath:  w.cfg.InputPath(idx),
		AnswerPath: w.cfg.AnswerPath(idx),
	}

	var buf bytes.Buffer
	if err = FormatInput(&buf, c.Dims); err != nil {
		return Case{}, fixtureErrorf("WriteCase", err)
	}
	if err = os.WriteFile(c.InputPath, buf.Bytes(), filePerm); err != nil {
		return Case{}, ioErrorf("WriteCase", c.InputPath, err)
	}

	buf.Reset()
	if err = FormatAnswer(&buf, c.Cost); err != nil {
		return Case{}, fixtureErrorf("WriteCase", err)
	}
	if err = os.WriteFile(c.AnswerPath, buf.Bytes(), filePerm); err != nil {
		return Case{}, ioErrorf("WriteCase", c.AnswerPath, err)
	}

	w.logger.Printf("case %d: n=%d cost=%d -> %s", c.Index, c.Size(), c.Cost, c.InputPath)

	return c, nil
}

// ensureDirs creates the input and answer directories.
func (w *Writer) ensureDirs() error {
	for _, dir := range []string{
		filepath.Join(w.cfg.Root, w.cfg.InputDir),
		filepath.Join(w.cfg.Root, w.cfg.AnswerDir),
	} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return ioErrorf("ensureDirs", dir, err)
		}
	}

	return nil
}
