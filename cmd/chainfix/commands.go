package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/katalvlaran/chainfix/chain"
	"github.com/katalvlaran/chainfix/fixture"
	"github.com/katalvlaran/chainfix/triangles"
)

// newFlagSet returns a FlagSet that reports errors instead of exiting.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseFlags wraps flag errors with errUsage.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %w: %w", fs.Name(), errUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%s: %w: unexpected argument %q", fs.Name(), errUsage, fs.Arg(0))
	}
	return nil
}

// loadLayout builds the fixture Config from -config and the flags that were set.
func loadLayout(fs *flag.FlagSet, path string, apply func(name string, cfg *fixture.Config)) (fixture.Config, error) {
	cfg := fixture.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = fixture.LoadConfig(path); err != nil {
			return fixture.Config{}, err
		}
	}
	// Only explicitly set flags override file values.
	fs.Visit(func(f *flag.Flag) { apply(f.Name, &cfg) })

	return cfg, cfg.Validate()
}

// runChain writes input/answer fixtures.
func runChain(args []string, logger *log.Logger) error {
	fs := newFlagSet("chain")
	var (
		cfgPath = fs.String("config", "", "YAML layout file")
		root    = fs.String("root", fixture.DefaultRoot, "output root directory")
		seed    = fs.Int64("seed", 0, "random seed (0: config seed, else time-based)")
		minExp  = fs.Int("min-exp", fixture.DefaultMinExponent, "smallest chain size exponent")
		maxExp  = fs.Int("max-exp", fixture.DefaultMaxExponent, "largest chain size exponent")
	)
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	cfg, err := loadLayout(fs, *cfgPath, func(name string, c *fixture.Config) {
		switch name {
		case "root":
			c.Root = *root
		case "seed":
			if *seed != 0 {
				c.Seed = *seed
			}
		case "min-exp":
			c.MinExponent = *minExp
		case "max-exp":
			c.MaxExponent = *maxExp
		}
	})
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
		logger.Printf("using seed %d", cfg.Seed)
	}

	w, err := fixture.NewWriter(cfg, fixture.WithLogger(logger))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cases, err := w.Run(ctx)
	if err != nil {
		return err
	}
	logger.Printf("wrote %d cases under %s", len(cases), cfg.Root)

	return nil
}

// runSolve reads one input artifact from stdin and prints its minimum cost.
func runSolve(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := newFlagSet("solve")
	var (
		order    = fs.Bool("order", false, "also print the optimal parenthesization")
		naive    = fs.Bool("naive", false, "also print the left-to-right cost")
		strategy = fs.String("strategy", chain.BottomUp.String(), "bottom-up or memoized")
	)
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	opts := chain.Options{ReturnPlan: *order}
	switch *strategy {
	case chain.BottomUp.String():
		opts.Strategy = chain.BottomUp
	case chain.Memoized.String():
		opts.Strategy = chain.Memoized
	default:
		return fmt.Errorf("solve: %w: unknown strategy %q", errUsage, *strategy)
	}

	dims, err := fixture.ParseInput(stdin)
	if err != nil {
		return err
	}
	plan, err := chain.Solve(dims, &opts)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintln(stdout, plan.Cost); err != nil {
		return err
	}
	if *order {
		parens, err := plan.Parenthesize()
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintln(stdout, parens); err != nil {
			return err
		}
	}
	if *naive {
		cost, err := chain.NaiveCost(dims)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintln(stdout, cost); err != nil {
			return err
		}
	}

	return nil
}

// runVerify recomputes stored answers.
func runVerify(args []string, stdout io.Writer) error {
	fs := newFlagSet("verify")
	var (
		cfgPath = fs.String("config", "", "YAML layout file")
		root    = fs.String("root", fixture.DefaultRoot, "fixture root directory")
	)
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	cfg, err := loadLayout(fs, *cfgPath, func(name string, c *fixture.Config) {
		if name == "root" {
			c.Root = *root
		}
	})
	if err != nil {
		return err
	}

	cases, err := fixture.Verify(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "ok: %d cases verified under %s\n", len(cases), cfg.Root)

	return err
}

// runTriangles writes random point triples.
func runTriangles(args []string, logger *log.Logger) error {
	fs := newFlagSet("triangles")
	var (
		count = fs.Int("count", 10000, "number of triples")
		scale = fs.Float64("scale", triangles.DefaultScale, "sigma of the half-normal offsets")
		upper = fs.Float64("max", triangles.DefaultMax, "upper bound of base coordinates")
		seed  = fs.Uint64("seed", 0, "random seed (0: time-based)")
		out   = fs.String("out", "tests/data.txt", "output file")
	)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if !(*scale >= 0) || math.IsInf(*scale, 0) || !(*upper > 0) || math.IsInf(*upper, 0) {
		return fmt.Errorf("triangles: %w: need finite scale >= 0 and finite max > 0", errUsage)
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
		logger.Printf("using seed %d", *seed)
	}

	ts, err := triangles.Generate(*count,
		triangles.WithSeed(*seed),
		triangles.WithScale(*scale),
		triangles.WithMax(*upper),
	)
	if err != nil {
		return err
	}
	if err = triangles.WriteFile(*out, ts); err != nil {
		return err
	}
	logger.Printf("wrote %d triples to %s", len(ts), *out)

	return nil
}
