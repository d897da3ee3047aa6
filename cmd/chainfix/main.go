// Command chainfix generates and checks matrix-chain fixtures and random
// point-triple data.
//
//	chainfix chain     [-config f.yaml] [-root dir] [-seed n] [-min-exp k] [-max-exp k]
//	chainfix solve     [-order] [-naive] [-strategy bottom-up|memoized] < input.dat
//	chainfix verify    [-config f.yaml] [-root dir]
//	chainfix triangles [-count n] [-scale σ] [-max m] [-seed n] [-out path]
//
// A zero -seed picks a time-based seed and logs it so the run can be replayed.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

// errUsage marks a bad command line; main prints usage for it.
var errUsage = errors.New("usage")

const usage = `usage: chainfix <command> [flags]

commands:
  chain      write matrix-chain input/answer fixtures
  solve      read "<n> <d0> ... <dn>" on stdin and print the minimum cost
  verify     recompute every fixture answer and compare
  triangles  write random 3D point triples
`

func main() {
	logger := log.New(os.Stderr, "chainfix: ", 0)
	if err := run(os.Args[1:], os.Stdin, os.Stdout, logger); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		logger.Print(err)
		os.Exit(1)
	}
}

// run dispatches to a subcommand. It never calls os.Exit so tests can drive it.
func run(args []string, stdin io.Reader, stdout io.Writer, logger *log.Logger) error {
	if len(args) == 0 {
		return errUsage
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "chain":
		return runChain(rest, logger)
	case "solve":
		return runSolve(rest, stdin, stdout)
	case "verify":
		return runVerify(rest, stdout)
	case "triangles":
		return runTriangles(rest, logger)
	case "help", "-h", "-help", "--help":
		_, err := io.WriteString(stdout, usage)
		return err
	default:
		return errors.Join(errUsage, errors.New("unknown command "+cmd))
	}
}
