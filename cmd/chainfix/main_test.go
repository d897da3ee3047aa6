package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/chainfix/fixture"
	"github.com/katalvlaran/chainfix/triangles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quiet returns a logger that records into buf.
func quiet(buf *bytes.Buffer) *log.Logger { return log.New(buf, "", 0) }

// TestRun_Solve mirrors the chain driver: stdin in, cost out.
func TestRun_Solve(t *testing.T) {
	var out, logs bytes.Buffer
	err := run([]string{"solve", "-order", "-naive"}, strings.NewReader("4 40 20 30 10 30\n"), &out, quiet(&logs))
	require.NoError(t, err)
	assert.Equal(t, "26000\n((A1(A2A3))A4)\n48000\n", out.String())

	out.Reset()
	err = run([]string{"solve", "-strategy", "memoized"}, strings.NewReader("3 1 2 3 4"), &out, quiet(&logs))
	require.NoError(t, err)
	assert.Equal(t, "18\n", out.String())
}

// TestRun_SolveErrors covers malformed input and bad flags.
func TestRun_SolveErrors(t *testing.T) {
	var out, logs bytes.Buffer
	err := run([]string{"solve"}, strings.NewReader("3 1 2"), &out, quiet(&logs))
	assert.ErrorIs(t, err, fixture.ErrMalformedInput)

	err = run([]string{"solve", "-strategy", "greedy"}, strings.NewReader("1 1 1"), &out, quiet(&logs))
	assert.ErrorIs(t, err, errUsage)

	err = run([]string{"solve", "-bogus"}, strings.NewReader(""), &out, quiet(&logs))
	assert.ErrorIs(t, err, errUsage)
}

// TestRun_ChainThenVerify writes fixtures and checks them back.
func TestRun_ChainThenVerify(t *testing.T) {
	root := t.TempDir()
	var out, logs bytes.Buffer

	err := run([]string{"chain", "-root", root, "-seed", "5", "-min-exp", "1", "-max-exp", "4"}, nil, &out, quiet(&logs))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "wrote 4 cases")

	cfg := fixture.DefaultConfig()
	cfg.Root = root
	_, err = os.Stat(cfg.InputPath(3))
	require.NoError(t, err)

	// verify only knows the default exponent range unless a config says otherwise.
	cfgPath := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("min_exponent: 1\nmax_exponent: 4\n"), 0o644))
	err = run([]string{"verify", "-config", cfgPath, "-root", root}, nil, &out, quiet(&logs))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "ok: 4 cases verified")

	err = run([]string{"verify", "-root", root}, nil, &out, quiet(&logs))
	assert.ErrorIs(t, err, fixture.ErrIO, "exponents 5..9 were never written")
}

// TestRun_ChainConfigSeed: a seed from the YAML file is used when -seed is absent.
func TestRun_ChainConfigSeed(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "layout.yaml")
	yaml := "root: " + filepath.Join(dir, "out") + "\nmin_exponent: 2\nmax_exponent: 3\nseed: 77\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(yaml), 0o644))

	var out, logs bytes.Buffer
	require.NoError(t, run([]string{"chain", "-config", cfgPath}, nil, &out, quiet(&logs)))
	assert.NotContains(t, logs.String(), "using seed")

	first, err := os.ReadFile(filepath.Join(dir, "out", "input", "test_2.dat"))
	require.NoError(t, err)

	// An explicit zero keeps the config seed instead of switching to a time seed.
	logs.Reset()
	require.NoError(t, run([]string{"chain", "-config", cfgPath, "-seed", "0"}, nil, &out, quiet(&logs)))
	assert.NotContains(t, logs.String(), "using seed")
	again, err := os.ReadFile(filepath.Join(dir, "out", "input", "test_2.dat"))
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

// TestRun_Triangles writes a small data file.
func TestRun_Triangles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tests", "data.txt")
	var out, logs bytes.Buffer

	err := run([]string{"triangles", "-count", "25", "-seed", "3", "-out", path}, nil, &out, quiet(&logs))
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	ts, err := triangles.Read(f)
	require.NoError(t, err)
	assert.Len(t, ts, 25)

	err = run([]string{"triangles", "-scale", "-1"}, nil, &out, quiet(&logs))
	assert.ErrorIs(t, err, errUsage)

	for _, bad := range [][]string{{"-max", "NaN"}, {"-max", "+Inf"}, {"-scale", "NaN"}, {"-scale", "Inf"}} {
		bogus := filepath.Join(t.TempDir(), "bad.txt")
		args := append([]string{"triangles", "-count", "2", "-seed", "1", "-out", bogus}, bad...)
		err = run(args, nil, &out, quiet(&logs))
		assert.ErrorIs(t, err, errUsage, "%v", bad)
		assert.NoFileExists(t, bogus)
	}
}

// TestRun_Usage covers the dispatcher.
func TestRun_Usage(t *testing.T) {
	var out bytes.Buffer
	logger := log.New(io.Discard, "", 0)

	assert.ErrorIs(t, run(nil, nil, &out, logger), errUsage)
	assert.ErrorIs(t, run([]string{"frobnicate"}, nil, &out, logger), errUsage)

	require.NoError(t, run([]string{"help"}, nil, &out, logger))
	assert.Contains(t, out.String(), "usage: chainfix")
}
