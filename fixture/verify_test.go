// SPDX-License-Identifier: MIT

package fixture_test

import (
	"context"
	"os"
	"testing"

	"github.com/katalvlaran/chainfix/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFixtures generates exponents [minExp, maxExp] under a temp root.
func writeFixtures(t *testing.T, minExp, maxExp int) fixture.Config {
	t.Helper()
	cfg := tempConfig(t, minExp, maxExp)
	w, err := fixture.NewWriter(cfg, fixture.WithSeed(3))
	require.NoError(t, err)
	_, err = w.Run(context.Background())
	require.NoError(t, err)
	return cfg
}

// TestVerify_Fresh passes on freshly generated fixtures.
func TestVerify_Fresh(t *testing.T) {
	cfg := writeFixtures(t, 1, 5)

	cases, err := fixture.Verify(cfg)
	require.NoError(t, err)
	assert.Len(t, cases, 5)
	assert.Equal(t, 32, cases[4].Size())
}

// TestVerify_Tampered reports the altered answer and keeps checking the rest.
func TestVerify_Tampered(t *testing.T) {
	cfg := writeFixtures(t, 1, 4)

	c, err := fixture.ReadCase(cfg, 2)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(cfg.AnswerPath(2), []byte("1\n"), 0o644))
	require.NotEqual(t, int64(1), c.Cost)

	cases, err := fixture.Verify(cfg)
	assert.ErrorIs(t, err, fixture.ErrAnswerMismatch)
	assert.Len(t, cases, 3)
}

// TestVerify_Missing reports missing and malformed artifacts.
func TestVerify_Missing(t *testing.T) {
	cfg := writeFixtures(t, 1, 2)
	require.NoError(t, os.Remove(cfg.InputPath(0)))
	require.NoError(t, os.WriteFile(cfg.InputPath(1), []byte("4 1 2"), 0o644))

	cases, err := fixture.Verify(cfg)
	assert.ErrorIs(t, err, fixture.ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.ErrorIs(t, err, fixture.ErrMalformedInput)
	assert.Empty(t, cases)
}
