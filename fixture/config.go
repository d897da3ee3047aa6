// SPDX-License-Identifier: MIT
// Package: chainfix/fixture
//
// config.go — fixture layout and sampling knobs with deterministic defaults.
//
// Design:
//   • Config is the single source of truth for paths, size range and dimension range.
//   • DefaultConfig reproduces the classic layout: sizes 4..512, dims in [2,100].
//   • LoadConfig overlays a YAML file on top of the defaults; absent keys keep defaults.

package fixture

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Deterministic defaults (named, no magic numbers).
const (
	DefaultRoot        = "tests"   // parent of the input and answer directories
	DefaultInputDir    = "input"   // input artifacts
	DefaultAnswerDir   = "answers" // answer artifacts
	DefaultMinExponent = 2         // smallest chain: 2^2 = 4 matrices
	DefaultMaxExponent = 9         // largest chain: 2^9 = 512 matrices
	DefaultDimMin      = 2         // smallest sampled dimension
	DefaultDimMax      = 100       // largest sampled dimension

	// MaxExponentLimit caps chain sizes at 2^12 matrices; the O(n³) solver
	// would otherwise run for hours.
	MaxExponentLimit = 12
)

// File name patterns; %d is the case index (exponent-1).
const (
	inputPattern  = "test_%d.dat"
	answerPattern = "test_%d_ans.dat"
)

// Config describes where fixtures go and how they are sampled.
type Config struct {
	// Root is the parent directory of InputDir and AnswerDir.
	Root string `yaml:"root"`
	// InputDir holds "<n> <d0> … <dn>" files, relative to Root.
	InputDir string `yaml:"input_dir"`
	// AnswerDir holds "<cost>" files, relative to Root.
	AnswerDir string `yaml:"answer_dir"`

	// MinExponent..MaxExponent (inclusive) select chain sizes 2^k.
	MinExponent int `yaml:"min_exponent"`
	MaxExponent int `yaml:"max_exponent"`

	// DimMin..DimMax (inclusive) bound every sampled dimension.
	DimMin int `yaml:"dim_min"`
	DimMax int `yaml:"dim_max"`

	// Seed, when non-zero, seeds a Writer built without WithRand/WithSeed.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the classic fixture layout.
func DefaultConfig() Config {
	return Config{
		Root:        DefaultRoot,
		InputDir:    DefaultInputDir,
		AnswerDir:   DefaultAnswerDir,
		MinExponent: DefaultMinExponent,
		MaxExponent: DefaultMaxExponent,
		DimMin:      DefaultDimMin,
		DimMax:      DefaultDimMax,
	}
}

// LoadConfig reads a YAML file and overlays it on DefaultConfig.
// The result is validated before it is returned.
//
// Errors: ErrIO (unreadable file), ErrInvalidConfig (bad YAML or values).
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, ioErrorf("LoadConfig", path, err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fixtureErrorf("LoadConfig", fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err))
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fixtureErrorf("LoadConfig", err)
	}

	return cfg, nil
}

// Validate checks directory names and ranges.
//
// Rules:
//   - InputDir and AnswerDir are non-empty and differ.
//   - 1 ≤ MinExponent ≤ MaxExponent ≤ MaxExponentLimit.
//   - 1 ≤ DimMin ≤ DimMax.
func (c Config) Validate() error {
	switch {
	case c.InputDir == "" || c.AnswerDir == "":
		return fmt.Errorf("%w: input_dir and answer_dir must be set", ErrInvalidConfig)
	case filepath.Clean(c.InputDir) == filepath.Clean(c.AnswerDir):
		return fmt.Errorf("%w: input_dir and answer_dir must differ", ErrInvalidConfig)
	case c.MinExponent < 1 || c.MinExponent > c.MaxExponent:
		return fmt.Errorf("%w: exponent range [%d,%d]", ErrInvalidConfig, c.MinExponent, c.MaxExponent)
	case c.MaxExponent > MaxExponentLimit:
		return fmt.Errorf("%w: max_exponent %d exceeds %d", ErrInvalidConfig, c.MaxExponent, MaxExponentLimit)
	case c.DimMin < 1 || c.DimMin > c.DimMax:
		return fmt.Errorf("%w: dimension range [%d,%d]", ErrInvalidConfig, c.DimMin, c.DimMax)
	}

	return nil
}

// InputPath returns the input artifact path for case index idx.
func (c Config) InputPath(idx int) string {
	return filepath.Join(c.Root, c.InputDir, fmt.Sprintf(inputPattern, idx))
}

// AnswerPath returns the answer artifact path for case index idx.
func (c Config) AnswerPath(idx int) string {
	return filepath.Join(c.Root, c.AnswerDir, fmt.Sprintf(answerPattern, idx))
}

// caseIndex maps exponent k (chain size 2^k) to its file index.
func caseIndex(k int) int { return k - 1 }
