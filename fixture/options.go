// SPDX-License-Identifier: MIT
// Package: chainfix/fixture
//
// options.go — functional options for Writer.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs (nil RNG,
//     nil logger). Writer methods never panic.
//   • Later options override earlier ones.

package fixture

import (
	"io"
	"log"
	"math/rand"
)

// Option customizes a Writer before the first case is generated.
type Option func(*writerConfig)

// writerConfig aggregates the non-layout knobs of a Writer.
type writerConfig struct {
	rng    *rand.Rand  // nil until WithRand/WithSeed; falls back to Config.Seed
	logger *log.Logger // never nil after newWriterConfig
}

// newWriterConfig applies opts over silent, RNG-less defaults.
func newWriterConfig(opts ...Option) writerConfig {
	wc := writerConfig{logger: log.New(io.Discard, "", 0)}
	for _, opt := range opts {
		opt(&wc)
	}

	return wc
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("fixture: WithRand(nil)")
	}
	return func(c *writerConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *writerConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger routes per-case progress lines to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("fixture: WithLogger(nil)")
	}
	return func(c *writerConfig) {
		c.logger = l
	}
}
