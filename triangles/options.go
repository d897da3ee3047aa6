package triangles

import (
	"math"

	"golang.org/x/exp/rand"
)

// Defaults for the generative model.
const (
	DefaultScale = 3.0   // σ of the half-normal offsets
	DefaultMax   = 100.0 // upper bound (exclusive) of base coordinates
)

// Option customizes Generate.
type Option func(*genConfig)

// genConfig holds the resolved sampling knobs.
type genConfig struct {
	src   rand.Source
	scale float64
	max   float64
}

// newGenConfig applies opts over the defaults; src stays nil unless set.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{scale: DefaultScale, max: DefaultMax}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed uses a fresh PCG source seeded with seed.
func WithSeed(seed uint64) Option {
	return func(c *genConfig) {
		c.src = rand.NewSource(seed)
	}
}

// WithSource uses src for all draws. Panics on nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("triangles: WithSource(nil)")
	}
	return func(c *genConfig) {
		c.src = src
	}
}

// WithScale sets σ of the half-normal offsets. Panics unless sigma is finite
// and ≥ 0; sigma == 0 collapses B and C onto A's coordinates.
func WithScale(sigma float64) Option {
	if !(sigma >= 0) || math.IsInf(sigma, 0) {
		panic("triangles: WithScale(sigma<0 or non-finite)")
	}
	return func(c *genConfig) {
		c.scale = sigma
	}
}

// WithMax sets the exclusive upper bound of base coordinates.
// Panics unless upper is finite and > 0.
func WithMax(upper float64) Option {
	if !(upper > 0) || math.IsInf(upper, 0) {
		panic("triangles: WithMax(max<=0 or non-finite)")
	}
	return func(c *genConfig) {
		c.max = upper
	}
}
