package triangles

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Generate samples count triples under the model described in the package doc.
//
// Draw order per row is fixed (A.X, A.Y, A.Z, B offsets X..Z, C offsets Y..Z),
// so a given source and options always yield the same triples.
//
// Errors: ErrBadCount if count < 1, ErrNeedRandSource without WithSeed/WithSource.
//
// Complexity: O(count) time and memory.
func Generate(count int, opts ...Option) ([]Triple, error) {
	if count < 1 {
		return nil, trianglesErrorf("Generate", fmt.Errorf("%w: %d", ErrBadCount, count))
	}
	cfg := newGenConfig(opts...)
	if cfg.src == nil {
		return nil, trianglesErrorf("Generate", ErrNeedRandSource)
	}

	base := distuv.Uniform{Min: 0, Max: cfg.max, Src: cfg.src}
	noise := distuv.Normal{Mu: 0, Sigma: cfg.scale, Src: cfg.src}
	offset := func() float64 { return math.Abs(noise.Rand()) }

	out := make([]Triple, count)
	for i := range out {
		a := Point{X: base.Rand(), Y: base.Rand(), Z: base.Rand()}
		b := Point{X: a.X + offset(), Y: a.Y + offset(), Z: a.Z + offset()}
		c := Point{X: a.X, Y: a.Y + offset(), Z: a.Z + offset()}
		out[i] = Triple{A: a, B: b, C: c}
	}

	return out, nil
}
