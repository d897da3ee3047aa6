// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/chainfix/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func nan() float64    { return math.NaN() }
func posInf() float64 { return math.Inf(1) }

// toGonum copies a Dense into a gonum matrix for oracle comparisons.
func toGonum(t *testing.T, d *matrix.Dense) *mat.Dense {
	t.Helper()
	data := make([]float64, 0, d.Rows()*d.Cols())
	for i := 0; i < d.Rows(); i++ {
		for j := 0; j < d.Cols(); j++ {
			v, err := d.At(i, j)
			require.NoError(t, err)
			data = append(data, v)
		}
	}

	return mat.NewDense(d.Rows(), d.Cols(), data)
}

// TestMul_Small checks a hand-computed 2×3 · 3×2 product.
func TestMul_Small(t *testing.T) {
	a, err := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	b, err := matrix.NewDenseFrom(3, 2, []float64{7, 8, 9, 10, 11, 12})
	require.NoError(t, err)

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)

	want, err := matrix.NewDenseFrom(2, 2, []float64{58, 64, 139, 154})
	require.NoError(t, err)
	eq, err := matrix.Equal(got, want)
	require.NoError(t, err)
	assert.True(t, eq, "got:\n%s", got)
}

// TestMul_MatchesGonum cross-checks the Dense fast path against gonum on random shapes.
func TestMul_MatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		r, n, c := 1+rng.Intn(9), 1+rng.Intn(9), 1+rng.Intn(9)
		a, err := matrix.NewRandomInt(r, n, -5, 5, rng)
		require.NoError(t, err)
		b, err := matrix.NewRandomInt(n, c, -5, 5, rng)
		require.NoError(t, err)

		got, err := matrix.Mul(a, b)
		require.NoError(t, err)

		var want mat.Dense
		want.Mul(toGonum(t, a), toGonum(t, b))
		assert.True(t, mat.Equal(toGonum(t, got), &want), "trial %d: %dx%d · %dx%d", trial, r, n, n, c)
	}
}

// rowsMatrix is a Matrix backed by a slice of rows, used to exercise Mul
// on operands that are not *Dense.
type rowsMatrix [][]float64

func (m rowsMatrix) Rows() int { return len(m) }
func (m rowsMatrix) Cols() int { return len(m[0]) }

func (m rowsMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= len(m) || j < 0 || j >= len(m[0]) {
		return 0, matrix.ErrOutOfRange
	}
	return m[i][j], nil
}

func (m rowsMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= len(m) || j < 0 || j >= len(m[0]) {
		return matrix.ErrOutOfRange
	}
	m[i][j] = v
	return nil
}

func (m rowsMatrix) Clone() matrix.Matrix {
	out := make(rowsMatrix, len(m))
	for i := range m {
		out[i] = append([]float64(nil), m[i]...)
	}
	return out
}

// TestMul_NonDenseOperands multiplies a rows-backed matrix by a Dense and
// compares with gonum.
func TestMul_NonDenseOperands(t *testing.T) {
	a := rowsMatrix{{1, 0, -2}, {3, 4, 0.5}}
	b, err := matrix.NewDenseFrom(3, 2, []float64{2, -1, 0, 5, 7, 1})
	require.NoError(t, err)

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(mat.NewDense(2, 3, []float64{1, 0, -2, 3, 4, 0.5}), toGonum(t, b))
	assert.True(t, mat.Equal(toGonum(t, got), &want), "got:\n%s", got)

	// Both operands non-Dense; inputs stay untouched.
	got, err = matrix.Mul(a, rowsMatrix{{1}, {1}, {1}})
	require.NoError(t, err)
	v0, _ := got.At(0, 0)
	v1, _ := got.At(1, 0)
	assert.Equal(t, []float64{-1, 7.5}, []float64{v0, v1})
	assert.Equal(t, rowsMatrix{{1, 0, -2}, {3, 4, 0.5}}, a)

	_, err = matrix.Mul(rowsMatrix{{nan()}}, rowsMatrix{{1}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestMul_Errors checks the validator chain.
func TestMul_Errors(t *testing.T) {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(2, 3)

	_, err := matrix.Mul(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, b)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.Mul(a, typedNil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAllClose covers tolerance handling and shape mismatch.
func TestAllClose(t *testing.T) {
	a, _ := matrix.NewDenseFrom(1, 2, []float64{1, 2})
	b, _ := matrix.NewDenseFrom(1, 2, []float64{1, 2.0005})

	ok, err := matrix.AllClose(a, b, 0, 1e-3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-6)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = matrix.AllClose(a, b, nan(), 0)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	c, _ := matrix.NewDense(2, 1)
	_, err = matrix.Equal(a, c)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestNewRandomInt checks range, determinism and argument validation.
func TestNewRandomInt(t *testing.T) {
	d1, err := matrix.NewRandomInt(4, 5, -2, 2, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	d2, err := matrix.NewRandomInt(4, 5, -2, 2, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	eq, err := matrix.Equal(d1, d2)
	require.NoError(t, err)
	assert.True(t, eq, "same seed must give the same matrix")

	for i := 0; i < 4; i++ {
		for j := 0; j < 5; j++ {
			v, _ := d1.At(i, j)
			assert.GreaterOrEqual(t, v, -2.0)
			assert.LessOrEqual(t, v, 2.0)
			assert.Equal(t, math.Trunc(v), v)
		}
	}

	_, err = matrix.NewRandomInt(1, 1, 3, 2, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, matrix.ErrBadRange)
	_, err = matrix.NewRandomInt(1, 1, 0, 1, nil)
	assert.ErrorIs(t, err, matrix.ErrBadRange)
}
