package curve_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/piecewise/curve"
)

// TestNeg verifies in-place negation.
func TestNeg(t *testing.T) {
	ps, err := curve.FromPairs(curve.LinLin, []float64{0, 1, 1, -2})
	require.NoError(t, err)

	require.NoError(t, ps.Neg())
	assert.Equal(t, -1.0, ps.At(0).Y)
	assert.Equal(t, 2.0, ps.At(1).Y)
}

// TestExp verifies the pointwise exp(f·y) transform.
func TestExp(t *testing.T) {
	ps, err := curve.FromPairs(curve.LinLin, []float64{0, 0, 1, 1})
	require.NoError(t, err)

	require.NoError(t, ps.Exp(2))
	assert.Equal(t, 1.0, ps.At(0).Y, "exp(0)")
	assert.InDelta(t, math.Exp(2), ps.At(1).Y, 1e-14)

	assert.ErrorIs(t, ps.Exp(math.NaN()), curve.ErrBadInput)
}

// TestMul_UnionGridProduct verifies the pointwise product on the
// union grid restricted to the domain overlap.
func TestMul_UnionGridProduct(t *testing.T) {
	a, err := curve.FromPairs(curve.LinLin, []float64{0, 0, 2, 2}) // y = x
	require.NoError(t, err)
	b, err := curve.FromPairs(curve.LinLin, []float64{1, 3, 2, 3}) // constant 3 on [1,2]
	require.NoError(t, err)

	prod, err := curve.Mul(a, b)
	require.NoError(t, err)
	want := []curve.Point{{X: 1, Y: 3}, {X: 2, Y: 6}}
	assert.Empty(t, cmp.Diff(want, prod.Points()), "product lives on the overlap only")
	assert.Equal(t, curve.LinLin, prod.Law())
}

// TestMul_UnsupportedLaw verifies that log-law operands are rejected.
func TestMul_UnsupportedLaw(t *testing.T) {
	a, err := curve.FromPairs(curve.LogLin, []float64{0, 1, 1, 2})
	require.NoError(t, err)
	b, err := curve.FromPairs(curve.LinLin, []float64{0, 1, 1, 2})
	require.NoError(t, err)

	_, err = curve.Mul(a, b)
	assert.ErrorIs(t, err, curve.ErrUnsupportedInterpolation)
}
