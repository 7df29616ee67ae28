package resample_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/piecewise/curve"
	"github.com/katalvlaran/piecewise/integrate"
	"github.com/katalvlaran/piecewise/resample"
)

// TestThin_StraightLine verifies a densely sampled line collapses to
// its endpoints.
func TestThin_StraightLine(t *testing.T) {
	xs := make([]float64, 101)
	ys := make([]float64, 101)
	for i := range xs {
		xs[i] = float64(i) / 100
		ys[i] = 2*xs[i] + 1
	}
	ps, err := curve.FromSlices(curve.LinLin, xs, ys)
	require.NoError(t, err)

	thin, err := resample.Thin(ps, 1e-6)
	require.NoError(t, err)
	assert.Equal(t, 2, thin.Len(), "a line needs only its endpoints")
	assert.Equal(t, 0.0, thin.At(0).X)
	assert.Equal(t, 1.0, thin.At(1).X)
	assert.Equal(t, 101, ps.Len(), "the input is untouched")
}

// TestThin_PreservesIntegral verifies the thinned sine reintegrates to
// the original value within the accuracy budget.
func TestThin_PreservesIntegral(t *testing.T) {
	n := 201
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = math.Pi * float64(i) / float64(n-1)
		ys[i] = math.Sin(xs[i])
	}
	ps, err := curve.FromSlices(curve.LinLin, xs, ys)
	require.NoError(t, err)
	orig, err := integrate.Domain(ps)
	require.NoError(t, err)

	thin, err := resample.Thin(ps, 1e-3)
	require.NoError(t, err)
	assert.Less(t, thin.Len(), ps.Len(), "thinning must reduce the sample count")

	got, err := integrate.Domain(thin)
	require.NoError(t, err)
	assert.InDelta(t, orig, got, 1e-2)
}

// TestThin_Validation verifies accuracy and law gating plus the
// short-set passthrough.
func TestThin_Validation(t *testing.T) {
	ps, err := curve.FromPairs(curve.LinLin, []float64{0, 0, 1, 3})
	require.NoError(t, err)

	_, err = resample.Thin(ps, 0)
	assert.ErrorIs(t, err, resample.ErrBadInput)

	short, err := resample.Thin(ps, 1e-3)
	require.NoError(t, err)
	assert.Equal(t, 2, short.Len(), "sets below three samples pass through")

	other, err := curve.FromPairs(curve.Other, []float64{0, 0, 1, 1, 2, 2})
	require.NoError(t, err)
	_, err = resample.Thin(other, 1e-3)
	assert.ErrorIs(t, err, curve.ErrOtherInterpolation)
}
