package integrate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/piecewise/curve"
	"github.com/katalvlaran/piecewise/integrate"
)

// TestWeightX_ClosedForms checks the x-weighted antiderivatives against
// analytic values.
func TestWeightX_ClosedForms(t *testing.T) {
	t.Run("flat", func(t *testing.T) {
		ps, err := curve.FromPairs(curve.Flat, []float64{1, 2, 20, 2})
		require.NoError(t, err)
		got, err := integrate.BetweenWithWeightX(ps, 1, 20)
		require.NoError(t, err)
		// ∫ 2x over [1,20] = 400 - 1.
		assert.InDelta(t, 399.0, got, 1e-12)
	})

	t.Run("linlin", func(t *testing.T) {
		ps, err := curve.FromPairs(curve.LinLin, []float64{0, 0, 2, 2}) // y = x
		require.NoError(t, err)
		got, err := integrate.BetweenWithWeightX(ps, 0, 2)
		require.NoError(t, err)
		assert.InDelta(t, 8.0/3.0, got, 1e-12)
	})

	t.Run("loglin", func(t *testing.T) {
		// y = e^x between (0,1) and (1,e): ∫ x·e^x over [0,1] = 1.
		ps, err := curve.FromPairs(curve.LogLin, []float64{0, 1, 1, math.E})
		require.NoError(t, err)
		got, err := integrate.BetweenWithWeightX(ps, 0, 1)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, got, 1e-12)
	})

	t.Run("loglin constant segment", func(t *testing.T) {
		ps, err := curve.FromPairs(curve.LogLin, []float64{1, 2, 3, 2})
		require.NoError(t, err)
		got, err := integrate.BetweenWithWeightX(ps, 1, 3)
		require.NoError(t, err)
		// ∫ 2x over [1,3] = 9 - 1.
		assert.InDelta(t, 8.0, got, 1e-12)
	})
}

// TestWeightX_PartialAndReversedBounds verifies boundary clamping and
// the sign flip of the clamped walk.
func TestWeightX_PartialAndReversedBounds(t *testing.T) {
	ps, err := curve.FromPairs(curve.LinLin, []float64{0, 0, 2, 2}) // y = x
	require.NoError(t, err)

	got, err := integrate.BetweenWithWeightX(ps, 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 7.0/3.0, got, 1e-12, "∫ x² over [1,2]")

	rev, err := integrate.BetweenWithWeightX(ps, 2, 1)
	require.NoError(t, err)
	assert.InDelta(t, -7.0/3.0, rev, 1e-12, "reversed bounds negate")
}

// TestWeighted_DisjointBounds verifies a window with no domain overlap
// integrates to zero on either side of the samples.
func TestWeighted_DisjointBounds(t *testing.T) {
	ps, err := curve.FromPairs(curve.Flat, []float64{1, 2, 20, 2})
	require.NoError(t, err)

	for _, b := range [][2]float64{{-10, 0}, {0, -10}, {25, 30}} {
		got, err := integrate.BetweenWithWeightX(ps, b[0], b[1])
		require.NoError(t, err)
		assert.Zero(t, got, "x weight, bounds [%g, %g]", b[0], b[1])
	}

	got, err := integrate.BetweenWithWeightSqrtX(ps, 21, 30)
	require.NoError(t, err)
	assert.Zero(t, got, "√x weight past the domain")
}

// TestWeightX_UnsupportedLaw verifies the law gate.
func TestWeightX_UnsupportedLaw(t *testing.T) {
	ps, err := curve.FromPairs(curve.LinLog, []float64{1, 1, 2, 2})
	require.NoError(t, err)
	_, err = integrate.BetweenWithWeightX(ps, 1, 2)
	assert.ErrorIs(t, err, curve.ErrUnsupportedInterpolation)
}

// TestWeightSqrtX_ClosedForms checks the √x-weighted antiderivatives.
func TestWeightSqrtX_ClosedForms(t *testing.T) {
	t.Run("flat", func(t *testing.T) {
		ps, err := curve.FromPairs(curve.Flat, []float64{0, 3, 4, 3})
		require.NoError(t, err)
		got, err := integrate.BetweenWithWeightSqrtX(ps, 0, 4)
		require.NoError(t, err)
		// ∫ 3√x over [0,4] = 3·(2/3)·8.
		assert.InDelta(t, 16.0, got, 1e-12)
	})

	t.Run("linlin", func(t *testing.T) {
		ps, err := curve.FromPairs(curve.LinLin, []float64{0, 0, 1, 1}) // y = x
		require.NoError(t, err)
		got, err := integrate.BetweenWithWeightSqrtX(ps, 0, 1)
		require.NoError(t, err)
		// ∫ x^(3/2) over [0,1] = 2/5.
		assert.InDelta(t, 0.4, got, 1e-12)
	})
}

// TestWeightSqrtX_Gates verifies the law gate and the non-negative
// domain requirement.
func TestWeightSqrtX_Gates(t *testing.T) {
	loglin, err := curve.FromPairs(curve.LogLin, []float64{0, 1, 1, 2})
	require.NoError(t, err)
	_, err = integrate.BetweenWithWeightSqrtX(loglin, 0, 1)
	assert.ErrorIs(t, err, curve.ErrUnsupportedInterpolation, "loglin carries no √x antiderivative")

	neg, err := curve.FromPairs(curve.LinLin, []float64{-1, 1, 1, 1})
	require.NoError(t, err)
	_, err = integrate.BetweenWithWeightSqrtX(neg, -1, 1)
	assert.ErrorIs(t, err, curve.ErrBadIntegrationInput, "√x needs x ≥ 0")
}

// TestWeighted_DomainVariants verifies the full-domain adapters agree
// with explicit bounds.
func TestWeighted_DomainVariants(t *testing.T) {
	ps, err := curve.FromPairs(curve.LinLin, []float64{0, 0, 1, 1, 2, 0})
	require.NoError(t, err)

	wantX, err := integrate.BetweenWithWeightX(ps, 0, 2)
	require.NoError(t, err)
	gotX, err := integrate.DomainWithWeightX(ps)
	require.NoError(t, err)
	assert.Equal(t, wantX, gotX)

	wantS, err := integrate.BetweenWithWeightSqrtX(ps, 0, 2)
	require.NoError(t, err)
	gotS, err := integrate.DomainWithWeightSqrtX(ps)
	require.NoError(t, err)
	assert.Equal(t, wantS, gotS)
}
