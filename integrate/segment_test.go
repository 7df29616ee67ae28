package integrate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/piecewise/curve"
	"github.com/katalvlaran/piecewise/integrate"
)

// TestSegment_ClosedForms checks every law's weight-1 antiderivative
// against analytically integrable fixtures.
func TestSegment_ClosedForms(t *testing.T) {
	cases := []struct {
		name           string
		law            curve.Law
		x1, y1, x2, y2 float64
		want           float64
	}{
		{"linlin trapezoid", curve.LinLin, 2, 2, 4, 4, 6},
		{"flat step", curve.Flat, 1, 2, 20, 9, 38},
		// y = e^x between (0,1) and (1,e): integral e-1.
		{"loglin exponential", curve.LogLin, 0, 1, 1, math.E, math.E - 1},
		// y = ln x between (1,0) and (e,1): integral 1.
		{"linlog logarithm", curve.LinLog, 1, 0, math.E, 1, 1},
		// y = x² between (1,1) and (4,16): integral 21.
		{"loglog power law", curve.LogLog, 1, 1, 4, 16, 21},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := integrate.Segment(tc.law, tc.x1, tc.y1, tc.x2, tc.y2)
			require.NoError(t, err)
			assert.InEpsilon(t, tc.want, got, 1e-12)
		})
	}
}

// TestSegment_SeriesNearOne drives each law into its series-fallback
// region and compares against a cancellation-safe reference.
func TestSegment_SeriesNearOne(t *testing.T) {
	t.Run("loglin", func(t *testing.T) {
		x1, x2, y1 := 3.0, 7.0, 5.0
		d := 5e-5 // inside the 1e-4 window
		y2 := y1 * (1 + d)
		got, err := integrate.Segment(curve.LogLin, x1, y1, x2, y2)
		require.NoError(t, err)
		want := (y2 - y1) * (x2 - x1) / math.Log1p(d)
		assert.InEpsilon(t, want, got, 1e-10)
	})

	t.Run("linlog", func(t *testing.T) {
		x1, y1, y2 := 3.0, 5.0, 11.0
		d := 5e-5
		x2 := x1 * (1 + d)
		got, err := integrate.Segment(curve.LinLog, x1, y1, x2, y2)
		require.NoError(t, err)
		want := (y1-y2)*(x2-x1)/math.Log1p(d) + x2*y2 - x1*y1
		assert.InEpsilon(t, want, got, 1e-10)
	})

	t.Run("loglog", func(t *testing.T) {
		// Exponent pinned to exactly 2 so the power-law integral has a
		// stable polynomial reference.
		x1 := 1.0
		x2 := 1.0005 // inside the 1e-3 window
		y1 := 1.0
		y2 := x2 * x2
		got, err := integrate.Segment(curve.LogLog, x1, y1, x2, y2)
		require.NoError(t, err)
		want := (x2*x2*x2 - x1*x1*x1) / 3
		assert.InEpsilon(t, want, got, 1e-10)
	})
}

// TestSegment_Positivity verifies log-axis violations fail per law.
func TestSegment_Positivity(t *testing.T) {
	_, err := integrate.Segment(curve.LogLin, 0, 0, 1, 2)
	assert.ErrorIs(t, err, curve.ErrBadIntegrationInput)

	_, err = integrate.Segment(curve.LinLog, -1, 1, 1, 2)
	assert.ErrorIs(t, err, curve.ErrBadIntegrationInput)

	_, err = integrate.Segment(curve.LogLog, 1, 1, 2, -2)
	assert.ErrorIs(t, err, curve.ErrBadIntegrationInput)
}

// TestSegment_OtherFails verifies integration over Other is rejected.
func TestSegment_OtherFails(t *testing.T) {
	_, err := integrate.Segment(curve.Other, 0, 0, 1, 1)
	assert.ErrorIs(t, err, curve.ErrOtherInterpolation)
}
