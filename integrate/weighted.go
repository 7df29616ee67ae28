package integrate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/piecewise/curve"
)

// BetweenWithWeightX integrates x·f(x) over [domainMin, domainMax].
// Only LinLin, LogLin and Flat carry a closed-form x-weighted
// antiderivative; other laws fail with ErrUnsupportedInterpolation
// rather than approximating.
func BetweenWithWeightX(ps *curve.PointSet, domainMin, domainMax float64) (float64, error) {
	if err := checkWeighted(ps, curve.LinLin, curve.LogLin, curve.Flat); err != nil {
		return 0, err
	}

	return weightedWalk(ps, domainMin, domainMax, func(law curve.Law, x1, y1, x2, y2 float64) (float64, error) {
		switch law {
		case curve.Flat:
			return 0.5 * (x2 - x1) * y1 * (x1 + x2), nil
		case curve.LinLin:
			return (x2 - x1) * (y1*(2*x1+x2) + y2*(x1+2*x2)) / 6, nil
		default: // LogLin
			if y1 <= 0 || y2 <= 0 {
				return 0, fmt.Errorf("%w: log-y weighted integration with y1=%.17e, y2=%.17e",
					curve.ErrBadIntegrationInput, y1, y2)
			}
			if y1 == y2 {
				// Constant segment: the exponential rate is zero.
				return 0.5 * y1 * (x2*x2 - x1*x1), nil
			}
			invA := (x2 - x1) / math.Log(y2/y1)
			a := 1 / invA
			// ∫ x·c·e^(a·x) dx with c pinned so the segment passes
			// through (x1,y1) and (x2,y2): c·e^(a·x1) = y1, c·e^(a·x2) = y2.
			return invA * invA * (y2*(a*x2-1) - y1*(a*x1-1)), nil
		}
	})
}

// DomainWithWeightX integrates x·f(x) over the full sampled domain.
func DomainWithWeightX(ps *curve.PointSet) (float64, error) {
	return weightedDomain(ps, BetweenWithWeightX)
}

// BetweenWithWeightSqrtX integrates √x·f(x) over [domainMin, domainMax].
// Only LinLin and Flat are supported; the domain must be non-negative.
func BetweenWithWeightSqrtX(ps *curve.PointSet, domainMin, domainMax float64) (float64, error) {
	if err := checkWeighted(ps, curve.LinLin, curve.Flat); err != nil {
		return 0, err
	}

	sum, err := weightedWalk(ps, domainMin, domainMax, func(law curve.Law, x1, y1, x2, y2 float64) (float64, error) {
		if x1 < 0 {
			return 0, fmt.Errorf("%w: √x weight with x1=%.17e", curve.ErrBadIntegrationInput, x1)
		}
		sx1, sx2 := math.Sqrt(x1), math.Sqrt(x2)
		c := 2 * (sx1*sx2 + x1 + x2)
		if law == curve.Flat {
			return (sx2 - sx1) * y1 * 2.5 * c, nil
		}
		apb := sx1 + sx2

		return (sx2 - sx1) * (y1*(c+x1*(1+sx2/apb)) + y2*(c+x2*(1+sx1/apb))), nil
	})
	if err != nil {
		return 0, err
	}

	return 2. / 15. * sum, nil
}

// DomainWithWeightSqrtX integrates √x·f(x) over the full sampled domain.
func DomainWithWeightSqrtX(ps *curve.PointSet) (float64, error) {
	return weightedDomain(ps, BetweenWithWeightSqrtX)
}

// checkWeighted gates the weighted integrators: usable set, law in the
// supported subset.
func checkWeighted(ps *curve.PointSet, laws ...curve.Law) error {
	if ps == nil {
		return fmt.Errorf("%w: nil point set", curve.ErrBadSelf)
	}
	if err := ps.Err(); err != nil {
		return err
	}
	for _, law := range laws {
		if ps.Law() == law {
			return nil
		}
	}

	return fmt.Errorf("%w: %s under this weight", curve.ErrUnsupportedInterpolation, ps.Law())
}

// weightedWalk runs the common clamped segment walk of the weighted
// integrators: boundary segments are cut at the requested bounds with
// law-interpolated values, whole segments stream through the supplied
// per-segment rule, and swapped bounds negate the sum.
func weightedWalk(ps *curve.PointSet, domainMin, domainMax float64,
	segment func(law curve.Law, x1, y1, x2, y2 float64) (float64, error)) (float64, error) {

	n := ps.Len()
	if n < 2 {
		return 0, nil
	}
	sign := 1.0
	if domainMax < domainMin {
		domainMin, domainMax = domainMax, domainMin
		sign = -1
	}
	if err := ps.Coalesce(); err != nil {
		return 0, err
	}
	if domainMax <= ps.At(0).X || domainMin >= ps.At(n-1).X {
		return 0, nil
	}

	i := 0
	for ; i < n; i++ {
		if ps.At(i).X >= domainMin {
			break
		}
	}
	if i == n {
		return 0, nil
	}

	x2, y2 := ps.At(i).X, ps.At(i).Y
	if i > 0 && x2 > domainMin {
		y, err := curve.Interpolate(ps.Law(), domainMin, ps.At(i-1), ps.At(i))
		if err != nil {
			return 0, err
		}
		x2, y2 = domainMin, y
	} else {
		i++
	}

	sum := 0.0
	for ; i < n; i++ {
		x1, y1 := x2, y2
		x2, y2 = ps.At(i).X, ps.At(i).Y
		if x2 > domainMax {
			y, err := curve.Interpolate(ps.Law(), domainMax, ps.At(i-1), ps.At(i))
			if err != nil {
				return 0, err
			}
			x2, y2 = domainMax, y
		}
		v, err := segment(ps.Law(), x1, y1, x2, y2)
		if err != nil {
			return 0, err
		}
		sum += v
		if x2 == domainMax {
			break
		}
	}

	return sign * sum, nil
}

// weightedDomain adapts a bounded weighted integrator to the full
// sampled domain.
func weightedDomain(ps *curve.PointSet,
	between func(*curve.PointSet, float64, float64) (float64, error)) (float64, error) {

	if ps == nil {
		return 0, fmt.Errorf("%w: nil point set", curve.ErrBadSelf)
	}
	if err := ps.Err(); err != nil {
		return 0, err
	}
	if ps.Len() < 2 {
		return 0, nil
	}
	domainMin, err := ps.DomainMin()
	if err != nil {
		return 0, err
	}
	domainMax, err := ps.DomainMax()
	if err != nil {
		return 0, err
	}

	return between(ps, domainMin, domainMax)
}
