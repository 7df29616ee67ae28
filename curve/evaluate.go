package curve

import (
	"fmt"
	"math"
	"sort"
)

// Interpolate returns y at x between the two endpoints p1, p2 under the
// given law. x must lie in [p1.X, p2.X]. The Other law cannot be
// evaluated here — use PointSet.Evaluate so the evaluator capability is
// consulted.
//
// Positivity: LogLin requires y1,y2 > 0; LinLog requires x1,x2 > 0;
// LogLog requires all four. Violations return ErrBadIntegrationInput.
func Interpolate(law Law, x float64, p1, p2 Point) (float64, error) {
	x1, y1, x2, y2 := p1.X, p1.Y, p2.X, p2.Y
	switch law {
	case LinLin:
		return y1 + (y2-y1)*(x-x1)/(x2-x1), nil
	case LogLin:
		if y1 <= 0 || y2 <= 0 {
			return 0, fmt.Errorf("%w: log-y with y1=%.17e, y2=%.17e", ErrBadIntegrationInput, y1, y2)
		}

		return y1 * math.Exp((x-x1)/(x2-x1)*math.Log(y2/y1)), nil
	case LinLog:
		if x1 <= 0 || x2 <= 0 {
			return 0, fmt.Errorf("%w: log-x with x1=%.17e, x2=%.17e", ErrBadIntegrationInput, x1, x2)
		}

		return y1 + (y2-y1)*math.Log(x/x1)/math.Log(x2/x1), nil
	case LogLog:
		if x1 <= 0 || x2 <= 0 || y1 <= 0 || y2 <= 0 {
			return 0, fmt.Errorf("%w: log-x,log-y with x1=%.17e, y1=%.17e, x2=%.17e, y2=%.17e",
				ErrBadIntegrationInput, x1, y1, x2, y2)
		}

		return y1 * math.Exp(math.Log(y2/y1)*math.Log(x/x1)/math.Log(x2/x1)), nil
	case Flat:
		return y1, nil
	case Other:
		return 0, fmt.Errorf("%w: no evaluator in scope", ErrOtherInterpolation)
	}

	return 0, fmt.Errorf("%w: unknown law %d", ErrUnsupportedInterpolation, law)
}

// Evaluate returns the curve's value at x. Outside the sampled domain
// the curve is zero (matching the integrators' clamping and Union's
// fill semantics). An exact sample hit returns the stored y; within a
// segment the law's formula applies, with the Other law delegated to
// the attached evaluator capability.
func (ps *PointSet) Evaluate(x float64) (float64, error) {
	if ps.err != nil {
		return 0, ps.err
	}
	n := len(ps.pts)
	if n == 0 {
		return 0, nil
	}
	if x < ps.pts[0].X || x > ps.pts[n-1].X {
		return 0, nil
	}
	i := sort.Search(n, func(k int) bool { return ps.pts[k].X >= x })
	if i < n && ps.pts[i].X == x {
		return ps.pts[i].Y, nil
	}
	if ps.law == Other {
		if ps.eval == nil {
			return 0, fmt.Errorf("%w: tag %q has no evaluator", ErrOtherInterpolation, ps.tag)
		}

		return ps.eval(x)
	}

	return Interpolate(ps.law, x, ps.pts[i-1], ps.pts[i])
}

// segmentIndex returns the index i of the first sample with X >= x,
// i.e. the right endpoint of the segment containing x (n when x is
// beyond the last sample).
func (ps *PointSet) segmentIndex(x float64) int {
	return sort.Search(len(ps.pts), func(k int) bool { return ps.pts[k].X >= x })
}
