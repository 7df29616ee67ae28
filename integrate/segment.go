package integrate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/piecewise/curve"
)

// Ratio thresholds below which the closed forms lose digits to
// cancellation and the series expansions take over.
const (
	nearOneLog    = 1e-4 // for log(y2/y1) and log(x2/x1) factors
	nearOneLogLog = 1e-3 // for the log-log power-series fallback
)

// Segment integrates one segment [x1,x2] under the given law, weight 1.
//
// Closed forms per law:
//
//	LinLin  0.5·(y1+y2)·(x2−x1)
//	LogLin  (y2−y1)·(x2−x1)/ln(y2/y1)
//	LinLog  (y1−y2)·(x2−x1)/ln(x2/x1) + x2·y2 − x1·y1
//	LogLog  y1·x1·(r^(a+1)−1)/(a+1),  a = ln(y2/y1)/ln(x2/x1), r = x2/x1
//	Flat    y1·(x2−x1)
//
// When the relevant ratio is within 1e-4 of 1 (1e-3 for LogLog) a
// fourth-order series in r−1 (bounded-order for LogLog) replaces the
// log to avoid catastrophic cancellation. Other always fails.
func Segment(law curve.Law, x1, y1, x2, y2 float64) (float64, error) {
	switch law {
	case curve.LinLin:
		return 0.5 * (y1 + y2) * (x2 - x1), nil

	case curve.LogLin:
		if y1 <= 0 || y2 <= 0 {
			return 0, fmt.Errorf("%w: log-y integration with y1=%.17e, y2=%.17e",
				curve.ErrBadIntegrationInput, y1, y2)
		}
		r := y2 / y1
		if math.Abs(r-1) < nearOneLog {
			r -= 1

			return y1 * (x2 - x1) / (1 + r*(-0.5+r*(1./3.+r*(-0.25+0.2*r)))), nil
		}

		return (y2 - y1) * (x2 - x1) / math.Log(r), nil

	case curve.LinLog:
		if x1 <= 0 || x2 <= 0 {
			return 0, fmt.Errorf("%w: log-x integration with x1=%.17e, x2=%.17e",
				curve.ErrBadIntegrationInput, x1, x2)
		}
		r := x2 / x1
		if math.Abs(r-1) < nearOneLog {
			r -= 1
			r = r * (-0.5 + r*(1./3.+r*(-0.25+0.2*r)))

			return x1*(y2-y1)*r/(1+r) + y2*(x2-x1), nil
		}

		return (y1-y2)*(x2-x1)/math.Log(r) + x2*y2 - x1*y1, nil

	case curve.LogLog:
		if x1 <= 0 || x2 <= 0 || y1 <= 0 || y2 <= 0 {
			return 0, fmt.Errorf("%w: log-x,log-y integration with x1=%.17e, y1=%.17e, x2=%.17e, y2=%.17e",
				curve.ErrBadIntegrationInput, x1, y1, x2, y2)
		}

		return logLogSegment(x1, y1, x2, y2), nil

	case curve.Flat:
		return y1 * (x2 - x1), nil
	}

	return 0, fmt.Errorf("%w: integration over %s", curve.ErrOtherInterpolation, law)
}

// logLogSegment evaluates the power-law antiderivative, switching each
// log to its series near ratio 1 and, when x2/x1 itself is nearly 1,
// the whole integral to a bounded-order expansion in (x2−x1)/x1 whose
// order is clamped to [6,12] from the local exponent a.
func logLogSegment(x1, y1, x2, y2 float64) float64 {
	var lx, ly float64

	r := y2 / y1
	if math.Abs(r-1) < nearOneLog {
		ly = (y2 - y1) / y1
		ly *= 1 + ly*(-0.5+ly*(1./3.-0.25*ly))
	} else {
		ly = math.Log(r)
	}
	r = x2 / x1
	if math.Abs(r-1) < nearOneLog {
		lx = (x2 - x1) / x1
		lx *= 1 + lx*(-0.5+lx*(1./3.-0.25*lx))
	} else {
		lx = math.Log(r)
	}
	a := ly / lx

	if math.Abs(r-1) < nearOneLogLog {
		z := (x2 - x1) / x1
		n := int(a)
		if n > 10 {
			n = 12
		}
		if n < 4 {
			n = 6
		}
		aa := a - float64(n) + 1
		f := float64(n) + 1
		s := 0.0
		for i := 0; i < n; i++ {
			s = (1 + s) * aa * z / f
			aa++
			f--
		}

		return y1 * (x2 - x1) * (1 + s)
	}

	return y1 * x1 * (math.Pow(r, a+1) - 1) / (a + 1)
}
