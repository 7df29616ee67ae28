package resample

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/piecewise/curve"
)

// Thin returns a reduced copy of the curve: the fewest samples (always
// including both endpoints) whose law-interpolated values stay within
// the relative accuracy of every original sample. The input is not
// modified.
//
// Refinement keeps the worst-fitting point first: the sample with the
// largest deviation from the straight interpolation between the current
// kept endpoints is promoted, then both halves are refined recursively.
func Thin(ps *curve.PointSet, accuracy float64) (*curve.PointSet, error) {
	if ps == nil {
		return nil, fmt.Errorf("%w: nil point set", curve.ErrBadSelf)
	}
	if accuracy <= 0 {
		return nil, fmt.Errorf("%w: thin accuracy %g must be > 0", ErrBadInput, accuracy)
	}
	if err := ps.Coalesce(); err != nil {
		return nil, err
	}
	if ps.Law() == curve.Other {
		return nil, fmt.Errorf("%w: thin", curve.ErrOtherInterpolation)
	}
	if ps.Len() < 3 {
		return ps.Clone(), nil
	}

	pts := ps.Points()
	keep := make([]bool, len(pts))
	keep[0], keep[len(pts)-1] = true, true
	if err := thinRange(ps.Law(), pts, keep, 0, len(pts)-1, accuracy); err != nil {
		return nil, err
	}

	out := curve.New(ps.Law(), curve.WithAccuracy(ps.Accuracy()), curve.WithCapacity(len(pts)))
	for i, p := range pts {
		if !keep[i] {
			continue
		}
		if err := out.SetValueAtX(p.X, p.Y); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// thinRange marks the points that must survive inside (i1, i2), given
// that pts[i1] and pts[i2] are already kept.
func thinRange(law curve.Law, pts []curve.Point, keep []bool, i1, i2 int, accuracy float64) error {
	if i2-i1 < 2 {
		return nil
	}
	worst, worstDev := -1, 0.0
	for k := i1 + 1; k < i2; k++ {
		approx, err := curve.Interpolate(law, pts[k].X, pts[i1], pts[i2])
		if err != nil {
			return err
		}
		if scalar.EqualWithinAbsOrRel(approx, pts[k].Y, accuracy, accuracy) {
			continue
		}
		dev := deviation(approx, pts[k].Y)
		if dev > worstDev {
			worst, worstDev = k, dev
		}
	}
	if worst < 0 {
		return nil
	}
	keep[worst] = true
	if err := thinRange(law, pts, keep, i1, worst, accuracy); err != nil {
		return err
	}

	return thinRange(law, pts, keep, worst, i2, accuracy)
}

// deviation ranks how badly approx misses y; only the ordering matters,
// acceptance is decided by the tolerance test above.
func deviation(approx, y float64) float64 {
	d := approx - y
	if d < 0 {
		d = -d
	}
	if ay := abs(y); ay > 1 {
		d /= ay
	}

	return d
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
