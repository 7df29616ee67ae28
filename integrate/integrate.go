package integrate

import (
	"fmt"

	"github.com/katalvlaran/piecewise/curve"
)

// Between integrates the curve over [domainMin, domainMax].
//
// Bounds are order-independent — swapped bounds negate the result.
// Bounds beyond the sampled domain clamp to it (the outside portion
// contributes zero). Boundary values strictly inside a segment come
// from the law's interpolation formula. A set with fewer than two
// samples integrates to zero; a set carrying a sticky error returns
// that error unchanged; the Other law always fails.
func Between(ps *curve.PointSet, domainMin, domainMax float64) (float64, error) {
	if ps == nil {
		return 0, fmt.Errorf("%w: nil point set", curve.ErrBadSelf)
	}
	if err := ps.Err(); err != nil {
		return 0, err
	}
	if ps.Law() == curve.Other {
		return 0, fmt.Errorf("%w: integration", curve.ErrOtherInterpolation)
	}
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

	value := 0.0
	p2 := ps.At(i)
	if i > 0 && p2.X > domainMin {
		p1 := ps.At(i - 1)
		y, err := curve.Interpolate(ps.Law(), domainMin, p1, p2)
		if err != nil {
			return 0, err
		}
		if p2.X > domainMax {
			// Both bounds inside one segment.
			yMax, err := curve.Interpolate(ps.Law(), domainMax, p1, p2)
			if err != nil {
				return 0, err
			}
			v, err := Segment(ps.Law(), domainMin, y, domainMax, yMax)
			if err != nil {
				return 0, err
			}

			return sign * v, nil
		}
		v, err := Segment(ps.Law(), domainMin, y, p2.X, p2.Y)
		if err != nil {
			return 0, err
		}
		value += v
	}
	i++
	for ; i < n; i++ {
		p1 := p2
		p2 = ps.At(i)
		if p2.X > domainMax {
			y, err := curve.Interpolate(ps.Law(), domainMax, p1, p2)
			if err != nil {
				return 0, err
			}
			v, err := Segment(ps.Law(), p1.X, p1.Y, domainMax, y)
			if err != nil {
				return 0, err
			}
			value += v

			break
		}
		v, err := Segment(ps.Law(), p1.X, p1.Y, p2.X, p2.Y)
		if err != nil {
			return 0, err
		}
		value += v
	}

	return sign * value, nil
}

// Domain integrates the curve over its full sampled domain.
func Domain(ps *curve.PointSet) (float64, error) {
	if ps == nil {
		return 0, fmt.Errorf("%w: nil point set", curve.ErrBadSelf)
	}
	if err := ps.Err(); err != nil {
		return 0, err
	}
	if ps.Len() == 0 {
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

	return Between(ps, domainMin, domainMax)
}

// Normalize divides every y by the full-domain integral so the curve
// integrates to one. A zero-integral curve cannot be normalized and
// fails with ErrBadNorm.
func Normalize(ps *curve.PointSet) error {
	if ps == nil {
		return fmt.Errorf("%w: nil point set", curve.ErrBadSelf)
	}
	if err := ps.Err(); err != nil {
		return err
	}
	sum, err := Domain(ps)
	if err != nil {
		return err
	}
	if sum == 0 {
		return fmt.Errorf("%w: cannot normalize curve with 0 norm", ErrBadNorm)
	}

	return ps.Scale(1 / sum)
}

// Running returns the cumulative integral at each sample: entry 0 is 0
// and entry i adds the segment [x(i−1), x(i)]. The sequence serves as
// an unnormalized CDF.
func Running(ps *curve.PointSet) ([]float64, error) {
	if ps == nil {
		return nil, fmt.Errorf("%w: nil point set", curve.ErrBadSelf)
	}
	if err := ps.Coalesce(); err != nil {
		return nil, err
	}
	n := ps.Len()
	if n == 0 {
		return []float64{}, nil
	}

	out := make([]float64, n)
	for i := 1; i < n; i++ {
		p1, p2 := ps.At(i-1), ps.At(i)
		v, err := Segment(ps.Law(), p1.X, p1.Y, p2.X, p2.Y)
		if err != nil {
			return nil, err
		}
		out[i] = out[i-1] + v
	}

	return out, nil
}
