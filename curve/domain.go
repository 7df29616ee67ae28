package curve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Union builds a new PointSet on the set union of the two input x-grids
// (the domains need not overlap). The result carries the first source's
// law and accuracy. Two independent behavior bits apply, see
// UnionOptions: Fill interpolates the first source at grid points it
// does not own (zero otherwise, and always zero outside its domain);
// Trim restricts the result to the intersection of the two domains.
func Union(a, b *PointSet, opt UnionOptions) (*PointSet, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: nil union operand", ErrBadSelf)
	}
	if err := a.Coalesce(); err != nil {
		return nil, err
	}
	if err := b.Coalesce(); err != nil {
		return nil, err
	}

	out := New(a.law, WithAccuracy(a.accuracy), WithOtherEvaluator(a.tag, a.eval),
		WithCapacity(len(a.pts)+len(b.pts)))

	lo, hi := math.Inf(-1), math.Inf(1)
	if opt.Trim {
		if len(a.pts) == 0 || len(b.pts) == 0 {
			return out, nil
		}
		lo = math.Max(a.pts[0].X, b.pts[0].X)
		hi = math.Min(a.pts[len(a.pts)-1].X, b.pts[len(b.pts)-1].X)
		if lo > hi {
			return out, nil
		}
	}

	pts := out.pts[:0]
	i, j := 0, 0
	for i < len(a.pts) || j < len(b.pts) {
		var x float64
		fromA := false
		switch {
		case j == len(b.pts) || (i < len(a.pts) && a.pts[i].X <= b.pts[j].X):
			x = a.pts[i].X
			fromA = true
			if j < len(b.pts) && b.pts[j].X == x {
				j++
			}
			i++
		default:
			x = b.pts[j].X
			j++
		}
		if x < lo || x > hi {
			continue
		}
		var y float64
		switch {
		case fromA:
			y = a.pts[i-1].Y
		case opt.Fill:
			var err error
			if y, err = a.Evaluate(x); err != nil {
				return nil, err
			}
		}
		pts = append(pts, Point{X: x, Y: y})
	}
	out.setPoints(pts)

	return out, nil
}

// Mutualize forces the two PointSets onto mutually consistent domains:
// boundary x-values within the fractional eps tolerances snap together;
// larger gaps are bridged with zero-valued boundary points (plus an
// eps-width shoulder next to the original endpoint, so a nonzero edge
// value is not smeared across the whole extension). With PositiveXOnly
// the non-positive x region of both curves is discarded first.
//
// Postcondition: DomainsMutual(a, b) reports true.
func Mutualize(a, b *PointSet, opt MutualizeOptions) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: nil mutualize operand", ErrBadSelf)
	}
	if err := a.Coalesce(); err != nil {
		return err
	}
	if err := b.Coalesce(); err != nil {
		return err
	}
	if opt.LowerEps < 0 || opt.UpperEps < 0 {
		return fmt.Errorf("%w: negative mutualize tolerance (%g, %g)", ErrBadInput, opt.LowerEps, opt.UpperEps)
	}
	if opt.PositiveXOnly {
		if err := dropNonPositiveX(a); err != nil {
			return err
		}
		if err := dropNonPositiveX(b); err != nil {
			return err
		}
	}
	if len(a.pts) == 0 || len(b.pts) == 0 {
		return fmt.Errorf("%w: cannot mutualize an empty point set", ErrBadInput)
	}

	lo := math.Min(a.pts[0].X, b.pts[0].X)
	hi := math.Max(a.pts[len(a.pts)-1].X, b.pts[len(b.pts)-1].X)
	for _, ps := range []*PointSet{a, b} {
		if err := extendLower(ps, lo, opt.LowerEps); err != nil {
			return err
		}
		if err := extendUpper(ps, hi, opt.UpperEps); err != nil {
			return err
		}
	}

	return nil
}

// DomainsMutual reports whether the two PointSets cover exactly the
// same x-domain. It is the idempotent postcondition check of Mutualize.
func DomainsMutual(a, b *PointSet) (bool, error) {
	if a == nil || b == nil {
		return false, fmt.Errorf("%w: nil operand", ErrBadSelf)
	}
	if err := a.Coalesce(); err != nil {
		return false, err
	}
	if err := b.Coalesce(); err != nil {
		return false, err
	}
	if len(a.pts) == 0 || len(b.pts) == 0 {
		return false, fmt.Errorf("%w: empty point set has no domain", ErrBadSelf)
	}

	return a.pts[0].X == b.pts[0].X &&
		a.pts[len(a.pts)-1].X == b.pts[len(b.pts)-1].X, nil
}

// Restricted returns the curve clipped to [min, max]: samples inside
// the window plus law-interpolated boundary points where min or max
// fall strictly inside a segment. Portions outside the sampled domain
// are dropped; a window with no overlap yields an empty set.
func (ps *PointSet) Restricted(min, max float64) (*PointSet, error) {
	if ps.err != nil {
		return nil, ps.err
	}
	if min > max {
		return nil, fmt.Errorf("%w: restricted window [%g, %g] reversed", ErrBadInput, min, max)
	}
	out := New(ps.law, WithAccuracy(ps.accuracy), WithOtherEvaluator(ps.tag, ps.eval))
	n := len(ps.pts)
	if n == 0 {
		return out, nil
	}
	lo := math.Max(min, ps.pts[0].X)
	hi := math.Min(max, ps.pts[n-1].X)
	if lo > hi {
		return out, nil
	}

	pts := make([]Point, 0, n)
	i := ps.segmentIndex(lo)
	if ps.pts[i].X > lo {
		y, err := ps.Evaluate(lo)
		if err != nil {
			return nil, err
		}
		pts = append(pts, Point{X: lo, Y: y})
	}
	for ; i < n && ps.pts[i].X <= hi; i++ {
		pts = append(pts, ps.pts[i])
	}
	if pts[len(pts)-1].X < hi {
		y, err := ps.Evaluate(hi)
		if err != nil {
			return nil, err
		}
		pts = append(pts, Point{X: hi, Y: y})
	}
	out.setPoints(pts)

	return out, nil
}

// dropNonPositiveX removes every sample with x <= 0.
func dropNonPositiveX(ps *PointSet) error {
	i := 0
	for i < len(ps.pts) && ps.pts[i].X <= 0 {
		i++
	}

	return ps.Truncate(i, len(ps.pts))
}

// extendLower reconciles the curve's lower boundary with lo: snap when
// the gap is within eps (fractional or absolute), otherwise bridge with
// zero-valued points.
func extendLower(ps *PointSet, lo, eps float64) error {
	x0 := ps.pts[0].X
	if x0 == lo {
		return nil
	}
	if scalar.EqualWithinAbsOrRel(x0, lo, eps, eps) {
		ps.pts[0].X = lo

		return nil
	}
	scale := math.Max(math.Abs(x0), math.Abs(lo))
	if shoulder := x0 - eps*scale; eps > 0 && shoulder > lo && ps.pts[0].Y != 0 {
		if err := ps.SetValueAtX(shoulder, 0); err != nil {
			return err
		}
	}

	return ps.SetValueAtX(lo, 0)
}

// extendUpper mirrors extendLower at the top of the domain.
func extendUpper(ps *PointSet, hi, eps float64) error {
	xn := ps.pts[len(ps.pts)-1].X
	if xn == hi {
		return nil
	}
	if scalar.EqualWithinAbsOrRel(xn, hi, eps, eps) {
		ps.pts[len(ps.pts)-1].X = hi

		return nil
	}
	scale := math.Max(math.Abs(xn), math.Abs(hi))
	if shoulder := xn + eps*scale; eps > 0 && shoulder < hi && ps.pts[len(ps.pts)-1].Y != 0 {
		if err := ps.SetValueAtX(shoulder, 0); err != nil {
			return err
		}
	}

	return ps.SetValueAtX(hi, 0)
}
