package curve

import (
	"fmt"
	"math"
)

// Neg negates every y in place.
func (ps *PointSet) Neg() error {
	return ps.Scale(-1)
}

// Exp replaces every y with exp(f·y) in place. The result of a segment
// under LinLin is then only a chord of the true exponential; callers
// needing a denser representation thicken first.
func (ps *PointSet) Exp(f float64) error {
	if ps.err != nil {
		return ps.err
	}
	if math.IsNaN(f) {
		return ps.fail(fmt.Errorf("%w: NaN exponent factor", ErrBadInput))
	}
	for i := range ps.pts {
		ps.pts[i].Y = math.Exp(f * ps.pts[i].Y)
	}

	return nil
}

// Mul returns the pointwise product a·b on the union of the two x-grids
// restricted to the overlap of the two domains (the product is zero —
// and omitted — outside it). Both inputs must be LinLin or Flat; the
// result is LinLin.
func Mul(a, b *PointSet, opts ...Option) (*PointSet, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: nil product operand", ErrBadSelf)
	}
	if err := a.Coalesce(); err != nil {
		return nil, err
	}
	if err := b.Coalesce(); err != nil {
		return nil, err
	}
	for _, ps := range []*PointSet{a, b} {
		if ps.law != LinLin && ps.law != Flat {
			return nil, fmt.Errorf("%w: %s operand in product", ErrUnsupportedInterpolation, ps.law)
		}
	}

	acc := math.Min(a.accuracy, b.accuracy)
	out := New(LinLin, append([]Option{WithAccuracy(acc), WithCapacity(len(a.pts) + len(b.pts))}, opts...)...)
	if len(a.pts) == 0 || len(b.pts) == 0 {
		return out, nil
	}
	lo := math.Max(a.pts[0].X, b.pts[0].X)
	hi := math.Min(a.pts[len(a.pts)-1].X, b.pts[len(b.pts)-1].X)
	if lo > hi {
		return out, nil
	}

	pts := out.pts[:0]
	i, j := 0, 0
	for i < len(a.pts) || j < len(b.pts) {
		var x float64
		switch {
		case j == len(b.pts) || (i < len(a.pts) && a.pts[i].X <= b.pts[j].X):
			x = a.pts[i].X
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
		ya, err := a.Evaluate(x)
		if err != nil {
			return nil, err
		}
		yb, err := b.Evaluate(x)
		if err != nil {
			return nil, err
		}
		pts = append(pts, Point{X: x, Y: ya * yb})
	}
	out.setPoints(pts)

	return out, nil
}
