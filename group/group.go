package group

import (
	"fmt"

	"github.com/katalvlaran/piecewise/curve"
)

// Denominators of the composite product rule per arity: the 1-, 2- and
// 3-function trapezoid-like forms carry fixed factors 2, 6 and 12.
const (
	denomOne   = 2
	denomTwo   = 6
	denomThree = 12
)

// mutualEps is the tight fractional tolerance used to reconcile the
// already-restricted sources before the shared-grid union: 4 ULP of 1,
// since boundaries may differ only by rounding at this point.
const mutualEps = 4 * 0x1p-52

// One collapses a single curve onto the group grid: each group holds
// the integral of f over the group (under the trapezoid-like rule with
// Flat special-casing), optionally normalized.
func One(f *curve.PointSet, bounds Boundaries, opt Options) ([]float64, error) {
	ngs, err := prepare(bounds, opt)
	if err != nil {
		return nil, err
	}
	ff, err := restrictToBoundaries(f, bounds)
	if err != nil {
		return nil, err
	}
	if ff.Len() == 0 {
		return make([]float64, ngs), nil
	}

	return collapse(bounds, opt, denomOne, ff)
}

// Two collapses the product f·g.
func Two(f, g *curve.PointSet, bounds Boundaries, opt Options) ([]float64, error) {
	ngs, err := prepare(bounds, opt)
	if err != nil {
		return nil, err
	}
	ff, err := restrictToBoundaries(f, bounds)
	if err != nil {
		return nil, err
	}
	gg, err := restrictToBoundaries(g, bounds)
	if err != nil {
		return nil, err
	}
	if ff.Len() == 0 || gg.Len() == 0 {
		return make([]float64, ngs), nil
	}

	if err = curve.Mutualize(ff, gg, tightMutualize()); err != nil {
		return nil, err
	}
	fU, err := curve.Union(ff, gg, curve.UnionOptions{Fill: true})
	if err != nil {
		return nil, err
	}
	gU, err := curve.Union(gg, fU, curve.UnionOptions{Fill: true})
	if err != nil {
		return nil, err
	}

	return collapse(bounds, opt, denomTwo, fU, gU)
}

// Three collapses the product f·g·h.
func Three(f, g, h *curve.PointSet, bounds Boundaries, opt Options) ([]float64, error) {
	ngs, err := prepare(bounds, opt)
	if err != nil {
		return nil, err
	}
	ff, err := restrictToBoundaries(f, bounds)
	if err != nil {
		return nil, err
	}
	gg, err := restrictToBoundaries(g, bounds)
	if err != nil {
		return nil, err
	}
	hh, err := restrictToBoundaries(h, bounds)
	if err != nil {
		return nil, err
	}
	if ff.Len() == 0 || gg.Len() == 0 || hh.Len() == 0 {
		return make([]float64, ngs), nil
	}

	for _, pair := range [][2]*curve.PointSet{{ff, gg}, {ff, hh}, {gg, hh}} {
		if err = curve.Mutualize(pair[0], pair[1], tightMutualize()); err != nil {
			return nil, err
		}
	}
	fg, err := curve.Union(ff, gg, curve.UnionOptions{Fill: true})
	if err != nil {
		return nil, err
	}
	hU, err := curve.Union(hh, fg, curve.UnionOptions{Fill: true})
	if err != nil {
		return nil, err
	}
	fU, err := curve.Union(fg, hU, curve.UnionOptions{Fill: true})
	if err != nil {
		return nil, err
	}
	gU, err := curve.Union(gg, hU, curve.UnionOptions{Fill: true})
	if err != nil {
		return nil, err
	}

	return collapse(bounds, opt, denomThree, fU, gU, hU)
}

// prepare validates boundaries and normalization up front so failures
// never produce a partial result.
func prepare(bounds Boundaries, opt Options) (int, error) {
	if _, err := NewBoundaries(bounds); err != nil {
		return 0, err
	}
	ngs := bounds.Groups()
	if opt.Norm == NormCustom {
		if opt.NormArray == nil {
			return 0, fmt.Errorf("%w: norm array required but nil", ErrBadNorm)
		}
		if len(opt.NormArray) != ngs {
			return 0, fmt.Errorf("%w: norm length %d but %d groups", ErrBadNorm, len(opt.NormArray), ngs)
		}
	}

	return ngs, nil
}

// restrictToBoundaries clips the source to the boundary range and
// inserts every interior boundary into its grid, so group edges always
// coincide with samples of the shared grid.
func restrictToBoundaries(ps *curve.PointSet, bounds Boundaries) (*curve.PointSet, error) {
	if ps == nil {
		return nil, fmt.Errorf("%w: nil collapse source", curve.ErrBadSelf)
	}
	if err := ps.Coalesce(); err != nil {
		return nil, err
	}
	if ps.Law() == curve.Other {
		return nil, fmt.Errorf("%w: group collapse", curve.ErrOtherInterpolation)
	}
	out, err := ps.Restricted(bounds[0], bounds[len(bounds)-1])
	if err != nil {
		return nil, err
	}
	if out.Len() == 0 {
		return out, nil
	}
	lo, _ := out.DomainMin()
	hi, _ := out.DomainMax()
	for _, b := range bounds[1 : len(bounds)-1] {
		if b <= lo || b >= hi {
			continue
		}
		y, err := out.Evaluate(b)
		if err != nil {
			return nil, err
		}
		if err = out.SetValueAtX(b, y); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func tightMutualize() curve.MutualizeOptions {
	return curve.MutualizeOptions{LowerEps: mutualEps, UpperEps: mutualEps}
}

// collapse runs the shared composite rule over one, two or three
// sources already living on the same grid. For each segment the product
// of endpoint sums plus the endpoint products (doubled for three
// sources) is accumulated, with a Flat source contributing its left
// value in place of its right.
func collapse(bounds Boundaries, opt Options, denom float64, srcs ...*curve.PointSet) ([]float64, error) {
	ngs := bounds.Groups()
	res := make([]float64, ngs)

	n := srcs[0].Len()
	x1 := srcs[0].At(0).X
	y1 := make([]float64, len(srcs))
	y2 := make([]float64, len(srcs))
	y2p := make([]float64, len(srcs))
	for k, s := range srcs {
		y1[k] = s.At(0).Y
	}

	xg1 := bounds[0]
	i := 1
	for igs := 0; igs < ngs; igs++ {
		xg2 := bounds[igs+1]
		sum := 0.0
		if xg2 > x1 {
			for ; i < n; i++ {
				x2 := srcs[0].At(i).X
				if x2 > xg2 {
					break
				}
				for k, s := range srcs {
					y2[k] = s.At(i).Y
					y2p[k] = y2[k]
					if s.Law() == curve.Flat {
						y2p[k] = y1[k]
					}
				}
				sum += segmentProduct(y1, y2p) * (x2 - x1)
				x1 = x2
				copy(y1, y2)
			}
		}
		if sum != 0 {
			switch opt.Norm {
			case NormDx:
				sum /= xg2 - xg1
			case NormCustom:
				if opt.NormArray[igs] == 0 {
					return nil, fmt.Errorf("%w: norm at group %d is 0", ErrDivByZero, igs)
				}
				sum /= opt.NormArray[igs]
			}
		}
		res[igs] = sum / denom
		xg1 = xg2
	}

	return res, nil
}

// segmentProduct is the per-segment numerator of the composite rule:
//
//	one source:    y1 + y2
//	two sources:   (f1+f2)(g1+g2) + f1·g1 + f2·g2
//	three sources: (f1+f2)(g1+g2)(h1+h2) + 2·f1·g1·h1 + 2·f2·g2·h2
func segmentProduct(y1, y2 []float64) float64 {
	switch len(y1) {
	case 1:
		return y1[0] + y2[0]
	case 2:
		return (y1[0]+y2[0])*(y1[1]+y2[1]) + y1[0]*y1[1] + y2[0]*y2[1]
	default:
		return (y1[0]+y2[0])*(y1[1]+y2[1])*(y1[2]+y2[2]) +
			2*y1[0]*y1[1]*y1[2] + 2*y2[0]*y2[1]*y2[2]
	}
}
