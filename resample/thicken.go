package resample

import (
	"fmt"
	"math"

	"github.com/katalvlaran/piecewise/curve"
)

// Thicken inserts interior points into every segment until the x step
// satisfies both bounds of opt, capped at SectionSubdivideMax inserted
// points per original segment. Inserted values follow the curve's
// interpolation law, so the represented function is unchanged. Spacing
// is geometric when the ratio bound demands the finer grid and the
// segment lies at positive x, linear otherwise.
func Thicken(ps *curve.PointSet, opt ThickenOptions) error {
	if ps == nil {
		return fmt.Errorf("%w: nil point set", curve.ErrBadSelf)
	}
	if opt.SectionSubdivideMax < 1 || opt.DxMax < 0 || opt.FxMax < 1 {
		return fmt.Errorf("%w: thicken options %+v", ErrBadInput, opt)
	}
	if err := ps.Coalesce(); err != nil {
		return err
	}
	if ps.Law() == curve.Other {
		return fmt.Errorf("%w: thicken", curve.ErrOtherInterpolation)
	}

	// Snapshot the original segments; insertion below reshuffles the
	// live buffer.
	orig := ps.Points()
	for i := 0; i+1 < len(orig); i++ {
		p1, p2 := orig[i], orig[i+1]
		mLin, mGeo := 1, 1
		if opt.DxMax > 0 {
			mLin = int(math.Ceil((p2.X - p1.X) / opt.DxMax))
		}
		if opt.FxMax > 1 && p1.X > 0 {
			mGeo = int(math.Ceil(math.Log(p2.X/p1.X) / math.Log(opt.FxMax)))
		}
		m := mLin
		geometric := false
		if mGeo > mLin {
			m = mGeo
			geometric = true
		}
		if m-1 > opt.SectionSubdivideMax {
			m = opt.SectionSubdivideMax + 1
		}
		ratio := 0.0
		if geometric {
			ratio = math.Pow(p2.X/p1.X, 1/float64(m))
		}
		x := p1.X
		for k := 1; k < m; k++ {
			if geometric {
				x *= ratio
			} else {
				x = p1.X + float64(k)*(p2.X-p1.X)/float64(m)
			}
			if x <= p1.X || x >= p2.X {
				continue
			}
			y, err := curve.Interpolate(ps.Law(), x, p1, p2)
			if err != nil {
				return err
			}
			if err = ps.SetValueAtX(x, y); err != nil {
				return err
			}
		}
	}

	return nil
}
