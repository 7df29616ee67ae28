package resample

import (
	"fmt"

	"github.com/katalvlaran/piecewise/curve"
)

// Trim drops redundant zero-valued samples at the very start and end of
// the curve, keeping one bounding zero on each side of the nonzero
// data. An all-zero curve keeps only its two endpoint samples. The
// curve is modified in place.
func Trim(ps *curve.PointSet) error {
	if ps == nil {
		return fmt.Errorf("%w: nil point set", curve.ErrBadSelf)
	}
	if err := ps.Coalesce(); err != nil {
		return err
	}
	n := ps.Len()
	if n < 3 {
		return nil
	}

	i := 0
	for i < n && ps.At(i).Y == 0 {
		i++
	}
	if i == n {
		// All zero: the endpoints alone describe the curve.
		first := ps.At(0)
		if err := ps.Truncate(n-1, n); err != nil {
			return err
		}

		return ps.SetValueAtX(first.X, first.Y)
	}
	j := n - 1
	for ps.At(j).Y == 0 {
		j--
	}
	lo, hi := i, j
	if lo > 0 {
		lo--
	}
	if hi < n-1 {
		hi++
	}

	return ps.Truncate(lo, hi+1)
}

// Clip clamps every y into [yMin, yMax] in place.
func Clip(ps *curve.PointSet, yMin, yMax float64) error {
	if ps == nil {
		return fmt.Errorf("%w: nil point set", curve.ErrBadSelf)
	}
	if yMin > yMax {
		return fmt.Errorf("%w: clip window [%g, %g] reversed", ErrBadInput, yMin, yMax)
	}
	if err := ps.Err(); err != nil {
		return err
	}
	for i := 0; i < ps.Len(); i++ {
		y := ps.At(i).Y
		switch {
		case y < yMin:
			y = yMin
		case y > yMax:
			y = yMax
		default:
			continue
		}
		if err := ps.SetYAtIndex(i, y); err != nil {
			return err
		}
	}

	return nil
}
