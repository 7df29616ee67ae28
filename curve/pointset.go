package curve

import (
	"fmt"
	"math"
	"sort"
)

// New creates an empty PointSet under the given law.
func New(law Law, opts ...Option) *PointSet {
	ps := &PointSet{law: law, accuracy: DefaultAccuracy}
	for _, opt := range opts {
		opt(ps)
	}

	return ps
}

// FromSlices creates a PointSet from parallel x and y slices. The x
// values must be strictly increasing and finite.
func FromSlices(law Law, xs, ys []float64, opts ...Option) (*PointSet, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: len(xs)=%d != len(ys)=%d", ErrBadInput, len(xs), len(ys))
	}
	ps := New(law, append(opts, WithCapacity(len(xs)))...)
	for i := range xs {
		if i > 0 && xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("%w: x values not strictly increasing at index %d", ErrBadInput, i)
		}
		if err := ps.SetValueAtX(xs[i], ys[i]); err != nil {
			return nil, err
		}
	}

	return ps, nil
}

// FromPairs creates a PointSet from a flat [x0,y0,x1,y1,...] slice.
func FromPairs(law Law, pairs []float64, opts ...Option) (*PointSet, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("%w: odd pair-slice length %d", ErrBadInput, len(pairs))
	}
	xs := make([]float64, 0, len(pairs)/2)
	ys := make([]float64, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		xs = append(xs, pairs[i])
		ys = append(ys, pairs[i+1])
	}

	return FromSlices(law, xs, ys, opts...)
}

// Clone deep-copies the point buffer; the Other evaluator capability is
// shared, everything else is independent.
func (ps *PointSet) Clone() *PointSet {
	dup := &PointSet{
		pts:      make([]Point, len(ps.pts), cap(ps.pts)),
		law:      ps.law,
		tag:      ps.tag,
		eval:     ps.eval,
		accuracy: ps.accuracy,
		err:      ps.err,
	}
	copy(dup.pts, ps.pts)

	return dup
}

// Len returns the logical number of samples.
func (ps *PointSet) Len() int { return len(ps.pts) }

// Law returns the interpolation law.
func (ps *PointSet) Law() Law { return ps.law }

// Tag returns the opaque identifying tag of an Other-law set.
func (ps *PointSet) Tag() string { return ps.tag }

// Accuracy returns the target relative accuracy.
func (ps *PointSet) Accuracy() float64 { return ps.accuracy }

// SetAccuracy overrides the target relative accuracy; non-positive
// values are rejected.
func (ps *PointSet) SetAccuracy(accuracy float64) error {
	if ps.err != nil {
		return ps.err
	}
	if accuracy <= 0 || math.IsNaN(accuracy) {
		return ps.fail(fmt.Errorf("%w: accuracy %g must be > 0", ErrBadInput, accuracy))
	}
	ps.accuracy = accuracy

	return nil
}

// Err returns the sticky error state, nil while the set is usable.
func (ps *PointSet) Err() error { return ps.err }

// At returns the i-th sample. The index must be in [0, Len()); this is
// the hot-loop accessor, so it panics on misuse like a slice would.
func (ps *PointSet) At(i int) Point { return ps.pts[i] }

// Points returns a copy of the samples.
func (ps *PointSet) Points() []Point {
	out := make([]Point, len(ps.pts))
	copy(out, ps.pts)

	return out
}

// DomainMin returns the smallest sampled x.
func (ps *PointSet) DomainMin() (float64, error) {
	if ps.err != nil {
		return 0, ps.err
	}
	if len(ps.pts) == 0 {
		return 0, fmt.Errorf("%w: empty point set has no domain", ErrBadSelf)
	}

	return ps.pts[0].X, nil
}

// DomainMax returns the largest sampled x.
func (ps *PointSet) DomainMax() (float64, error) {
	if ps.err != nil {
		return 0, ps.err
	}
	if len(ps.pts) == 0 {
		return 0, fmt.Errorf("%w: empty point set has no domain", ErrBadSelf)
	}

	return ps.pts[len(ps.pts)-1].X, nil
}

// SetValueAtX inserts (x,y) keeping x strictly increasing; an existing
// sample at exactly x is replaced. Insertion uses the overflow region,
// so appends at the end are amortized O(1).
func (ps *PointSet) SetValueAtX(x, y float64) error {
	if ps.err != nil {
		return ps.err
	}
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) {
		return ps.fail(fmt.Errorf("%w: non-finite sample (%g, %g)", ErrBadInput, x, y))
	}
	i := sort.Search(len(ps.pts), func(k int) bool { return ps.pts[k].X >= x })
	if i < len(ps.pts) && ps.pts[i].X == x {
		ps.pts[i].Y = y

		return nil
	}
	ps.pts = append(ps.pts, Point{})
	copy(ps.pts[i+1:], ps.pts[i:])
	ps.pts[i] = Point{X: x, Y: y}

	return nil
}

// SetYAtIndex replaces the y value of the i-th sample.
func (ps *PointSet) SetYAtIndex(i int, y float64) error {
	if ps.err != nil {
		return ps.err
	}
	if i < 0 || i >= len(ps.pts) {
		return fmt.Errorf("%w: index %d out of range [0,%d)", ErrBadInput, i, len(ps.pts))
	}
	if math.IsNaN(y) {
		return ps.fail(fmt.Errorf("%w: NaN y at index %d", ErrBadInput, i))
	}
	ps.pts[i].Y = y

	return nil
}

// Truncate keeps the half-open index range [i, j) and discards the
// rest; the overflow region is preserved.
func (ps *PointSet) Truncate(i, j int) error {
	if ps.err != nil {
		return ps.err
	}
	if i < 0 || j > len(ps.pts) || i > j {
		return fmt.Errorf("%w: truncate range [%d,%d) with length %d", ErrBadInput, i, j, len(ps.pts))
	}
	copy(ps.pts, ps.pts[i:j])
	ps.pts = ps.pts[:j-i]

	return nil
}

// Slice returns a new PointSet holding the half-open index range [i, j).
func (ps *PointSet) Slice(i, j int) (*PointSet, error) {
	if ps.err != nil {
		return nil, ps.err
	}
	if i < 0 || j > len(ps.pts) || i >= j {
		return nil, fmt.Errorf("%w: slice range [%d,%d) with length %d", ErrBadInput, i, j, len(ps.pts))
	}
	out := New(ps.law, WithCapacity(j-i), WithAccuracy(ps.accuracy), WithOtherEvaluator(ps.tag, ps.eval))
	out.pts = out.pts[:j-i]
	copy(out.pts, ps.pts[i:j])

	return out, nil
}

// Clear drops all samples but keeps law, accuracy and capacity.
func (ps *PointSet) Clear() {
	ps.pts = ps.pts[:0]
	ps.err = nil
}

// Scale multiplies every y by f.
func (ps *PointSet) Scale(f float64) error {
	if ps.err != nil {
		return ps.err
	}
	for i := range ps.pts {
		ps.pts[i].Y *= f
	}

	return nil
}

// Coalesce is the internal-consistency gate every algorithm runs before
// trusting the sample list: it verifies x is strictly increasing and
// finite. Sorted insertion maintains the invariant, so a failure here
// means the buffer was corrupted and the set is marked failed.
func (ps *PointSet) Coalesce() error {
	if ps.err != nil {
		return ps.err
	}
	for i, p := range ps.pts {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) {
			return ps.fail(fmt.Errorf("%w: non-finite sample at index %d", ErrBadInput, i))
		}
		if i > 0 && p.X <= ps.pts[i-1].X {
			return ps.fail(fmt.Errorf("%w: x not strictly increasing at index %d", ErrBadInput, i))
		}
	}

	return nil
}

// fail records the first error as the sticky state and returns it;
// later failures do not overwrite the original cause.
func (ps *PointSet) fail(err error) error {
	if ps.err == nil {
		ps.err = err
	}

	return err
}

// setPoints replaces the buffer wholesale; used by package-internal
// algorithms that build a result grid in one pass.
func (ps *PointSet) setPoints(pts []Point) {
	ps.pts = pts
}
