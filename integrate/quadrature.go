package integrate

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/katalvlaran/piecewise/curve"
)

// Func is a caller-supplied scalar integrand; errors propagate out of
// the quadrature unchanged.
type Func func(x float64) (float64, error)

// QuadratureOptions configures WithFunction.
//
//   - Degree         — polynomial degree the fixed Gauss–Legendre rule
//     must integrate exactly (node count is Degree/2 + 1).
//   - RecursionLimit — bisection depth budget per curve segment;
//     exhausting it without meeting Tolerance is ErrQuadrature.
//   - Tolerance      — relative acceptance threshold between a segment
//     estimate and the sum of its two halves.
type QuadratureOptions struct {
	Degree         int
	RecursionLimit int
	Tolerance      float64
}

// DefaultQuadratureOptions matches the engine's usual callers: degree
// 6, depth 16, tolerance 1e-8.
func DefaultQuadratureOptions() QuadratureOptions {
	return QuadratureOptions{Degree: 6, RecursionLimit: 16, Tolerance: 1e-8}
}

// WithFunction integrates, over [domainMin, domainMax], the product of
// the curve — read as a local-linear weight between its samples — and
// the caller-supplied f. Each curve segment restricted to the bounds is
// refined by recursive bisection of fixed Gauss–Legendre estimates
// until the relative tolerance holds or the recursion budget runs out.
// It returns the integral and the number of f evaluations.
//
// Swapped bounds negate the result; equal bounds return exactly zero.
func WithFunction(ps *curve.PointSet, f Func, domainMin, domainMax float64,
	opt QuadratureOptions) (float64, int64, error) {

	if ps == nil {
		return 0, 0, fmt.Errorf("%w: nil point set", curve.ErrBadSelf)
	}
	if f == nil {
		return 0, 0, fmt.Errorf("%w: nil integrand", curve.ErrBadInput)
	}
	if opt.Degree < 1 || opt.RecursionLimit < 0 || opt.Tolerance <= 0 {
		return 0, 0, fmt.Errorf("%w: quadrature options %+v", curve.ErrBadInput, opt)
	}
	if err := ps.Coalesce(); err != nil {
		return 0, 0, err
	}

	if domainMin == domainMax {
		return 0, 0, nil
	}
	n := ps.Len()
	if n < 2 {
		return 0, 0, nil
	}
	sign := 1.0
	if domainMin > domainMax {
		domainMin, domainMax = domainMax, domainMin
		sign = -1
	}
	if domainMin >= ps.At(n-1).X || domainMax <= ps.At(0).X {
		return 0, 0, nil
	}
	// The region outside the sampled domain contributes zero.
	if domainMin < ps.At(0).X {
		domainMin = ps.At(0).X
	}
	if domainMax > ps.At(n-1).X {
		domainMax = ps.At(n-1).X
	}

	// Reference nodes on [-1,1]; each subinterval maps them affinely.
	nodes := opt.Degree/2 + 1
	var leg quad.Legendre
	refX := make([]float64, nodes)
	refW := make([]float64, nodes)
	leg.FixedLocations(refX, refW, -1, 1)

	q := quadrature{f: f, refX: refX, refW: refW, tol: opt.Tolerance}

	i1 := 0
	for ; i1 < n-1; i1++ {
		if ps.At(i1+1).X > domainMin {
			break
		}
	}
	i2 := n - 1
	for ; i2 > i1; i2-- {
		if ps.At(i2-1).X < domainMax {
			break
		}
	}

	integral := 0.0
	xa := domainMin
	for ; i1 < i2; i1++ {
		q.p1 = ps.At(i1)
		q.p2 = ps.At(i1 + 1)
		xb := q.p2.X
		if xb > domainMax {
			xb = domainMax
		}
		v, err := q.refine(xa, xb, opt.RecursionLimit)
		if err != nil {
			return 0, q.evaluations, err
		}
		integral += v
		xa = xb
	}

	return sign * integral, q.evaluations, nil
}

// quadrature carries the per-call state of WithFunction: the integrand,
// the reference Gauss–Legendre rule, the current weighting segment and
// the running evaluation count.
type quadrature struct {
	f           Func
	refX, refW  []float64
	tol         float64
	p1, p2      curve.Point
	evaluations int64
}

// refine accepts the interval when the two-half estimate agrees with
// the whole-interval estimate within the relative tolerance, otherwise
// bisects until the depth budget is spent.
func (q *quadrature) refine(a, b float64, depth int) (float64, error) {
	whole, err := q.fixed(a, b)
	if err != nil {
		return 0, err
	}

	return q.refineFrom(a, b, whole, depth)
}

func (q *quadrature) refineFrom(a, b, whole float64, depth int) (float64, error) {
	mid := 0.5 * (a + b)
	left, err := q.fixed(a, mid)
	if err != nil {
		return 0, err
	}
	right, err := q.fixed(mid, b)
	if err != nil {
		return 0, err
	}
	halves := left + right
	if scalar.EqualWithinAbsOrRel(halves, whole, q.tol, q.tol) {
		return halves, nil
	}
	if depth <= 0 {
		return 0, fmt.Errorf("%w: interval [%g, %g]", ErrQuadrature, a, b)
	}
	lv, err := q.refineFrom(a, mid, left, depth-1)
	if err != nil {
		return 0, err
	}
	rv, err := q.refineFrom(mid, b, right, depth-1)
	if err != nil {
		return 0, err
	}

	return lv + rv, nil
}

// fixed applies the reference Gauss–Legendre rule mapped onto [a,b] to
// the weighted integrand.
func (q *quadrature) fixed(a, b float64) (float64, error) {
	c := 0.5 * (a + b)
	h := 0.5 * (b - a)
	sum := 0.0
	for i, r := range q.refX {
		x := c + h*r
		y, err := q.f(x)
		if err != nil {
			return 0, err
		}
		q.evaluations++
		// Local-linear weighting between the segment endpoints.
		w := q.p1.Y + (q.p2.Y-q.p1.Y)*(x-q.p1.X)/(q.p2.X-q.p1.X)
		sum += h * q.refW[i] * w * y
	}

	return sum, nil
}
