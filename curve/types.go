// Package curve declares the Point, Law and PointSet types plus the
// construction options shared by every curve operation.
package curve

// Point is one (x,y) sample of a piecewise function.
type Point struct {
	X float64
	Y float64
}

// EvalFunc evaluates a caller-defined interpolation at x. It backs the
// Other law; generic algorithms that cannot consult it must fail with
// ErrOtherInterpolation instead of guessing.
type EvalFunc func(x float64) (float64, error)

// Law selects how y varies between two consecutive samples.
//
//   - LinLin — linear in x, linear in y (trapezoid segments)
//   - LogLin — linear in x, logarithmic in y (requires y > 0)
//   - LinLog — logarithmic in x, linear in y (requires x > 0)
//   - LogLog — power law (requires x > 0 and y > 0)
//   - Flat   — step function, each segment holds its left value
//   - Other  — delegated to a caller-supplied EvalFunc capability
type Law int

const (
	// LinLin interpolates linearly in both axes.
	LinLin Law = iota
	// LogLin interpolates y logarithmically over a linear x axis.
	LogLin
	// LinLog interpolates y linearly over a logarithmic x axis.
	LinLog
	// LogLog interpolates as a power law, logarithmic in both axes.
	LogLog
	// Flat holds each segment at its left endpoint's y.
	Flat
	// Other delegates evaluation to an EvalFunc; integration and
	// grouping reject it.
	Other
)

// String returns the conventional short name of the law.
func (l Law) String() string {
	switch l {
	case LinLin:
		return "lin-lin"
	case LogLin:
		return "log-lin"
	case LinLog:
		return "lin-log"
	case LogLog:
		return "log-log"
	case Flat:
		return "flat"
	case Other:
		return "other"
	}

	return "unknown"
}

// DefaultAccuracy is the target relative accuracy a PointSet starts
// with; adaptive operations (thinning, quadrature tolerances) use it
// when the caller does not override.
const DefaultAccuracy = 1e-3

// PointSet is the engine's core entity: ordered (x,y) samples with
// strictly increasing x, an interpolation law, a target accuracy and a
// sticky error state.
//
// The backing buffer keeps slack capacity (the overflow region) so that
// sorted insertion amortizes; logical length is always Len().
type PointSet struct {
	pts      []Point
	law      Law
	tag      string   // identifying tag for the Other law
	eval     EvalFunc // evaluator capability for the Other law
	accuracy float64
	err      error // sticky: first failure, returned by all later calls
}

// Option configures a PointSet at construction time.
type Option func(ps *PointSet)

// WithAccuracy sets the target relative accuracy used by adaptive
// operations. Non-positive values are ignored.
func WithAccuracy(accuracy float64) Option {
	return func(ps *PointSet) {
		if accuracy > 0 {
			ps.accuracy = accuracy
		}
	}
}

// WithCapacity pre-allocates room for n points (the overflow region).
func WithCapacity(n int) Option {
	return func(ps *PointSet) {
		if n > cap(ps.pts) {
			grown := make([]Point, len(ps.pts), n)
			copy(grown, ps.pts)
			ps.pts = grown
		}
	}
}

// WithOtherEvaluator attaches the evaluation capability for the Other
// law: an opaque identifying tag plus the function that computes y(x).
func WithOtherEvaluator(tag string, fn EvalFunc) Option {
	return func(ps *PointSet) {
		ps.tag = tag
		ps.eval = fn
	}
}

// UnionOptions controls Union's two independent behavior bits.
//
//   - Fill — samples at grid points the first source does not own take
//     its interpolated value instead of zero.
//   - Trim — restrict the result to the intersection of the two domains
//     instead of their union.
type UnionOptions struct {
	Fill bool
	Trim bool
}

// MutualizeOptions controls domain mutualization.
//
//   - LowerEps / UpperEps — fractional tolerances; boundary x-values
//     closer than eps·scale snap together instead of creating spurious
//     tiny segments.
//   - PositiveXOnly — discard the non-positive x region of both curves
//     before reconciling (required before any log-x operation).
type MutualizeOptions struct {
	LowerEps      float64
	UpperEps      float64
	PositiveXOnly bool
}

// DefaultMutualizeOptions returns the conventional 1e-6 fractional
// tolerances with the whole x axis kept.
func DefaultMutualizeOptions() MutualizeOptions {
	return MutualizeOptions{LowerEps: 1e-6, UpperEps: 1e-6}
}
