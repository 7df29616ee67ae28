// Package integrate computes integrals of curve.PointSets: closed-form
// per-segment antiderivatives for each interpolation law, whole-domain
// and arbitrary-bound integration, x- and √x-weighted variants, running
// integrals, normalization, and adaptive Gauss–Legendre quadrature of a
// curve against a caller-supplied function.
//
// ✨ Key behaviors:
//   - bounds are order-independent: integrate(a,b) == −integrate(b,a)
//   - bounds outside the sampled domain clamp to it; the portion
//     outside contributes zero
//   - boundary values strictly inside a segment come from the law's
//     interpolation formula, so partial segments are exact
//   - near-degenerate ratios (y2/y1 or x2/x1 ≈ 1) switch to series
//     expansions instead of cancelling through log
//   - the Other law always fails — integration cannot see through an
//     opaque evaluator capability
//
// ⚙️ Usage:
//
//	ps, _ := curve.FromPairs(curve.LinLin, []float64{2, 2, 4, 4, 6, 2, 8, 6})
//	sum, _ := integrate.Between(ps, 3, 7) // 12.5, exactly
//
// Errors follow the curve package's sentinels plus ErrBadNorm (zero or
// mismatched normalization) and ErrQuadrature (adaptive refinement ran
// out of recursion budget).
package integrate
