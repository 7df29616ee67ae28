// Package piecewise is a numerical engine for tabulated (x,y) curves —
// build piecewise functions under a family of interpolation laws, then
// integrate, reconcile, collapse and resample them.
//
// 🚀 What is piecewise?
//
//	A library for the curve algebra that sits beneath tabulated-data
//	toolkits (cross sections, spectra, response functions):
//		• PointSets: ordered (x,y) samples + an interpolation law
//		• Laws: lin-lin, log-lin, lin-log, log-log, flat, and custom
//		• Integration: closed-form per segment, arbitrary bounds,
//		  x- and √x-weighted variants, running integrals
//		• Adaptive quadrature: curve × caller function, Gauss–Legendre
//		• Domain algebra: union, mutualization, restriction
//		• Group collapse: per-group integrals of 1–3 curve products
//		• Resampling: thin, thicken, trim, clip
//
// ✨ Why choose piecewise?
//
//   - Exact where it can be – closed-form segment integrals per law,
//     with cancellation-safe series fallbacks near degenerate ratios
//   - Predictable failure – every fallible call returns an explicit
//     error; a failed PointSet short-circuits all later operations
//   - Pure Go numerics – float64 throughout, no cgo
//   - Small, composable API – curves in, curves or numbers out
//
// Everything is organized under four subpackages:
//
//	curve/     — the PointSet entity, interpolation laws, evaluation,
//	             domain reconciliation and pointwise arithmetic
//	integrate/ — segment, whole-domain, weighted and adaptive integrators
//	group/     — multigroup collapse across group boundaries
//	resample/  — accuracy-driven point insertion and removal
//
// Quick sketch:
//
//	ps, _ := curve.FromSlices(curve.LinLin, xs, ys)
//	sum, _ := integrate.Between(ps, 2, 8)
//
// Dive into each package's doc.go for the full contracts.
//
//	go get github.com/katalvlaran/piecewise
package piecewise
