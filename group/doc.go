// Package group collapses one, two or three curves onto a coarse
// multigroup grid: for every pair of adjacent group boundaries it
// integrates the product of the sources with a composite trapezoid-like
// rule, producing one value per group.
//
// 🚀 Pipeline:
//
//	Each source is restricted to the boundary range (with boundary
//	points inserted into its grid), empty coverage short-circuits to an
//	all-zero result, then the sources are domain-mutualized pairwise
//	and union-filled onto one shared grid. The product rule
//	special-cases Flat inputs independently: a flat segment contributes
//	its left value as the right endpoint of the product formula.
//
// ✨ Normalization:
//   - NormNone   — raw group integrals
//   - NormDx     — divide each group by its width (group-average value)
//   - NormCustom — divide by a caller-supplied per-group array; a zero
//     entry is a fatal divide-by-zero for that group, and the array
//     length must equal the group count
//
// A group with zero source coverage yields zero. Failure anywhere
// discards the whole result — no partially filled group slice is ever
// returned.
//
// ⚙️ Usage:
//
//	bounds, _ := group.NewBoundaries([]float64{1, 10, 100})
//	flux, _ := group.One(spectrum, bounds, group.DefaultOptions())
package group
