// Package resample controls the point density of a curve without
// changing the function it represents (within a stated accuracy).
//
// 🚀 Operations:
//   - Thicken — insert interior points until every segment honors an
//     absolute step bound (DxMax) and a relative step bound (FxMax),
//     capped per segment by SectionSubdivideMax.
//   - Thin    — produce a reduced clone whose interpolated values stay
//     within a relative accuracy of every original sample.
//   - Trim    — drop redundant leading and trailing zero runs, keeping
//     one bounding zero on each side of the data.
//   - Clip    — clamp every y into [yMin, yMax] in place.
//
// ✨ Thin and Thicken are inverses in spirit, not in samples: thinning
// a thickened curve does not restore the original grid, it restores an
// equivalent curve with the fewest samples the accuracy allows.
//
// ⚙️ Usage:
//
//	err := resample.Thicken(spectrum, resample.DefaultThickenOptions())
//	sparse, err := resample.Thin(spectrum, 1e-3)
package resample
