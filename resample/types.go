// Package resample defines the resampling options and sentinel errors.
package resample

import "errors"

// ErrBadInput indicates invalid resampling parameters.
var ErrBadInput = errors.New("resample: bad input")

// ThickenOptions bounds the per-segment subdivision of Thicken.
//
//   - SectionSubdivideMax — most points inserted between one original
//     consecutive pair; must be >= 1.
//   - DxMax — largest allowed x step after thickening; 0 disables the
//     absolute bound, negative values are rejected.
//   - FxMax — largest allowed x ratio (x[i+1]/x[i]) after thickening,
//     as a factor >= 1; exactly 1 disables the ratio bound.
type ThickenOptions struct {
	SectionSubdivideMax int
	DxMax               float64
	FxMax               float64
}

// DefaultThickenOptions caps each segment at 100 inserted points with
// both step bounds disabled; callers enable the bound they care about.
func DefaultThickenOptions() ThickenOptions {
	return ThickenOptions{SectionSubdivideMax: 100, DxMax: 0, FxMax: 1}
}
