// Package group defines group boundaries, normalization modes and the
// collapse options.
package group

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrBadBoundaries indicates fewer than two edges or a non-ascending
	// edge sequence.
	ErrBadBoundaries = errors.New("group: boundaries must be >= 2 ascending edges")
	// ErrBadNorm indicates a missing or length-mismatched per-group norm.
	ErrBadNorm = errors.New("group: bad norm")
	// ErrDivByZero indicates a zero entry in the per-group norm.
	ErrDivByZero = errors.New("group: divide by zero")
)

// NormType selects how each group's integral is normalized.
type NormType int

const (
	// NormNone keeps the raw group integral.
	NormNone NormType = iota
	// NormDx divides each group by its width, yielding the group mean.
	NormDx
	// NormCustom divides each group by the matching entry of
	// Options.NormArray.
	NormCustom
)

// Boundaries is an ascending sequence of group edges; the number of
// groups is Groups() = len−1.
type Boundaries []float64

// NewBoundaries validates and adopts the edge sequence.
func NewBoundaries(edges []float64) (Boundaries, error) {
	if len(edges) < 2 {
		return nil, fmt.Errorf("%w: got %d edges", ErrBadBoundaries, len(edges))
	}
	for i, e := range edges {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return nil, fmt.Errorf("%w: non-finite edge at index %d", ErrBadBoundaries, i)
		}
		if i > 0 && e <= edges[i-1] {
			return nil, fmt.Errorf("%w: edge %d not above its predecessor", ErrBadBoundaries, i)
		}
	}

	return Boundaries(edges), nil
}

// Groups returns the number of groups the edges delimit.
func (b Boundaries) Groups() int { return len(b) - 1 }

// Options configures a collapse.
//
//   - Norm      — normalization mode, see NormType.
//   - NormArray — per-group divisors, required (and length-checked)
//     for NormCustom, ignored otherwise.
type Options struct {
	Norm      NormType
	NormArray []float64
}

// DefaultOptions returns raw, unnormalized group integrals.
func DefaultOptions() Options { return Options{Norm: NormNone} }
