package integrate

import "errors"

var (
	// ErrBadNorm indicates a normalization target of zero or a missing
	// or mismatched per-group norm.
	ErrBadNorm = errors.New("integrate: bad normalization")
	// ErrQuadrature indicates adaptive quadrature exhausted its
	// recursion budget before meeting the tolerance.
	ErrQuadrature = errors.New("integrate: adaptive quadrature did not converge")
)
