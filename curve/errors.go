package curve

import "errors"

var (
	// ErrBadSelf indicates an operation on a nil or unusable PointSet.
	ErrBadSelf = errors.New("curve: operation on invalid point set")
	// ErrBadIntegrationInput indicates a non-positive x or y where the
	// active law's log axis requires positivity.
	ErrBadIntegrationInput = errors.New("curve: non-positive value on a log axis")
	// ErrOtherInterpolation indicates a generic algorithm was asked to
	// handle the Other law without an evaluator capability.
	ErrOtherInterpolation = errors.New("curve: other interpolation not supported")
	// ErrUnsupportedInterpolation indicates the requested algorithm does
	// not support the PointSet's law.
	ErrUnsupportedInterpolation = errors.New("curve: unsupported interpolation")
	// ErrBadInput indicates an invalid argument (NaN coordinate, reversed
	// index range, negative tolerance, ...).
	ErrBadInput = errors.New("curve: bad input")
)
