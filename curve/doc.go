// Package curve defines the PointSet — an ordered collection of (x,y)
// samples plus an interpolation law — and the operations that keep two
// curves algebraically compatible.
//
// 🚀 What is a PointSet?
//
//	The engine's core entity: a strictly x-increasing sample buffer, a
//	law describing how y varies between consecutive samples, a target
//	accuracy for adaptive operations, and a sticky error state. It is
//	the representation used for cross sections, spectra and any other
//	tabulated function this toolkit manipulates.
//
// ✨ Key features:
//   - six interpolation laws: LinLin, LogLin, LinLog, LogLog, Flat,
//     and Other (a caller-supplied evaluator capability)
//   - sorted insertion with an amortized overflow region — appends do
//     not relocate the buffer on every call
//   - sticky errors: the first failure is recorded on the set and every
//     later operation returns that same error without re-diagnosis
//   - domain reconciliation: Union, Mutualize, Restricted and the
//     DomainsMutual predicate make mixed-grid curve algebra well defined
//   - pointwise arithmetic: Neg, Exp, Scale, Mul and index Slice
//
// ⚙️ Usage:
//
//	ps, err := curve.FromSlices(curve.LinLin,
//	    []float64{2, 4, 6, 8},
//	    []float64{2, 4, 2, 6})
//	if err != nil { ... }
//	y, err := ps.Evaluate(5) // 3.0
//
// Positivity rules: LogLin requires y > 0, LinLog requires x > 0, LogLog
// requires both. Violations surface as ErrBadIntegrationInput — never as
// a silent NaN.
//
// PointSets are exclusively owned by their call path; there is no
// internal locking and concurrent mutation is undefined.
package curve
