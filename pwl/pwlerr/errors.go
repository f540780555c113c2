// Package pwlerr holds the sentinel error taxonomy shared by the solver
// packages (pivot, errormetric) and the pwl facade, so a caller can use
// errors.Is against the same value regardless of which layer raised it --
// the same shape as internal/polyroot.ErrDegeneratePolynomial bubbling
// through dsp/filter/design/pass without being re-wrapped into a new type
// at each layer.
package pwlerr

import "errors"

var (
	// ErrInvalidDomain is returned when the requested [L, U] is malformed:
	// L > U, a non-finite bound, or a bound outside a kind's restricted
	// domain (e.g. Log at/below zero, fractional Power crossing zero).
	ErrInvalidDomain = errors.New("pwl: invalid domain")

	// ErrDomainError is returned when evaluating f or f' produced a
	// non-finite value during the search.
	ErrDomainError = errors.New("pwl: domain error")

	// ErrUnsupportedType is returned when a Power exponent constant has a
	// type outside the accepted signed/unsigned/float set, or is not a
	// single scalar.
	ErrUnsupportedType = errors.New("pwl: unsupported exponent type")

	// ErrNotConverged is returned when PivotSearch hits its iteration cap
	// without meeting the spread-completion test, or SegmentSearch hits
	// max_segments without meeting the error budget.
	ErrNotConverged = errors.New("pwl: not converged")
)
