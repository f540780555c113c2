package pwl

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-pwl/pwl/pwlerr"
	"github.com/cwbudde/algo-pwl/pwl/segment"
)

// Approximate is the Facade's single entry point (spec.md 4.7, 6): given
// an activation, a domain [lower, upper], and a maximum absolute error
// budget, it returns the minimum-length ordered segment sequence that
// fits the activation within that budget, or a typed error.
//
// Approximate never returns a partial segment array alongside an error --
// every error kind in the taxonomy (pwlerr) means the caller gets nil,
// err and nothing else.
func Approximate(a Activation, lower, upper, epsBudget float64) (segment.Segments, error) {
	if err := validateBounds(lower, upper); err != nil {
		return nil, err
	}

	traits := a.traits()
	if err := traits.ValidateDomain(lower, upper); err != nil {
		return nil, fmt.Errorf("pwl: %w: %v", pwlerr.ErrInvalidDomain, err)
	}

	if a.Kind() == Power {
		return approximatePower(a, lower, upper, epsBudget)
	}

	return approximateGeneric(a, lower, upper, epsBudget)
}

// approximateGeneric runs DomainSplitter when the activation has a
// break-point strictly inside the requested domain, and a single
// segmentSearch call otherwise (spec.md 4.4, 4.5).
func approximateGeneric(a Activation, lower, upper, epsBudget float64) (segment.Segments, error) {
	traits := a.traits()

	if _, ok := splitEligible(traits, lower, upper); ok {
		segs, _, err := domainSplit(traits, lower, upper, epsBudget)
		if err != nil {
			return nil, err
		}
		return segs, nil
	}

	negative := traits.IsNegative(upper)
	segs, _, err := segmentSearch(traits, lower, upper, negative, epsBudget)
	if err != nil {
		return nil, err
	}
	if negative {
		segs.NegateInPlace()
	}

	return segs, nil
}

// validateBounds implements the Facade's input validation (spec.md 4.7,
// 7): L must not exceed U, and neither bound may be non-finite.
func validateBounds(lower, upper float64) error {
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return fmt.Errorf("pwl: %w: bounds must not be NaN", pwlerr.ErrInvalidDomain)
	}
	if math.IsInf(lower, 0) || math.IsInf(upper, 0) {
		return fmt.Errorf("pwl: %w: bounds must be finite, got [%v, %v]", pwlerr.ErrInvalidDomain, lower, upper)
	}
	if lower > upper {
		return fmt.Errorf("pwl: %w: lower bound %v exceeds upper bound %v", pwlerr.ErrInvalidDomain, lower, upper)
	}
	return nil
}
