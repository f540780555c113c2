package pwl

import (
	"github.com/cwbudde/algo-pwl/pwl/segment"
	"github.com/cwbudde/algo-pwl/pwl/trait"
)

// domainSplit is DomainSplitter (spec.md 4.4): it recurses on each side of
// a break-point strictly inside [lower, upper], undoes whatever sign fold
// each half's own IsNegative flag required, and stitches the two halves
// back together with the left half's terminal sentinel dropped.
//
// Eligibility mirrors spec.md 4.4's list (Sigmoid, Tanh, SoftSign, Exp,
// Power) implicitly: those are exactly the kinds whose BreakPoint()
// returns ok=true, so the caller's "lower < bp < upper" check is the only
// gate needed.
func domainSplit(traits trait.FnTraits, lower, upper, epsBudget float64) (segment.Segments, float64, error) {
	bp, _ := traits.BreakPoint()

	left, epsLeft, err := segmentSearch(traits, lower, bp, traits.IsNegative(bp), epsBudget)
	if err != nil {
		return nil, 0, err
	}
	if traits.IsNegative(bp) {
		left.NegateInPlace()
	}

	right, epsRight, err := segmentSearch(traits, bp, upper, traits.IsNegative(upper), epsBudget)
	if err != nil {
		return nil, 0, err
	}
	if traits.IsNegative(upper) {
		right.NegateInPlace()
	}

	combined := make(segment.Segments, 0, len(left)-1+len(right))
	combined = append(combined, left[:len(left)-1]...)
	combined = append(combined, right...)

	epsSplit := (epsLeft + epsRight) / 2

	return combined, epsSplit, nil
}

// splitEligible reports whether traits has a break-point strictly inside
// [lower, upper], the condition spec.md 4.4 requires before DomainSplitter
// is entered instead of a single segmentSearch call over the whole domain.
func splitEligible(traits trait.FnTraits, lower, upper float64) (breakPoint float64, ok bool) {
	bp, hasBreak := traits.BreakPoint()
	if !hasBreak {
		return 0, false
	}
	if lower < bp && bp < upper {
		return bp, true
	}
	return 0, false
}
