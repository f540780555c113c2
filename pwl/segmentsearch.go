package pwl

import (
	"fmt"

	"github.com/cwbudde/algo-pwl/pwl/errormetric"
	"github.com/cwbudde/algo-pwl/pwl/pivot"
	"github.com/cwbudde/algo-pwl/pwl/pwlerr"
	"github.com/cwbudde/algo-pwl/pwl/segment"
	"github.com/cwbudde/algo-pwl/pwl/trait"
)

// segmentSearch is SegmentSearch (spec.md 4.5): it grows the segment
// count N from 1 until ErrorMetric reports the sampled error is within
// epsBudget, or traits.MaxSegments() is reached. Ties are broken in favor
// of the smaller N -- the loop exits the instant the budget is met, it
// never keeps searching for a smaller error at the same N.
//
// negative selects the sign-folded sub-problem PivotSearch should solve;
// the segments this returns approximate sign*f(x), not f(x) directly --
// the caller (approximateGeneric or domainSplit) is responsible for
// undoing that fold before the result crosses the Facade boundary.
func segmentSearch(traits trait.FnTraits, lower, upper float64, negative bool, epsBudget float64) (segment.Segments, float64, error) {
	sign := 1.0
	if negative {
		sign = -1.0
	}

	maxN := traits.MaxSegments()

	n := 1
	segs, _, err := pivot.Search(traits, n, lower, upper, negative, epsBudget)
	if err != nil {
		return nil, 0, err
	}
	eps := errormetric.MaxAbsDeviation(traits, segs, lower, upper, sign)

	for n < maxN && eps > epsBudget {
		n++
		segs, _, err = pivot.Search(traits, n, lower, upper, negative, epsBudget)
		if err != nil {
			return nil, 0, err
		}
		eps = errormetric.MaxAbsDeviation(traits, segs, lower, upper, sign)
	}

	if n >= maxN && eps > epsBudget {
		return nil, 0, fmt.Errorf("pwl: %w: reached max_segments=%d with eps=%v > budget=%v", pwlerr.ErrNotConverged, maxN, eps, epsBudget)
	}

	return segs, eps, nil
}
