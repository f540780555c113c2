// Package errormetric samples a candidate PWL against its analytic
// function and reports the worst-case absolute deviation over a
// sub-domain. SegmentSearch is its only caller: it is the authoritative
// signal deciding whether a candidate segment count N meets the error
// budget, following the donor corpus's style of small, single-purpose
// numeric helpers (dsp/core's plain-loop buffer routines) rather than a
// batched/SIMD path -- a single call samples at most 501 points.
package errormetric

import (
	"math"

	"github.com/cwbudde/algo-pwl/pwl/segment"
	"github.com/cwbudde/algo-pwl/pwl/trait"
)

// Samples is the fixed sample count from spec.md section 6: the lower
// endpoint plus 500 uniformly spaced points, the last of which is the upper
// endpoint.
const Samples = 500

// MaxAbsDeviation samples [lower, upper] with Samples+1 points (the lower
// endpoint plus Samples uniformly spaced points through upper) and returns
// the maximum |f(x) - sign*pwl(x)| over that sample set. sign folds in the
// same negation PivotSearch applied to the sub-problem being measured, so
// the comparison is against the un-negated analytic function.
func MaxAbsDeviation(traits trait.FnTraits, segs segment.Segments, lower, upper float64, sign float64) float64 {
	if len(segs) == 0 || upper <= lower {
		return 0
	}

	maxDev := 0.0
	step := (upper - lower) / float64(Samples)

	for i := 0; i <= Samples; i++ {
		x := lower + step*float64(i)
		if i == Samples {
			x = upper
		}

		want := traits.Value(x)
		got := sign * segs.Evaluate(x)

		dev := math.Abs(want - got)
		if dev > maxDev {
			maxDev = dev
		}
	}

	return maxDev
}
