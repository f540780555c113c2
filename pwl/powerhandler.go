package pwl

import (
	"math"

	"github.com/cwbudde/algo-pwl/pwl/segment"
)

// int32Min and int32Max are the identity-PWL sentinels from spec.md 4.6
// and 6: the degenerate two-segment PWL implementing y = x, clipped to
// the accelerator's 32-bit integer range rather than the caller's
// requested [L, U].
const (
	int32Min = math.MinInt32
	int32Max = math.MaxInt32
)

// identitySegments returns the fixed two-segment PWL for y = x: a slope-1
// segment from INT32_MIN and a terminal sentinel at INT32_MAX.
func identitySegments() segment.Segments {
	return segment.Segments{
		{Alpha: int32Min, M: 1, B: 0},
		{Alpha: int32Max, M: 0, B: 0},
	}
}

// approximatePower is PowerHandler (spec.md 4.6): it special-cases the
// identity shortcut and otherwise derives a clipped domain from p before
// handing off to the generic pipeline.
func approximatePower(a Activation, lower, upper, epsBudget float64) (segment.Segments, error) {
	p, _ := a.PowerExponent()
	if powerIsIdentity(p) {
		return identitySegments(), nil
	}

	return approximateGeneric(a, lower, upper, epsBudget)
}
