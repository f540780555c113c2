package pwl

import "github.com/cwbudde/algo-pwl/pwl/segment"

// Segment and Segments are re-exported from pwl/segment so that callers of
// this package's single entry point, Approximate, never need to import the
// internal segment package themselves -- the same "small package, aliased
// at the public boundary" shape as biquad.Coefficients being the only type
// dsp/filter/design's callers ever see.
type (
	Segment  = segment.Segment
	Segments = segment.Segments
)
