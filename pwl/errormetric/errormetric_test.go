package errormetric

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-pwl/internal/testutil"
	"github.com/cwbudde/algo-pwl/pwl/segment"
	"github.com/cwbudde/algo-pwl/pwl/trait"
)

func TestMaxAbsDeviationExactLine(t *testing.T) {
	// Identity is exactly linear, so a single matching segment has zero
	// deviation everywhere it's evaluated.
	segs := segment.Segments{
		{Alpha: -10, M: 1, B: 0},
		{Alpha: 10, M: 0, B: 0},
	}

	dev := MaxAbsDeviation(trait.Identity{}, segs, -10, 10, 1)
	if dev != 0 {
		t.Fatalf("MaxAbsDeviation = %v, want 0", dev)
	}
}

func TestMaxAbsDeviationDetectsMismatch(t *testing.T) {
	segs := segment.Segments{
		{Alpha: -10, M: 1, B: 1}, // off by a constant 1
		{Alpha: 10, M: 0, B: 0},
	}

	dev := MaxAbsDeviation(trait.Identity{}, segs, -10, 10, 1)
	if dev < 0.99 || dev > 1.01 {
		t.Fatalf("MaxAbsDeviation = %v, want ~1", dev)
	}
}

func TestMaxAbsDeviationHonorsSign(t *testing.T) {
	// sign=-1 folds a negated sub-problem's segments back to the
	// un-negated analytic function for comparison.
	segs := segment.Segments{
		{Alpha: -10, M: -1, B: 0},
		{Alpha: 10, M: 0, B: 0},
	}

	dev := MaxAbsDeviation(trait.Identity{}, segs, -10, 10, -1)
	if dev != 0 {
		t.Fatalf("MaxAbsDeviation = %v, want 0", dev)
	}
}

func TestMaxAbsDeviationEmptyRange(t *testing.T) {
	if dev := MaxAbsDeviation(trait.Identity{}, nil, 0, 0, 1); dev != 0 {
		t.Fatalf("MaxAbsDeviation on empty range = %v, want 0", dev)
	}
}

func TestMaxAbsDeviationMatchesIndependentSampling(t *testing.T) {
	// Cross-checks MaxAbsDeviation's own sampling loop against the same
	// grid sampled independently and reduced with testutil.MaxAbsDiff,
	// rather than trusting MaxAbsDeviation's internal max-tracking alone.
	segs := segment.Segments{
		{Alpha: -1, M: 2, B: 0.3},
		{Alpha: 1, M: 0, B: 0},
	}

	xs := testutil.LinSpace(-1, 1, Samples+1)
	want := make([]float64, len(xs))
	got := make([]float64, len(xs))
	for i, x := range xs {
		want[i] = trait.Identity{}.Value(x)
		got[i] = segs.Evaluate(x)
	}

	diff, err := testutil.MaxAbsDiff(got, want)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	dev := MaxAbsDeviation(trait.Identity{}, segs, -1, 1, 1)
	if math.Abs(dev-diff) > 1e-12 {
		t.Fatalf("MaxAbsDeviation = %v, want independently-sampled max abs diff %v", dev, diff)
	}
}
