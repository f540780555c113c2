package segment

import (
	"testing"

	"github.com/cwbudde/algo-pwl/internal/testutil"
)

func twoSegment() Segments {
	return Segments{
		{Alpha: -1, M: 2, B: 1},
		{Alpha: 0, M: -1, B: 1},
		{Alpha: 1, M: 0, B: 0},
	}
}

func TestEvaluateWithinSegments(t *testing.T) {
	s := twoSegment()

	cases := []struct {
		x, want float64
	}{
		{-1, -1},
		{-0.5, 0},
		{0, 1},
		{0.5, 0.5},
		{1, 0},
	}

	got := make([]float64, len(cases))
	want := make([]float64, len(cases))
	for i, c := range cases {
		got[i] = s.Evaluate(c.x)
		want[i] = c.want
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestEvaluateClampsOutOfRange(t *testing.T) {
	s := twoSegment()

	if got, want := s.Evaluate(-5), s.Evaluate(-1); got != want {
		t.Fatalf("Evaluate(-5) = %v, want clamp to Evaluate(-1) = %v", got, want)
	}
	if got, want := s.Evaluate(5), s.Evaluate(1); got != want {
		t.Fatalf("Evaluate(5) = %v, want clamp to Evaluate(1) = %v", got, want)
	}
}

func TestToArrays(t *testing.T) {
	s := twoSegment()

	m, b, alpha := s.ToArrays()
	if len(m) != 2 || len(b) != 2 {
		t.Fatalf("len(m)=%d len(b)=%d, want 2,2", len(m), len(b))
	}
	if len(alpha) != 3 {
		t.Fatalf("len(alpha) = %d, want 3", len(alpha))
	}
	if alpha[0] != -1 || alpha[1] != 0 || alpha[2] != 1 {
		t.Fatalf("alpha = %v, want [-1 0 1]", alpha)
	}
	if m[0] != 2 || m[1] != -1 {
		t.Fatalf("m = %v, want [2 -1]", m)
	}
}

func TestNegateInPlaceSparesTerminal(t *testing.T) {
	s := twoSegment()
	s.NegateInPlace()

	if s[0].M != -2 || s[0].B != -1 {
		t.Fatalf("segment 0 = %+v, want M=-2 B=-1", s[0])
	}
	if s[1].M != 1 || s[1].B != -1 {
		t.Fatalf("segment 1 = %+v, want M=1 B=-1", s[1])
	}
	if s[2].M != 0 || s[2].B != 0 {
		t.Fatalf("terminal segment = %+v, want M=0 B=0", s[2])
	}
}
