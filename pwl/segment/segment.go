// Package segment defines the PWL output shape: an ordered sequence of
// affine pieces plus the terminal sentinel that closes the domain. It is
// deliberately tiny and dependency-free so pivot, errormetric and the pwl
// facade can all share one evaluator without an import cycle -- the same
// role biquad.Coefficients plays for dsp/filter/design and
// dsp/filter/biquad in the donor corpus.
package segment

import "sort"

// Segment is one affine piece: y = M*x + B for x in [Alpha, nextAlpha).
// The final Segment in a Segments slice is the terminal sentinel: its
// Alpha is the right domain edge and its M, B are always zero.
type Segment struct {
	Alpha float64
	M     float64
	B     float64
}

// Segments is an ordered, non-empty sequence of Segment with a trailing
// terminal sentinel. Invariant: Alpha is strictly increasing.
type Segments []Segment

// Evaluate returns the PWL value at x, clamping x into [s[0].Alpha,
// s[len(s)-1].Alpha] before locating the covering segment. Evaluate is host
// tooling for verifying and visualizing the core's own output (tests,
// ErrorMetric, cmd/pwlplot) -- it is not the accelerator's own evaluation
// path, which spec.md explicitly places out of scope.
func (s Segments) Evaluate(x float64) float64 {
	if len(s) < 2 {
		return 0
	}

	lo, hi := s[0].Alpha, s[len(s)-1].Alpha
	if x < lo {
		x = lo
	}
	if x > hi {
		x = hi
	}

	// Find the last segment whose Alpha is <= x; the terminal sentinel at
	// index len(s)-1 is never selected as the active segment, only as the
	// right edge.
	i := sort.Search(len(s)-1, func(i int) bool { return s[i].Alpha > x }) - 1
	if i < 0 {
		i = 0
	}

	return s[i].M*x + s[i].B
}

// ToArrays materializes the three parallel arrays a graph node of kind
// "Pwl" expects: m and b have length len(s)-1 (the terminal sentinel
// contributes only its Alpha), alpha has length len(s).
func (s Segments) ToArrays() (m, b, alpha []float64) {
	if len(s) == 0 {
		return nil, nil, nil
	}

	m = make([]float64, len(s)-1)
	b = make([]float64, len(s)-1)
	alpha = make([]float64, len(s))

	for i, seg := range s {
		alpha[i] = seg.Alpha
		if i < len(s)-1 {
			m[i] = seg.M
			b[i] = seg.B
		}
	}

	return m, b, alpha
}

// NegateInPlace flips the sign of every non-terminal segment's (M, B),
// used by DomainSplitter when recombining a negated sub-problem.
func (s Segments) NegateInPlace() {
	for i := range s {
		if i == len(s)-1 {
			continue
		}
		s[i].M = -s[i].M
		s[i].B = -s[i].B
	}
}
