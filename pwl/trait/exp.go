package trait

import "math"

// Exp implements FnTraits for the natural exponential. The sub-domain
// searched by PivotSearch is always treated as negated: exp is convex
// everywhere, so the equioscillation descent is set up the same way on both
// sides of ExpBreak.
type Exp struct{}

func (Exp) Value(x float64) float64 { return math.Exp(x) }
func (Exp) Deriv(x float64) float64 { return math.Exp(x) }

func (Exp) LowerBound() float64 { return math.Inf(-1) }
func (Exp) UpperBound() float64 { return math.Inf(1) }

func (Exp) BreakPoint() (float64, bool) { return ExpBreak, true }

func (Exp) MaxSegments() int   { return defaultMaxSegments }
func (Exp) MaxIterations() int { return defaultMaxIterations }

func (Exp) IsNegative(upperBound float64) bool { return true }

func (Exp) ValidateDomain(lower, upper float64) error { return nil }
