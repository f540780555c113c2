package trait

import "math"

// Identity implements FnTraits for f(x) = x. It only ever appears through
// PowerHandler's p == 1 shortcut, which never invokes the general solver,
// but is provided here so the Activation tag set has a complete trait for
// every discriminant.
type Identity struct{}

func (Identity) Value(x float64) float64 { return x }
func (Identity) Deriv(x float64) float64 { return 1 }

func (Identity) LowerBound() float64 { return math.Inf(-1) }
func (Identity) UpperBound() float64 { return math.Inf(1) }

func (Identity) BreakPoint() (float64, bool) { return 0, false }

func (Identity) MaxSegments() int   { return defaultMaxSegments }
func (Identity) MaxIterations() int { return defaultMaxIterations }

func (Identity) IsNegative(upperBound float64) bool { return false }

func (Identity) ValidateDomain(lower, upper float64) error { return nil }
