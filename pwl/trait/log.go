package trait

import (
	"fmt"
	"math"
)

// Log implements FnTraits for the natural logarithm. Log has no interior
// break-point and gets a larger iteration cap: its curvature decays slowly
// as x grows, so the equioscillation descent needs more steps to settle.
type Log struct{}

func (Log) Value(x float64) float64 { return math.Log(x) }
func (Log) Deriv(x float64) float64 { return 1 / x }

func (Log) LowerBound() float64 { return 0 }
func (Log) UpperBound() float64 { return math.Inf(1) }

func (Log) BreakPoint() (float64, bool) { return 0, false }

func (Log) MaxSegments() int   { return defaultMaxSegments }
func (Log) MaxIterations() int { return logMaxIterations }

func (Log) IsNegative(upperBound float64) bool { return false }

func (Log) ValidateDomain(lower, upper float64) error {
	if lower <= 0 {
		return fmt.Errorf("log domain requires lower bound > 0, got %v", lower)
	}
	return nil
}
