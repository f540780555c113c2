// Package pivot implements the equioscillation descent search: given a
// target segment count N and a sub-domain [alpha0, alphaN], it places the
// N-1 interior tangent points that minimize the worst-case approximation
// error, the multi-segment generalization of the classical Chebyshev/Remez
// minimax problem. The shape of the loop -- a fixed iteration cap, a scalar
// step multiplier halved on regress, and a sentinel "not converged" error
// rather than a panic -- follows internal/polyroot.DurandKerner in the
// donor corpus.
package pivot

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-pwl/pwl/pwlerr"
	"github.com/cwbudde/algo-pwl/pwl/segment"
	"github.com/cwbudde/algo-pwl/pwl/trait"
)

// threshold is the default spread-completion tolerance: iteration stops
// once (epsMax-epsMin) < threshold*epsMin.
const threshold = 0.1

// smallDenom guards the two divisions in the algorithm (the alpha
// intersection and the descent step) against near-equal tangent
// derivatives, which would otherwise send a boundary to +-Inf.
const smallDenom = 1e-12

// Search runs the equioscillation descent for a fixed segment count n over
// [alpha0, alphaN]. negative selects the sign-folded sub-problem (spec.md
// 4.1's IsNegative). epsAllowed is carried through the contract for
// symmetry with the returned epsFinal; the completion test itself is the
// spread test below, not a direct comparison against epsAllowed --
// SegmentSearch is the layer that decides whether epsFinal meets budget.
//
// Returns ErrNotConverged if the iteration cap is reached without the
// spread test passing, and ErrDomainError if any evaluated value is not
// finite.
func Search(traits trait.FnTraits, n int, alpha0, alphaN float64, negative bool, epsAllowed float64) (segment.Segments, float64, error) {
	if n < 1 {
		return nil, 0, fmt.Errorf("pivot: segment count must be >= 1, got %d", n)
	}

	maxIter := traits.MaxIterations()
	sign := 1.0
	if negative {
		sign = -1.0
	}

	t := make([]float64, n)
	for i := range t {
		t[i] = alpha0 + (float64(i+1)/float64(n+1))*(alphaN-alpha0)
	}

	alpha := make([]float64, n+1)
	eps := make([]float64, n+1)
	alpha[0], alpha[n] = alpha0, alphaN

	delta := 1.0
	epsMaxPrev := math.Inf(1)
	sameEpsilonArmed := false
	tPrev := append([]float64(nil), t...)

	for iter := 0; iter <= maxIter; iter++ {
		degenerate, err := computeAlpha(traits, t, alpha)
		if err != nil {
			return nil, 0, err
		}

		if !degenerate {
			if err := computeEps(traits, sign, t, alpha, eps); err != nil {
				return nil, 0, err
			}
		}

		epsMax, epsMin := spread(eps)

		if !degenerate && (epsMax-epsMin < threshold*epsMin || iter == maxIter) {
			if epsMax-epsMin < threshold*epsMin {
				epsFinal := (epsMax + epsMin) / 4
				return emit(traits, sign, t, alpha, epsFinal), epsFinal, nil
			}
			return nil, 0, fmt.Errorf("pivot: %w after %d iterations (n=%d)", pwlerr.ErrNotConverged, iter, n)
		}

		regressed := false
		switch {
		case degenerate:
			regressed = true
			sameEpsilonArmed = false
		case epsMax > epsMaxPrev:
			regressed = true
			sameEpsilonArmed = false
		case epsMax == epsMaxPrev:
			if sameEpsilonArmed {
				regressed = true
				sameEpsilonArmed = false
			} else {
				sameEpsilonArmed = true
			}
		default:
			sameEpsilonArmed = false
		}

		if regressed {
			copy(t, tPrev)
			delta /= 2

			if _, err := computeAlpha(traits, t, alpha); err != nil {
				return nil, 0, err
			}
			if err := computeEps(traits, sign, t, alpha, eps); err != nil {
				return nil, 0, err
			}
		} else {
			epsMaxPrev = epsMax
			copy(tPrev, t)
		}

		if iter == maxIter {
			return nil, 0, fmt.Errorf("pivot: %w after %d iterations (n=%d)", pwlerr.ErrNotConverged, iter, n)
		}

		step(delta, t, alpha, eps)
	}

	return nil, 0, fmt.Errorf("pivot: %w after %d iterations (n=%d)", pwlerr.ErrNotConverged, maxIter, n)
}

// computeAlpha fills alpha[1:n] from the tangent-line intersections at
// t[i-1], t[i]. Reports degenerate=true (rather than a hard error) when a
// denominator is too small to trust, per the design notes' guidance to
// treat that as a local non-convergence instead of crashing.
func computeAlpha(traits trait.FnTraits, t, alpha []float64) (degenerate bool, err error) {
	for i := 1; i < len(alpha)-1; i++ {
		tPrev, tCur := t[i-1], t[i]
		fPrev, fCur := traits.Value(tPrev), traits.Value(tCur)
		dPrev, dCur := traits.Deriv(tPrev), traits.Deriv(tCur)

		denom := dCur - dPrev
		if math.Abs(denom) < smallDenom {
			return true, nil
		}

		a := (fPrev - fCur + dCur*tCur - dPrev*tPrev) / denom
		if !isFinite(a) {
			return false, fmt.Errorf("pivot: %w: alpha[%d] evaluated to %v", pwlerr.ErrDomainError, i, a)
		}
		alpha[i] = a
	}

	return false, nil
}

// computeEps fills eps[0:len(eps)] with the signed tangent residual at
// each boundary.
func computeEps(traits trait.FnTraits, sign float64, t, alpha, eps []float64) error {
	n := len(t)

	for i := 0; i < n; i++ {
		v := sign * tangentResidual(traits, t[i], alpha[i])
		if !isFinite(v) {
			return fmt.Errorf("pivot: %w: eps[%d] evaluated to %v", pwlerr.ErrDomainError, i, v)
		}
		eps[i] = v
	}

	terminal := sign * tangentResidual(traits, t[n-1], alpha[n])
	if !isFinite(terminal) {
		return fmt.Errorf("pivot: %w: terminal eps evaluated to %v", pwlerr.ErrDomainError, terminal)
	}
	eps[n] = terminal

	return nil
}

// tangentResidual is f'(t)*(x-t) + f(t) - f(x): the deviation of f from its
// own tangent line at t, evaluated at x.
func tangentResidual(traits trait.FnTraits, t, x float64) float64 {
	return traits.Deriv(t)*(x-t) + traits.Value(t) - traits.Value(x)
}

func spread(eps []float64) (epsMax, epsMin float64) {
	epsMax, epsMin = 0, math.Inf(1)
	for _, e := range eps {
		a := math.Abs(e)
		if a > epsMax {
			epsMax = a
		}
		if a < epsMin {
			epsMin = a
		}
	}
	return epsMax, epsMin
}

// step computes the descent update d[i] and applies t[i] += d[i] in place,
// guarding the step denominator the same way computeAlpha guards its own.
func step(delta float64, t, alpha, eps []float64) {
	n := len(t)
	for i := 0; i < n; i++ {
		left := alpha[i+1] - t[i]
		right := t[i] - alpha[i]
		if math.Abs(left) < smallDenom || math.Abs(right) < smallDenom {
			continue
		}

		denom := eps[i+1]/left + eps[i]/right
		if math.Abs(denom) < smallDenom {
			continue
		}

		d := delta * (eps[i+1] - eps[i]) / denom
		t[i] += d
	}
}

// emit produces the final segment array once the spread test has passed:
// one affine piece per tangent point, shifted to the equioscillation
// center, plus the terminal sentinel.
func emit(traits trait.FnTraits, sign float64, t, alpha []float64, epsFinal float64) segment.Segments {
	n := len(t)
	out := make(segment.Segments, n+1)

	for i := 0; i < n; i++ {
		fv, dv := traits.Value(t[i]), traits.Deriv(t[i])

		v := sign*dv*(alpha[i]-t[i]) + sign*fv - epsFinal
		vNext := sign*dv*(alpha[i+1]-t[i]) + sign*fv - epsFinal

		m := (vNext - v) / (alpha[i+1] - alpha[i])
		b := v - m*alpha[i]

		out[i] = segment.Segment{Alpha: alpha[i], M: m, B: b}
	}

	out[n] = segment.Segment{Alpha: alpha[n], M: 0, B: 0}

	return out
}

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// IsNotConverged reports whether err is (or wraps) ErrNotConverged.
func IsNotConverged(err error) bool { return errors.Is(err, pwlerr.ErrNotConverged) }

// IsDomainError reports whether err is (or wraps) ErrDomainError.
func IsDomainError(err error) bool { return errors.Is(err, pwlerr.ErrDomainError) }
