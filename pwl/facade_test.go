package pwl

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-pwl/internal/testutil"
	"github.com/cwbudde/algo-pwl/pwl/pwlerr"
)

func TestApproximateSigmoidSymmetric(t *testing.T) {
	segs, err := Approximate(NewSigmoid(), -10, 10, 0.005)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(segs), 3)

	require.Equal(t, -10.0, segs[0].Alpha)
	require.Equal(t, 10.0, segs[len(segs)-1].Alpha)

	for i := 1; i < len(segs); i++ {
		require.Greater(t, segs[i].Alpha, segs[i-1].Alpha, "alpha must be strictly increasing")
	}

	m, _, alpha := segs.ToArrays()
	testutil.RequireFinite(t, m)
	testutil.RequireFinite(t, alpha)

	maxDev := 0.0
	for _, x := range testutil.LinSpace(-10, 10, 200) {
		want := 1 / (1 + math.Exp(-x))
		got := segs.Evaluate(x)
		if d := math.Abs(want - got); d > maxDev {
			maxDev = d
		}
	}
	require.LessOrEqual(t, maxDev, 0.005*1.01, "sampled deviation should respect the error budget within slack")

	yZero := segs.Evaluate(0)
	require.InDelta(t, 0.5, yZero, 0.01)
}

func TestApproximateTanhZeroCrossing(t *testing.T) {
	segs, err := Approximate(NewTanh(), -5, 5, 0.005)
	require.NoError(t, err)
	require.InDelta(t, 0.0, segs.Evaluate(0), 0.01)
}

func TestApproximateExpMonotonic(t *testing.T) {
	upper := math.Log(32767)
	segs, err := Approximate(NewExp(), -4, upper, 0.01)
	require.NoError(t, err)

	prev := segs.Evaluate(-4)
	for _, x := range testutil.LinSpace(-4, upper, 100)[1:] {
		cur := segs.Evaluate(x)
		require.GreaterOrEqual(t, cur, prev, "exp PWL must be monotonically non-decreasing")
		prev = cur
	}

	require.InDelta(t, 1.0, segs.Evaluate(0), 0.01)
}

func TestApproximateSoftSignSplitsAtZero(t *testing.T) {
	segs, err := Approximate(NewSoftSign(), -10, 10, 0.005)
	require.NoError(t, err)

	require.InDelta(t, -10.0/11.0, segs.Evaluate(-10), 0.01)
	require.InDelta(t, 10.0/11.0, segs.Evaluate(10), 0.01)
}

func TestApproximatePowerSquareSymmetric(t *testing.T) {
	segs, err := Approximate(NewPower(2, 1, 0), -1, 1, 0.01)
	require.NoError(t, err)

	require.InDelta(t, 0.0, segs.Evaluate(0), 0.02)
	require.InDelta(t, 1.0, segs.Evaluate(-1), 0.02)
	require.InDelta(t, 1.0, segs.Evaluate(1), 0.02)
}

func TestApproximatePowerIdentityShortcut(t *testing.T) {
	segs, err := Approximate(NewPower(1, 1, 0), -1000, 1000, 0.001)
	require.NoError(t, err)
	require.Len(t, segs, 2)
	require.Equal(t, float64(int32Min), segs[0].Alpha)
	require.Equal(t, 1.0, segs[0].M)
	require.Equal(t, 0.0, segs[0].B)
	require.Equal(t, float64(int32Max), segs[1].Alpha)
	require.Equal(t, 0.0, segs[1].M)
	require.Equal(t, 0.0, segs[1].B)

	for _, x := range []float64{-500, -1, 0, 1, 500} {
		require.Equal(t, x, segs.Evaluate(x))
	}
}

func TestApproximateRejectsInvalidDomain(t *testing.T) {
	_, err := Approximate(NewSigmoid(), 5, -5, 0.01)
	require.True(t, errors.Is(err, pwlerr.ErrInvalidDomain))
}

func TestApproximateRejectsNaNBounds(t *testing.T) {
	_, err := Approximate(NewSigmoid(), math.NaN(), 5, 0.01)
	require.True(t, errors.Is(err, pwlerr.ErrInvalidDomain))
}

func TestApproximateLogRejectsNonPositiveDomain(t *testing.T) {
	_, err := Approximate(NewLog(), 0, 10, 0.01)
	require.True(t, errors.Is(err, pwlerr.ErrInvalidDomain))
}

func TestApproximatePowerFractionalCrossingZeroRejected(t *testing.T) {
	_, err := Approximate(NewPower(0.5, 1, 0), -1, 1, 0.01)
	require.True(t, errors.Is(err, pwlerr.ErrInvalidDomain))
}

func TestApproximateIsDeterministic(t *testing.T) {
	a, errA := Approximate(NewSigmoid(), -10, 10, 0.005)
	require.NoError(t, errA)
	b, errB := Approximate(NewSigmoid(), -10, 10, 0.005)
	require.NoError(t, errB)
	require.Equal(t, a, b)
}

func TestApproximateTighterBudgetNeverReducesSegmentCount(t *testing.T) {
	loose, err := Approximate(NewSigmoid(), -10, 10, 0.02)
	require.NoError(t, err)
	tight, err := Approximate(NewSigmoid(), -10, 10, 0.002)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(tight), len(loose))
}

func TestExponentFromConstantAcceptsIntegerAndFloatWidths(t *testing.T) {
	cases := []any{int8(2), int16(2), int32(2), int64(2), int(2), uint8(2), uint16(2), uint32(2), uint64(2), uint(2), float32(2), float64(2)}
	for _, c := range cases {
		p, err := ExponentFromConstant(c)
		require.NoError(t, err)
		require.Equal(t, 2.0, p)
	}
}

func TestExponentFromConstantRejectsUnsupportedType(t *testing.T) {
	_, err := ExponentFromConstant("2")
	require.True(t, errors.Is(err, pwlerr.ErrUnsupportedType))
}
