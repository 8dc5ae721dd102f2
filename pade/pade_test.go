package pade_test

import (
	"fmt"
	"math"
	"math/big"
	"math/cmplx"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/robustpade/pade"
	"github.com/tuneinsight/robustpade/utils/sampling"
)

// expCoeffs returns the k leading Taylor coefficients of exp(x) at 0.
func expCoeffs(k int) []complex128 {
	c := make([]complex128, k)
	f := 1.0
	for i := range c {
		if i > 0 {
			f *= float64(i)
		}
		c[i] = complex(1/f, 0)
	}
	return c
}

// geometric returns the k leading coefficients of 1/(1-r·x).
func geometric(r complex128, k int) []complex128 {
	c := make([]complex128, k)
	c[0] = 1
	for i := 1; i < k; i++ {
		c[i] = c[i-1] * r
	}
	return c
}

func requireCoeffsInDelta(t *testing.T, want, have []complex128, delta float64) {
	require.Len(t, have, len(want))
	for i := range want {
		require.InDelta(t, 0, cmplx.Abs(want[i]-have[i]), delta, "coefficient %d: want %v have %v", i, want[i], have[i])
	}
}

func TestApproximate(t *testing.T) {

	t.Run("Exp/4x4", func(t *testing.T) {

		approx, err := pade.Approximate(expCoeffs(10), 4, 4, pade.DefaultConfig())
		require.NoError(t, err)

		require.Equal(t, pade.Degree{M: 4, N: 4}, approx.Degree)
		require.False(t, approx.Reduced())
		require.True(t, approx.Real)
		require.Equal(t, complex(1, 0), approx.Denominator[0])

		p := []complex128{1, 1.0 / 2, 3.0 / 28, 1.0 / 84, 1.0 / 1680}
		q := []complex128{1, -1.0 / 2, 3.0 / 28, -1.0 / 84, 1.0 / 1680}

		requireCoeffsInDelta(t, p, approx.Numerator, 1e-12)
		requireCoeffsInDelta(t, q, approx.Denominator, 1e-12)

		for _, x := range pade.Linspace(-0.25, 0.25, 101) {
			require.InDelta(t, math.Exp(x), approx.EvaluateReal(x), 1e-10)
		}

		poles, err := approx.Poles()
		require.NoError(t, err)
		require.Len(t, poles, 4)
		for _, p := range poles {
			require.Greater(t, cmplx.Abs(p), 1.0)
		}
	})

	t.Run("Exp/Classical", func(t *testing.T) {
		approx, err := pade.Approximate(expCoeffs(5), 2, 2, pade.Config{Tol: 0})
		require.NoError(t, err)
		require.Equal(t, pade.Degree{M: 2, N: 2}, approx.Degree)
		requireCoeffsInDelta(t, []complex128{1, 1.0 / 2, 1.0 / 12}, approx.Numerator, 1e-14)
		requireCoeffsInDelta(t, []complex128{1, -1.0 / 2, 1.0 / 12}, approx.Denominator, 1e-14)
	})

	t.Run("Exp/Overrequested", func(t *testing.T) {

		approx, err := pade.Approximate(expCoeffs(41), 20, 20, pade.DefaultConfig())
		require.NoError(t, err)

		require.True(t, approx.Reduced())
		require.Equal(t, approx.Degree.M, approx.Degree.N)
		require.Less(t, approx.Degree.N, 20)

		for _, x := range pade.Linspace(-1, 1, 101) {
			require.InDelta(t, math.Exp(x), approx.EvaluateReal(x), 1e-12)
		}

		poles, err := approx.Poles()
		require.NoError(t, err)
		for _, p := range poles {
			require.Greater(t, cmplx.Abs(p), 2.0)
		}
	})

	t.Run("Exp/Noisy", func(t *testing.T) {

		prng, err := sampling.NewSeededPRNG("noisy-exp")
		require.NoError(t, err)

		c := expCoeffs(21)
		for i := range c {
			c[i] += complex(sampling.RandFloat64(prng, -1e-8, 1e-8), 0)
		}

		approx, err := pade.Approximate(c, 10, 10, pade.Config{Tol: 1e-6})
		require.NoError(t, err)

		require.True(t, approx.Reduced())
		require.Equal(t, approx.Degree.M, approx.Degree.N)

		for _, x := range pade.Linspace(-0.5, 0.5, 51) {
			require.InDelta(t, math.Exp(x), approx.EvaluateReal(x), 1e-6)
		}

		// No spurious pole-zero pair close to the expansion point.
		poles, err := approx.Poles()
		require.NoError(t, err)
		for _, p := range poles {
			require.Greater(t, cmplx.Abs(p), 1.0)
		}
	})

	t.Run("Rational/Real", func(t *testing.T) {

		// (1+2x)/(1-x/2)
		c := make([]float64, 9)
		c[0] = 1
		for k := 1; k < len(c); k++ {
			c[k] = 5 * math.Pow(0.5, float64(k))
		}

		approx, err := pade.FromReal(c, 4, 4, pade.DefaultConfig())
		require.NoError(t, err)

		require.Equal(t, pade.Degree{M: 1, N: 1}, approx.Degree)
		require.Equal(t, pade.Degree{M: 4, N: 4}, approx.Requested)
		require.True(t, approx.Reduced())

		requireCoeffsInDelta(t, []complex128{1, 2}, approx.Numerator, 1e-12)
		requireCoeffsInDelta(t, []complex128{1, -0.5}, approx.Denominator, 1e-12)
	})

	t.Run("Rational/Complex", func(t *testing.T) {

		// (1 + i·x)/(1 - r·x)
		r := complex(0.5, 0.5)
		g := geometric(r, 7)
		c := make([]complex128, len(g))
		c[0] = 1
		for k := 1; k < len(c); k++ {
			c[k] = g[k] + 1i*g[k-1]
		}

		approx, err := pade.Approximate(c, 3, 3, pade.DefaultConfig())
		require.NoError(t, err)

		require.False(t, approx.Real)
		require.Equal(t, pade.Degree{M: 1, N: 1}, approx.Degree)
		requireCoeffsInDelta(t, []complex128{1, 1i}, approx.Numerator, 1e-12)
		requireCoeffsInDelta(t, []complex128{1, -r}, approx.Denominator, 1e-12)

		x := complex(0.3, -0.2)
		require.InDelta(t, 0, cmplx.Abs(approx.Evaluate(x)-(1+1i*x)/(1-r*x)), 1e-12)
	})

	t.Run("Rational/Growing", func(t *testing.T) {

		// 1/(1-r·x) with coefficients growing like r^k
		for _, tc := range []struct {
			r    float64
			m, n int
		}{
			{10, 5, 5},
			{30, 5, 5},
			{30, 8, 8},
			{100, 3, 3},
			{1000, 3, 3},
		} {
			t.Run(fmt.Sprintf("r=%v/(%d,%d)", tc.r, tc.m, tc.n), func(t *testing.T) {
				approx, err := pade.Approximate(geometric(complex(tc.r, 0), tc.m+tc.n+1), tc.m, tc.n, pade.DefaultConfig())
				require.NoError(t, err)
				require.Equal(t, pade.Degree{M: 0, N: 1}, approx.Degree)
				requireCoeffsInDelta(t, []complex128{1}, approx.Numerator, 1e-10)
				require.InDelta(t, -tc.r, real(approx.Denominator[1]), 1e-10*tc.r)
			})
		}
	})

	t.Run("Polynomial", func(t *testing.T) {

		c := []complex128{1, 2, 3, 0, 0, 0, 0, 0}

		approx, err := pade.Approximate(c, 4, 3, pade.DefaultConfig())
		require.NoError(t, err)

		require.Equal(t, pade.Degree{M: 2, N: 0}, approx.Degree)
		requireCoeffsInDelta(t, []complex128{1, 2, 3}, approx.Numerator, 1e-12)
		require.Equal(t, []complex128{1}, approx.Denominator)

		zeros, err := approx.Zeros()
		require.NoError(t, err)
		require.Len(t, zeros, 2)
		for _, z := range zeros {
			require.InDelta(t, 0, cmplx.Abs(1+2*z+3*z*z), 1e-12)
		}
	})

	t.Run("Polynomial/DecreasingTolerance", func(t *testing.T) {
		c := []complex128{1, -1, 0.5, 0, 0, 0, 0, 0, 0}
		for _, tol := range []float64{1e-8, 1e-12, 1e-14} {
			d, err := pade.Size(c, 4, 4, pade.Config{Tol: tol})
			require.NoError(t, err)
			require.Equal(t, pade.Degree{M: 2, N: 0}, d)
		}
	})

	t.Run("Degenerate/Zero", func(t *testing.T) {
		c := make([]complex128, 9)
		for m := 0; m <= 4; m++ {
			for n := 0; n <= 4; n++ {
				_, err := pade.Approximate(c, m, n, pade.DefaultConfig())
				require.ErrorIs(t, err, pade.ErrDegenerateSeries, "(%d, %d)", m, n)
			}
		}
		_, err := pade.Approximate(c, 2, 2, pade.Config{Tol: 0})
		require.ErrorIs(t, err, pade.ErrDegenerateSeries)
	})

	t.Run("Degenerate/LeadingZeros", func(t *testing.T) {
		// x^3/(1-x) has no approximant with m < 3.
		c := []complex128{0, 0, 0, 1, 1, 1, 1, 1}
		_, err := pade.Approximate(c, 2, 2, pade.DefaultConfig())
		require.ErrorIs(t, err, pade.ErrDegenerateSeries)

		approx, err := pade.Approximate(c, 3, 1, pade.DefaultConfig())
		require.NoError(t, err)
		require.Equal(t, pade.Degree{M: 3, N: 1}, approx.Degree)
		requireCoeffsInDelta(t, []complex128{0, 0, 0, 1}, approx.Numerator, 1e-12)
		requireCoeffsInDelta(t, []complex128{1, -1}, approx.Denominator, 1e-12)
	})

	t.Run("InvalidInputs", func(t *testing.T) {
		c := expCoeffs(5)

		_, err := pade.Approximate(c, 3, 2, pade.DefaultConfig())
		require.ErrorIs(t, err, pade.ErrInsufficientData)

		_, err = pade.Approximate(c, -1, 2, pade.DefaultConfig())
		require.ErrorIs(t, err, pade.ErrInvalidDegree)

		_, err = pade.Approximate(c, 2, 2, pade.Config{Tol: -1})
		require.ErrorIs(t, err, pade.ErrInvalidTolerance)

		_, err = pade.Approximate(c, 2, 2, pade.Config{Tol: math.NaN()})
		require.ErrorIs(t, err, pade.ErrInvalidTolerance)

		c[1] = cmplx.NaN()
		_, err = pade.Approximate(c, 2, 2, pade.DefaultConfig())
		require.ErrorIs(t, err, pade.ErrNonFinite)
	})

	t.Run("InputNotMutated", func(t *testing.T) {
		c := expCoeffs(11)
		ref := expCoeffs(11)
		_, err := pade.Approximate(c, 5, 5, pade.DefaultConfig())
		require.NoError(t, err)
		require.Equal(t, ref, c)
	})
}

func TestSize(t *testing.T) {

	c := geometric(0.5, 12)

	d0, err := pade.Size(c, 5, 5, pade.DefaultConfig())
	require.NoError(t, err)
	d1, err := pade.Size(c, 5, 5, pade.DefaultConfig())
	require.NoError(t, err)

	require.Equal(t, d0, d1)
	require.Equal(t, pade.Degree{M: 0, N: 1}, d0)

	approx, err := pade.Approximate(c, 5, 5, pade.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, approx.Degree, d0)

	_, err = pade.Size(c, 6, 6, pade.DefaultConfig())
	require.ErrorIs(t, err, pade.ErrInsufficientData)
}

func TestApproximant(t *testing.T) {

	t.Run("Poles/Residues", func(t *testing.T) {

		approx, err := pade.Approximate(geometric(1, 5), 2, 2, pade.DefaultConfig())
		require.NoError(t, err)
		require.Equal(t, pade.Degree{M: 0, N: 1}, approx.Degree)

		poles, residues, err := approx.Residues()
		require.NoError(t, err)
		requireCoeffsInDelta(t, []complex128{1}, poles, 1e-12)
		requireCoeffsInDelta(t, []complex128{-1}, residues, 1e-12)

		zeros, err := approx.Zeros()
		require.NoError(t, err)
		require.Empty(t, zeros)
	})

	t.Run("Poles/Conjugate", func(t *testing.T) {

		// 1/(1+x^2)
		c := []complex128{1, 0, -1, 0, 1}

		approx, err := pade.Approximate(c, 2, 2, pade.DefaultConfig())
		require.NoError(t, err)
		require.Equal(t, pade.Degree{M: 0, N: 2}, approx.Degree)

		poles, residues, err := approx.Residues()
		require.NoError(t, err)
		requireCoeffsInDelta(t, []complex128{-1i, 1i}, poles, 1e-12)
		requireCoeffsInDelta(t, []complex128{0.5i, -0.5i}, residues, 1e-12)
	})

	t.Run("Roots/Complex", func(t *testing.T) {
		// (x-(1+i))(x-2i)
		roots, err := pade.Roots([]complex128{-2 + 2i, -1 - 3i, 1, 0})
		require.NoError(t, err)
		requireCoeffsInDelta(t, []complex128{1 + 1i, 2i}, roots, 1e-12)
	})

	t.Run("EvaluateBig", func(t *testing.T) {

		approx, err := pade.Approximate(expCoeffs(10), 4, 4, pade.DefaultConfig())
		require.NoError(t, err)

		x := new(big.Float).SetPrec(128).SetFloat64(0.125)
		y := approx.EvaluateBig(x)
		require.Equal(t, uint(128), y.Prec())
		require.True(t, y.IsReal())

		yf, _ := y.Real().Float64()
		require.InDelta(t, approx.EvaluateReal(0.125), yf, 1e-15)
	})

	t.Run("Equal", func(t *testing.T) {

		a0, err := pade.Approximate(expCoeffs(7), 3, 3, pade.DefaultConfig())
		require.NoError(t, err)
		a1, err := pade.Approximate(expCoeffs(7), 3, 3, pade.DefaultConfig())
		require.NoError(t, err)

		done := make(chan bool, 1)
		go func() { done <- a0.Equal(a1) }()
		select {
		case eq := <-done:
			require.True(t, eq)
		case <-time.After(5 * time.Second):
			t.Fatal("Equal did not return")
		}

		require.True(t, a0.Equal(a0))
		require.False(t, a0.Equal(nil))
		require.True(t, (*pade.Approximant)(nil).Equal(nil))

		a1.Numerator[3] += 1e-13
		require.False(t, a0.Equal(a1))
		require.True(t, a0.EqualWithin(a1, 1e-12))

		a2, err := pade.Approximate(expCoeffs(7), 3, 2, pade.DefaultConfig())
		require.NoError(t, err)
		require.False(t, a0.EqualWithin(a2, 1))
	})

	t.Run("String", func(t *testing.T) {
		approx, err := pade.Approximate([]complex128{1, 2, 3, 0, 0, 0}, 3, 2, pade.DefaultConfig())
		require.NoError(t, err)
		s := approx.String()
		require.Contains(t, s, "degree (2, 0)")
		require.Contains(t, s, "reduced from (3, 2)")
		require.Contains(t, s, "3·x^2")
	})
}

func TestAccuracy(t *testing.T) {

	approx, err := pade.Approximate(expCoeffs(10), 4, 4, pade.DefaultConfig())
	require.NoError(t, err)

	stats, err := pade.RealAccuracy(approx, math.Exp, pade.Linspace(-0.5, 0.5, 201))
	require.NoError(t, err)

	require.Equal(t, 201, stats.Points)
	require.Less(t, stats.MaxError, 1e-9)
	require.LessOrEqual(t, stats.MedianError, stats.MaxError)
	require.LessOrEqual(t, stats.P95Error, stats.MaxError)
	require.LessOrEqual(t, stats.MeanError, stats.MaxError)
	require.Greater(t, stats.MinPrecision, 9.0)
	require.GreaterOrEqual(t, stats.MeanPrecision, stats.MinPrecision)
	require.Contains(t, stats.String(), "MAX Err")

	_, err = pade.RealAccuracy(approx, math.Exp, nil)
	require.Error(t, err)
}

func TestLinspace(t *testing.T) {
	require.Equal(t, []float64{-1, -0.5, 0, 0.5, 1}, pade.Linspace(-1, 1, 5))
	require.Equal(t, []float64{2}, pade.Linspace(2, 3, 1))
	require.Empty(t, pade.Linspace(0, 1, 0))
}
