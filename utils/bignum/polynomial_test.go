package bignum

import (
	"math/big"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComplexMultiplier(t *testing.T) {

	mul := NewComplexMultiplier()

	cases := []struct {
		name string
		a, b complex128
	}{
		{"Real/Real", 3, -2},
		{"Real/Complex", 3, complex(1, 2)},
		{"Complex/Real", complex(1, -4), 2},
		{"Complex/Complex", complex(1, -4), complex(-0.5, 2)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := ToComplex(tc.a, 128), ToComplex(tc.b, 128)

			c := NewComplex().SetPrec(128)
			mul.Mul(a, b, c)
			require.InDelta(t, 0, cmplx.Abs(c.Complex128()-tc.a*tc.b), 1e-15)

			mul.Quo(a, b, c)
			require.InDelta(t, 0, cmplx.Abs(c.Complex128()-tc.a/tc.b), 1e-15)

			// In place on the first operand.
			mul.Quo(a, b, a)
			require.InDelta(t, 0, cmplx.Abs(a.Complex128()-tc.a/tc.b), 1e-15)
		})
	}
}

func TestPolynomial(t *testing.T) {

	t.Run("Evaluate/Float64", func(t *testing.T) {
		p := NewPolynomial([]float64{1, -2, 3})
		require.Equal(t, 2, p.Degree())
		y := p.Evaluate(2.0)
		require.Equal(t, complex(9, 0), y.Complex128())
	})

	t.Run("Evaluate/Complex", func(t *testing.T) {
		coeffs := []complex128{1i, 2, complex(0, -1)}
		p := NewPolynomial(coeffs)
		x := complex(0.5, -1.5)
		want := coeffs[0] + coeffs[1]*x + coeffs[2]*x*x
		require.InDelta(t, 0, cmplx.Abs(p.Evaluate(x).Complex128()-want), 1e-15)
		require.Equal(t, coeffs, p.Complex128())
	})

	t.Run("Evaluate/BigFloat", func(t *testing.T) {
		prec := uint(200)
		p := NewPolynomial([]*big.Float{NewFloat(1, prec), NewFloat(4, prec), nil})
		y := p.Evaluate(NewFloat(0.25, prec))
		require.Equal(t, prec, y.Prec())
		require.Equal(t, 0, y.Real().Cmp(NewFloat(2, prec)))
		require.True(t, y.IsReal())
	})

	t.Run("Clone", func(t *testing.T) {
		p := NewPolynomial([]float64{1, 2})
		q := p.Clone()
		q.Coeffs[0].Real().SetFloat64(5)
		require.Equal(t, []complex128{1, 2}, p.Complex128())
		require.Equal(t, []complex128{5, 2}, q.Complex128())
	})
}
