package pade

import (
	"fmt"
	"math/big"
	"math/cmplx"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/tuneinsight/robustpade/utils/bignum"
)

// Degree is a pair of numerator and denominator degrees.
type Degree struct {
	M int `json:"m" yaml:"m"`
	N int `json:"n" yaml:"n"`
}

// Total returns M+N.
func (d Degree) Total() int {
	return d.M + d.N
}

func (d Degree) String() string {
	return fmt.Sprintf("(%d, %d)", d.M, d.N)
}

// Approximant is a rational function p(x)/q(x) in the monomial basis.
type Approximant struct {
	// Numerator holds the coefficients of p, Numerator[i] being the coefficient of x^i.
	Numerator []complex128 `json:"numerator"`
	// Denominator holds the coefficients of q, with Denominator[0] = 1.
	Denominator []complex128 `json:"denominator"`
	// Requested is the degree pair the approximant was asked for.
	Requested Degree `json:"requested"`
	// Degree is the effective degree pair (len(Numerator)-1, len(Denominator)-1).
	Degree Degree `json:"degree"`
	// Real is true if the approximant was computed from real coefficients,
	// in which case all its coefficients are real.
	Real bool `json:"real"`
}

// Reduced returns true if the effective degree differs from the requested one.
func (a *Approximant) Reduced() bool {
	return a.Degree != a.Requested
}

// Evaluate returns p(x)/q(x).
func (a *Approximant) Evaluate(x complex128) complex128 {
	return horner(a.Numerator, x) / horner(a.Denominator, x)
}

// EvaluateReal returns the real part of p(x)/q(x) for a real x.
func (a *Approximant) EvaluateReal(x float64) float64 {
	return real(a.Evaluate(complex(x, 0)))
}

// EvaluateBig evaluates p(x)/q(x) with the precision of x.
// The coefficients are taken as exact.
func (a *Approximant) EvaluateBig(x *big.Float) (y *bignum.Complex) {
	p := bignum.NewPolynomial(a.Numerator).Evaluate(x)
	q := bignum.NewPolynomial(a.Denominator).Evaluate(x)
	y = bignum.NewComplex().SetPrec(x.Prec())
	bignum.NewComplexMultiplier().Quo(p, q, y)
	return
}

// Equal returns true if a and other hold the same coefficients and degrees.
func (a *Approximant) Equal(other *Approximant) bool {
	if a == nil || other == nil {
		return a == other
	}
	// Values, not pointers: cmp would otherwise call this method again.
	return cmp.Equal(*a, *other)
}

// EqualWithin returns true if a and other have the same degrees and their
// coefficients differ by at most delta in modulus.
func (a *Approximant) EqualWithin(other *Approximant, delta float64) bool {
	if a == nil || other == nil {
		return a == other
	}
	return cmp.Equal(*a, *other, cmp.Comparer(func(x, y complex128) bool {
		return cmplx.Abs(x-y) <= delta
	}))
}

func (a *Approximant) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "degree %v", a.Degree)
	if a.Reduced() {
		fmt.Fprintf(&sb, " (reduced from %v)", a.Requested)
	}
	fmt.Fprintf(&sb, "\n  p(x) = %s\n  q(x) = %s", FormatPolynomial(a.Numerator, a.Real), FormatPolynomial(a.Denominator, a.Real))
	return sb.String()
}

// FormatPolynomial formats the coefficients as c0 + c1·x + c2·x^2 + ...
// If realOnly is true only the real parts are printed.
func FormatPolynomial(coeffs []complex128, realOnly bool) string {
	if len(coeffs) == 0 {
		return "0"
	}
	terms := make([]string, len(coeffs))
	for i, c := range coeffs {
		var s string
		if realOnly {
			s = fmt.Sprintf("%.16g", real(c))
		} else {
			s = fmt.Sprintf("%.16g", c)
		}
		switch i {
		case 0:
			terms[i] = s
		case 1:
			terms[i] = s + "·x"
		default:
			terms[i] = fmt.Sprintf("%s·x^%d", s, i)
		}
	}
	return strings.Join(terms, " + ")
}

// horner evaluates the polynomial with ascending coefficients p at x.
func horner(p []complex128, x complex128) (y complex128) {
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}
	return
}
