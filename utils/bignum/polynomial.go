package bignum

import (
	"fmt"
	"math/big"
)

// Polynomial is a polynomial in the monomial basis with arbitrary precision
// complex coefficients, Coeffs[i] being the coefficient of x^i.
// A nil coefficient is treated as zero.
type Polynomial struct {
	Coeffs []*Complex
}

// NewPolynomial creates a new polynomial from the input coefficients.
// coeffs: []complex128, []float64, []*Complex or []*big.Float
func NewPolynomial(coeffs interface{}) Polynomial {
	var coefficients []*Complex

	switch coeffs := coeffs.(type) {
	case []complex128:
		coefficients = make([]*Complex, len(coeffs))
		for i, c := range coeffs {
			coefficients[i] = &Complex{
				new(big.Float).SetFloat64(real(c)),
				new(big.Float).SetFloat64(imag(c)),
			}
		}
	case []float64:
		coefficients = make([]*Complex, len(coeffs))
		for i, c := range coeffs {
			coefficients[i] = &Complex{
				new(big.Float).SetFloat64(c),
				new(big.Float),
			}
		}
	case []*Complex:
		coefficients = make([]*Complex, len(coeffs))
		copy(coefficients, coeffs)
	case []*big.Float:
		coefficients = make([]*Complex, len(coeffs))
		for i, c := range coeffs {
			if c != nil {
				coefficients[i] = &Complex{
					new(big.Float).Set(c),
					new(big.Float),
				}
			}
		}
	default:
		panic(fmt.Sprintf("invalid coefficient type, allowed types are []{complex128, float64, *Complex, *big.Float} but is %T", coeffs))
	}

	return Polynomial{Coeffs: coefficients}
}

// Clone returns a deep copy of the polynomial.
func (p Polynomial) Clone() Polynomial {
	Coeffs := make([]*Complex, len(p.Coeffs))
	for i := range Coeffs {
		if p.Coeffs[i] != nil {
			Coeffs[i] = p.Coeffs[i].Clone()
		}
	}
	return Polynomial{Coeffs: Coeffs}
}

// Degree returns the degree of the polynomial.
func (p Polynomial) Degree() int {
	return len(p.Coeffs) - 1
}

// Complex128 returns the coefficients rounded to complex128.
func (p Polynomial) Complex128() (coeffs []complex128) {
	coeffs = make([]complex128, len(p.Coeffs))
	for i, c := range p.Coeffs {
		if c != nil {
			coeffs[i] = c.Complex128()
		}
	}
	return
}

// Evaluate takes x a *big.Float, *Complex, float64 or complex128 and returns y = P(x).
// The precision of x is used as reference precision for y (64 bits for float64 and complex128).
func (p Polynomial) Evaluate(x interface{}) (y *Complex) {

	var xcmplx *Complex
	switch x := x.(type) {
	case *big.Float:
		xcmplx = ToComplex(x, x.Prec())
	case *Complex:
		xcmplx = ToComplex(x, x.Prec())
	case complex128:
		xcmplx = ToComplex(x, 64)
	case float64:
		xcmplx = ToComplex(x, 64)
	default:
		panic(fmt.Errorf("cannot Evaluate: accepted x.(type) are *big.Float, *Complex, float64 and complex128 but x is %T", x))
	}

	y = NewComplex().SetPrec(xcmplx.Prec())

	mul := NewComplexMultiplier()

	// Horner
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		mul.Mul(y, xcmplx, y)
		if p.Coeffs[i] != nil {
			y.Add(y, p.Coeffs[i])
		}
	}

	return
}
