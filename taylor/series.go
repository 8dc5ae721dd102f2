// Package taylor implements truncated power series arithmetic and the
// extraction of Taylor coefficients from coefficient lists, polynomials and
// functions.
//
// A function written against Series, e.g.
//
//	func(x taylor.Series) taylor.Series { return x.Exp().Mul(x.Sin()) }
//
// is expanded about x0 by evaluating it on Variable(x0, order): every
// operation propagates the Taylor coefficients of its result, so no symbolic
// or numerical differentiation is involved.
//
// Operations outside of their domain (e.g. the logarithm of a series with a
// zero constant term) yield NaN coefficients, which Extract reports as ErrDomain.
package taylor

import (
	"math/cmplx"

	"github.com/tuneinsight/robustpade/utils"
)

// Series is a truncated power series: Series[k] is the coefficient of
// (x-x0)^k and the length of the slice is the order of the truncation.
// Binary operations truncate to the smaller order.
type Series []complex128

// Variable returns the series of x about x0 truncated to order terms.
func Variable(x0 complex128, order int) Series {
	s := make(Series, order)
	if order > 0 {
		s[0] = x0
	}
	if order > 1 {
		s[1] = 1
	}
	return s
}

// Constant returns the constant series v truncated to order terms.
func Constant(v complex128, order int) Series {
	s := make(Series, order)
	if order > 0 {
		s[0] = v
	}
	return s
}

// Order returns the number of terms of s.
func (s Series) Order() int {
	return len(s)
}

// Coeffs returns a copy of the coefficients of s.
func (s Series) Coeffs() []complex128 {
	return utils.Clone([]complex128(s))
}

// Add returns s+t.
func (s Series) Add(t Series) Series {
	r := make(Series, utils.Min(len(s), len(t)))
	for k := range r {
		r[k] = s[k] + t[k]
	}
	return r
}

// Sub returns s-t.
func (s Series) Sub(t Series) Series {
	r := make(Series, utils.Min(len(s), len(t)))
	for k := range r {
		r[k] = s[k] - t[k]
	}
	return r
}

// AddConst returns s+v.
func (s Series) AddConst(v complex128) Series {
	r := s.Coeffs()
	if len(r) > 0 {
		r[0] += v
	}
	return r
}

// Scale returns v·s.
func (s Series) Scale(v complex128) Series {
	r := make(Series, len(s))
	for k := range r {
		r[k] = v * s[k]
	}
	return r
}

// Neg returns -s.
func (s Series) Neg() Series {
	return s.Scale(-1)
}

// Mul returns s·t.
func (s Series) Mul(t Series) Series {
	r := make(Series, utils.Min(len(s), len(t)))
	for k := range r {
		var acc complex128
		for j := 0; j <= k; j++ {
			acc += s[j] * t[k-j]
		}
		r[k] = acc
	}
	return r
}

// Div returns s/t. The result is NaN if the constant term of t is zero.
func (s Series) Div(t Series) Series {
	r := make(Series, utils.Min(len(s), len(t)))
	if len(r) == 0 {
		return r
	}
	if t[0] == 0 {
		return nanSeries(len(r))
	}
	for k := range r {
		acc := s[k]
		for j := 1; j <= k; j++ {
			acc -= t[j] * r[k-j]
		}
		r[k] = acc / t[0]
	}
	return r
}

// Inv returns 1/s.
func (s Series) Inv() Series {
	return Constant(1, len(s)).Div(s)
}

// Derivative returns the derivative of s, of order one less.
func (s Series) Derivative() Series {
	if len(s) == 0 {
		return Series{}
	}
	r := make(Series, len(s)-1)
	for k := range r {
		r[k] = complex(float64(k+1), 0) * s[k+1]
	}
	return r
}

// Integral returns the antiderivative of s with constant term c, of order one more.
func (s Series) Integral(c complex128) Series {
	r := make(Series, len(s)+1)
	r[0] = c
	for k := range s {
		r[k+1] = s[k] / complex(float64(k+1), 0)
	}
	return r
}

// Exp returns exp(s).
func (s Series) Exp() Series {
	r := make(Series, len(s))
	if len(r) == 0 {
		return r
	}
	r[0] = cmplx.Exp(s[0])
	for k := 1; k < len(r); k++ {
		var acc complex128
		for j := 1; j <= k; j++ {
			acc += complex(float64(j), 0) * s[j] * r[k-j]
		}
		r[k] = acc / complex(float64(k), 0)
	}
	return r
}

// Log returns the principal logarithm of s. The result is NaN if the constant
// term of s is zero.
func (s Series) Log() Series {
	r := make(Series, len(s))
	if len(r) == 0 {
		return r
	}
	if s[0] == 0 {
		return nanSeries(len(r))
	}
	r[0] = cmplx.Log(s[0])
	for k := 1; k < len(r); k++ {
		acc := s[k]
		for j := 1; j < k; j++ {
			acc -= complex(float64(j)/float64(k), 0) * r[j] * s[k-j]
		}
		r[k] = acc / s[0]
	}
	return r
}

// Pow returns the principal branch of s^p. The result is NaN if the constant
// term of s is zero and p is not a non-negative integer.
func (s Series) Pow(p complex128) Series {

	if imag(p) == 0 && real(p) >= 0 && real(p) == float64(int(real(p))) {
		r := Constant(1, len(s))
		for i := 0; i < int(real(p)); i++ {
			r = r.Mul(s)
		}
		return r
	}

	r := make(Series, len(s))
	if len(r) == 0 {
		return r
	}
	if s[0] == 0 {
		return nanSeries(len(r))
	}

	r[0] = cmplx.Pow(s[0], p)
	for k := 1; k < len(r); k++ {
		var acc complex128
		for j := 1; j <= k; j++ {
			acc += ((p+1)*complex(float64(j), 0) - complex(float64(k), 0)) * s[j] * r[k-j]
		}
		r[k] = acc / (complex(float64(k), 0) * s[0])
	}
	return r
}

// Sqrt returns the principal square root of s.
func (s Series) Sqrt() Series {
	return s.Pow(0.5)
}

// SinCos returns sin(s) and cos(s).
func (s Series) SinCos() (sin, cos Series) {
	return s.trig(-1, cmplx.Sin, cmplx.Cos)
}

// Sin returns sin(s).
func (s Series) Sin() Series {
	sin, _ := s.SinCos()
	return sin
}

// Cos returns cos(s).
func (s Series) Cos() Series {
	_, cos := s.SinCos()
	return cos
}

// Tan returns tan(s).
func (s Series) Tan() Series {
	sin, cos := s.SinCos()
	return sin.Div(cos)
}

// SinhCosh returns sinh(s) and cosh(s).
func (s Series) SinhCosh() (sinh, cosh Series) {
	return s.trig(1, cmplx.Sinh, cmplx.Cosh)
}

// Sinh returns sinh(s).
func (s Series) Sinh() Series {
	sinh, _ := s.SinhCosh()
	return sinh
}

// Cosh returns cosh(s).
func (s Series) Cosh() Series {
	_, cosh := s.SinhCosh()
	return cosh
}

// Tanh returns tanh(s).
func (s Series) Tanh() Series {
	sinh, cosh := s.SinhCosh()
	return sinh.Div(cosh)
}

// Atan returns the principal arctangent of s, i.e. the antiderivative of
// s'/(1+s^2) with constant term atan(s[0]).
func (s Series) Atan() Series {
	if len(s) == 0 {
		return Series{}
	}
	d := s.Derivative().Div(s.Mul(s).AddConst(1)[:len(s)-1])
	return d.Integral(cmplx.Atan(s[0]))
}

// trig computes the pair (f(s), g(s)) with f' = g and g' = sign·f, i.e.
// (sin, cos) for sign = -1 and (sinh, cosh) for sign = 1.
func (s Series) trig(sign float64, f, g func(complex128) complex128) (fs, gs Series) {
	fs = make(Series, len(s))
	gs = make(Series, len(s))
	if len(s) == 0 {
		return
	}
	fs[0], gs[0] = f(s[0]), g(s[0])
	for k := 1; k < len(s); k++ {
		var accF, accG complex128
		for j := 1; j <= k; j++ {
			js := complex(float64(j), 0) * s[j]
			accF += js * gs[k-j]
			accG += js * fs[k-j]
		}
		fs[k] = accF / complex(float64(k), 0)
		gs[k] = complex(sign, 0) * accG / complex(float64(k), 0)
	}
	return
}

func nanSeries(order int) Series {
	r := make(Series, order)
	for k := range r {
		r[k] = cmplx.NaN()
	}
	return r
}
