// Package utils implements small generic helpers shared by the numerical packages.
package utils

import (
	"math"
	"math/cmplx"

	"golang.org/x/exp/constraints"
)

// Min returns the minimum value of the input.
func Min[V constraints.Ordered](a, b V) V {
	if a <= b {
		return a
	}
	return b
}

// Max returns the maximum value of the input.
func Max[V constraints.Ordered](a, b V) V {
	if a >= b {
		return a
	}
	return b
}

// MaxAbs returns the infinity norm of v.
func MaxAbs(v []complex128) (max float64) {
	for i := range v {
		max = math.Max(max, cmplx.Abs(v[i]))
	}
	return
}

// Norm2 returns the Euclidean norm of v.
// The accumulation is scaled to avoid overflow and underflow.
func Norm2(v []complex128) float64 {
	scale := MaxAbs(v)
	if scale == 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		return scale
	}
	var sum float64
	for i := range v {
		re, im := real(v[i])/scale, imag(v[i])/scale
		sum += re*re + im*im
	}
	return scale * math.Sqrt(sum)
}

// IsReal returns true if all the elements of v have a zero imaginary part.
func IsReal(v []complex128) bool {
	for i := range v {
		if imag(v[i]) != 0 {
			return false
		}
	}
	return true
}

// IsFinite returns true if no element of v has a NaN or infinite component.
func IsFinite(v []complex128) bool {
	for i := range v {
		if cmplx.IsNaN(v[i]) || cmplx.IsInf(v[i]) {
			return false
		}
	}
	return true
}

// ToComplex128 returns a new slice with the elements of v converted to complex128.
func ToComplex128[V constraints.Float](v []V) (c []complex128) {
	c = make([]complex128, len(v))
	for i := range v {
		c[i] = complex(float64(v[i]), 0)
	}
	return
}

// ScaleInPlace multiplies each element of v by s.
func ScaleInPlace(v []complex128, s complex128) {
	for i := range v {
		v[i] *= s
	}
}
