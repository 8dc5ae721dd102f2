// Package pade implements robust Padé approximation of power series.
//
// The construction follows Gonnet, Güttel and Trefethen, "Robust Padé
// approximation via SVD", SIAM Review 55 (2013). Singular values of the
// Toeplitz block that determines the denominator are compared with a
// tolerance, and whenever the block is numerically rank deficient the degree
// pair is reduced until it is not. The returned approximant therefore has the
// effective degree supported by the data and is free of spurious pole-zero
// pairs (Froissart doublets).
package pade

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tuneinsight/robustpade/utils"
	"github.com/tuneinsight/robustpade/utils/linalg"
)

// machineEpsilon is the float64 machine epsilon.
const machineEpsilon = 0x1p-52

var sqrtEpsilon = math.Sqrt(machineEpsilon)

// Approximate returns the robust type (m, n) Padé approximant of the power
// series whose Taylor coefficients are coeffs, coeffs[i] being the coefficient
// of x^i. Only the m+n+1 leading coefficients are used.
//
// The effective degree of the result may be smaller than (m, n), in which
// case Approximant.Reduced returns true. A reduction always keeps m-n fixed.
//
// Returns ErrInsufficientData, ErrInvalidDegree, ErrInvalidTolerance or
// ErrNonFinite on invalid inputs and ErrDegenerateSeries if the series does not
// admit an approximant at the given tolerance.
func Approximate(coeffs []complex128, m, n int, cfg Config) (*Approximant, error) {

	if err := validate(len(coeffs), m, n, cfg); err != nil {
		return nil, err
	}

	requested := Degree{M: m, N: n}

	c := utils.Clone(coeffs[:m+n+1])
	if !utils.IsFinite(c) {
		return nil, fmt.Errorf("approximant %v: %w", requested, ErrNonFinite)
	}

	isReal := utils.IsReal(c)
	tol := cfg.Tol

	// Absolute singular value cutoff.
	ts := tol * utils.Norm2(c)

	// The approximant is identically zero.
	if utils.MaxAbs(c[:m+1]) <= tol*utils.MaxAbs(c) {
		return nil, fmt.Errorf("approximant %v: leading coefficients vanish: %w", requested, ErrDegenerateSeries)
	}

	var a, b []complex128
	var block *linalg.Matrix
	var z *linalg.Matrix

	for {

		if n == 0 {
			a = utils.Clone(c[:m+1])
			b = []complex128{1}
			break
		}

		var err error
		if z, err = linalg.Toeplitz(c[:m+n+1], m+n+1, n+1); err != nil {
			return nil, fmt.Errorf("approximant %v: %w", requested, err)
		}

		// Rows m+1 to m+n hold the conditions a_k = 0 for k > m.
		if block, err = z.RowSlice(m+1, m+n+1); err != nil {
			return nil, fmt.Errorf("approximant %v: %w", requested, err)
		}

		svd, err := linalg.FactorizeSVD(block)
		if err != nil {
			return nil, fmt.Errorf("approximant %v at degree %v: %w", requested, Degree{M: m, N: n}, err)
		}

		rho := svd.Rank(ts)
		if rho == n {
			b = svd.RightVector(n)
			break
		}

		m -= n - rho
		n = rho

		if m < 0 {
			return nil, fmt.Errorf("approximant %v: rank deficiency exceeds the numerator degree: %w", requested, ErrDegenerateSeries)
		}
	}

	if len(b) > 1 {

		var err error
		if b, err = reweight(block, b); err != nil {
			return nil, fmt.Errorf("approximant %v: %w", requested, err)
		}

		top, err := z.RowSlice(0, m+1)
		if err != nil {
			return nil, fmt.Errorf("approximant %v: %w", requested, err)
		}

		if a, err = top.MulVec(b); err != nil {
			return nil, fmt.Errorf("approximant %v: %w", requested, err)
		}
	}

	// Magnitude of the terms summed into each numerator coefficient, against
	// which cancellation is measured.
	scale := make([]float64, len(a))
	for k := range scale {
		for j := 0; j <= k && j < len(b); j++ {
			scale[k] += cmplx.Abs(c[k-j]) * cmplx.Abs(b[j])
		}
	}

	// Common factor x^lambda.
	lambda := utils.FirstIndex(b, func(x complex128) bool { return cmplx.Abs(x) > tol })
	if lambda < 0 || lambda >= len(a) {
		return nil, fmt.Errorf("approximant %v: vanishing denominator: %w", requested, ErrDegenerateSeries)
	}
	a, b, scale = a[lambda:], b[lambda:], scale[lambda:]

	b = b[:utils.LastIndex(b, func(x complex128) bool { return cmplx.Abs(x) > tol })+1]

	b0 := b[0]
	a = utils.Clone(a)
	b = utils.Clone(b)
	utils.ScaleInPlace(a, 1/b0)
	utils.ScaleInPlace(b, 1/b0)

	// Trailing numerator coefficients at the rounding level of their own
	// terms are dropped. The comparison is scale free, so fast growing or
	// decaying series are trimmed alike.
	last := -1
	for k := len(a) - 1; k >= 0; k-- {
		if cmplx.Abs(a[k]) > tol*scale[k]/cmplx.Abs(b0) {
			last = k
			break
		}
	}
	if last < 0 {
		return nil, fmt.Errorf("approximant %v: vanishing numerator: %w", requested, ErrDegenerateSeries)
	}
	a = a[:last+1]

	if isReal {
		for i := range a {
			a[i] = complex(real(a[i]), 0)
		}
		for i := range b {
			b[i] = complex(real(b[i]), 0)
		}
	}

	return &Approximant{
		Numerator:   a,
		Denominator: b,
		Requested:   requested,
		Degree:      Degree{M: len(a) - 1, N: len(b) - 1},
		Real:        isReal,
	}, nil
}

// FromReal returns the robust type (m, n) Padé approximant of a real series.
func FromReal(coeffs []float64, m, n int, cfg Config) (*Approximant, error) {
	return Approximate(utils.ToComplex128(coeffs), m, n, cfg)
}

// Size returns the effective degree of the robust type (m, n) Padé approximant.
func Size(coeffs []complex128, m, n int, cfg Config) (Degree, error) {
	approx, err := Approximate(coeffs, m, n, cfg)
	if err != nil {
		return Degree{}, err
	}
	return approx.Degree, nil
}

// reweight refines the null vector b of the n×(n+1) block c: with
// D = diag(|b| + sqrt(eps)), it returns D·x normalized, where x is the null
// vector of c·D obtained from a QR decomposition. This improves the
// resolution of the small coefficients of b.
func reweight(c *linalg.Matrix, b []complex128) ([]complex128, error) {

	d := make([]float64, len(b))
	for i := range b {
		d[i] = cmplx.Abs(b[i]) + sqrtEpsilon
	}

	cd := c.Clone()
	if err := cd.ScaleColumns(d); err != nil {
		return nil, err
	}

	x, err := linalg.NullVector(cd)
	if err != nil {
		return nil, err
	}

	for i := range x {
		x[i] *= complex(d[i], 0)
	}

	utils.ScaleInPlace(x, complex(1/utils.Norm2(x), 0))

	return x, nil
}

func validate(k, m, n int, cfg Config) error {
	if m < 0 || n < 0 {
		return fmt.Errorf("degree (%d, %d): %w", m, n, ErrInvalidDegree)
	}
	if k < m+n+1 {
		return fmt.Errorf("degree (%d, %d) needs %d coefficients but %d were given: %w", m, n, m+n+1, k, ErrInsufficientData)
	}
	return cfg.Validate()
}
