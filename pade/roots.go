package pade

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/tuneinsight/robustpade/utils"
	"gonum.org/v1/gonum/mat"
)

// maxRootIterations caps the number of Durand-Kerner iterations.
const maxRootIterations = 1000

// Poles returns the roots of the denominator, sorted by increasing modulus.
func (a *Approximant) Poles() ([]complex128, error) {
	poles, err := Roots(a.Denominator)
	if err != nil {
		return nil, fmt.Errorf("poles of %v approximant: %w", a.Degree, err)
	}
	return poles, nil
}

// Zeros returns the roots of the numerator, sorted by increasing modulus.
func (a *Approximant) Zeros() ([]complex128, error) {
	zeros, err := Roots(a.Numerator)
	if err != nil {
		return nil, fmt.Errorf("zeros of %v approximant: %w", a.Degree, err)
	}
	return zeros, nil
}

// Residues returns the poles and the residues p(z)/q'(z) at each of them.
// The residues are only meaningful at simple poles.
func (a *Approximant) Residues() (poles, residues []complex128, err error) {

	if poles, err = a.Poles(); err != nil {
		return
	}

	dq := derivative(a.Denominator)

	residues = make([]complex128, len(poles))
	for i, z := range poles {
		residues[i] = horner(a.Numerator, z) / horner(dq, z)
	}

	return
}

// Roots returns the roots of the polynomial with ascending coefficients p,
// sorted by increasing modulus then argument. Trailing zero coefficients are
// ignored. Real polynomials are solved as the eigenvalues of their companion
// matrix, complex ones with the Durand-Kerner iteration.
func Roots(p []complex128) ([]complex128, error) {

	deg := utils.LastIndex(p, func(x complex128) bool { return x != 0 })
	if deg <= 0 {
		return []complex128{}, nil
	}

	monic := make([]complex128, deg)
	for i := range monic {
		monic[i] = p[i] / p[deg]
	}

	var roots []complex128
	var err error
	if utils.IsReal(monic) {
		roots, err = companionRoots(monic)
	} else {
		roots, err = durandKerner(monic)
	}

	if err != nil {
		return nil, err
	}

	sort.Slice(roots, func(i, j int) bool {
		ri, rj := cmplx.Abs(roots[i]), cmplx.Abs(roots[j])
		if ri != rj {
			return ri < rj
		}
		return cmplx.Phase(roots[i]) < cmplx.Phase(roots[j])
	})

	return roots, nil
}

// companionRoots returns the eigenvalues of the companion matrix of the real
// monic polynomial x^d + monic[d-1]·x^{d-1} + ... + monic[0].
func companionRoots(monic []complex128) ([]complex128, error) {

	d := len(monic)

	c := mat.NewDense(d, d, nil)
	for j := 0; j < d; j++ {
		c.Set(0, j, -real(monic[d-1-j]))
	}
	for i := 1; i < d; i++ {
		c.Set(i, i-1, 1)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(c, mat.EigenNone); !ok {
		return nil, fmt.Errorf("companion matrix of degree %d: %w", d, ErrRootsFailed)
	}

	return eig.Values(nil), nil
}

// durandKerner finds simultaneously all the roots of the complex monic
// polynomial x^d + monic[d-1]·x^{d-1} + ... + monic[0] with the
// Weierstrass iteration z_k <- z_k - P(z_k) / prod_{j != k} (z_k - z_j).
func durandKerner(monic []complex128) ([]complex128, error) {

	d := len(monic)

	eval := func(x complex128) complex128 {
		y := complex(1, 0)
		for i := d - 1; i >= 0; i-- {
			y = y*x + monic[i]
		}
		return y
	}

	// Cauchy bound on the moduli of the roots.
	radius := 1 + utils.MaxAbs(monic)

	z := make([]complex128, d)
	for k := range z {
		z[k] = cmplx.Rect(radius, 2*math.Pi*float64(k)/float64(d)+0.4)
	}

	var step float64
	for iter := 0; iter < maxRootIterations; iter++ {

		step = 0
		for k := range z {

			den := complex(1, 0)
			for j := range z {
				if j != k {
					den *= z[k] - z[j]
				}
			}

			if den == 0 {
				den = complex(sqrtEpsilon, 0)
			}

			delta := eval(z[k]) / den
			z[k] -= delta

			step = math.Max(step, cmplx.Abs(delta)/math.Max(1, cmplx.Abs(z[k])))
		}

		if step <= 4*machineEpsilon {
			return z, nil
		}
	}

	// Multiple roots converge linearly to a limiting accuracy of about
	// eps^(1/multiplicity).
	if step <= sqrtEpsilon {
		return z, nil
	}

	return nil, fmt.Errorf("Durand-Kerner of degree %d after %d iterations: %w", d, maxRootIterations, ErrRootsFailed)
}

// derivative returns the coefficients of p'.
func derivative(p []complex128) []complex128 {
	if len(p) <= 1 {
		return []complex128{0}
	}
	dp := make([]complex128, len(p)-1)
	for i := range dp {
		dp[i] = complex(float64(i+1), 0) * p[i+1]
	}
	return dp
}
