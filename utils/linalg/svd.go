package linalg

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// machineEpsilon is the float64 unit roundoff times two.
const machineEpsilon = 2.220446049250313e-16

// maxSweeps caps the number of Jacobi sweeps.
const maxSweeps = 100

// SVD stores the singular values and the full set of right singular vectors of a matrix.
type SVD struct {
	// Values holds the min(rows, cols) singular values in decreasing order.
	Values []float64
	// V is the cols×cols unitary matrix whose k-th column is the right singular
	// vector of Values[k]. Columns past len(Values) span the null space.
	V *Matrix
}

// FactorizeSVD computes the singular value decomposition of a with full right
// singular vectors. Real matrices are factorized with gonum's LAPACK port,
// complex matrices with a one-sided Jacobi iteration.
func FactorizeSVD(a *Matrix) (*SVD, error) {
	if a.rows == 0 || a.cols == 0 {
		return &SVD{Values: []float64{}, V: Identity(a.cols)}, nil
	}
	if a.IsReal() {
		return realSVD(a)
	}
	return jacobiSVD(a)
}

// Rank returns the number of singular values strictly larger than tol.
func (s *SVD) Rank(tol float64) (rank int) {
	for _, v := range s.Values {
		if v > tol {
			rank++
		}
	}
	return
}

// RightVector returns a copy of the k-th right singular vector.
func (s *SVD) RightVector(k int) []complex128 {
	return s.V.Column(k)
}

func realSVD(a *Matrix) (*SVD, error) {

	var svd mat.SVD
	if ok := svd.Factorize(mat.NewDense(a.rows, a.cols, a.realData()), mat.SVDFull); !ok {
		return nil, fmt.Errorf("SVD %dx%d: %w", a.rows, a.cols, ErrNoConvergence)
	}

	var vd mat.Dense
	svd.VTo(&vd)

	n := a.cols
	v := &Matrix{rows: n, cols: n, data: make([]complex128, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v.data[i*n+j] = complex(vd.At(i, j), 0)
		}
	}

	return &SVD{Values: svd.Values(nil), V: v}, nil
}

// jacobiSVD implements the one-sided (Hestenes) Jacobi SVD: the columns of a
// working copy of a are rotated until pairwise orthogonal, the rotations being
// accumulated into V. The column norms are then the singular values.
// Complexity: O(rows·cols²) per sweep.
func jacobiSVD(a *Matrix) (*SVD, error) {

	var (
		m, n = a.rows, a.cols
		u    = a.Clone()
		v    = Identity(n)
		tol  = machineEpsilon * float64(m)
	)

	// Pairs whose inner product is below floor are numerically orthogonal
	// whatever their norms, which stops rotations among null columns.
	var frob float64
	for _, x := range a.data {
		frob += real(x)*real(x) + imag(x)*imag(x)
	}
	floor := machineEpsilon * machineEpsilon * frob

	converged := false
	for sweep := 0; sweep < maxSweeps && !converged; sweep++ {
		converged = true
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {

				var alpha, beta float64
				var gamma complex128
				for i := 0; i < m; i++ {
					up, uq := u.data[i*n+p], u.data[i*n+q]
					alpha += real(up)*real(up) + imag(up)*imag(up)
					beta += real(uq)*real(uq) + imag(uq)*imag(uq)
					gamma += cmplx.Conj(up) * uq
				}

				g := cmplx.Abs(gamma)
				if g <= floor || g <= tol*math.Sqrt(alpha)*math.Sqrt(beta) {
					continue
				}
				converged = false

				// Rotation annihilating the real inner product after the
				// phase of column q has been aligned on column p.
				zeta := (beta - alpha) / (2 * g)
				var t float64
				if math.Abs(zeta) > 1e150 {
					t = 1 / (2 * zeta)
				} else {
					t = math.Copysign(1, zeta) / (math.Abs(zeta) + math.Sqrt(1+zeta*zeta))
				}
				c := 1 / math.Sqrt(1+t*t)
				s := c * t
				phase := cmplx.Conj(gamma) / complex(g, 0)

				rotate(u, p, q, c, s, phase)
				rotate(v, p, q, c, s, phase)
			}
		}
	}

	if !converged {
		return nil, fmt.Errorf("Jacobi SVD %dx%d after %d sweeps: %w", m, n, maxSweeps, ErrNoConvergence)
	}

	norms := make([]float64, n)
	for j := 0; j < n; j++ {
		var s float64
		for i := 0; i < m; i++ {
			x := u.data[i*n+j]
			s += real(x)*real(x) + imag(x)*imag(x)
		}
		norms[j] = math.Sqrt(s)
	}

	order := make([]int, n)
	for j := range order {
		order[j] = j
	}
	sort.SliceStable(order, func(i, j int) bool {
		return norms[order[i]] > norms[order[j]]
	})

	k := m
	if n < k {
		k = n
	}

	values := make([]float64, k)
	sorted := &Matrix{rows: n, cols: n, data: make([]complex128, n*n)}
	for j, o := range order {
		if j < k {
			values[j] = norms[o]
		}
		for i := 0; i < n; i++ {
			sorted.data[i*n+j] = v.data[i*n+o]
		}
	}

	return &SVD{Values: values, V: sorted}, nil
}

// rotate applies in place to the columns p and q of x the unitary transform
//
//	x_p <- c*x_p - s*phase*x_q
//	x_q <- s*x_p + c*phase*x_q
func rotate(x *Matrix, p, q int, c, s float64, phase complex128) {
	cc, sc := complex(c, 0), complex(s, 0)
	for i := 0; i < x.rows; i++ {
		xp := x.data[i*x.cols+p]
		xq := x.data[i*x.cols+q] * phase
		x.data[i*x.cols+p] = cc*xp - sc*xq
		x.data[i*x.cols+q] = sc*xp + cc*xq
	}
}
