package linalg

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// QR stores the full QR decomposition a = Q·R of a rows×cols matrix with rows >= cols.
type QR struct {
	// Q is the rows×rows unitary factor.
	Q *Matrix
	// R is the rows×cols upper triangular factor.
	R *Matrix
}

// FactorizeQR computes the full QR decomposition of a, which must have at least
// as many rows as columns. Real matrices are factorized with gonum, complex
// matrices with Householder reflections.
func FactorizeQR(a *Matrix) (*QR, error) {
	if a.rows < a.cols {
		return nil, fmt.Errorf("QR %dx%d: rows < cols: %w", a.rows, a.cols, ErrDimensionMismatch)
	}
	if a.rows == 0 {
		return &QR{Q: Identity(0), R: a.Clone()}, nil
	}
	if a.IsReal() {
		return realQR(a), nil
	}
	return householderQR(a), nil
}

// NullVector returns a unit vector x with a·x ≈ 0 for a rows×cols matrix with
// rows < cols: it is the last column of the unitary factor of the QR
// decomposition of the conjugate transpose of a.
func NullVector(a *Matrix) ([]complex128, error) {
	if a.rows >= a.cols {
		return nil, fmt.Errorf("NullVector %dx%d: needs rows < cols: %w", a.rows, a.cols, ErrDimensionMismatch)
	}
	qr, err := FactorizeQR(a.ConjTranspose())
	if err != nil {
		return nil, fmt.Errorf("NullVector: %w", err)
	}
	return qr.Q.Column(a.cols - 1), nil
}

func realQR(a *Matrix) *QR {

	var qr mat.QR
	qr.Factorize(mat.NewDense(a.rows, a.cols, a.realData()))

	var q, r mat.Dense
	qr.QTo(&q)
	qr.RTo(&r)

	return &QR{Q: fromDense(&q), R: fromDense(&r)}
}

func fromDense(d *mat.Dense) *Matrix {
	rows, cols := d.Dims()
	m := &Matrix{rows: rows, cols: cols, data: make([]complex128, rows*cols)}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.data[i*cols+j] = complex(d.At(i, j), 0)
		}
	}
	return m
}

// householderQR reduces a to upper triangular form with the reflections
// H_k = I - 2·v·vᴴ, accumulating Q = H_0·H_1·…
// Complexity: O(rows²·cols) time, O(rows²) memory.
func householderQR(a *Matrix) *QR {

	var (
		m, n = a.rows, a.cols
		r    = a.Clone()
		q    = Identity(m)
		v    = make([]complex128, m)
	)

	for k := 0; k < n && k < m-1; k++ {

		// ‖R[k:m, k]‖
		var norm float64
		for i := k; i < m; i++ {
			x := r.data[i*n+k]
			norm = math.Hypot(norm, cmplx.Abs(x))
		}
		if norm == 0 {
			continue
		}

		// alpha = -e^{i·arg(x_k)}·‖x‖ avoids cancellation in v_k.
		xk := r.data[k*n+k]
		phase := complex(1, 0)
		if xk != 0 {
			phase = xk / complex(cmplx.Abs(xk), 0)
		}
		alpha := -phase * complex(norm, 0)

		for i := range v {
			v[i] = 0
		}
		for i := k; i < m; i++ {
			v[i] = r.data[i*n+k]
		}
		v[k] -= alpha

		var vnorm float64
		for i := k; i < m; i++ {
			vnorm = math.Hypot(vnorm, cmplx.Abs(v[i]))
		}
		if vnorm == 0 {
			continue
		}
		for i := k; i < m; i++ {
			v[i] /= complex(vnorm, 0)
		}

		// R <- H·R
		for j := 0; j < n; j++ {
			var s complex128
			for i := k; i < m; i++ {
				s += cmplx.Conj(v[i]) * r.data[i*n+j]
			}
			s *= 2
			for i := k; i < m; i++ {
				r.data[i*n+j] -= v[i] * s
			}
		}

		// Q <- Q·H
		for i := 0; i < m; i++ {
			var s complex128
			for l := k; l < m; l++ {
				s += q.data[i*m+l] * v[l]
			}
			s *= 2
			for l := k; l < m; l++ {
				q.data[i*m+l] -= s * cmplx.Conj(v[l])
			}
		}

		// Exact zeros below the diagonal.
		r.data[k*n+k] = alpha
		for i := k + 1; i < m; i++ {
			r.data[i*n+k] = 0
		}
	}

	return &QR{Q: q, R: r}
}
