// Package linalg implements the small dense complex linear algebra needed by the
// Padé construction: Toeplitz matrices, singular value decomposition with full
// right singular vectors, and QR-based null vectors.
//
// Matrices with a zero imaginary part are factorized with gonum; complex
// matrices use a one-sided Jacobi SVD and Householder reflections.
package linalg

import (
	"fmt"
	"math/cmplx"
)

// Matrix is a dense row-major complex matrix.
type Matrix struct {
	rows, cols int
	data       []complex128
}

// NewMatrix allocates a zero rows×cols matrix.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewMatrix %dx%d: %w", rows, cols, ErrBadShape)
	}
	return &Matrix{rows: rows, cols: cols, data: make([]complex128, rows*cols)}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Matrix {
	m := &Matrix{rows: n, cols: n, data: make([]complex128, n*n)}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Toeplitz returns the rows×cols lower-triangular Toeplitz matrix T with
// T[i][j] = c[i-j] for i >= j and 0 otherwise, i.e. column j holds c shifted down by j.
func Toeplitz(c []complex128, rows, cols int) (*Matrix, error) {
	if len(c) < rows {
		return nil, fmt.Errorf("Toeplitz: %d coefficients for %d rows: %w", len(c), rows, ErrDimensionMismatch)
	}

	m, err := NewMatrix(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Toeplitz: %w", err)
	}

	for i := 0; i < rows; i++ {
		for j := 0; j <= i && j < cols; j++ {
			m.data[i*cols+j] = c[i-j]
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the element (i, j). It panics if the index is out of range.
func (m *Matrix) At(i, j int) complex128 {
	m.check(i, j)
	return m.data[i*m.cols+j]
}

// Set sets the element (i, j) to v. It panics if the index is out of range.
func (m *Matrix) Set(i, j int, v complex128) {
	m.check(i, j)
	m.data[i*m.cols+j] = v
}

func (m *Matrix) check(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Errorf("(%d, %d) in %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange))
	}
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	data := make([]complex128, len(m.data))
	copy(data, m.data)
	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}

// RowSlice returns a copy of the rows [r0, r1).
func (m *Matrix) RowSlice(r0, r1 int) (*Matrix, error) {
	if r0 < 0 || r1 > m.rows || r0 > r1 {
		return nil, fmt.Errorf("RowSlice [%d, %d) of %d rows: %w", r0, r1, m.rows, ErrOutOfRange)
	}
	data := make([]complex128, (r1-r0)*m.cols)
	copy(data, m.data[r0*m.cols:r1*m.cols])
	return &Matrix{rows: r1 - r0, cols: m.cols, data: data}, nil
}

// Column returns a copy of the j-th column.
func (m *Matrix) Column(j int) []complex128 {
	if j < 0 || j >= m.cols {
		panic(fmt.Errorf("column %d of %d: %w", j, m.cols, ErrOutOfRange))
	}
	col := make([]complex128, m.rows)
	for i := range col {
		col[i] = m.data[i*m.cols+j]
	}
	return col
}

// ConjTranspose returns the conjugate transpose of m.
func (m *Matrix) ConjTranspose() *Matrix {
	t := &Matrix{rows: m.cols, cols: m.rows, data: make([]complex128, len(m.data))}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t.data[j*t.cols+i] = cmplx.Conj(m.data[i*m.cols+j])
		}
	}
	return t
}

// MulVec returns m·v.
func (m *Matrix) MulVec(v []complex128) ([]complex128, error) {
	if len(v) != m.cols {
		return nil, fmt.Errorf("MulVec %dx%d by %d: %w", m.rows, m.cols, len(v), ErrDimensionMismatch)
	}
	y := make([]complex128, m.rows)
	for i := 0; i < m.rows; i++ {
		var s complex128
		row := m.data[i*m.cols : (i+1)*m.cols]
		for j := range row {
			s += row[j] * v[j]
		}
		y[i] = s
	}
	return y, nil
}

// Mul returns m·b.
func (m *Matrix) Mul(b *Matrix) (*Matrix, error) {
	if m.cols != b.rows {
		return nil, fmt.Errorf("Mul %dx%d by %dx%d: %w", m.rows, m.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	p := &Matrix{rows: m.rows, cols: b.cols, data: make([]complex128, m.rows*b.cols)}
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			aik := m.data[i*m.cols+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.cols; j++ {
				p.data[i*p.cols+j] += aik * b.data[k*b.cols+j]
			}
		}
	}
	return p, nil
}

// ScaleColumns multiplies in place the j-th column of m by d[j].
func (m *Matrix) ScaleColumns(d []float64) error {
	if len(d) != m.cols {
		return fmt.Errorf("ScaleColumns %d scales for %d columns: %w", len(d), m.cols, ErrDimensionMismatch)
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			m.data[i*m.cols+j] *= complex(d[j], 0)
		}
	}
	return nil
}

// IsReal returns true if every element of m has a zero imaginary part.
func (m *Matrix) IsReal() bool {
	for _, v := range m.data {
		if imag(v) != 0 {
			return false
		}
	}
	return true
}

func (m *Matrix) realData() []float64 {
	r := make([]float64, len(m.data))
	for i, v := range m.data {
		r[i] = real(v)
	}
	return r
}
