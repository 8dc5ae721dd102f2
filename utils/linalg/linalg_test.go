package linalg_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/robustpade/utils/linalg"
	"github.com/tuneinsight/robustpade/utils/sampling"
	"gonum.org/v1/gonum/mat"
)

func randomMatrix(t *testing.T, rows, cols int, complexValued bool) *linalg.Matrix {
	prng, err := sampling.NewSeededPRNG("linalg")
	require.NoError(t, err)

	m, err := linalg.NewMatrix(rows, cols)
	require.NoError(t, err)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if complexValued {
				m.Set(i, j, sampling.RandComplex128(prng, -1, 1))
			} else {
				m.Set(i, j, complex(sampling.RandFloat64(prng, -1, 1), 0))
			}
		}
	}
	return m
}

func requireMatrixEqual(t *testing.T, want, have *linalg.Matrix, delta float64) {
	require.Equal(t, want.Rows(), have.Rows())
	require.Equal(t, want.Cols(), have.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			require.InDelta(t, 0, cmplx.Abs(want.At(i, j)-have.At(i, j)), delta, "(%d, %d)", i, j)
		}
	}
}

func requireUnitary(t *testing.T, q *linalg.Matrix, delta float64) {
	qhq, err := q.ConjTranspose().Mul(q)
	require.NoError(t, err)
	requireMatrixEqual(t, linalg.Identity(q.Cols()), qhq, delta)
}

func TestMatrix(t *testing.T) {

	t.Run("Toeplitz", func(t *testing.T) {
		c := []complex128{1, 2, 3, 4}
		m, err := linalg.Toeplitz(c, 4, 3)
		require.NoError(t, err)

		want := [][]complex128{
			{1, 0, 0},
			{2, 1, 0},
			{3, 2, 1},
			{4, 3, 2},
		}
		for i := range want {
			for j := range want[i] {
				require.Equal(t, want[i][j], m.At(i, j))
			}
		}

		_, err = linalg.Toeplitz(c, 5, 3)
		require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	})

	t.Run("NewMatrix/BadShape", func(t *testing.T) {
		_, err := linalg.NewMatrix(-1, 2)
		require.ErrorIs(t, err, linalg.ErrBadShape)
	})

	t.Run("At/OutOfRange", func(t *testing.T) {
		require.Panics(t, func() { linalg.Identity(2).At(2, 0) })
	})

	t.Run("RowSlice", func(t *testing.T) {
		m, err := linalg.Toeplitz([]complex128{1, 2, 3}, 3, 2)
		require.NoError(t, err)

		s, err := m.RowSlice(1, 3)
		require.NoError(t, err)
		require.Equal(t, 2, s.Rows())
		require.Equal(t, []complex128{2, 3}, s.Column(0))
		require.Equal(t, []complex128{1, 2}, s.Column(1))

		_, err = m.RowSlice(2, 4)
		require.ErrorIs(t, err, linalg.ErrOutOfRange)
	})

	t.Run("MulVec", func(t *testing.T) {
		m, err := linalg.Toeplitz([]complex128{1, 1i, -1}, 3, 2)
		require.NoError(t, err)

		y, err := m.MulVec([]complex128{1, 2})
		require.NoError(t, err)
		require.Equal(t, []complex128{1, 1i + 2, -1 + 2i}, y)

		_, err = m.MulVec([]complex128{1})
		require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	})

	t.Run("ScaleColumns", func(t *testing.T) {
		m := linalg.Identity(2)
		require.NoError(t, m.ScaleColumns([]float64{2, 3}))
		require.Equal(t, complex(2, 0), m.At(0, 0))
		require.Equal(t, complex(3, 0), m.At(1, 1))
		require.ErrorIs(t, m.ScaleColumns([]float64{1}), linalg.ErrDimensionMismatch)
	})

	t.Run("ConjTranspose", func(t *testing.T) {
		m := randomMatrix(t, 3, 5, true)
		mh := m.ConjTranspose()
		require.Equal(t, 5, mh.Rows())
		require.Equal(t, 3, mh.Cols())
		require.Equal(t, cmplx.Conj(m.At(1, 4)), mh.At(4, 1))
		requireMatrixEqual(t, m, mh.ConjTranspose(), 0)
	})
}

func TestSVD(t *testing.T) {

	for _, tc := range []struct {
		name          string
		rows, cols    int
		complexValued bool
	}{
		{"Real/Wide", 3, 5, false},
		{"Real/Tall", 6, 4, false},
		{"Complex/Wide", 3, 5, true},
		{"Complex/Tall", 6, 4, true},
		{"Complex/Square", 4, 4, true},
	} {
		t.Run(tc.name, func(t *testing.T) {

			a := randomMatrix(t, tc.rows, tc.cols, tc.complexValued)

			svd, err := linalg.FactorizeSVD(a)
			require.NoError(t, err)

			k := min(tc.rows, tc.cols)
			require.Len(t, svd.Values, k)
			for i := 1; i < k; i++ {
				require.GreaterOrEqual(t, svd.Values[i-1], svd.Values[i])
			}

			requireUnitary(t, svd.V, 1e-12)

			// ‖a·v_j‖ = σ_j and a·v_j = 0 past the rank.
			for j := 0; j < tc.cols; j++ {
				av, err := a.MulVec(svd.RightVector(j))
				require.NoError(t, err)

				var norm float64
				for _, x := range av {
					norm += real(x)*real(x) + imag(x)*imag(x)
				}

				sigma := 0.0
				if j < k {
					sigma = svd.Values[j]
				}
				require.InDelta(t, sigma*sigma, norm, 1e-12)
			}
		})
	}

	t.Run("JacobiMatchesGonum", func(t *testing.T) {

		// A real matrix embedded in a complex one with a global phase has the
		// same singular values.
		a := randomMatrix(t, 4, 6, false)

		var ref mat.SVD
		dense := mat.NewDense(4, 6, nil)
		for i := 0; i < 4; i++ {
			for j := 0; j < 6; j++ {
				dense.Set(i, j, real(a.At(i, j)))
			}
		}
		require.True(t, ref.Factorize(dense, mat.SVDNone))

		rotated := a.Clone()
		phase := cmplx.Exp(0.3i)
		for i := 0; i < 4; i++ {
			for j := 0; j < 6; j++ {
				rotated.Set(i, j, a.At(i, j)*phase)
			}
		}

		svd, err := linalg.FactorizeSVD(rotated)
		require.NoError(t, err)
		require.InDeltaSlice(t, ref.Values(nil), svd.Values, 1e-13)
	})

	t.Run("Rank", func(t *testing.T) {
		// Two identical columns.
		a, err := linalg.Toeplitz([]complex128{1, 0, 0}, 3, 1)
		require.NoError(t, err)
		b, err := linalg.NewMatrix(3, 2)
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			b.Set(i, 0, a.At(i, 0)*1i)
			b.Set(i, 1, a.At(i, 0)*1i)
		}

		svd, err := linalg.FactorizeSVD(b)
		require.NoError(t, err)
		require.Equal(t, 1, svd.Rank(1e-14))
		require.InDelta(t, 1.4142135623730951, svd.Values[0], 1e-15)
	})

	t.Run("Empty", func(t *testing.T) {
		a, err := linalg.NewMatrix(0, 2)
		require.NoError(t, err)
		svd, err := linalg.FactorizeSVD(a)
		require.NoError(t, err)
		require.Empty(t, svd.Values)
		require.Equal(t, 2, svd.V.Cols())
	})
}

func TestQR(t *testing.T) {

	for _, tc := range []struct {
		name          string
		rows, cols    int
		complexValued bool
	}{
		{"Real", 5, 3, false},
		{"Complex", 5, 3, true},
		{"Complex/Square", 4, 4, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := randomMatrix(t, tc.rows, tc.cols, tc.complexValued)

			qr, err := linalg.FactorizeQR(a)
			require.NoError(t, err)

			requireUnitary(t, qr.Q, 1e-13)

			for i := 0; i < tc.rows; i++ {
				for j := 0; j < i && j < tc.cols; j++ {
					require.InDelta(t, 0, cmplx.Abs(qr.R.At(i, j)), 1e-13)
				}
			}

			qrProd, err := qr.Q.Mul(qr.R)
			require.NoError(t, err)
			requireMatrixEqual(t, a, qrProd, 1e-13)
		})
	}

	t.Run("Wide", func(t *testing.T) {
		_, err := linalg.FactorizeQR(randomMatrix(t, 2, 3, true))
		require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	})

	for _, complexValued := range []bool{false, true} {
		name := "NullVector/Real"
		if complexValued {
			name = "NullVector/Complex"
		}
		t.Run(name, func(t *testing.T) {
			a := randomMatrix(t, 3, 4, complexValued)

			x, err := linalg.NullVector(a)
			require.NoError(t, err)
			require.Len(t, x, 4)

			var norm float64
			for _, v := range x {
				norm += real(v)*real(v) + imag(v)*imag(v)
			}
			require.InDelta(t, 1, norm, 1e-13)

			ax, err := a.MulVec(x)
			require.NoError(t, err)
			for _, v := range ax {
				require.InDelta(t, 0, cmplx.Abs(v), 1e-13)
			}
		})
	}

	t.Run("NullVector/Square", func(t *testing.T) {
		_, err := linalg.NullVector(linalg.Identity(3))
		require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	})
}
