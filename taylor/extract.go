package taylor

import (
	"fmt"

	"github.com/tuneinsight/robustpade/utils"
	"github.com/tuneinsight/robustpade/utils/bignum"
)

// Func is a function written against truncated power series.
type Func func(x Series) Series

// Expansion is a Func expanded about X0.
type Expansion struct {
	F  Func
	X0 complex128
}

// Extract returns at least order Taylor coefficients of source, zero padded
// if source has fewer terms. Supported sources are:
//   - []float64, []complex128 and Series, taken as coefficient lists;
//   - bignum.Polynomial and *bignum.Polynomial, in the monomial basis;
//   - Func, expanded about 0;
//   - Expansion, expanded about X0;
//   - *Function, the series of a catalog function about 0.
func Extract(source any, order int) ([]complex128, error) {

	if order < 0 {
		return nil, fmt.Errorf("extract %d coefficients: %w", order, ErrInvalidOrder)
	}

	var coeffs []complex128

	switch source := source.(type) {
	case []float64:
		coeffs = utils.ToComplex128(source)
	case []complex128:
		coeffs = utils.Clone(source)
	case Series:
		coeffs = source.Coeffs()
	case bignum.Polynomial:
		coeffs = source.Complex128()
	case *bignum.Polynomial:
		if source == nil {
			return nil, fmt.Errorf("extract from nil polynomial: %w", ErrUnsupportedSource)
		}
		coeffs = source.Complex128()
	case Func:
		return expand(source, 0, order)
	case func(Series) Series:
		return expand(source, 0, order)
	case Expansion:
		return expand(source.F, source.X0, order)
	case *Function:
		if source == nil {
			return nil, fmt.Errorf("extract from nil function: %w", ErrUnsupportedSource)
		}
		return expand(source.Series, 0, order)
	default:
		return nil, fmt.Errorf("extract from %T: %w", source, ErrUnsupportedSource)
	}

	if coeffs == nil {
		coeffs = []complex128{}
	}

	return utils.Pad(coeffs, order), nil
}

func expand(f Func, x0 complex128, order int) ([]complex128, error) {

	if f == nil {
		return nil, fmt.Errorf("expand nil function: %w", ErrUnsupportedSource)
	}

	s := f(Variable(x0, order))
	if len(s) < order {
		return nil, fmt.Errorf("expand about %v: %d coefficients for order %d: %w", x0, len(s), order, ErrInvalidOrder)
	}

	coeffs := s.Coeffs()[:order]
	if !utils.IsFinite(coeffs) {
		return nil, fmt.Errorf("expand about %v: %w", x0, ErrDomain)
	}

	return coeffs, nil
}
