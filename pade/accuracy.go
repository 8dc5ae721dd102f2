package pade

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/montanaflynn/stats"
)

// AccuracyStats stores statistics about the absolute error of an approximant
// against reference values.
type AccuracyStats struct {
	Points int

	MaxError    float64
	MeanError   float64
	MedianError float64
	P95Error    float64
	STDError    float64

	// MinPrecision is -log10(MaxError), the number of correct decimal digits
	// at the worst point.
	MinPrecision float64
	// MeanPrecision is the mean of -log10 of the pointwise errors.
	MeanPrecision float64
}

func (s AccuracyStats) String() string {
	return fmt.Sprintf(`
┌──────────┬───────────┐
│ Points   │ %9d │
├──────────┼───────────┤
│ MAX Err  │ %9.2e │
│ AVG Err  │ %9.2e │
│ MED Err  │ %9.2e │
│ P95 Err  │ %9.2e │
│ STD Err  │ %9.2e │
├──────────┼───────────┤
│ MIN Prec │ %9.2f │
│ AVG Prec │ %9.2f │
└──────────┴───────────┘
`,
		s.Points,
		s.MaxError, s.MeanError, s.MedianError, s.P95Error, s.STDError,
		s.MinPrecision, s.MeanPrecision)
}

// Accuracy evaluates the approximant at the given points and compares the
// result with want, returning the statistics of the absolute errors.
// Exact matches are counted with a precision of 17 digits.
func Accuracy(approx *Approximant, want func(x complex128) complex128, points []complex128) (s AccuracyStats, err error) {

	if len(points) == 0 {
		return s, fmt.Errorf("accuracy: no evaluation point: %w", stats.EmptyInputErr)
	}

	errs := make(stats.Float64Data, len(points))
	prec := make(stats.Float64Data, len(points))

	for i, x := range points {
		e := cmplx.Abs(approx.Evaluate(x) - want(x))
		if math.IsNaN(e) {
			return s, fmt.Errorf("accuracy at x=%v: %w", x, ErrNonFinite)
		}
		errs[i] = e
		prec[i] = digits(e)
	}

	s.Points = len(points)

	if s.MaxError, err = errs.Max(); err != nil {
		return
	}
	if s.MeanError, err = errs.Mean(); err != nil {
		return
	}
	if s.MedianError, err = errs.Median(); err != nil {
		return
	}
	if s.P95Error, err = errs.Percentile(95); err != nil {
		return
	}
	if s.STDError, err = errs.StandardDeviation(); err != nil {
		return
	}
	if s.MeanPrecision, err = prec.Mean(); err != nil {
		return
	}

	s.MinPrecision = digits(s.MaxError)

	return s, nil
}

// RealAccuracy is Accuracy for a real function sampled at real points.
func RealAccuracy(approx *Approximant, want func(x float64) float64, points []float64) (AccuracyStats, error) {
	cpoints := make([]complex128, len(points))
	for i := range points {
		cpoints[i] = complex(points[i], 0)
	}
	return Accuracy(approx, func(x complex128) complex128 {
		return complex(want(real(x)), 0)
	}, cpoints)
}

// Linspace returns n evenly spaced points in [a, b].
func Linspace(a, b float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	if n == 1 {
		return []float64{a}
	}
	x := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := range x {
		x[i] = a + float64(i)*step
	}
	x[n-1] = b
	return x
}

func digits(e float64) float64 {
	if e == 0 {
		return 17
	}
	return math.Min(17, -math.Log10(e))
}
