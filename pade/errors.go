package pade

import "errors"

var (
	// ErrInsufficientData is returned when fewer than m+n+1 coefficients are supplied.
	ErrInsufficientData = errors.New("pade: insufficient coefficients")

	// ErrInvalidDegree is returned when a requested degree is negative.
	ErrInvalidDegree = errors.New("pade: invalid degree")

	// ErrInvalidTolerance is returned when the tolerance is negative or NaN.
	ErrInvalidTolerance = errors.New("pade: invalid tolerance")

	// ErrNonFinite is returned when a coefficient is NaN or infinite.
	ErrNonFinite = errors.New("pade: non-finite coefficient")

	// ErrDegenerateSeries is returned when no degree pair down to (0, 0) yields an
	// acceptable approximant, e.g. for the zero series.
	ErrDegenerateSeries = errors.New("pade: degenerate series")

	// ErrNoCandidate is returned by Table.Best when no cell can be scored.
	ErrNoCandidate = errors.New("pade: no candidate approximant")

	// ErrRootsFailed is returned when the polynomial root finder does not converge.
	ErrRootsFailed = errors.New("pade: root finding did not converge")
)
