package linalg

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (negative dimensions).
	ErrBadShape = errors.New("linalg: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNoConvergence indicates that an iterative factorization did not converge
	// within its sweep budget.
	ErrNoConvergence = errors.New("linalg: factorization did not converge")
)
