package pade

import (
	"fmt"
	"math"
)

// DefaultTolerance is the default relative singular value cutoff, about 45
// float64 machine epsilons.
const DefaultTolerance = 1e-14

// Config stores the parameters of the robust construction.
type Config struct {
	// Tol is the relative tolerance. Singular values below Tol·‖c‖₂, where c is
	// the window of the m+n+1 leading coefficients, are treated as zero and
	// denominator coefficients below Tol are discarded. Tol = 0 yields the
	// classical Padé approximant.
	Tol float64 `json:"tol" yaml:"tol"`
}

// DefaultConfig returns the Config with the DefaultTolerance.
func DefaultConfig() Config {
	return Config{Tol: DefaultTolerance}
}

// Validate returns an error if the Config cannot be used.
func (cfg Config) Validate() error {
	if math.IsNaN(cfg.Tol) || cfg.Tol < 0 || math.IsInf(cfg.Tol, 0) {
		return fmt.Errorf("tol=%v: %w", cfg.Tol, ErrInvalidTolerance)
	}
	return nil
}
