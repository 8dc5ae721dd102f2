package pade

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Table is the Padé table of a series: Cells[i][j] is the robust type (i, j)
// approximant, or nil if its construction failed.
type Table struct {
	Cells [][]*Approximant
	// Failures maps the degree of each nil cell to the error that caused it.
	Failures map[Degree]error
}

// TableOption configures BuildTable.
type TableOption func(*tableOptions)

type tableOptions struct {
	workers int
	logger  *slog.Logger
}

// WithWorkers sets the maximum number of cells computed concurrently.
// Values smaller than one are ignored.
func WithWorkers(workers int) TableOption {
	return func(o *tableOptions) {
		if workers > 0 {
			o.workers = workers
		}
	}
}

// WithLogger sets the logger on which cell failures are reported at debug level.
func WithLogger(logger *slog.Logger) TableOption {
	return func(o *tableOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// BuildTable returns the Padé table of coeffs for all degrees (i, j) in
// [0, M]×[0, N]. Each cell is computed independently with Approximate and
// cells are evaluated concurrently.
//
// A cell whose construction fails is left nil and its error is recorded in
// Table.Failures. Only invalid table-level inputs are returned as errors.
func BuildTable(coeffs []complex128, M, N int, cfg Config, opts ...TableOption) (*Table, error) {

	if err := validate(len(coeffs), M, N, cfg); err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}

	o := tableOptions{
		workers: runtime.GOMAXPROCS(0),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	t := &Table{
		Cells:    make([][]*Approximant, M+1),
		Failures: map[Degree]error{},
	}
	for i := range t.Cells {
		t.Cells[i] = make([]*Approximant, N+1)
	}

	var mu sync.Mutex

	var eg errgroup.Group
	eg.SetLimit(o.workers)

	for i := 0; i <= M; i++ {
		for j := 0; j <= N; j++ {
			eg.Go(func() error {
				approx, err := Approximate(coeffs, i, j, cfg)
				if err != nil {
					o.logger.Debug("pade table cell failed", "m", i, "n", j, "error", err)
					mu.Lock()
					t.Failures[Degree{M: i, N: j}] = err
					mu.Unlock()
					return nil
				}
				t.Cells[i][j] = approx
				return nil
			})
		}
	}

	// Cells never return errors.
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}

	o.logger.Debug("pade table built", "M", M, "N", N, "failures", len(t.Failures))

	return t, nil
}

// SizeTable returns the effective degrees of the Padé table of coeffs.
// Failed cells are nil.
func SizeTable(coeffs []complex128, M, N int, cfg Config, opts ...TableOption) ([][]*Degree, error) {
	t, err := BuildTable(coeffs, M, N, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return t.Sizes(), nil
}

// M returns the largest numerator degree of the table.
func (t *Table) M() int {
	return len(t.Cells) - 1
}

// N returns the largest denominator degree of the table.
func (t *Table) N() int {
	if len(t.Cells) == 0 {
		return -1
	}
	return len(t.Cells[0]) - 1
}

// At returns the approximant of type (i, j) and the error that prevented its
// construction, if any.
func (t *Table) At(i, j int) (*Approximant, error) {
	if i < 0 || i > t.M() || j < 0 || j > t.N() {
		return nil, fmt.Errorf("cell (%d, %d) of a %v table: %w", i, j, Degree{M: t.M(), N: t.N()}, ErrInvalidDegree)
	}
	if err, ok := t.Failures[Degree{M: i, N: j}]; ok {
		return nil, err
	}
	return t.Cells[i][j], nil
}

// Sizes returns the grid of effective degrees. Failed cells are nil.
func (t *Table) Sizes() [][]*Degree {
	sizes := make([][]*Degree, len(t.Cells))
	for i := range t.Cells {
		sizes[i] = make([]*Degree, len(t.Cells[i]))
		for j, approx := range t.Cells[i] {
			if approx != nil {
				d := approx.Degree
				sizes[i][j] = &d
			}
		}
	}
	return sizes
}

// Best returns the non-failed approximant minimizing score. Ties are broken in
// favor of the first cell in row-major order. NaN scores are skipped.
func (t *Table) Best(score func(*Approximant) float64) (*Approximant, error) {

	var best *Approximant
	bestScore := math.Inf(1)

	for i := range t.Cells {
		for _, approx := range t.Cells[i] {
			if approx == nil {
				continue
			}
			if s := score(approx); !math.IsNaN(s) && (best == nil || s < bestScore) {
				best, bestScore = approx, s
			}
		}
	}

	if best == nil {
		return nil, ErrNoCandidate
	}

	return best, nil
}
