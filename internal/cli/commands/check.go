package commands

import (
	"errors"
	"fmt"
	"math"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/tuneinsight/robustpade/internal/cli/config"
	"github.com/tuneinsight/robustpade/pade"
	"github.com/tuneinsight/robustpade/taylor"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	var name string
	var m, n, points int
	var radius float64

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Measure the accuracy of an approximant against a catalog function",
		Long: `Expand a catalog function about --at, compute its robust Padé approximant
and compare it with a high precision evaluation of the function on a uniform
grid of [at-radius, at+radius].

The radius defaults to half the distance from --at to the boundary of the disk
of convergence about 0, capped at 1.`,
		Example: `  robustpade check --func exp -m 4 -n 4 --radius 0.25
  robustpade check --func tan -m 10 -n 10 --order 21 --noise 1e-10 --tol 1e-8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())

			if name == "" {
				return errors.New("--func is required")
			}

			f, err := taylor.Lookup(name)
			if err != nil {
				return err
			}

			r := radius
			if r <= 0 {
				if r = defaultRadius(f, cfg.At); r <= 0 {
					return fmt.Errorf("%s: expansion point %v is not inside the disk of convergence |x| < %v, set --radius", f.Name, cfg.At, f.Radius)
				}
			}

			in := input{fn: name}
			coeffs, err := in.load(cfg)
			if err != nil {
				return err
			}

			approx, err := pade.Approximate(coeffs, m, n, cfg.PadeConfig())
			if err != nil {
				return err
			}

			grid := pade.Linspace(-r, r, points)
			stats, err := pade.RealAccuracy(approx, func(x float64) float64 { return f.Eval(cfg.At + x) }, grid)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), cfg.Output, &report{
				title:  fmt.Sprintf("%s about %v, type %v on [%v, %v]", f.Description, cfg.At, approx.Degree, cfg.At-r, cfg.At+r),
				header: table.Row{"statistic", "value"},
				rows: []table.Row{
					{"points", stats.Points},
					{"max error", fmt.Sprintf("%.3e", stats.MaxError)},
					{"mean error", fmt.Sprintf("%.3e", stats.MeanError)},
					{"median error", fmt.Sprintf("%.3e", stats.MedianError)},
					{"p95 error", fmt.Sprintf("%.3e", stats.P95Error)},
					{"std error", fmt.Sprintf("%.3e", stats.STDError)},
					{"min precision", fmt.Sprintf("%.2f", stats.MinPrecision)},
					{"mean precision", fmt.Sprintf("%.2f", stats.MeanPrecision)},
				},
				value: struct {
					Function    string             `json:"function"`
					At          float64            `json:"at"`
					Radius      float64            `json:"radius"`
					Approximant *jsonApproximant   `json:"approximant"`
					Stats       pade.AccuracyStats `json:"stats"`
				}{f.Name, cfg.At, r, newJSONApproximant(approx), stats},
			})
		},
	}

	cmd.Flags().StringVar(&name, "func", "", "Catalog function to check (see 'robustpade functions')")
	cmd.Flags().IntVarP(&m, "m", "m", 0, "Numerator degree")
	cmd.Flags().IntVarP(&n, "n", "n", 0, "Denominator degree")
	cmd.Flags().Float64Var(&radius, "radius", 0, "Half width of the evaluation interval")
	cmd.Flags().IntVar(&points, "points", 101, "Number of evaluation points")

	return cmd
}

// defaultRadius returns half the distance from at to the boundary of the disk
// of convergence of f about 0, capped at 1. It is not positive when at lies
// outside of the disk.
func defaultRadius(f *taylor.Function, at float64) float64 {
	return math.Min((f.Radius-math.Abs(at))/2, 1)
}
