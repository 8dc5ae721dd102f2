package commands

import (
	"fmt"
	"math/cmplx"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/tuneinsight/robustpade/internal/cli/config"
	"github.com/tuneinsight/robustpade/pade"
	"github.com/tuneinsight/robustpade/utils"
)

// NewApproxCommand creates the approx command.
func NewApproxCommand() *cobra.Command {
	var in input
	var m, n int
	var poles bool

	cmd := &cobra.Command{
		Use:   "approx",
		Short: "Compute a robust Padé approximant",
		Long: `Compute the robust Padé approximant of type (m, n) of a Taylor series.

The degrees are reduced automatically when the requested type is not
supported by the data at the configured tolerance.`,
		Example: `  robustpade approx --coeffs "1, 1, 0.5, 0.1666666666666667, 0.04166666666666666" -m 2 -n 2
  robustpade approx --func log1p -m 10 -n 10 --poles
  robustpade approx --func exp -m 10 -n 10 --noise 1e-8 --tol 1e-6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())
			logger := config.GetLogger(cmd.Context())

			coeffs, err := in.load(cfg)
			if err != nil {
				return err
			}

			approx, err := pade.Approximate(coeffs, m, n, cfg.PadeConfig())
			if err != nil {
				return err
			}

			logger.Debug("approximant computed",
				"requested", approx.Requested.String(),
				"degree", approx.Degree.String(),
				"tol", cfg.Tol)

			return renderApproximant(cmd, cfg, approx, poles)
		},
	}

	in.addFlags(cmd)
	cmd.Flags().IntVarP(&m, "m", "m", 0, "Numerator degree")
	cmd.Flags().IntVarP(&n, "n", "n", 0, "Denominator degree")
	cmd.Flags().BoolVar(&poles, "poles", false, "Also print the poles and residues")

	return cmd
}

func renderApproximant(cmd *cobra.Command, cfg *config.Config, approx *pade.Approximant, withPoles bool) error {

	value := newJSONApproximant(approx)

	title := fmt.Sprintf("Padé approximant of type %v", approx.Degree)
	if approx.Reduced() {
		title += fmt.Sprintf(" (reduced from %v)", approx.Requested)
	}

	r := &report{
		title:  title,
		header: table.Row{"k", "p_k", "q_k"},
		value:  value,
	}

	for k := 0; k <= utils.Max(approx.Degree.M, approx.Degree.N); k++ {
		row := table.Row{k, "", ""}
		if k < len(approx.Numerator) {
			row[1] = formatComplex(approx.Numerator[k], approx.Real)
		}
		if k < len(approx.Denominator) {
			row[2] = formatComplex(approx.Denominator[k], approx.Real)
		}
		r.rows = append(r.rows, row)
	}

	if !withPoles {
		return render(cmd.OutOrStdout(), cfg.Output, r)
	}

	poles, residues, err := approx.Residues()
	if err != nil {
		return err
	}
	value.Poles = toJSONComplex(poles)
	value.Residues = toJSONComplex(residues)

	if cfg.Output == config.OutputJSON {
		return render(cmd.OutOrStdout(), cfg.Output, r)
	}

	if err := render(cmd.OutOrStdout(), cfg.Output, r); err != nil {
		return err
	}

	rp := &report{
		title:  "Poles",
		header: table.Row{"#", "pole", "|pole|", "residue"},
	}
	for i := range poles {
		rp.rows = append(rp.rows, table.Row{
			i,
			strconv.FormatComplex(poles[i], 'g', 16, 128),
			strconv.FormatFloat(cmplx.Abs(poles[i]), 'g', 6, 64),
			strconv.FormatComplex(residues[i], 'g', 16, 128),
		})
	}
	if len(poles) == 0 {
		rp.footer = "(no pole)"
	}
	return render(cmd.OutOrStdout(), cfg.Output, rp)
}
