package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/tuneinsight/robustpade/internal/cli/config"
	"github.com/tuneinsight/robustpade/pade"
)

// NewSizeCommand creates the size command.
func NewSizeCommand() *cobra.Command {
	var in input
	var m, n int

	cmd := &cobra.Command{
		Use:   "size",
		Short: "Print the effective degrees of a robust Padé approximant",
		Long: `Print the type (μ, ν) that the robust construction assigns to the
requested type (m, n), without printing the coefficients.`,
		Example: `  robustpade size --func exp -m 20 -n 20`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())

			coeffs, err := in.load(cfg)
			if err != nil {
				return err
			}

			d, err := pade.Size(coeffs, m, n, cfg.PadeConfig())
			if err != nil {
				return err
			}

			requested := pade.Degree{M: m, N: n}

			return render(cmd.OutOrStdout(), cfg.Output, &report{
				header: table.Row{"requested", "effective", "reduced"},
				rows:   []table.Row{{requested.String(), d.String(), d != requested}},
				value: struct {
					Requested pade.Degree `json:"requested"`
					Degree    pade.Degree `json:"degree"`
					Reduced   bool        `json:"reduced"`
				}{requested, d, d != requested},
			})
		},
	}

	in.addFlags(cmd)
	cmd.Flags().IntVarP(&m, "m", "m", 0, "Numerator degree")
	cmd.Flags().IntVarP(&n, "n", "n", 0, "Denominator degree")

	return cmd
}
