package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/tuneinsight/robustpade/internal/cli/config"
	"github.com/tuneinsight/robustpade/pade"
)

// NewTableCommand creates the table command.
func NewTableCommand() *cobra.Command {
	var in input
	var maxM, maxN int

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the grid of effective degrees of the Padé table",
		Long: `Compute the robust approximants of every type (i, j) with i <= M and
j <= N and print the effective degree of each cell. Cells are computed
concurrently, bounded by --workers.`,
		Example: `  robustpade table --func exp -M 6 -N 6
  robustpade table --coeffs "0 0 0 1 1 1 1 1 1" -M 3 -N 3 -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())
			logger := config.GetLogger(cmd.Context())

			coeffs, err := in.load(cfg)
			if err != nil {
				return err
			}

			t, err := pade.BuildTable(coeffs, maxM, maxN, cfg.PadeConfig(),
				pade.WithWorkers(cfg.Workers),
				pade.WithLogger(logger))
			if err != nil {
				return err
			}

			return renderTable(cmd, cfg, t)
		},
	}

	in.addFlags(cmd)
	cmd.Flags().IntVarP(&maxM, "max-m", "M", 4, "Largest numerator degree")
	cmd.Flags().IntVarP(&maxN, "max-n", "N", 4, "Largest denominator degree")

	return cmd
}

type jsonCell struct {
	Requested pade.Degree  `json:"requested"`
	Degree    *pade.Degree `json:"degree,omitempty"`
	Error     string       `json:"error,omitempty"`
}

func renderTable(cmd *cobra.Command, cfg *config.Config, t *pade.Table) error {

	sizes := t.Sizes()

	header := table.Row{"m \\ n"}
	for j := 0; j <= t.N(); j++ {
		header = append(header, j)
	}

	var cells []jsonCell
	var rows []table.Row
	for i := range sizes {
		row := table.Row{i}
		for j, d := range sizes[i] {
			row = append(row, formatDegree(d))

			cell := jsonCell{Requested: pade.Degree{M: i, N: j}, Degree: d}
			if err, ok := t.Failures[cell.Requested]; ok {
				cell.Error = err.Error()
			}
			cells = append(cells, cell)
		}
		rows = append(rows, row)
	}

	r := &report{
		title:  fmt.Sprintf("Effective degrees, %d x %d table", t.M()+1, t.N()+1),
		header: header,
		rows:   rows,
		value:  cells,
	}

	if len(t.Failures) > 0 {
		r.footer = fmt.Sprintf("%d of %d cells failed (-v logs the errors)", len(t.Failures), (t.M()+1)*(t.N()+1))
	}

	return render(cmd.OutOrStdout(), cfg.Output, r)
}
