package commands

import (
	"math"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/tuneinsight/robustpade/internal/cli/config"
	"github.com/tuneinsight/robustpade/taylor"
)

// NewFunctionsCommand creates the functions command.
func NewFunctionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "functions",
		Short: "List the functions available to --func",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())

			type jsonFunction struct {
				Name        string `json:"name"`
				Description string `json:"description"`
				Radius      string `json:"radius"`
			}

			r := &report{header: table.Row{"name", "function", "radius"}}
			var value []jsonFunction

			for _, name := range taylor.Names() {
				f, err := taylor.Lookup(name)
				if err != nil {
					return err
				}
				radius := "∞"
				if !math.IsInf(f.Radius, 1) {
					radius = strconv.FormatFloat(f.Radius, 'g', 6, 64)
				}
				r.rows = append(r.rows, table.Row{f.Name, f.Description, radius})
				value = append(value, jsonFunction{f.Name, f.Description, radius})
			}
			r.value = value

			return render(cmd.OutOrStdout(), cfg.Output, r)
		},
	}
}
