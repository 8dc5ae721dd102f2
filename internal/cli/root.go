// Package cli provides the command-line interface for robustpade.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tuneinsight/robustpade/internal/cli/commands"
	"github.com/tuneinsight/robustpade/internal/cli/config"
)

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "robustpade",
		Short: "Robust Padé approximation of Taylor series",
		Long: `robustpade computes Padé approximants of truncated Taylor series with the
SVD-based robust algorithm of Gonnet, Güttel and Trefethen.

Spurious pole-zero pairs (Froissart doublets) are removed by reducing the
degrees to the numerical rank of the Toeplitz system at the given tolerance.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := config.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
			if cfg.File != "" {
				logger.Debug("using config file", "path", cfg.File)
			}

			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./robustpade.yaml)")
	rootCmd.PersistentFlags().Float64("tol", config.DefaultTol, "Relative tolerance of the robust construction (0 for classical Padé)")
	rootCmd.PersistentFlags().Int("workers", 0, "Concurrent table cells (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().StringP("output", "o", config.DefaultOutput, "Output format (text|markdown|json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Int("order", config.DefaultOrder, "Number of Taylor coefficients extracted from --func")
	rootCmd.PersistentFlags().Float64("at", 0, "Expansion point of --func")
	rootCmd.PersistentFlags().Float64("noise", 0, "Relative amplitude of the noise added to the coefficients")
	rootCmd.PersistentFlags().String("seed", config.DefaultSeed, "Seed of the noise PRNG")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputText, config.OutputMarkdown, config.OutputJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewApproxCommand())
	rootCmd.AddCommand(commands.NewSizeCommand())
	rootCmd.AddCommand(commands.NewTableCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewFunctionsCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
