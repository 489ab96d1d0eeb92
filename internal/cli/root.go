package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "telesynth",
	Short: "Telesynth CLI - Synthetic banking telemetry dataset generator",
	Long: `Telesynth CLI synthesizes a realistic telemetry dataset for a simulated
multi-country banking app ecosystem: raw analytics, performance and crash
events, pre-aggregated daily rollups, and a data-quality validation report.

The generated corpus follows a statistical specification (country and device
weights, version adoption curves, release crash spikes, banking-hours traffic
shaping) and is validated against that same specification.`,

	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

// buildLogger returns the pipeline logger: silent by default, human-readable
// debug output with --verbose.
func buildLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
