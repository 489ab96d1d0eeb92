package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/telesynth/telesynth-cli/internal/config"
	"github.com/telesynth/telesynth-cli/internal/output"
	"github.com/telesynth/telesynth-cli/internal/validator"
)

var (
	validateConfig  string
	validateDir     string
	validateVerbose bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Re-run validation on previously generated artifacts",
	Long: `Loads a raw-events collection and its daily rollups from an output
directory and re-runs the data-quality checks against them. Exits non-zero
when hard errors are found.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateConfig, "config", "", "Optional YAML config override file")
	validateCmd.Flags().StringVar(&validateDir, "dir", "out", "Directory holding the artifacts")
	validateCmd.Flags().BoolVar(&validateVerbose, "verbose", false, "Log validation progress")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(validateConfig)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := buildLogger(validateVerbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	events, err := output.ReadRawEvents(filepath.Join(validateDir, output.RawEventsFile))
	if err != nil {
		return err
	}
	rollups, err := output.ReadRollups(filepath.Join(validateDir, output.DailyRollupsFile))
	if err != nil {
		return err
	}

	report := validator.Run(cfg, events, rollups, logger)
	output.PrintSummary(os.Stdout, events, rollups, report)

	if !report.IsValid {
		return fmt.Errorf("validation failed with %d errors", len(report.Errors))
	}
	return nil
}
