// Package validator re-derives the expected statistical shape of a generated
// corpus from the same reference data and configuration the generator used,
// and checks the corpus and its rollups against it. Errors are hard invariant
// violations; warnings record drift beyond tolerance.
package validator

import (
	"go.uber.org/zap"

	"github.com/telesynth/telesynth-cli/internal/config"
	"github.com/telesynth/telesynth-cli/internal/models"
)

// schemaSampleSize bounds the per-event schema scan.
const schemaSampleSize = 1000

// rollupSampleSize bounds the rollup recomputation check.
const rollupSampleSize = 10

type validator struct {
	cfg     config.Config
	events  []models.RawEvent
	rollups []models.DailyRollup
	result  *models.ValidationResult
	log     *zap.Logger
}

// Run executes all six checks against the corpus and finalizes the verdict.
func Run(cfg config.Config, events []models.RawEvent, rollups []models.DailyRollup, log *zap.Logger) *models.ValidationResult {
	if log == nil {
		log = zap.NewNop()
	}
	v := &validator{
		cfg:     cfg,
		events:  events,
		rollups: rollups,
		result:  models.NewValidationResult(),
		log:     log,
	}

	v.checkSchema()
	v.checkBusinessLogic()
	v.checkDistributions()
	v.checkTimeSeries()
	v.checkRollupAccuracy()
	v.checkReleaseLogic()

	v.result.Finalize()
	v.log.Info("validation finished",
		zap.Bool("is_valid", v.result.IsValid),
		zap.Int("errors", len(v.result.Errors)),
		zap.Int("warnings", len(v.result.Warnings)))
	return v.result
}
