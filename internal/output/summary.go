package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/telesynth/telesynth-cli/internal/models"
)

// PrintSummary renders a human-readable run summary: event counts by source,
// rollup count and the validation verdict with its errors and warnings.
func PrintSummary(w io.Writer, events []models.RawEvent, rollups []models.DailyRollup, report *models.ValidationResult) {
	bySource := make(map[string]int)
	for i := range events {
		bySource[events[i].Source]++
	}
	sources := make([]string, 0, len(bySource))
	for s := range bySource {
		sources = append(sources, s)
	}
	sort.Strings(sources)

	fmt.Fprintf(w, "Events:       %d\n", len(events))
	for _, s := range sources {
		fmt.Fprintf(w, "  %-12s%d\n", s, bySource[s])
	}
	fmt.Fprintf(w, "Rollups:      %d\n", len(rollups))

	verdict := "PASS"
	if !report.IsValid {
		verdict = "FAIL"
	}
	fmt.Fprintf(w, "Validation:   %s (%d errors, %d warnings)\n",
		verdict, len(report.Errors), len(report.Warnings))

	for _, e := range report.Errors {
		fmt.Fprintf(w, "  error:   %s\n", e)
	}
	for _, warning := range report.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", warning)
	}
}
