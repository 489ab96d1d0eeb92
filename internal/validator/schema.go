package validator

import (
	"fmt"

	"github.com/telesynth/telesynth-cli/internal/models"
)

// checkSchema scans a bounded sample for record-level invariants: required
// fields, hour range, count, crash flag coherence, payload-group consistency,
// HTTP success/status coherence and the carrier/network rule.
func (v *validator) checkSchema() {
	sample := v.events
	if len(sample) > schemaSampleSize {
		sample = sample[:schemaSampleSize]
	}

	errors := 0
	fail := func(e *models.RawEvent, msg string) {
		errors++
		v.result.AddError(fmt.Sprintf("schema: event %s: %s", e.ID, msg))
	}

	for i := range sample {
		e := &sample[i]

		if e.ID == "" || e.SessionID == "" || e.UserPseudoID == "" ||
			e.AppID == "" || e.Platform == "" || e.Country == "" ||
			e.Locale == "" || e.Source == "" || e.Timestamp.IsZero() {
			fail(e, "missing required field")
		}
		if e.Hour < 0 || e.Hour > 23 {
			fail(e, fmt.Sprintf("hour %d out of range", e.Hour))
		}
		if e.Count != 1 {
			fail(e, fmt.Sprintf("count must be 1, got %d", e.Count))
		}

		crash := e.Source == models.SourceCrash
		if (e.IsCrash == 1) != crash {
			fail(e, fmt.Sprintf("is_crash=%d inconsistent with source %q", e.IsCrash, e.Source))
		}

		if !v.payloadConsistent(e) {
			fail(e, fmt.Sprintf("payload fields inconsistent with source %q", e.Source))
		}

		if e.Performance != nil && e.Performance.StatusCode != nil {
			if e.Performance.Success == nil {
				fail(e, "http event missing success flag")
			} else if *e.Performance.Success != (*e.Performance.StatusCode < 400) {
				fail(e, fmt.Sprintf("success=%v inconsistent with status %d",
					*e.Performance.Success, *e.Performance.StatusCode))
			}
		}

		cellular := e.NetworkType == models.NetworkCellular
		if cellular != (e.Carrier != "") {
			fail(e, fmt.Sprintf("carrier %q inconsistent with network %q", e.Carrier, e.NetworkType))
		}
	}

	v.result.Stats["schema_error_count"] = errors
	v.result.Stats["schema_sample_size"] = len(sample)
}

// payloadConsistent verifies exactly the payload group selected by source is
// populated.
func (v *validator) payloadConsistent(e *models.RawEvent) bool {
	switch e.Source {
	case models.SourceAnalytics:
		return e.Analytics != nil && e.Performance == nil && e.Crash == nil
	case models.SourcePerformance:
		return e.Performance != nil && e.Analytics == nil && e.Crash == nil
	case models.SourceCrash:
		return e.Crash != nil && e.Analytics == nil && e.Performance == nil
	}
	return false
}
