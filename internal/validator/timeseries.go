package validator

import (
	"fmt"
	"time"

	"github.com/telesynth/telesynth-cli/internal/models"
)

// dateSpanToleranceDays allows for boundary sessions landing just outside the
// configured window.
const dateSpanToleranceDays = 5

// weekendVolumeCeiling: aggregate weekend volume must stay below this share
// of aggregate weekday volume for the dampening to be considered applied.
const weekendVolumeCeiling = 0.8

// checkTimeSeries verifies the date span, the timestamp/day/hour derivation
// invariant, and the weekday/weekend volume shaping. A day or hour that does
// not match its timestamp is a hard error: it is the same schema invariant
// the record-level check enforces.
func (v *validator) checkTimeSeries() {
	if len(v.events) == 0 {
		return
	}

	var minTS, maxTS time.Time
	inconsistencies := 0
	dayOfWeek := make(map[string]int, 7)
	weekday, weekend := 0, 0
	weekdayDays := make(map[string]struct{})
	weekendDays := make(map[string]struct{})

	for i := range v.events {
		e := &v.events[i]
		ts := e.Timestamp.UTC()

		if minTS.IsZero() || ts.Before(minTS) {
			minTS = ts
		}
		if ts.After(maxTS) {
			maxTS = ts
		}

		if e.Day != ts.Format(models.DayFormat) || e.Hour != ts.Hour() {
			inconsistencies++
		}

		wd := ts.Weekday()
		dayOfWeek[wd.String()]++
		if wd == time.Saturday || wd == time.Sunday {
			weekend++
			weekendDays[e.Day] = struct{}{}
		} else {
			weekday++
			weekdayDays[e.Day] = struct{}{}
		}
	}

	if inconsistencies > 0 {
		v.result.AddError(fmt.Sprintf(
			"timeseries: %d events have day/hour fields not derivable from timestamp", inconsistencies))
	}

	spanDays := int(maxTS.Sub(minTS).Hours() / 24)
	if spanDays > v.cfg.DateRangeDays+dateSpanToleranceDays {
		v.result.AddWarning(fmt.Sprintf(
			"timeseries: date span %d days exceeds configured %d+%d",
			spanDays, v.cfg.DateRangeDays, dateSpanToleranceDays))
	}

	// Compare per-day averages over the days actually observed.
	if len(weekdayDays) > 0 && len(weekendDays) > 0 {
		weekendAvg := float64(weekend) / float64(len(weekendDays))
		weekdayAvg := float64(weekday) / float64(len(weekdayDays))
		if weekendAvg >= weekdayAvg*weekendVolumeCeiling {
			v.result.AddWarning(fmt.Sprintf(
				"timeseries: weekend daily volume %.0f not below %.0f%% of weekday volume %.0f",
				weekendAvg, weekendVolumeCeiling*100, weekdayAvg))
		}
	}

	v.result.Stats["time_series"] = map[string]any{
		"date_range":          fmt.Sprintf("%s to %s", minTS.Format(models.DayFormat), maxTS.Format(models.DayFormat)),
		"span_days":           spanDays,
		"inconsistency_count": inconsistencies,
		"day_of_week":         dayOfWeek,
	}
}
