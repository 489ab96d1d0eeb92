// Package rollup groups raw events by the 9-dimension composite key and
// computes per-group cardinalities and distributional statistics.
package rollup

import (
	"sort"

	"github.com/telesynth/telesynth-cli/internal/models"
)

// group accumulates one rollup cell during the single grouping pass.
type group struct {
	row       models.DailyRollup
	durations []float64
	users     map[string]struct{}
	sessions  map[string]struct{}
	httpTotal int
	httpError int
}

// Build aggregates the corpus into daily rollups. Rows come back sorted by
// composite key, so the same corpus always yields the same output.
func Build(events []models.RawEvent) []models.DailyRollup {
	groups := make(map[string]*group)

	for i := range events {
		e := &events[i]
		key := models.GroupKey(e)

		gr, ok := groups[key]
		if !ok {
			gr = &group{
				row: models.DailyRollup{
					Day:            e.Day,
					Source:         e.Source,
					Platform:       e.Platform,
					AppID:          e.AppID,
					AppVersion:     e.AppVersion,
					ReleaseChannel: e.ReleaseChannel,
					Country:        e.Country,
					DeviceTier:     e.DeviceTier,
					EventGroup:     e.EventGroup(),
				},
				users:    make(map[string]struct{}),
				sessions: make(map[string]struct{}),
			}
			groups[key] = gr
		}

		gr.row.EventsCount++
		gr.users[e.UserPseudoID] = struct{}{}
		gr.sessions[e.SessionID] = struct{}{}

		if ms, ok := e.DurationMS(); ok {
			gr.durations = append(gr.durations, ms)
		}
		if status, ok := e.StatusCode(); ok {
			gr.httpTotal++
			if status >= 400 {
				gr.httpError++
			}
		}
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rollups := make([]models.DailyRollup, 0, len(keys))
	for _, key := range keys {
		rollups = append(rollups, finalize(groups[key]))
	}
	return rollups
}

func finalize(gr *group) models.DailyRollup {
	row := gr.row
	row.UsersCount = len(gr.users)
	row.SessionsCount = len(gr.sessions)

	if n := len(gr.durations); n > 0 {
		sort.Float64s(gr.durations)
		sum := 0.0
		for _, d := range gr.durations {
			sum += d
		}
		avg := sum / float64(n)
		row.AvgDurationMS = &avg
		row.P50DurationMS = ptr(percentile(gr.durations, 0.5))
		row.P90DurationMS = ptr(percentile(gr.durations, 0.9))
		row.P99DurationMS = ptr(percentile(gr.durations, 0.99))
	}

	if gr.httpTotal > 0 {
		rate := float64(gr.httpError) / float64(gr.httpTotal)
		row.HTTPErrorRate = &rate
	}

	if row.Source == models.SourceCrash && row.SessionsCount > 0 {
		rate := float64(row.EventsCount) / float64(row.SessionsCount) * 1000
		row.CrashRatePer1KSessions = &rate
	}
	return row
}

// percentile uses the index-based method floor(n*q), clamped to the valid
// range. The input must be sorted ascending.
func percentile(sorted []float64, q float64) float64 {
	idx := int(float64(len(sorted)) * q)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func ptr(v float64) *float64 { return &v }
