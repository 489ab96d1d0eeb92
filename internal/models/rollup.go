package models

import "strings"

// DailyRollup is one pre-aggregated row keyed by the 9-dimension tuple
// (day, source, platform, app_id, app_version, release_channel, country,
// device_tier, event_group). Distributional fields are pointers so that
// groups without duration or HTTP data omit them entirely.
type DailyRollup struct {
	Day            string `json:"day"`
	Source         string `json:"source"`
	Platform       string `json:"platform"`
	AppID          string `json:"app_id"`
	AppVersion     string `json:"app_version"`
	ReleaseChannel string `json:"release_channel"`
	Country        string `json:"country"`
	DeviceTier     string `json:"device_tier"`
	EventGroup     string `json:"event_group"`

	EventsCount   int `json:"events_count"`
	UsersCount    int `json:"users_count"`
	SessionsCount int `json:"sessions_count"`

	AvgDurationMS *float64 `json:"avg_duration_ms,omitempty"`
	P50DurationMS *float64 `json:"p50_duration_ms,omitempty"`
	P90DurationMS *float64 `json:"p90_duration_ms,omitempty"`
	P99DurationMS *float64 `json:"p99_duration_ms,omitempty"`

	HTTPErrorRate          *float64 `json:"http_error_rate,omitempty"`
	CrashRatePer1KSessions *float64 `json:"crash_rate_per_1k_sessions,omitempty"`
}

// GroupKey returns the composite key an event maps to in the daily rollup.
func GroupKey(e *RawEvent) string {
	return strings.Join([]string{
		e.Day,
		e.Source,
		e.Platform,
		e.AppID,
		e.AppVersion,
		e.ReleaseChannel,
		e.Country,
		e.DeviceTier,
		e.EventGroup(),
	}, "|")
}

// Key returns the rollup's own composite key, matching GroupKey for every raw
// event that belongs to it.
func (r *DailyRollup) Key() string {
	return strings.Join([]string{
		r.Day,
		r.Source,
		r.Platform,
		r.AppID,
		r.AppVersion,
		r.ReleaseChannel,
		r.Country,
		r.DeviceTier,
		r.EventGroup,
	}, "|")
}

// Matches reports whether a raw event falls into this rollup's 9-dimension cell.
func (r *DailyRollup) Matches(e *RawEvent) bool {
	return e.Day == r.Day &&
		e.Source == r.Source &&
		e.Platform == r.Platform &&
		e.AppID == r.AppID &&
		e.AppVersion == r.AppVersion &&
		e.ReleaseChannel == r.ReleaseChannel &&
		e.Country == r.Country &&
		e.DeviceTier == r.DeviceTier &&
		e.EventGroup() == r.EventGroup
}
