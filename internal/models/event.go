package models

import "time"

// Source categories for raw telemetry events.
const (
	SourceAnalytics   = "analytics"
	SourcePerformance = "performance"
	SourceCrash       = "crash"
)

// Platforms supported by the simulated app ecosystem.
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
	PlatformWeb     = "web"
)

// Release channels, ordered from least to most stable.
const (
	ChannelDev   = "dev"
	ChannelUAT   = "uat"
	ChannelPilot = "pilot"
	ChannelProd  = "prod"
)

// Network types.
const (
	NetworkWifi     = "wifi"
	NetworkCellular = "cellular"
	NetworkOffline  = "offline"
)

// Device tiers.
const (
	TierLow  = "low"
	TierMid  = "mid"
	TierHigh = "high"
)

// DayFormat is the calendar-date layout used for the day field and rollup keys.
const DayFormat = "2006-01-02"

// RawEvent is one simulated telemetry record. Exactly one of the three payload
// groups is populated, selected by Source; the other two stay nil so they are
// absent from the serialized record rather than null placeholders.
type RawEvent struct {
	ID           string `json:"id"`
	SessionID    string `json:"session_id"`
	UserPseudoID string `json:"user_pseudo_id"`

	Timestamp time.Time `json:"timestamp"`
	Day       string    `json:"day"`
	Hour      int       `json:"hour"`

	AppID          string `json:"app_id"`
	AppName        string `json:"app_name"`
	Platform       string `json:"platform"`
	ReleaseChannel string `json:"release_channel"`
	AppVersion     string `json:"app_version"`
	BuildNumber    int    `json:"build_number"`
	OSVersion      string `json:"os_version"`
	DeviceModel    string `json:"device_model"`
	DeviceTier     string `json:"device_tier"`
	Country        string `json:"country"`
	Locale         string `json:"locale"`
	NetworkType    string `json:"network_type"`
	Carrier        string `json:"carrier,omitempty"` // present iff network_type == cellular

	Source  string `json:"source"`
	Count   int    `json:"count"`    // always 1
	IsCrash int    `json:"is_crash"` // 1 iff source == crash

	Analytics   *AnalyticsPayload   `json:"analytics,omitempty"`
	Performance *PerformancePayload `json:"performance,omitempty"`
	Crash       *CrashPayload       `json:"crash,omitempty"`
}

// AnalyticsPayload carries user-behaviour fields.
type AnalyticsPayload struct {
	EventName        string  `json:"analytics_event"`
	Screen           string  `json:"screen,omitempty"`
	TransactionType  string  `json:"transaction_type,omitempty"`
	TransactionValue float64 `json:"transaction_value,omitempty"`
	Currency         string  `json:"currency,omitempty"` // only on transaction_completed, by country
	AccountType      string  `json:"account_type,omitempty"`
	BranchCode       string  `json:"branch_code,omitempty"`
}

// PerformancePayload carries latency and resource fields.
type PerformancePayload struct {
	PerfType     string  `json:"perf_type"`
	DurationMS   float64 `json:"duration_ms"`
	HTTPMethod   string  `json:"http_method,omitempty"`
	Endpoint     string  `json:"endpoint,omitempty"`
	StatusCode   *int    `json:"status_code,omitempty"`
	Success      *bool   `json:"success,omitempty"` // success == (status_code < 400)
	TTFBMs       float64 `json:"ttfb_ms,omitempty"`
	PayloadBytes float64 `json:"payload_bytes,omitempty"`
	Screen       string  `json:"screen,omitempty"`
	FPSAvg       float64 `json:"fps_avg,omitempty"`
	TraceName    string  `json:"trace_name,omitempty"`
	CPUMs        float64 `json:"cpu_ms,omitempty"`
	MemoryMB     float64 `json:"memory_mb,omitempty"`
}

// CrashPayload carries crash classification fields.
type CrashPayload struct {
	CrashType     string `json:"crash_type"`
	ExceptionType string `json:"exception_type"`
	CrashGroupID  string `json:"crash_group_id"`
	IsFatal       bool   `json:"is_fatal"`
	Foreground    bool   `json:"foreground"`
}

// EventGroup returns the rollup-level category key combining source and the
// source-specific sub-type.
func (e *RawEvent) EventGroup() string {
	switch e.Source {
	case SourcePerformance:
		if e.Performance != nil {
			return "performance:" + e.Performance.PerfType
		}
		return "performance:unknown"
	case SourceAnalytics:
		if e.Analytics != nil {
			return "analytics:" + e.Analytics.EventName
		}
		return "analytics:unknown"
	case SourceCrash:
		if e.Crash != nil && e.Crash.IsFatal {
			return "crash:fatal"
		}
		return "crash:nonfatal"
	}
	return "unknown"
}

// DurationMS returns the event's duration and whether it carries one.
// Only performance events report durations.
func (e *RawEvent) DurationMS() (float64, bool) {
	if e.Source == SourcePerformance && e.Performance != nil {
		return e.Performance.DurationMS, true
	}
	return 0, false
}

// StatusCode returns the event's HTTP status and whether it carries one.
func (e *RawEvent) StatusCode() (int, bool) {
	if e.Performance != nil && e.Performance.StatusCode != nil {
		return *e.Performance.StatusCode, true
	}
	return 0, false
}
