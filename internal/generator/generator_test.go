package generator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telesynth/telesynth-cli/internal/config"
	"github.com/telesynth/telesynth-cli/internal/models"
	"github.com/telesynth/telesynth-cli/internal/refdata"
)

func smallConfig() config.Config {
	cfg := config.Default()
	cfg.TotalEventsTarget = 1000
	cfg.DateRangeDays = 7
	cfg.SessionsPerDay = 80
	return cfg
}

func TestGenerateTruncatesToTarget(t *testing.T) {
	g := New(smallConfig(), 42, nil)
	events := g.Generate()
	require.Len(t, events, 1000)
}

func TestEventInvariants(t *testing.T) {
	g := New(smallConfig(), 7, nil)
	events := g.Generate()
	require.NotEmpty(t, events)

	for i := range events {
		e := &events[i]

		assert.Equal(t, 1, e.Count)
		if e.Source == models.SourceCrash {
			assert.Equal(t, 1, e.IsCrash)
		} else {
			assert.Equal(t, 0, e.IsCrash)
		}

		// day and hour must be derivable from the timestamp by UTC truncation.
		assert.Equal(t, e.Timestamp.UTC().Format(models.DayFormat), e.Day)
		assert.Equal(t, e.Timestamp.UTC().Hour(), e.Hour)

		if e.NetworkType == models.NetworkCellular {
			assert.NotEmpty(t, e.Carrier, "cellular event must carry a carrier")
		} else {
			assert.Empty(t, e.Carrier, "non-cellular event must not carry a carrier")
		}

		switch e.Source {
		case models.SourceAnalytics:
			assert.NotNil(t, e.Analytics)
			assert.Nil(t, e.Performance)
			assert.Nil(t, e.Crash)
		case models.SourcePerformance:
			assert.NotNil(t, e.Performance)
			assert.Nil(t, e.Analytics)
			assert.Nil(t, e.Crash)
		case models.SourceCrash:
			assert.NotNil(t, e.Crash)
			assert.Nil(t, e.Analytics)
			assert.Nil(t, e.Performance)
		default:
			t.Fatalf("unknown source %q", e.Source)
		}

		if e.Source == models.SourcePerformance && e.Performance.PerfType == "http" {
			require.NotNil(t, e.Performance.StatusCode)
			require.NotNil(t, e.Performance.Success)
			assert.Equal(t, *e.Performance.StatusCode < 400, *e.Performance.Success)
		}
	}
}

func TestSessionSharesContext(t *testing.T) {
	g := New(smallConfig(), 11, nil)

	events := g.synthesizeSession(3)
	require.GreaterOrEqual(t, len(events), 2)

	first := events[0]
	for _, e := range events[1:] {
		assert.Equal(t, first.SessionID, e.SessionID)
		assert.Equal(t, first.UserPseudoID, e.UserPseudoID)
		assert.Equal(t, first.Country, e.Country)
		assert.Equal(t, first.AppID, e.AppID)
		assert.Equal(t, first.Platform, e.Platform)
		assert.Equal(t, first.DeviceModel, e.DeviceModel)
		assert.Equal(t, first.AppVersion, e.AppVersion)
		assert.Equal(t, first.ReleaseChannel, e.ReleaseChannel)
		assert.Equal(t, first.NetworkType, e.NetworkType)
	}
}

func TestAdoptionWeightSteps(t *testing.T) {
	tests := []struct {
		days   int
		weight float64
	}{
		{-2, 0.1},
		{0, 0.1},
		{3, 0.1},
		{5, 0.4},
		{10, 0.8},
		{20, 1.0},
		{45, 0.6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.weight, adoptionWeight(tt.days), "days=%d", tt.days)
	}
}

func TestChooseVersionFallback(t *testing.T) {
	g := New(smallConfig(), 1, nil)
	v := g.chooseVersion("com.unknown.app", models.ChannelProd, models.PlatformIOS, 0)
	assert.Equal(t, refdata.FallbackVersion, v)
}

func TestCrashProbabilityOrdering(t *testing.T) {
	fresh := refdata.AppVersion{Version: "1.0.0", ReleaseDaysAgo: 0}
	old := refdata.AppVersion{Version: "1.0.0", ReleaseDaysAgo: 30}

	hi := crashProbability(fresh, models.TierLow, models.ChannelDev, 0)
	lo := crashProbability(old, models.TierHigh, models.ChannelProd, 0)
	assert.Greater(t, hi, lo)
	assert.LessOrEqual(t, hi, 1.0)
}

func TestShouldCrashEmpiricalOrdering(t *testing.T) {
	g := New(smallConfig(), 99, nil)

	fresh := refdata.AppVersion{Version: "1.0.0", ReleaseDaysAgo: 0}
	old := refdata.AppVersion{Version: "1.0.0", ReleaseDaysAgo: 30}

	const trials = 50000
	risky, safe := 0, 0
	for i := 0; i < trials; i++ {
		if g.shouldCrash(fresh, models.TierLow, models.ChannelDev, 0) {
			risky++
		}
		if g.shouldCrash(old, models.TierHigh, models.ChannelProd, 0) {
			safe++
		}
	}
	assert.Greater(t, risky, safe,
		"dev/low/fresh must crash more often than prod/high/old (%d vs %d)", risky, safe)
}

func TestDurationFloor(t *testing.T) {
	g := New(smallConfig(), 5, nil)
	for i := 0; i < 1000; i++ {
		ms := g.durationMS(50, models.TierHigh, models.NetworkWifi, "KE")
		assert.GreaterOrEqual(t, ms, 100.0)
	}
}

func TestTimestampConsistency(t *testing.T) {
	g := New(smallConfig(), 13, nil)
	for offset := 0; offset < 7; offset++ {
		ts, day, hour := g.timestampFor(offset)
		assert.Equal(t, ts.Format(models.DayFormat), day)
		assert.Equal(t, ts.Hour(), hour)
		assert.True(t, hour >= 0 && hour <= 23)
		assert.Equal(t, time.UTC, ts.Location())
	}
}

func TestWeekendSessionsDampened(t *testing.T) {
	g := New(smallConfig(), 21, nil)

	weekendOffset, weekdayOffset := -1, -1
	for offset := 0; offset < 7; offset++ {
		wd := g.now.AddDate(0, 0, -offset).Weekday()
		if (wd == time.Saturday || wd == time.Sunday) && weekendOffset < 0 {
			weekendOffset = offset
		}
		if wd != time.Saturday && wd != time.Sunday && weekdayOffset < 0 {
			weekdayOffset = offset
		}
	}
	require.GreaterOrEqual(t, weekendOffset, 0)
	require.GreaterOrEqual(t, weekdayOffset, 0)

	base := float64(g.cfg.SessionsPerDay)
	count := g.dailySessionCount(weekendOffset)
	assert.LessOrEqual(t, float64(count), math.Round(base*0.3*1.2))
	assert.GreaterOrEqual(t, g.dailySessionCount(weekdayOffset), int(base*0.8)-1)
}

func TestTransactionCurrencyByCountry(t *testing.T) {
	g := New(smallConfig(), 31, nil)

	seen := 0
	for i := 0; i < 500 && seen < 20; i++ {
		for _, e := range g.synthesizeSession(0) {
			if e.Source != models.SourceAnalytics || e.Analytics.EventName != "transaction_completed" {
				continue
			}
			seen++
			assert.Equal(t, refdata.CurrencyFor(e.Country), e.Analytics.Currency)
			assert.NotEmpty(t, e.Analytics.TransactionType)
			assert.Greater(t, e.Analytics.TransactionValue, 0.0)
		}
	}
	require.Greater(t, seen, 0, "expected transaction_completed events in 500 sessions")
}
