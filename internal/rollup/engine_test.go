package rollup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telesynth/telesynth-cli/internal/config"
	"github.com/telesynth/telesynth-cli/internal/generator"
	"github.com/telesynth/telesynth-cli/internal/models"
)

func testCorpus(t *testing.T) []models.RawEvent {
	t.Helper()
	cfg := config.Default()
	cfg.TotalEventsTarget = 2000
	cfg.DateRangeDays = 7
	cfg.SessionsPerDay = 100
	return generator.New(cfg, 42, nil).Generate()
}

func perfEvent(day string, session, user string, durMS float64) models.RawEvent {
	return models.RawEvent{
		ID:             user + session + day,
		SessionID:      session,
		UserPseudoID:   user,
		Timestamp:      time.Now().UTC(),
		Day:            day,
		Hour:           10,
		AppID:          "com.bank.mobile",
		Platform:       models.PlatformAndroid,
		ReleaseChannel: models.ChannelProd,
		AppVersion:     "4.2.1",
		Country:        "KE",
		DeviceTier:     models.TierMid,
		Source:         models.SourcePerformance,
		Count:          1,
		Performance:    &models.PerformancePayload{PerfType: "screen", DurationMS: durMS},
	}
}

func TestBuildCountsMatchKey(t *testing.T) {
	events := testCorpus(t)
	rollups := Build(events)
	require.NotEmpty(t, rollups)

	// events_count must equal the raw events mapping to each 9-tuple.
	counts := make(map[string]int)
	for i := range events {
		counts[models.GroupKey(&events[i])]++
	}
	total := 0
	for i := range rollups {
		r := &rollups[i]
		assert.Equal(t, counts[r.Key()], r.EventsCount, "key %s", r.Key())
		total += r.EventsCount
	}
	assert.Equal(t, len(events), total)
}

func TestBuildIdempotent(t *testing.T) {
	events := testCorpus(t)

	first := Build(events)
	second := Build(events)
	require.Equal(t, len(first), len(second))

	for i := range first {
		assert.Equal(t, first[i].Key(), second[i].Key())
		assert.Equal(t, first[i].EventsCount, second[i].EventsCount)
		assert.Equal(t, first[i].UsersCount, second[i].UsersCount)
		assert.Equal(t, first[i].SessionsCount, second[i].SessionsCount)
	}
}

func TestPercentileMonotonicity(t *testing.T) {
	rollups := Build(testCorpus(t))

	checked := 0
	for i := range rollups {
		r := &rollups[i]
		if r.P50DurationMS == nil {
			continue
		}
		checked++
		require.NotNil(t, r.P90DurationMS)
		require.NotNil(t, r.P99DurationMS)
		assert.LessOrEqual(t, *r.P50DurationMS, *r.P90DurationMS)
		assert.LessOrEqual(t, *r.P90DurationMS, *r.P99DurationMS)
	}
	require.Greater(t, checked, 0, "expected duration-bearing rollup groups")
}

func TestDurationFieldsOnlyWithDurations(t *testing.T) {
	rollups := Build(testCorpus(t))
	for i := range rollups {
		r := &rollups[i]
		if r.Source == models.SourcePerformance {
			assert.NotNil(t, r.AvgDurationMS, "performance group must report durations")
		} else {
			assert.Nil(t, r.AvgDurationMS)
			assert.Nil(t, r.P50DurationMS)
		}
		if r.Source == models.SourceCrash {
			require.NotNil(t, r.CrashRatePer1KSessions)
			assert.Greater(t, *r.CrashRatePer1KSessions, 0.0)
		} else {
			assert.Nil(t, r.CrashRatePer1KSessions)
		}
	}
}

func TestBuildSmallGroupStatistics(t *testing.T) {
	day := "2026-08-01"
	events := []models.RawEvent{
		perfEvent(day, "s1", "u1", 100),
		perfEvent(day, "s1", "u1", 200),
		perfEvent(day, "s2", "u2", 300),
		perfEvent(day, "s3", "u1", 400),
	}

	rollups := Build(events)
	require.Len(t, rollups, 1)
	r := rollups[0]

	assert.Equal(t, 4, r.EventsCount)
	assert.Equal(t, 2, r.UsersCount)
	assert.Equal(t, 3, r.SessionsCount)
	require.NotNil(t, r.AvgDurationMS)
	assert.InDelta(t, 250.0, *r.AvgDurationMS, 0.001)
	// floor(4*0.5)=2 -> 300, floor(4*0.9)=3 -> 400, floor(4*0.99)=3 -> 400
	assert.Equal(t, 300.0, *r.P50DurationMS)
	assert.Equal(t, 400.0, *r.P90DurationMS)
	assert.Equal(t, 400.0, *r.P99DurationMS)
	assert.Nil(t, r.HTTPErrorRate)
}

func TestHTTPErrorRate(t *testing.T) {
	day := "2026-08-02"
	ok, bad := 200, 500
	tr, fa := true, false

	e1 := perfEvent(day, "s1", "u1", 100)
	e1.Performance.PerfType = "http"
	e1.Performance.StatusCode = &ok
	e1.Performance.Success = &tr
	e2 := perfEvent(day, "s1", "u1", 100)
	e2.Performance.PerfType = "http"
	e2.Performance.StatusCode = &bad
	e2.Performance.Success = &fa

	rollups := Build([]models.RawEvent{e1, e2})
	require.Len(t, rollups, 1)
	require.NotNil(t, rollups[0].HTTPErrorRate)
	assert.InDelta(t, 0.5, *rollups[0].HTTPErrorRate, 0.001)
}
