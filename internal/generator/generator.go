// Package generator synthesizes the raw telemetry corpus: weighted session
// sampling, version adoption modelling, crash-probability modelling, and
// environment-adjusted latency modelling.
package generator

import (
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/telesynth/telesynth-cli/internal/config"
	"github.com/telesynth/telesynth-cli/internal/models"
	"github.com/telesynth/telesynth-cli/internal/randx"
)

// Generator orchestrates corpus synthesis. One instance drives one run; it is
// not safe for concurrent use because it carries a single rng.
type Generator struct {
	cfg config.Config
	rng *rand.Rand
	log *zap.Logger
	now time.Time
}

// New creates a generator seeded for one run. The simulated "current" date is
// fixed at construction so every day offset resolves consistently.
func New(cfg config.Config, seed int64, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
		log: log,
		now: time.Now().UTC(),
	}
}

// Generate assembles the full corpus: oldest day first, weekday/weekend volume
// shaping, then a Fisher-Yates shuffle and truncation to the configured event
// target. Truncation after shuffling means the final day/category mix only
// approximates the configured ratios; the validator checks it with tolerance.
func (g *Generator) Generate() []models.RawEvent {
	events := make([]models.RawEvent, 0, g.cfg.TotalEventsTarget+g.cfg.TotalEventsTarget/4)

	for offset := g.cfg.DateRangeDays - 1; offset >= 0; offset-- {
		sessions := g.dailySessionCount(offset)
		dayEvents := 0
		for i := 0; i < sessions; i++ {
			se := g.synthesizeSession(offset)
			events = append(events, se...)
			dayEvents += len(se)
		}
		g.log.Debug("day synthesized",
			zap.Int("day_offset", offset),
			zap.Int("sessions", sessions),
			zap.Int("events", dayEvents))
	}

	g.rng.Shuffle(len(events), func(i, j int) {
		events[i], events[j] = events[j], events[i]
	})
	if len(events) > g.cfg.TotalEventsTarget {
		events = events[:g.cfg.TotalEventsTarget]
	}

	g.log.Info("corpus assembled",
		zap.Int("events", len(events)),
		zap.Int("target", g.cfg.TotalEventsTarget))
	return events
}

// dailySessionCount applies the weekend dampening factor and a uniform jitter
// to the configured baseline.
func (g *Generator) dailySessionCount(dayOffset int) int {
	date := g.now.AddDate(0, 0, -dayOffset)
	factor := 1.0
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		factor = 0.3
	}
	jitter := randx.UniformRange(g.rng, 0.8, 1.2)
	return int(math.Round(float64(g.cfg.SessionsPerDay) * factor * jitter))
}
