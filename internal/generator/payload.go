package generator

import (
	"fmt"
	"math"

	"github.com/telesynth/telesynth-cli/internal/models"
	"github.com/telesynth/telesynth-cli/internal/randx"
	"github.com/telesynth/telesynth-cli/internal/refdata"
)

// analyticsPayload fabricates the behaviour fields for one slot. Branch
// sessions draw from the teller vocabulary; customer sessions draw from the
// retail vocabulary, with the final slot forced to transaction_completed when
// the session was flagged.
func (g *Generator) analyticsPayload(s *session, final bool) *models.AnalyticsPayload {
	if s.branch {
		p := &models.AnalyticsPayload{
			EventName: randx.Pick(g.rng, refdata.BranchEvents),
			Screen:    randx.Pick(g.rng, refdata.BranchScreens),
		}
		if p.EventName == "account_opening" {
			p.AccountType = randx.Pick(g.rng, refdata.AccountTypes)
			p.BranchCode = g.branchCode(s.country)
		}
		return p
	}

	name := randx.Pick(g.rng, refdata.CustomerEvents)
	if s.forceTransaction && final {
		name = "transaction_completed"
	}
	p := &models.AnalyticsPayload{
		EventName: name,
		Screen:    randx.Pick(g.rng, refdata.CustomerScreens),
	}
	if name == "transaction_completed" {
		p.TransactionType = randx.Pick(g.rng, refdata.TransactionTypes)
		p.TransactionValue = math.Round(randx.LogNormal(g.rng, 25000, 1.2)*100) / 100
		p.Currency = refdata.CurrencyFor(s.country)
	}
	return p
}

// branchCode synthesizes "{country}_{area}_{3-digit-sequence}" identifiers.
func (g *Generator) branchCode(country string) string {
	area := randx.Pick(g.rng, refdata.BranchAreas[country])
	return fmt.Sprintf("%s_%s_%03d", country, area, g.rng.Intn(1000))
}

var perfTypes = []string{"http", "screen", "trace", "app_start"}

var httpMethods = []string{"GET", "POST", "PUT"}

const httpErrorProbability = 0.125

// fps penalty per device tier, subtracted from the 60fps ceiling.
var fpsTierPenalty = map[string]float64{
	models.TierLow:  30,
	models.TierMid:  15,
	models.TierHigh: 8,
}

// performancePayload fabricates latency fields for one slot. The duration
// comes from the environment-adjusted log-normal model; type-specific fields
// derive from it.
func (g *Generator) performancePayload(s *session) *models.PerformancePayload {
	perfType := randx.Pick(g.rng, perfTypes)
	dur := g.duration(perfType, s.device.Tier, s.network, s.country)

	p := &models.PerformancePayload{
		PerfType:   perfType,
		DurationMS: math.Round(dur*10) / 10,
	}

	switch perfType {
	case "http":
		p.HTTPMethod = randx.Pick(g.rng, httpMethods)
		if s.branch {
			p.Endpoint = randx.Pick(g.rng, refdata.BranchEndpoints)
			p.Screen = randx.Pick(g.rng, refdata.BranchScreens)
		} else {
			p.Endpoint = randx.Pick(g.rng, refdata.CustomerEndpoints)
			p.Screen = randx.Pick(g.rng, refdata.CustomerScreens)
		}
		status := g.httpStatus()
		success := status < 400
		p.StatusCode = &status
		p.Success = &success
		p.TTFBMs = math.Round(0.4*dur*10) / 10
		p.PayloadBytes = math.Round(randx.LogNormal(g.rng, 8000, 0.8))
	case "screen":
		if s.branch {
			p.Screen = randx.Pick(g.rng, refdata.BranchScreens)
		} else {
			p.Screen = randx.Pick(g.rng, refdata.CustomerScreens)
		}
		fps := 60 - fpsTierPenalty[s.device.Tier] + randx.UniformRange(g.rng, 0, 10)
		if fps < 20 {
			fps = 20
		}
		p.FPSAvg = math.Round(fps*10) / 10
	case "trace":
		if s.branch {
			p.TraceName = "banking:" + randx.Pick(g.rng, refdata.BranchTraces)
		} else {
			p.TraceName = "banking:" + randx.Pick(g.rng, refdata.CustomerTraces)
		}
		p.CPUMs = math.Round(0.8*dur*10) / 10
		p.MemoryMB = math.Round(randx.LogNormal(g.rng, 80, 0.4)*10) / 10
	}
	// app_start carries only the duration.
	return p
}

// httpStatus injects an error 12.5% of the time: 60% of errors are 400, 70%
// of the remainder 401, the rest 500.
func (g *Generator) httpStatus() int {
	if g.rng.Float64() >= httpErrorProbability {
		return 200
	}
	switch {
	case g.rng.Float64() < 0.6:
		return 400
	case g.rng.Float64() < 0.7:
		return 401
	default:
		return 500
	}
}

const (
	crashFatalProbability      = 0.12
	crashForegroundProbability = 0.90
)

// crashPayload assigns a crash signature by weighted choice over the fixed
// groups; non-fatal crashes draw a platform-appropriate type.
func (g *Generator) crashPayload(platform string) *models.CrashPayload {
	idx := randx.WeightedChoice(g.rng, len(refdata.CrashGroups), func(i int) float64 {
		return refdata.CrashGroups[i].Weight
	})
	group := refdata.CrashGroups[idx]

	p := &models.CrashPayload{
		ExceptionType: group.ExceptionType,
		CrashGroupID:  group.ID,
		Foreground:    g.rng.Float64() < crashForegroundProbability,
	}
	if g.rng.Float64() < crashFatalProbability {
		p.IsFatal = true
		p.CrashType = "fatal"
	} else {
		p.CrashType = randx.Pick(g.rng, refdata.NonFatalCrashTypes[platform])
	}
	return p
}
