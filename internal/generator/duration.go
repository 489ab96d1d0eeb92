package generator

import (
	"github.com/telesynth/telesynth-cli/internal/models"
	"github.com/telesynth/telesynth-cli/internal/randx"
)

// Per-perf-type base latencies in milliseconds.
var perfBaseMS = map[string]float64{
	"http":      1200,
	"screen":    1800,
	"trace":     800,
	"app_start": 3000,
}

// duration draws an environment-adjusted latency: independent multiplicative
// jitter for network quality, device tier and regional infrastructure, then a
// log-normal draw anchored at the combined base, floored at 100ms.
func (g *Generator) duration(perfType, tier, network, country string) float64 {
	return g.durationMS(perfBaseMS[perfType], tier, network, country)
}

func (g *Generator) durationMS(baseMS float64, tier, network, country string) float64 {
	mult := 1.0

	switch network {
	case models.NetworkWifi:
		mult *= randx.UniformRange(g.rng, 0.8, 1.2)
	case models.NetworkCellular:
		mult *= randx.UniformRange(g.rng, 1.5, 2.3)
	case models.NetworkOffline:
		mult *= randx.UniformRange(g.rng, 2.0, 3.0)
	}

	switch tier {
	case models.TierLow:
		mult *= randx.UniformRange(g.rng, 1.4, 1.8)
	case models.TierMid:
		mult *= randx.UniformRange(g.rng, 1.0, 1.3)
	case models.TierHigh:
		mult *= randx.UniformRange(g.rng, 0.8, 1.0)
	}

	switch country {
	case "SS", "DRC":
		mult *= randx.UniformRange(g.rng, 1.3, 1.8)
	case "UG", "TZ":
		mult *= randx.UniformRange(g.rng, 1.1, 1.3)
	}

	ms := randx.LogNormal(g.rng, baseMS*mult, 0.6)
	if ms < 100 {
		ms = 100
	}
	return ms
}
