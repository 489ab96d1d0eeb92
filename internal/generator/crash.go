package generator

import (
	"math"

	"github.com/telesynth/telesynth-cli/internal/models"
	"github.com/telesynth/telesynth-cli/internal/refdata"
)

// baseCrashProbability is the per-event crash chance before any multipliers.
const baseCrashProbability = 0.002

func channelCrashFactor(channel string) float64 {
	switch channel {
	case models.ChannelDev:
		return 4.0
	case models.ChannelUAT:
		return 2.5
	case models.ChannelPilot:
		return 1.8
	default:
		return 1.0
	}
}

func tierCrashFactor(tier string) float64 {
	switch tier {
	case models.TierLow:
		return 1.6
	case models.TierHigh:
		return 0.7
	default:
		return 1.0
	}
}

// crashProbability layers the channel, device-tier and release-spike factors
// on the base probability. A release seven days old or newer elevates the
// rate by 1 + 2*e^(-days/3), decaying to baseline by day seven. The result is
// clamped at 1.0.
func crashProbability(version refdata.AppVersion, tier, channel string, dayOffset int) float64 {
	p := baseCrashProbability * channelCrashFactor(channel) * tierCrashFactor(tier)

	days := version.ReleaseDaysAgo - dayOffset
	if days < 0 {
		days = 0
	}
	if days <= 7 {
		p *= 1 + 2*math.Exp(-float64(days)/3)
	}
	return math.Min(p, 1.0)
}

// shouldCrash compares the modelled probability against one fresh uniform draw.
func (g *Generator) shouldCrash(version refdata.AppVersion, tier, channel string, dayOffset int) bool {
	return g.rng.Float64() < crashProbability(version, tier, channel, dayOffset)
}
