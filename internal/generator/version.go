package generator

import (
	"github.com/telesynth/telesynth-cli/internal/randx"
	"github.com/telesynth/telesynth-cli/internal/refdata"
)

// adoptionWeight models how quickly a release's usage share ramps up: slow in
// the first days, peaking between two weeks and a month, then declining as
// users migrate to newer releases. Releases newer than the session date fall
// into the first bucket.
func adoptionWeight(daysSinceRelease int) float64 {
	switch {
	case daysSinceRelease <= 3:
		return 0.1
	case daysSinceRelease <= 7:
		return 0.4
	case daysSinceRelease <= 14:
		return 0.8
	case daysSinceRelease <= 30:
		return 1.0
	default:
		return 0.6
	}
}

// chooseVersion picks a release from the (app, channel, platform) table,
// weighted by the adoption curve relative to the session's simulated date.
// An empty table yields the fixed fallback version.
func (g *Generator) chooseVersion(appID, channel, platform string, dayOffset int) refdata.AppVersion {
	candidates := refdata.VersionsFor(appID, channel, platform)
	if len(candidates) == 0 {
		return refdata.FallbackVersion
	}

	idx := randx.WeightedChoice(g.rng, len(candidates), func(i int) float64 {
		return adoptionWeight(candidates[i].ReleaseDaysAgo - dayOffset)
	})
	return candidates[idx]
}
