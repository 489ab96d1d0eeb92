package validator

import (
	"fmt"

	"github.com/telesynth/telesynth-cli/internal/models"
)

// devUATAdoptionCeiling: a single dev/uat version holding more than this share
// of its (app, platform, channel) cohort suggests the adoption curve is not
// spreading traffic across releases.
const devUATAdoptionCeiling = 0.30

// checkRollupAccuracy recomputes a bounded sample of rollups from the raw
// corpus and compares the cardinalities. Mismatches are warnings.
func (v *validator) checkRollupAccuracy() {
	sample := v.rollups
	if len(sample) > rollupSampleSize {
		sample = sample[:rollupSampleSize]
	}

	mismatches := 0
	for i := range sample {
		r := &sample[i]

		events := 0
		users := make(map[string]struct{})
		sessions := make(map[string]struct{})
		for j := range v.events {
			e := &v.events[j]
			if !r.Matches(e) {
				continue
			}
			events++
			users[e.UserPseudoID] = struct{}{}
			sessions[e.SessionID] = struct{}{}
		}

		if events != r.EventsCount || len(users) != r.UsersCount || len(sessions) != r.SessionsCount {
			mismatches++
			v.result.AddWarning(fmt.Sprintf(
				"rollup: %s counts (%d/%d/%d) disagree with raw recomputation (%d/%d/%d)",
				r.Key(), r.EventsCount, r.UsersCount, r.SessionsCount,
				events, len(users), len(sessions)))
		}
	}

	v.result.Stats["rollup_mismatch_count"] = mismatches
	v.result.Stats["rollup_sample_size"] = len(sample)
	v.result.Stats["rollup_count"] = len(v.rollups)
}

// checkReleaseLogic looks for adoption anomalies on the unstable channels:
// one dev or uat version absorbing an outsized share of its cohort.
func (v *validator) checkReleaseLogic() {
	type cohortKey struct{ app, platform, channel string }

	cohortTotals := make(map[cohortKey]int)
	versionCounts := make(map[cohortKey]map[string]int)

	for i := range v.events {
		e := &v.events[i]
		if e.ReleaseChannel != models.ChannelDev && e.ReleaseChannel != models.ChannelUAT {
			continue
		}
		key := cohortKey{e.AppID, e.Platform, e.ReleaseChannel}
		cohortTotals[key]++
		if versionCounts[key] == nil {
			versionCounts[key] = make(map[string]int)
		}
		versionCounts[key][e.AppVersion]++
	}

	issues := 0
	for key, total := range cohortTotals {
		if total < 20 {
			continue // too small to judge
		}
		for version, count := range versionCounts[key] {
			share := float64(count) / float64(total)
			if share > devUATAdoptionCeiling {
				issues++
				v.result.AddWarning(fmt.Sprintf(
					"release: %s %s/%s version %s holds %.0f%% of its cohort",
					key.channel, key.app, key.platform, version, share*100))
			}
		}
	}

	v.result.Stats["release_adoption_issues"] = issues
}
