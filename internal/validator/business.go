package validator

import (
	"fmt"
	"strings"

	"github.com/telesynth/telesynth-cli/internal/models"
	"github.com/telesynth/telesynth-cli/internal/refdata"
)

// sessionCrashRateBound is the sanity ceiling on sessions containing a crash.
const sessionCrashRateBound = 0.10

// checkBusinessLogic validates catalog consistency: every (app, country)
// pairing must exist in the app catalog, dev-channel versions should follow
// the prerelease naming convention, and the session-level crash rate should
// stay within a sane bound.
func (v *validator) checkBusinessLogic() {
	violations := 0
	seenPairs := make(map[string]struct{})
	badDevVersions := make(map[string]struct{})

	sessions := make(map[string]struct{})
	crashed := make(map[string]struct{})

	for i := range v.events {
		e := &v.events[i]

		if !refdata.AppAllowsCountry(e.AppID, e.Country) {
			violations++
			pair := e.AppID + "/" + e.Country
			if _, dup := seenPairs[pair]; !dup {
				seenPairs[pair] = struct{}{}
				v.result.AddError(fmt.Sprintf("business: app %s is not available in country %s", e.AppID, e.Country))
			}
		}

		if e.ReleaseChannel == models.ChannelDev && !strings.Contains(e.AppVersion, "-dev") {
			if _, dup := badDevVersions[e.AppVersion]; !dup {
				badDevVersions[e.AppVersion] = struct{}{}
				v.result.AddWarning(fmt.Sprintf("business: dev-channel version %q lacks the -dev marker", e.AppVersion))
			}
		}

		sessions[e.SessionID] = struct{}{}
		if e.Source == models.SourceCrash {
			crashed[e.SessionID] = struct{}{}
		}
	}

	crashRate := 0.0
	if len(sessions) > 0 {
		crashRate = float64(len(crashed)) / float64(len(sessions))
	}
	if crashRate > sessionCrashRateBound {
		v.result.AddWarning(fmt.Sprintf("business: session crash rate %.3f exceeds %.2f", crashRate, sessionCrashRateBound))
	}

	v.result.Stats["app_country_violations"] = violations
	v.result.Stats["session_crash_rate"] = crashRate
}
