package refdata

import "fmt"

// App audiences. Branch apps are used by tellers and agents, customer apps by
// retail users.
const (
	AudienceBranch   = "branch"
	AudienceCustomer = "customer"
)

// App is one catalog entry in the simulated banking ecosystem.
type App struct {
	ID        string
	Name      string
	Audience  string
	Countries []string
	Platforms []string
}

// Apps is the full application catalog.
var Apps = []App{
	{
		ID:        "com.bank.mobile",
		Name:      "Mobile Banking",
		Audience:  AudienceCustomer,
		Countries: []string{"KE", "TZ", "UG", "RW", "SS", "DRC"},
		Platforms: []string{"ios", "android"},
	},
	{
		ID:        "com.bank.wallet",
		Name:      "Pesa Wallet",
		Audience:  AudienceCustomer,
		Countries: []string{"KE", "TZ", "UG"},
		Platforms: []string{"ios", "android"},
	},
	{
		ID:        "web.bank.retail",
		Name:      "Internet Banking",
		Audience:  AudienceCustomer,
		Countries: []string{"KE", "TZ", "UG", "RW", "SS", "DRC"},
		Platforms: []string{"web"},
	},
	{
		ID:        "web.bank.branch",
		Name:      "Branch Teller Portal",
		Audience:  AudienceBranch,
		Countries: []string{"KE", "TZ", "UG", "RW", "SS", "DRC"},
		Platforms: []string{"web", "android"},
	},
	{
		ID:        "com.bank.agent",
		Name:      "Agent Banking",
		Audience:  AudienceBranch,
		Countries: []string{"KE", "UG", "RW"},
		Platforms: []string{"android"},
	},
}

// AppByID looks up an app in the catalog.
func AppByID(id string) (App, bool) {
	for _, a := range Apps {
		if a.ID == id {
			return a, true
		}
	}
	return App{}, false
}

// AppAllowsCountry reports whether the app is available in the country.
func AppAllowsCountry(appID, country string) bool {
	a, ok := AppByID(appID)
	if !ok {
		return false
	}
	for _, c := range a.Countries {
		if c == country {
			return true
		}
	}
	return false
}

// FilterApps returns the catalog entries matching an audience and country.
func FilterApps(audience, country string) []App {
	var out []App
	for _, a := range Apps {
		if a.Audience != audience {
			continue
		}
		for _, c := range a.Countries {
			if c == country {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

// AppVersion is one (version, build, release age) tuple from the per-app,
// per-channel, per-platform release table.
type AppVersion struct {
	Version        string
	Build          int
	ReleaseDaysAgo int
}

// FallbackVersion is returned when a release table has no candidates.
var FallbackVersion = AppVersion{Version: "1.0.0", Build: 1, ReleaseDaysAgo: 365}

// channelSuffixes give version strings their channel convention: dev and uat
// builds carry a prerelease marker, pilot builds an rc marker, prod none.
var channelSuffixes = map[string]string{
	"dev":   "-dev",
	"uat":   "-uat",
	"pilot": "-rc",
	"prod":  "",
}

// channelReleaseAges stagger release dates so every channel carries a fresh
// (spike-window) release plus older ones for the adoption curve.
var channelReleaseAges = map[string][]int{
	"dev":   {2, 9, 16, 27},
	"uat":   {4, 12, 22},
	"pilot": {6, 15, 28},
	"prod":  {10, 24, 45},
}

// appBaseVersions anchor each app's semver line.
var appBaseVersions = map[string]string{
	"com.bank.mobile": "4.2",
	"com.bank.wallet": "2.8",
	"web.bank.retail": "3.1",
	"web.bank.branch": "5.0",
	"com.bank.agent":  "1.6",
}

// versionTable is keyed by "appID|channel|platform".
var versionTable = buildVersionTable()

func buildVersionTable() map[string][]AppVersion {
	table := make(map[string][]AppVersion)
	for appIdx, app := range Apps {
		base := appBaseVersions[app.ID]
		for platIdx, platform := range app.Platforms {
			for channel, ages := range channelReleaseAges {
				suffix := channelSuffixes[channel]
				entries := make([]AppVersion, 0, len(ages))
				for i, age := range ages {
					patch := len(ages) - i // newest release has the highest patch
					entries = append(entries, AppVersion{
						Version:        fmt.Sprintf("%s.%d%s", base, patch, suffix),
						Build:          1000*(appIdx+1) + 100*platIdx + 10*channelRank(channel) + patch,
						ReleaseDaysAgo: age,
					})
				}
				table[app.ID+"|"+channel+"|"+platform] = entries
			}
		}
	}
	return table
}

func channelRank(channel string) int {
	switch channel {
	case "dev":
		return 0
	case "uat":
		return 1
	case "pilot":
		return 2
	default:
		return 3
	}
}

// VersionsFor returns the release table for (app, channel, platform). The
// result is nil when the app does not ship on that platform.
func VersionsFor(appID, channel, platform string) []AppVersion {
	return versionTable[appID+"|"+channel+"|"+platform]
}
