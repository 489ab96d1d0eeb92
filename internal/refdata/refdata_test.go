package refdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, c := range Countries {
		sum += c.Weight
	}
	assert.InDelta(t, 1.0, sum, 0.001)
}

func TestEveryCountryHasTables(t *testing.T) {
	for _, c := range Countries {
		assert.NotEmpty(t, Locales[c.Value], "locales for %s", c.Value)
		assert.NotEmpty(t, Carriers[c.Value], "carriers for %s", c.Value)
		assert.NotEmpty(t, BranchAreas[c.Value], "branch areas for %s", c.Value)
	}
}

func TestEveryCountryHasBothAudiences(t *testing.T) {
	for _, c := range Countries {
		assert.NotEmpty(t, FilterApps(AudienceCustomer, c.Value), "customer apps for %s", c.Value)
		assert.NotEmpty(t, FilterApps(AudienceBranch, c.Value), "branch apps for %s", c.Value)
	}
}

func TestVersionTableComplete(t *testing.T) {
	channels := []string{"dev", "uat", "pilot", "prod"}
	for _, app := range Apps {
		for _, platform := range app.Platforms {
			for _, channel := range channels {
				versions := VersionsFor(app.ID, channel, platform)
				require.NotEmpty(t, versions, "%s/%s/%s", app.ID, channel, platform)
				for _, v := range versions {
					if channel == "dev" {
						assert.Contains(t, v.Version, "-dev")
					}
					if channel == "prod" {
						assert.False(t, strings.Contains(v.Version, "-"),
							"prod version %s must not carry a prerelease marker", v.Version)
					}
					assert.Greater(t, v.Build, 0)
					assert.GreaterOrEqual(t, v.ReleaseDaysAgo, 0)
				}
			}
		}
	}
}

func TestVersionsForUnknownPlatform(t *testing.T) {
	assert.Empty(t, VersionsFor("com.bank.mobile", "prod", "web"))
}

func TestCrashGroupWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, g := range CrashGroups {
		sum += g.Weight
	}
	assert.InDelta(t, 1.0, sum, 0.001)
}

func TestCurrencyFor(t *testing.T) {
	assert.Equal(t, "KES", CurrencyFor("KE"))
	assert.Equal(t, "UGX", CurrencyFor("UG"))
	assert.Equal(t, "TZS", CurrencyFor("TZ"))
	assert.Equal(t, "USD", CurrencyFor("SS"))
	assert.Equal(t, "USD", CurrencyFor("DRC"))
	assert.Equal(t, "USD", CurrencyFor("RW"))
}

func TestKnownLocale(t *testing.T) {
	assert.True(t, KnownLocale("sw-KE"))
	assert.True(t, KnownLocale("fr-CD"))
	assert.False(t, KnownLocale("xx-XX"))
}

func TestLocaleWeight(t *testing.T) {
	assert.InDelta(t, 0.4, LocaleWeight("KE", "sw-KE"), 1e-9)
	assert.Zero(t, LocaleWeight("KE", "sw-TZ"), "cross-country pairing")
	assert.Zero(t, LocaleWeight("KE", "xx-XX"))
}

func TestHourWeightsBiasBankingHours(t *testing.T) {
	// Overnight buckets stay near zero relative to the morning peak.
	assert.Greater(t, HourWeights[10], HourWeights[2]*10)
	assert.Greater(t, HourWeights[15], HourWeights[4]*10)
}
