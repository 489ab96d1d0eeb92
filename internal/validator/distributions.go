package validator

import (
	"fmt"
	"math"

	"github.com/telesynth/telesynth-cli/internal/models"
	"github.com/telesynth/telesynth-cli/internal/refdata"
)

// Drift tolerances: absolute deviation from the configured weights.
const (
	ratioTolerance      = 0.1
	crashRatioTolerance = 0.02
)

// checkDistributions compares realized source, country and locale shares
// against the weights the generator sampled from. Unknown locales are hard
// errors; ratio drift is a warning.
func (v *validator) checkDistributions() {
	total := len(v.events)
	if total == 0 {
		v.result.AddError("distributions: corpus is empty")
		return
	}

	sources := make(map[string]int)
	countries := make(map[string]int)
	locales := make(map[string]map[string]int)
	badLocales := make(map[string]struct{})

	for i := range v.events {
		e := &v.events[i]
		sources[e.Source]++
		countries[e.Country]++
		if locales[e.Country] == nil {
			locales[e.Country] = make(map[string]int)
		}
		locales[e.Country][e.Locale]++
		if !refdata.KnownLocale(e.Locale) {
			if _, dup := badLocales[e.Locale]; !dup {
				badLocales[e.Locale] = struct{}{}
				v.result.AddError(fmt.Sprintf("distributions: unknown locale %q", e.Locale))
			}
		}
	}

	sourceDist := make(map[string]float64, len(sources))
	for source, count := range sources {
		sourceDist[source] = float64(count) / float64(total)
	}

	expected := map[string]float64{
		models.SourceAnalytics:   v.cfg.SourceRatios.Analytics,
		models.SourcePerformance: v.cfg.SourceRatios.Performance,
		models.SourceCrash:       v.cfg.SourceRatios.Crash,
	}
	for source, want := range expected {
		tolerance := ratioTolerance
		if source == models.SourceCrash {
			tolerance = crashRatioTolerance
		}
		got := sourceDist[source]
		if math.Abs(got-want) > tolerance {
			v.result.AddWarning(fmt.Sprintf(
				"distributions: %s ratio %.3f outside %.3f±%.2f", source, got, want, tolerance))
		}
	}

	countryDist := make(map[string]float64, len(countries))
	for country, count := range countries {
		got := float64(count) / float64(total)
		countryDist[country] = got
		if math.Abs(got-refdata.CountryWeight(country)) > ratioTolerance {
			v.result.AddWarning(fmt.Sprintf(
				"distributions: country %s ratio %.3f outside %.3f±%.2f",
				country, got, refdata.CountryWeight(country), ratioTolerance))
		}
	}

	// Locale shares are measured within each country's cohort, against that
	// country's locale table.
	localeDist := make(map[string]map[string]float64, len(locales))
	for country, counts := range locales {
		cohort := countries[country]
		dist := make(map[string]float64, len(counts))
		for locale, count := range counts {
			dist[locale] = float64(count) / float64(cohort)
		}
		for _, entry := range refdata.Locales[country] {
			got := dist[entry.Value]
			if math.Abs(got-entry.Weight) > ratioTolerance {
				v.result.AddWarning(fmt.Sprintf(
					"distributions: locale %s in %s ratio %.3f outside %.3f±%.2f",
					entry.Value, country, got, entry.Weight, ratioTolerance))
			}
		}
		localeDist[country] = dist
	}

	v.result.Stats["source_distribution"] = sourceDist
	v.result.Stats["country_distribution"] = countryDist
	v.result.Stats["locale_distribution"] = localeDist
	v.result.Stats["crash_rate"] = sourceDist[models.SourceCrash]
}
