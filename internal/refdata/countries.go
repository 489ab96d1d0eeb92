// Package refdata holds the immutable reference catalogs the generator and
// validator both read: country and locale weights, device catalogs, the app
// and version tables, and the event vocabularies. The tables are plain
// package-level values, built once and never mutated.
package refdata

// Weighted pairs a categorical value with its sampling weight.
type Weighted struct {
	Value  string
	Weight float64
}

// Countries lists the six markets with their session weights. Kenya dominates.
var Countries = []Weighted{
	{Value: "KE", Weight: 0.35},
	{Value: "TZ", Weight: 0.18},
	{Value: "UG", Weight: 0.15},
	{Value: "RW", Weight: 0.12},
	{Value: "SS", Weight: 0.10},
	{Value: "DRC", Weight: 0.10},
}

// CountryWeight returns the configured session weight for a country code.
func CountryWeight(code string) float64 {
	for _, c := range Countries {
		if c.Value == code {
			return c.Weight
		}
	}
	return 0
}

// Locales maps each country to its weighted locale table.
var Locales = map[string][]Weighted{
	"KE":  {{Value: "en-KE", Weight: 0.6}, {Value: "sw-KE", Weight: 0.4}},
	"TZ":  {{Value: "sw-TZ", Weight: 0.7}, {Value: "en-TZ", Weight: 0.3}},
	"UG":  {{Value: "en-UG", Weight: 0.8}, {Value: "sw-UG", Weight: 0.2}},
	"RW":  {{Value: "rw-RW", Weight: 0.5}, {Value: "en-RW", Weight: 0.3}, {Value: "fr-RW", Weight: 0.2}},
	"SS":  {{Value: "en-SS", Weight: 0.7}, {Value: "ar-SS", Weight: 0.3}},
	"DRC": {{Value: "fr-CD", Weight: 0.5}, {Value: "ln-CD", Weight: 0.3}, {Value: "sw-CD", Weight: 0.2}},
}

// LocaleWeight returns the configured weight of a locale within its country's
// table, or 0 when the pairing is not modelled.
func LocaleWeight(country, locale string) float64 {
	for _, l := range Locales[country] {
		if l.Value == locale {
			return l.Weight
		}
	}
	return 0
}

// KnownLocale reports whether code appears in any country's locale table.
func KnownLocale(code string) bool {
	for _, locales := range Locales {
		for _, l := range locales {
			if l.Value == code {
				return true
			}
		}
	}
	return false
}

// Carriers maps each country to its weighted cellular carrier list.
var Carriers = map[string][]Weighted{
	"KE":  {{Value: "Safaricom", Weight: 0.65}, {Value: "Airtel Kenya", Weight: 0.25}, {Value: "Telkom Kenya", Weight: 0.10}},
	"TZ":  {{Value: "Vodacom Tanzania", Weight: 0.40}, {Value: "Airtel Tanzania", Weight: 0.30}, {Value: "Tigo", Weight: 0.30}},
	"UG":  {{Value: "MTN Uganda", Weight: 0.55}, {Value: "Airtel Uganda", Weight: 0.45}},
	"RW":  {{Value: "MTN Rwanda", Weight: 0.60}, {Value: "Airtel Rwanda", Weight: 0.40}},
	"SS":  {{Value: "MTN South Sudan", Weight: 0.55}, {Value: "Zain South Sudan", Weight: 0.45}},
	"DRC": {{Value: "Vodacom Congo", Weight: 0.40}, {Value: "Airtel Congo", Weight: 0.35}, {Value: "Orange RDC", Weight: 0.25}},
}

// CurrencyFor returns the transaction currency for a country. Markets without
// a modelled local currency transact in USD.
func CurrencyFor(country string) string {
	switch country {
	case "KE":
		return "KES"
	case "UG":
		return "UGX"
	case "TZ":
		return "TZS"
	default:
		return "USD"
	}
}

// BranchAreas maps each country to the area codes used in branch identifiers.
var BranchAreas = map[string][]string{
	"KE":  {"NBO", "MSA", "KSM", "NKR"},
	"TZ":  {"DAR", "ARK", "MWZ"},
	"UG":  {"KLA", "GUL", "MBR"},
	"RW":  {"KGL", "HYE"},
	"SS":  {"JUB", "WAU"},
	"DRC": {"KIN", "LUB", "GOM"},
}

// HourWeights biases event timestamps toward banking hours: peaks at 09-11
// and 14-16, near-zero overnight. Index is the UTC hour.
var HourWeights = [24]float64{
	0.2, 0.1, 0.1, 0.1, 0.2, 0.5, // 00-05
	1.0, 2.0, 4.0, // 06-08
	6.0, 6.5, 6.0, // 09-11
	4.5, 5.0, // 12-13
	6.0, 6.5, 5.5, // 14-16
	4.0, 3.0, 2.5, // 17-19
	2.0, 1.5, 1.0, 0.5, // 20-23
}
