package refdata

// Device is one catalog entry with its coarse performance tier.
type Device struct {
	Model  string
	Tier   string
	Weight float64
}

// Devices maps each platform to its weighted device catalog. Weights skew
// toward low and mid tier hardware, matching the markets being simulated.
var Devices = map[string][]Device{
	"ios": {
		{Model: "iPhone 8", Tier: "low", Weight: 0.15},
		{Model: "iPhone SE (2nd gen)", Tier: "low", Weight: 0.15},
		{Model: "iPhone 11", Tier: "mid", Weight: 0.28},
		{Model: "iPhone 13", Tier: "mid", Weight: 0.22},
		{Model: "iPhone 14", Tier: "high", Weight: 0.12},
		{Model: "iPhone 15 Pro", Tier: "high", Weight: 0.08},
	},
	"android": {
		{Model: "Tecno Spark 10", Tier: "low", Weight: 0.20},
		{Model: "Infinix Hot 30", Tier: "low", Weight: 0.18},
		{Model: "Samsung Galaxy A14", Tier: "low", Weight: 0.15},
		{Model: "Samsung Galaxy A54", Tier: "mid", Weight: 0.16},
		{Model: "Redmi Note 12", Tier: "mid", Weight: 0.14},
		{Model: "Samsung Galaxy S21", Tier: "high", Weight: 0.10},
		{Model: "Google Pixel 7", Tier: "high", Weight: 0.07},
	},
	"web": {
		{Model: "Chrome Mobile", Tier: "mid", Weight: 0.35},
		{Model: "Opera Mini", Tier: "low", Weight: 0.20},
		{Model: "Chrome Desktop", Tier: "high", Weight: 0.25},
		{Model: "Firefox Desktop", Tier: "mid", Weight: 0.12},
		{Model: "Safari Desktop", Tier: "high", Weight: 0.08},
	},
}

// OSVersions maps each platform to its weighted OS/browser version table.
var OSVersions = map[string][]Weighted{
	"ios": {
		{Value: "16.7", Weight: 0.3},
		{Value: "17.5", Weight: 0.4},
		{Value: "18.2", Weight: 0.3},
	},
	"android": {
		{Value: "11", Weight: 0.25},
		{Value: "12", Weight: 0.25},
		{Value: "13", Weight: 0.30},
		{Value: "14", Weight: 0.20},
	},
	"web": {
		{Value: "Chrome 126", Weight: 0.45},
		{Value: "Chrome 124", Weight: 0.20},
		{Value: "Firefox 127", Weight: 0.15},
		{Value: "Safari 17", Weight: 0.10},
		{Value: "Opera 80", Weight: 0.10},
	},
}
