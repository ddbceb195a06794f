package zoning

// MarketProfile holds per-zip pricing assumptions. All dollar figures are
// per square foot; Multiplier scales every value relative to the metro
// baseline (1.0).
type MarketProfile struct {
	PricePerSqFt        float64 `json:"price_per_sqft" yaml:"price_per_sqft"`               // finished livable space
	LandValuePerSqFt    float64 `json:"land_value_per_sqft" yaml:"land_value_per_sqft"`     // raw platted lot
	ConstructionPerSqFt float64 `json:"construction_per_sqft" yaml:"construction_per_sqft"` // new single-family build
	AppreciationRate    float64 `json:"appreciation_rate" yaml:"appreciation_rate"`         // annual, fractional
	Multiplier          float64 `json:"multiplier" yaml:"multiplier"`
}

// DefaultMarketKey is used when an address has no recognizable zip code or
// the zip is outside the table.
const DefaultMarketKey = "default"

var markets = map[string]MarketProfile{
	"78701": {PricePerSqFt: 600, LandValuePerSqFt: 55, ConstructionPerSqFt: 220, AppreciationRate: 0.05, Multiplier: 1.50},
	"78703": {PricePerSqFt: 550, LandValuePerSqFt: 50, ConstructionPerSqFt: 210, AppreciationRate: 0.05, Multiplier: 1.45},
	"78704": {PricePerSqFt: 450, LandValuePerSqFt: 35, ConstructionPerSqFt: 200, AppreciationRate: 0.06, Multiplier: 1.35},
	"78702": {PricePerSqFt: 400, LandValuePerSqFt: 30, ConstructionPerSqFt: 190, AppreciationRate: 0.06, Multiplier: 1.30},
	"78731": {PricePerSqFt: 380, LandValuePerSqFt: 28, ConstructionPerSqFt: 185, AppreciationRate: 0.04, Multiplier: 1.25},
	"78759": {PricePerSqFt: 340, LandValuePerSqFt: 24, ConstructionPerSqFt: 180, AppreciationRate: 0.04, Multiplier: 1.20},
	"78723": {PricePerSqFt: 320, LandValuePerSqFt: 22, ConstructionPerSqFt: 175, AppreciationRate: 0.05, Multiplier: 1.15},
	"78745": {PricePerSqFt: 300, LandValuePerSqFt: 20, ConstructionPerSqFt: 170, AppreciationRate: 0.04, Multiplier: 1.10},
	"78748": {PricePerSqFt: 260, LandValuePerSqFt: 16, ConstructionPerSqFt: 165, AppreciationRate: 0.03, Multiplier: 1.00},
	DefaultMarketKey: {PricePerSqFt: 250, LandValuePerSqFt: 15, ConstructionPerSqFt: 160, AppreciationRate: 0.04, Multiplier: 1.00},
}

// Market returns the market profile for a zip code, falling back to the
// metro default for unknown or empty zips.
func Market(zip string) MarketProfile {
	if m, ok := markets[zip]; ok {
		return m
	}
	return markets[DefaultMarketKey]
}
