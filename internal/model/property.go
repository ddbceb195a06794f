// Package model defines the shared data types for the lot-subdivision analyzer.
package model

// DimensionSource records how a lot's width and depth were obtained.
type DimensionSource string

const (
	// DimensionExplicit means the dimensions came with the input record.
	DimensionExplicit DimensionSource = "explicit"
	// DimensionParsed means the dimensions were parsed from a free-text
	// description (an "NxM" pattern) and validated against the lot area.
	DimensionParsed DimensionSource = "parsed"
	// DimensionEstimated means the dimensions were derived from the lot
	// area using an assumed aspect ratio.
	DimensionEstimated DimensionSource = "estimated"
)

// LotDimensions holds a lot's street-facing width and depth in feet.
type LotDimensions struct {
	Width  float64         `json:"width"`
	Depth  float64         `json:"depth"`
	Source DimensionSource `json:"source"`
}

// PropertySource tags where a Property record came from.
type PropertySource string

const (
	SourceCSV       PropertySource = "csv"
	SourceMLS       PropertySource = "mls"
	SourceXLSX      PropertySource = "xlsx"
	SourceShapefile PropertySource = "shapefile"
	SourceParcelAPI PropertySource = "parcel_api"
	// SourceEstimated marks a best-effort record synthesized after an
	// external lookup failed.
	SourceEstimated PropertySource = "estimated"
	SourceManual    PropertySource = "manual"
)

// Property is one residential parcel under analysis. It is constructed once
// from an external record (CSV row, API response, manual entry) and never
// mutated afterwards.
type Property struct {
	Address     string         `json:"address"`
	Price       float64        `json:"price"`               // purchase price in dollars; 0 = unknown
	LotArea     float64        `json:"lot_area"`            // square feet; required for analysis
	ZoningCode  string         `json:"zoning_code"`         // e.g. "SF-3"; defaults when unrecognized
	LivableArea float64        `json:"livable_area"`        // square feet of conditioned space, optional
	Bedrooms    int            `json:"bedrooms,omitempty"`
	Bathrooms   float64        `json:"bathrooms,omitempty"`
	YearBuilt   int            `json:"year_built,omitempty"`
	Dimensions  *LotDimensions `json:"dimensions,omitempty"` // optional; resolved by the geometry estimator when absent
	Description string         `json:"description,omitempty"` // free-text remarks, scanned for embedded dimensions
	Source      PropertySource `json:"source,omitempty"`
	Historic    bool           `json:"historic,omitempty"` // inside a historic district per parcel lookup
}

// Complete reports whether the property carries the fields required for
// analysis: price, lot area, and address.
func (p Property) Complete() bool {
	return p.Price > 0 && p.LotArea > 0 && p.Address != ""
}

// AnalysisConfig holds the user-supplied knobs for one analysis run.
type AnalysisConfig struct {
	MaxPrice         float64 `json:"max_price" yaml:"max_price" mapstructure:"max_price"`
	MinLotArea       float64 `json:"min_lot_area" yaml:"min_lot_area" mapstructure:"min_lot_area"`
	TargetProfitPct  float64 `json:"target_profit_pct" yaml:"target_profit_pct" mapstructure:"target_profit_pct"`
	RenovationBudget float64 `json:"renovation_budget" yaml:"renovation_budget" mapstructure:"renovation_budget"`
}

// DefaultAnalysisConfig returns the documented fallback configuration used
// when the caller supplies nothing.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		MaxPrice:         900000,
		MinLotArea:       7000,
		TargetProfitPct:  20,
		RenovationBudget: 100000,
	}
}

// WithDefaults fills any non-positive field from DefaultAnalysisConfig.
// Missing or malformed config values degrade to defaults rather than failing.
func (c AnalysisConfig) WithDefaults() AnalysisConfig {
	d := DefaultAnalysisConfig()
	if c.MaxPrice <= 0 {
		c.MaxPrice = d.MaxPrice
	}
	if c.MinLotArea <= 0 {
		c.MinLotArea = d.MinLotArea
	}
	if c.TargetProfitPct <= 0 {
		c.TargetProfitPct = d.TargetProfitPct
	}
	if c.RenovationBudget <= 0 {
		c.RenovationBudget = d.RenovationBudget
	}
	return c
}
