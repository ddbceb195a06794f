package model

// Status is the three-tier desirability label attached to a scored result.
type Status string

const (
	StatusExcellent Status = "excellent"
	StatusGood      Status = "good"
	StatusPoor      Status = "poor"
)

// CostBreakdown itemizes the estimated subdivision cost in dollars.
type CostBreakdown struct {
	Platting  float64 `json:"platting"`
	Utilities float64 `json:"utilities"`
	Survey    float64 `json:"survey"`
	Permits   float64 `json:"permits"`
	Total     float64 `json:"total"`
}

// Timeline estimates the subdivision process duration in months. Total is
// the longer of the platting and utility tracks plus a two-month closing
// allowance.
type Timeline struct {
	PlattingMonths int `json:"platting_months"`
	UtilityMonths  int `json:"utility_months"`
	TotalMonths    int `json:"total_months"`
}

// Feasibility is the outcome of the subdivision gate checks for one
// property. Fields beyond CanSplit, Reasons, and Risks are populated only
// when CanSplit is true.
type Feasibility struct {
	CanSplit bool     `json:"can_split"`
	Reasons  []string `json:"reasons,omitempty"` // ordered rejection reasons; empty iff CanSplit
	Risks    []string `json:"risks,omitempty"`   // non-blocking risk notes

	District   string        `json:"district"` // zoning code actually applied (after fallback)
	Dimensions LotDimensions `json:"dimensions"`

	KeptLotArea       float64       `json:"kept_lot_area,omitempty"` // district minimum retained for the existing home
	NewLotArea        float64       `json:"new_lot_area,omitempty"`
	BuildableArea     float64       `json:"buildable_area,omitempty"`      // net buildable sq ft on the new lot
	MaxHouseFootprint float64       `json:"max_house_footprint,omitempty"` // buildable x coverage fraction, floored
	MaxPotentialLots  int           `json:"max_potential_lots,omitempty"`  // floor(usable area / district minimum)
	Costs             CostBreakdown `json:"costs,omitempty"`
	Timeline          Timeline      `json:"timeline,omitempty"`
	Requirements      []string      `json:"requirements,omitempty"` // static informational checklist
}

// Financials is the investment economics for one property, produced whether
// or not the split is feasible.
type Financials struct {
	PurchasePrice          float64 `json:"purchase_price"`
	RenovationBudget       float64 `json:"renovation_budget"`
	TotalInvestment        float64 `json:"total_investment"`
	RenovatedValue         float64 `json:"renovated_value"`
	NewLotValue            float64 `json:"new_lot_value"`          // 0 when infeasible
	NewConstructionValue   float64 `json:"new_construction_value"` // 0 when infeasible
	TotalValue             float64 `json:"total_value"`
	Profit                 float64 `json:"profit"`
	ProfitMarginPct        float64 `json:"profit_margin_pct"`
	MeetsTarget            bool    `json:"meets_target"`
	BreakEvenRenovatedSale float64 `json:"break_even_renovated_sale"`
	BreakEvenLotSale       float64 `json:"break_even_lot_sale"`
	ZipCode                string  `json:"zip_code,omitempty"` // zip used for the market lookup; empty = default profile
}

// AnalysisResult is the terminal output for one property in one run.
type AnalysisResult struct {
	Property    Property    `json:"property"`
	Feasibility Feasibility `json:"feasibility"`
	Financials  Financials  `json:"financials"`
	Score       int         `json:"score"`  // 0-100
	Status      Status      `json:"status"`
}
