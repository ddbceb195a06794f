// Package finance converts a feasibility verdict and market data into
// investment economics.
package finance

import (
	"math"
	"regexp"

	"github.com/lotworks/lotsplit/internal/model"
	"github.com/lotworks/lotsplit/internal/zoning"
)

const (
	// renovationUpliftFloor is the minimum post-renovation value relative
	// to the purchase price, used when livable area is unknown or the
	// market comp comes in lower.
	renovationUpliftFloor = 1.15
	// constructionFraction is the share of the buildable envelope assumed
	// actually built on the new lot.
	constructionFraction = 0.4
	// constructionRealization discounts new-construction value to the
	// portion counted toward realizable profit.
	constructionRealization = 0.3
)

// zipPattern matches a 5-digit zip, optionally with a +4 suffix. Addresses
// lead with a street number that can itself be five digits, so the last
// match in the string wins.
var zipPattern = regexp.MustCompile(`\b(\d{5})(?:-\d{4})?\b`)

// ZipFromAddress extracts the zip code from a free-form address string.
// Returns "" when no 5-digit group is present.
func ZipFromAddress(addr string) string {
	matches := zipPattern.FindAllStringSubmatch(addr, -1)
	if len(matches) == 0 {
		return ""
	}
	return matches[len(matches)-1][1]
}

// Calculate produces the investment economics for one property. It never
// fails: unknown zips fall back to the default market profile and a missing
// livable area falls back to the purchase-price uplift floor.
func Calculate(p model.Property, cfg model.AnalysisConfig, f model.Feasibility) model.Financials {
	zip := ZipFromAddress(p.Address)
	market := zoning.Market(zip)

	fin := model.Financials{
		PurchasePrice:    p.Price,
		RenovationBudget: cfg.RenovationBudget,
		TotalInvestment:  p.Price + cfg.RenovationBudget,
		ZipCode:          zip,
	}

	fin.RenovatedValue = math.Max(
		p.LivableArea*market.PricePerSqFt*market.Multiplier,
		p.Price*renovationUpliftFloor,
	)

	if f.CanSplit {
		fin.NewLotValue = f.NewLotArea * market.LandValuePerSqFt * market.Multiplier
		fin.NewConstructionValue = f.BuildableArea * constructionFraction * market.ConstructionPerSqFt * market.Multiplier
	}

	fin.TotalValue = fin.RenovatedValue + fin.NewLotValue + constructionRealization*fin.NewConstructionValue
	fin.Profit = fin.TotalValue - fin.TotalInvestment
	if fin.TotalInvestment > 0 {
		fin.ProfitMarginPct = fin.Profit / fin.TotalInvestment * 100
	}
	fin.MeetsTarget = fin.ProfitMarginPct >= cfg.TargetProfitPct

	// Break-even sale prices per disposal strategy; reported, never gated on.
	fin.BreakEvenRenovatedSale = fin.TotalInvestment - fin.NewLotValue
	fin.BreakEvenLotSale = fin.TotalInvestment - fin.RenovatedValue

	return fin
}
