// Package feasibility decides whether a residential lot can be subdivided
// under the applicable district standards and, when it can, estimates the
// resulting lots, costs, and timeline.
package feasibility

import (
	"fmt"
	"math"

	"github.com/lotworks/lotsplit/internal/geometry"
	"github.com/lotworks/lotsplit/internal/model"
	"github.com/lotworks/lotsplit/internal/zoning"
)

const (
	// minStreetFrontage is the per-lot minimum street frontage in feet.
	minStreetFrontage = 25
	// interLotBuffer is the extra width required between the two resulting
	// lots, in feet.
	interLotBuffer = 10
	// usableFraction reserves 5% of the parcel for utility easements.
	usableFraction = 0.95
	// footprintCoverage caps the house footprint at this fraction of the
	// net buildable area.
	footprintCoverage = 0.6
	// acreInSqFt triggers the drainage-study risk note.
	acreInSqFt = 43560

	plattingCost = 15000
	surveyCost   = 5000
	permitCost   = 3000

	plattingMonths = 6
	utilityMonths  = 3
	closingMonths  = 2
)

// requirements is the standard submission checklist attached to every
// feasible result. It is informational and always complete, whether or not
// each item's underlying risk applies to the specific parcel.
var requirements = []string{
	"Submit preliminary plat application to the City of Austin",
	"Commission drainage and stormwater runoff study",
	"Complete utility service availability survey",
	"Verify no protected trees (19in+ diameter) in the building envelope",
	"Confirm parcel is outside historic district boundaries",
	"Obtain utility commitment letters for the new lot",
	"Pay parkland dedication and street impact fees",
}

// Evaluate runs the sequential gate checks for one property and, when every
// blocking gate passes, fills in the split economics. Reasons is empty iff
// CanSplit is true.
func Evaluate(p model.Property, zip string) model.Feasibility {
	d := zoning.Lookup(p.ZoningCode)
	dims := geometry.Resolve(p.LotArea, p.Dimensions, p.Description)

	f := model.Feasibility{
		District:   d.Code,
		Dimensions: dims,
	}

	// Size gate: room for two conforming lots.
	minSizeForSplit := 2 * d.MinLotSize
	if p.LotArea < minSizeForSplit {
		f.Reasons = append(f.Reasons, fmt.Sprintf(
			"lot too small to split: %.0f sq ft, need %.0f sq ft (2 x %s minimum of %.0f)",
			p.LotArea, minSizeForSplit, d.Code, d.MinLotSize))
	}

	// Width gate: two conforming widths plus the inter-lot buffer.
	minWidth := 2*d.MinLotWidth + interLotBuffer
	if dims.Width < minWidth {
		f.Reasons = append(f.Reasons, fmt.Sprintf(
			"insufficient width for two lots: %.1f ft (%s), need %.1f ft",
			dims.Width, dims.Source, minWidth))
	}

	// Frontage gate: each lot needs its own street frontage.
	if dims.Width < 2*minStreetFrontage {
		f.Reasons = append(f.Reasons, fmt.Sprintf(
			"insufficient street frontage: %.1f ft, need %.0f ft for two lots",
			dims.Width, float64(2*minStreetFrontage)))
	}

	// Utility gate: a new lot must reach sewer and gas service.
	util := zoning.Utilities(zip)
	if !util.Sewer {
		f.Reasons = append(f.Reasons, "no municipal sewer service in this area; new lot would need a septic permit")
		f.Risks = append(f.Risks, "septic systems require TCEQ approval and a minimum lot size variance")
	}
	if !util.Gas {
		f.Reasons = append(f.Reasons, "no natural gas service in this area")
		f.Risks = append(f.Risks, "all-electric construction may reduce buyer pool")
	}

	// Drainage gate: never blocks, only flags.
	if p.LotArea > acreInSqFt {
		f.Risks = append(f.Risks, "parcel exceeds one acre; subdivision will trigger a runoff study")
	}

	if len(f.Reasons) > 0 {
		return f
	}

	f.CanSplit = true

	usable := p.LotArea * usableFraction
	f.KeptLotArea = d.MinLotSize
	f.NewLotArea = math.Floor(usable - d.MinLotSize)
	f.MaxPotentialLots = int(math.Floor(usable / d.MinLotSize))

	f.BuildableArea = geometry.DetailedBuildable(f.NewLotArea, d)
	f.MaxHouseFootprint = math.Floor(f.BuildableArea * footprintCoverage)

	f.Costs = model.CostBreakdown{
		Platting:  plattingCost,
		Utilities: util.ConnectionCost,
		Survey:    surveyCost,
		Permits:   permitCost,
	}
	f.Costs.Total = f.Costs.Platting + f.Costs.Utilities + f.Costs.Survey + f.Costs.Permits

	f.Timeline = model.Timeline{
		PlattingMonths: plattingMonths,
		UtilityMonths:  utilityMonths,
		TotalMonths:    max(plattingMonths, utilityMonths) + closingMonths,
	}

	f.Requirements = append([]string(nil), requirements...)

	return f
}

// LegacySplitRatio reproduces the superseded simplified split calculation,
// retained only for scoring infeasible lots: new-lot share of the parcel
// using a flat 10% subdivision loss and a size-only split test.
func LegacySplitRatio(lotArea float64, d zoning.District) float64 {
	if lotArea <= 0 || lotArea < 2*d.MinLotSize {
		return 0
	}
	newLot := math.Floor((lotArea - d.MinLotSize) * 0.9)
	return newLot / lotArea
}
