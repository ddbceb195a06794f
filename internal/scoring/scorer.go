// Package scoring collapses a feasibility verdict and financials into a
// single 0-100 desirability score and a three-tier status label.
package scoring

import (
	"math"

	"github.com/lotworks/lotsplit/internal/feasibility"
	"github.com/lotworks/lotsplit/internal/model"
	"github.com/lotworks/lotsplit/internal/zoning"
)

const (
	excellentThreshold = 80
	goodThreshold      = 60
)

// Score computes the overall investment score. A feasible split earns four
// independently-capped components (lot size 30, profit 40, buildable 20,
// target-met bonus 10); infeasible lots fall back to the legacy split ratio
// worth at most 20 points.
func Score(p model.Property, cfg model.AnalysisConfig, f model.Feasibility, fin model.Financials) int {
	if !f.CanSplit {
		d := zoning.Lookup(p.ZoningCode)
		legacy := feasibility.LegacySplitRatio(p.LotArea, d)
		return clamp(int(math.Round(legacy * 20)))
	}

	var score float64

	splitRatio := 0.0
	if p.LotArea > 0 {
		splitRatio = f.NewLotArea / p.LotArea
	}
	score += math.Min(30, splitRatio*60)

	profitRatio := 0.0
	if cfg.TargetProfitPct > 0 {
		profitRatio = math.Max(0, fin.ProfitMarginPct/cfg.TargetProfitPct)
	}
	score += math.Min(40, profitRatio*40)

	if f.NewLotArea > 0 {
		score += math.Min(20, f.BuildableArea/f.NewLotArea*30)
	}

	if fin.MeetsTarget {
		score += 10
	}

	return clamp(int(math.Round(score)))
}

// StatusFor maps a score to its tier. Properties over the configured price
// cap and infeasible splits are forced to poor regardless of score.
func StatusFor(score int, p model.Property, cfg model.AnalysisConfig, f model.Feasibility) model.Status {
	if p.Price > cfg.MaxPrice || !f.CanSplit {
		return model.StatusPoor
	}
	switch {
	case score >= excellentThreshold:
		return model.StatusExcellent
	case score >= goodThreshold:
		return model.StatusGood
	default:
		return model.StatusPoor
	}
}

func clamp(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
