// Package analysis sequences the zoning, financial, and scoring stages per
// property and ranks batch results.
package analysis

import (
	"context"
	"sort"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lotworks/lotsplit/internal/feasibility"
	"github.com/lotworks/lotsplit/internal/finance"
	"github.com/lotworks/lotsplit/internal/model"
	"github.com/lotworks/lotsplit/internal/scoring"
)

// DefaultConcurrency bounds the batch map step. Per-property analysis is a
// pure computation over shared immutable tables, so any limit is safe.
const DefaultConcurrency = 8

// AnalyzeOne analyzes a single property. It returns an error only when the
// property is missing a required field (price, lot area, or address); every
// complete property yields a result, feasible or not.
func AnalyzeOne(p model.Property, cfg model.AnalysisConfig) (*model.AnalysisResult, error) {
	if !p.Complete() {
		return nil, eris.Errorf("analysis: property %q missing required fields (price=%.0f lot=%.0f)",
			p.Address, p.Price, p.LotArea)
	}
	cfg = cfg.WithDefaults()

	zip := finance.ZipFromAddress(p.Address)
	feas := feasibility.Evaluate(p, zip)
	fin := finance.Calculate(p, cfg, feas)
	score := scoring.Score(p, cfg, feas, fin)

	return &model.AnalysisResult{
		Property:    p,
		Feasibility: feas,
		Financials:  fin,
		Score:       score,
		Status:      scoring.StatusFor(score, p, cfg, feas),
	}, nil
}

// AnalyzeBatch analyzes properties concurrently and returns the results
// ranked by score descending (stable: ties keep input order). Incomplete
// properties are skipped silently; a failure on one property never aborts
// the batch.
func AnalyzeBatch(ctx context.Context, properties []model.Property, cfg model.AnalysisConfig) []model.AnalysisResult {
	cfg = cfg.WithDefaults()

	slots := make([]*model.AnalysisResult, len(properties))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(DefaultConcurrency)

	for i, p := range properties {
		if !p.Complete() {
			zap.L().Debug("analysis: skipping incomplete property",
				zap.String("address", p.Address),
			)
			continue
		}
		i, p := i, p
		g.Go(func() error {
			r, err := AnalyzeOne(p, cfg)
			if err != nil {
				zap.L().Warn("analysis: property failed",
					zap.String("address", p.Address),
					zap.Error(err),
				)
				return nil // skip, don't abort the batch
			}
			slots[i] = r
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	results := make([]model.AnalysisResult, 0, len(properties))
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	zap.L().Info("analysis: batch complete",
		zap.Int("input", len(properties)),
		zap.Int("analyzed", len(results)),
	)
	return results
}
