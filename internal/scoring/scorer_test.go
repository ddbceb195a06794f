package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lotworks/lotsplit/internal/model"
)

func TestScoreFeasible(t *testing.T) {
	t.Parallel()

	cfg := model.DefaultAnalysisConfig()

	tests := []struct {
		name string
		p    model.Property
		f    model.Feasibility
		fin  model.Financials
		want int
	}{
		{
			name: "all components capped",
			p:    model.Property{LotArea: 14500},
			f: model.Feasibility{
				CanSplit:      true,
				NewLotArea:    7250, // ratio 0.5 hits the 30 cap
				BuildableArea: 4900, // over 2/3 of the new lot hits the 20 cap
			},
			fin:  model.Financials{ProfitMarginPct: 25, MeetsTarget: true},
			want: 100,
		},
		{
			name: "partial components",
			p:    model.Property{LotArea: 14500},
			f: model.Feasibility{
				CanSplit:      true,
				NewLotArea:    6775,
				BuildableArea: 3000,
			},
			fin: model.Financials{ProfitMarginPct: 10},
			// 6775/14500*60 = 28.03, 10/20*40 = 20, 3000/6775*30 = 13.28
			want: 61,
		},
		{
			name: "negative margin floors at zero",
			p:    model.Property{LotArea: 14500},
			f: model.Feasibility{
				CanSplit:      true,
				NewLotArea:    6775,
				BuildableArea: 3000,
			},
			fin: model.Financials{ProfitMarginPct: -30},
			// 28.03 + 0 + 13.28
			want: 41,
		},
		{
			name: "zero new lot skips buildable component",
			p:    model.Property{LotArea: 14500},
			f:    model.Feasibility{CanSplit: true, NewLotArea: 0, BuildableArea: 3000},
			fin:  model.Financials{ProfitMarginPct: 10},
			want: 20,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Score(tt.p, cfg, tt.f, tt.fin)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestScoreInfeasible(t *testing.T) {
	t.Parallel()

	cfg := model.DefaultAnalysisConfig()

	// Too small for even the legacy calculation.
	got := Score(model.Property{LotArea: 5000, ZoningCode: "SF-3"}, cfg, model.Feasibility{}, model.Financials{})
	assert.Zero(t, got)

	// Big enough to split by size but blocked on another gate: the legacy
	// ratio still earns a consolation score. floor((14500-7000)*0.9)/14500*20.
	got = Score(model.Property{LotArea: 14500, ZoningCode: "SF-3"}, cfg, model.Feasibility{}, model.Financials{})
	assert.Equal(t, 9, got)
}

func TestStatusFor(t *testing.T) {
	t.Parallel()

	cfg := model.DefaultAnalysisConfig()
	feasible := model.Feasibility{CanSplit: true}

	tests := []struct {
		name  string
		score int
		p     model.Property
		f     model.Feasibility
		want  model.Status
	}{
		{name: "excellent at threshold", score: 80, p: model.Property{Price: 500000}, f: feasible, want: model.StatusExcellent},
		{name: "good below excellent", score: 79, p: model.Property{Price: 500000}, f: feasible, want: model.StatusGood},
		{name: "good at threshold", score: 60, p: model.Property{Price: 500000}, f: feasible, want: model.StatusGood},
		{name: "poor below good", score: 59, p: model.Property{Price: 500000}, f: feasible, want: model.StatusPoor},
		{name: "over budget forces poor", score: 95, p: model.Property{Price: 950000}, f: feasible, want: model.StatusPoor},
		{name: "at budget cap is not over", score: 95, p: model.Property{Price: 900000}, f: feasible, want: model.StatusExcellent},
		{name: "infeasible forces poor", score: 95, p: model.Property{Price: 500000}, f: model.Feasibility{}, want: model.StatusPoor},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StatusFor(tt.score, tt.p, cfg, tt.f))
		})
	}
}
