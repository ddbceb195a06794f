package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotworks/lotsplit/internal/model"
)

func splitCandidate() model.Property {
	return model.Property{
		Address:     "2204 Alta Vista Ave, Austin, TX 78704",
		Price:       650000,
		LotArea:     14500,
		ZoningCode:  "SF-3",
		LivableArea: 1800,
		Dimensions:  &model.LotDimensions{Width: 140, Depth: 103.6},
	}
}

func TestAnalyzeOne(t *testing.T) {
	t.Parallel()

	r, err := AnalyzeOne(splitCandidate(), model.AnalysisConfig{})
	require.NoError(t, err)

	assert.True(t, r.Feasibility.CanSplit)
	assert.Equal(t, 6775.0, r.Feasibility.NewLotArea)
	assert.Equal(t, "78704", r.Financials.ZipCode)
	assert.Positive(t, r.Score)
	assert.NotEmpty(t, r.Status)
}

func TestAnalyzeOneIncomplete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    model.Property
	}{
		{name: "no price", p: model.Property{Address: "1 Main St, Austin, TX 78704", LotArea: 9000}},
		{name: "no lot area", p: model.Property{Address: "1 Main St, Austin, TX 78704", Price: 500000}},
		{name: "no address", p: model.Property{Price: 500000, LotArea: 9000}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, err := AnalyzeOne(tt.p, model.AnalysisConfig{})
			assert.Error(t, err)
			assert.Nil(t, r)
		})
	}
}

func TestAnalyzeOneInfeasibleStillYieldsResult(t *testing.T) {
	t.Parallel()

	p := model.Property{
		Address: "1100 Small St, Austin, TX 78745",
		Price:   400000,
		LotArea: 5000,
	}
	r, err := AnalyzeOne(p, model.AnalysisConfig{})
	require.NoError(t, err)

	assert.False(t, r.Feasibility.CanSplit)
	assert.NotEmpty(t, r.Feasibility.Reasons)
	assert.Zero(t, r.Score)
	assert.Equal(t, model.StatusPoor, r.Status)
}

func TestAnalyzeBatch(t *testing.T) {
	t.Parallel()

	small := model.Property{
		Address: "1100 Small St, Austin, TX 78745",
		Price:   400000,
		LotArea: 5000,
	}
	incomplete := model.Property{Address: "incomplete"}

	results := AnalyzeBatch(context.Background(),
		[]model.Property{small, incomplete, splitCandidate()},
		model.AnalysisConfig{})

	require.Len(t, results, 2) // incomplete row dropped

	// Ranked by score descending.
	assert.Equal(t, "2204 Alta Vista Ave, Austin, TX 78704", results[0].Property.Address)
	assert.Equal(t, "1100 Small St, Austin, TX 78745", results[1].Property.Address)
	assert.GreaterOrEqual(t, results[0].Score, results[1].Score)
}

func TestAnalyzeBatchStableOnTies(t *testing.T) {
	t.Parallel()

	a := model.Property{Address: "1 First St, Austin, TX 78745", Price: 400000, LotArea: 5000}
	b := model.Property{Address: "2 Second St, Austin, TX 78745", Price: 400000, LotArea: 5000}

	results := AnalyzeBatch(context.Background(), []model.Property{a, b}, model.AnalysisConfig{})
	require.Len(t, results, 2)
	assert.Equal(t, results[0].Score, results[1].Score)
	assert.Equal(t, a.Address, results[0].Property.Address)
	assert.Equal(t, b.Address, results[1].Property.Address)
}

func TestAnalyzeBatchEmpty(t *testing.T) {
	t.Parallel()

	results := AnalyzeBatch(context.Background(), nil, model.AnalysisConfig{})
	assert.Empty(t, results)
}
