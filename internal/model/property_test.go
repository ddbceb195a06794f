package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    Property
		want bool
	}{
		{
			name: "all required fields",
			p:    Property{Address: "1 Main St", Price: 500000, LotArea: 9000},
			want: true,
		},
		{name: "missing address", p: Property{Price: 500000, LotArea: 9000}, want: false},
		{name: "zero price", p: Property{Address: "1 Main St", LotArea: 9000}, want: false},
		{name: "negative lot area", p: Property{Address: "1 Main St", Price: 500000, LotArea: -1}, want: false},
		{name: "empty", p: Property{}, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.p.Complete())
		})
	}
}

func TestWithDefaults(t *testing.T) {
	t.Parallel()

	t.Run("zero value gets all defaults", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, DefaultAnalysisConfig(), AnalysisConfig{}.WithDefaults())
	})

	t.Run("set fields survive", func(t *testing.T) {
		t.Parallel()
		c := AnalysisConfig{MaxPrice: 750000, TargetProfitPct: 25}.WithDefaults()
		assert.Equal(t, 750000.0, c.MaxPrice)
		assert.Equal(t, 25.0, c.TargetProfitPct)
		assert.Equal(t, 7000.0, c.MinLotArea)
		assert.Equal(t, 100000.0, c.RenovationBudget)
	})

	t.Run("negative values degrade to defaults", func(t *testing.T) {
		t.Parallel()
		c := AnalysisConfig{MaxPrice: -1, MinLotArea: -5}.WithDefaults()
		assert.Equal(t, DefaultAnalysisConfig(), c)
	})
}
