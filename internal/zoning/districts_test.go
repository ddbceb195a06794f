package zoning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		code        string
		wantCode    string
		wantMinSize float64
	}{
		{name: "known district", code: "SF-2", wantCode: "SF-2", wantMinSize: 5750},
		{name: "family residence", code: "SF-3", wantCode: "SF-3", wantMinSize: 7000},
		{name: "unknown falls back", code: "MF-4", wantCode: "SF-3", wantMinSize: 7000},
		{name: "empty falls back", code: "", wantCode: "SF-3", wantMinSize: 7000},
		{name: "lowercase is not recognized", code: "sf-3", wantCode: "SF-3", wantMinSize: 7000},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := Lookup(tt.code)
			assert.Equal(t, tt.wantCode, d.Code)
			assert.Equal(t, tt.wantMinSize, d.MinLotSize)
		})
	}
}

func TestKnown(t *testing.T) {
	t.Parallel()
	assert.True(t, Known("SF-1"))
	assert.True(t, Known("SF-4A"))
	assert.False(t, Known("SF-4"))
	assert.False(t, Known(""))
}

func TestCodes(t *testing.T) {
	t.Parallel()
	codes := Codes()
	assert.Equal(t, []string{"SF-1", "SF-2", "SF-3", "SF-4A", "SF-5", "SF-6"}, codes)
}

func TestDistrictInvariants(t *testing.T) {
	t.Parallel()
	for _, code := range Codes() {
		d := Lookup(code)
		assert.Positive(t, d.MinLotSize, code)
		assert.Positive(t, d.MinLotWidth, code)
		assert.Positive(t, d.FrontSetback, code)
		assert.Positive(t, d.SideSetback, code)
		assert.Positive(t, d.RearSetback, code)
		assert.Greater(t, d.MaxImperviousCover, 0.0, code)
		assert.LessOrEqual(t, d.MaxImperviousCover, 1.0, code)
	}
}
