// Package zoning holds the static Austin lookup tables: single-family
// dimensional standards, per-zip market profiles, and per-zip utility
// availability. All tables are immutable for the process lifetime and every
// lookup falls back to a documented default key.
package zoning

import "sort"

// District describes the dimensional and coverage standards of one
// single-family zoning classification. All dimensional fields are in feet
// or square feet and are strictly positive; MaxImperviousCover is a
// fraction in (0, 1].
type District struct {
	Code               string  `json:"code" yaml:"code"`
	MinLotSize         float64 `json:"min_lot_size" yaml:"min_lot_size"`
	MinLotWidth        float64 `json:"min_lot_width" yaml:"min_lot_width"`
	FrontSetback       float64 `json:"front_setback" yaml:"front_setback"`
	SideSetback        float64 `json:"side_setback" yaml:"side_setback"`
	RearSetback        float64 `json:"rear_setback" yaml:"rear_setback"`
	MaxHeight          float64 `json:"max_height" yaml:"max_height"`
	MaxImperviousCover float64 `json:"max_impervious_cover" yaml:"max_impervious_cover"`
	Description        string  `json:"description" yaml:"description"`
}

// DefaultDistrict is assumed when an input record carries no zoning code or
// one we don't recognize. SF-3 is the most common single-family district in
// Austin's core neighborhoods.
const DefaultDistrict = "SF-3"

// districts is the Title 25 subchapter summary we analyze against. The
// numbers are simplified approximations, not legal advice.
var districts = map[string]District{
	"SF-1": {
		Code: "SF-1", MinLotSize: 10000, MinLotWidth: 70,
		FrontSetback: 25, SideSetback: 10, RearSetback: 20,
		MaxHeight: 35, MaxImperviousCover: 0.40,
		Description: "Single Family - Large Lot",
	},
	"SF-2": {
		Code: "SF-2", MinLotSize: 5750, MinLotWidth: 50,
		FrontSetback: 25, SideSetback: 5, RearSetback: 10,
		MaxHeight: 40, MaxImperviousCover: 0.45,
		Description: "Single Family - Standard Lot",
	},
	"SF-3": {
		Code: "SF-3", MinLotSize: 7000, MinLotWidth: 60,
		FrontSetback: 25, SideSetback: 7.5, RearSetback: 10,
		MaxHeight: 40, MaxImperviousCover: 0.45,
		Description: "Single Family - Family Residence",
	},
	"SF-4A": {
		Code: "SF-4A", MinLotSize: 8500, MinLotWidth: 60,
		FrontSetback: 25, SideSetback: 10, RearSetback: 15,
		MaxHeight: 40, MaxImperviousCover: 0.45,
		Description: "Single Family - Small Lot",
	},
	"SF-5": {
		Code: "SF-5", MinLotSize: 10000, MinLotWidth: 60,
		FrontSetback: 25, SideSetback: 12, RearSetback: 20,
		MaxHeight: 40, MaxImperviousCover: 0.50,
		Description: "Urban Family Residence",
	},
	"SF-6": {
		Code: "SF-6", MinLotSize: 12500, MinLotWidth: 70,
		FrontSetback: 25, SideSetback: 15, RearSetback: 20,
		MaxHeight: 40, MaxImperviousCover: 0.55,
		Description: "Townhouse and Condominium Residence",
	},
}

// Lookup returns the district for the given code, falling back to
// DefaultDistrict when the code is unknown or empty.
func Lookup(code string) District {
	if d, ok := districts[code]; ok {
		return d
	}
	return districts[DefaultDistrict]
}

// Known reports whether code is a recognized district.
func Known(code string) bool {
	_, ok := districts[code]
	return ok
}

// Codes returns all known district codes sorted ascending.
func Codes() []string {
	codes := make([]string, 0, len(districts))
	for c := range districts {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}
