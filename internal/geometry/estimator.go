// Package geometry derives lot dimensions and buildable envelopes. Nothing
// here is survey-grade: lots are modeled as rectangles and the numbers are
// screening estimates.
package geometry

import (
	"math"
	"regexp"
	"strconv"

	"github.com/lotworks/lotsplit/internal/model"
	"github.com/lotworks/lotsplit/internal/zoning"
)

const (
	// screeningAspect is the width:depth ratio assumed while gating a lot on
	// minimum width. The detailed buildable-area pass uses detailAspect
	// instead; the two deliberately stay separate (see DESIGN.md).
	screeningAspect = 1.5
	detailAspect    = 1.2

	// screeningRearSetback approximates the rear yard during the quick
	// check; the detailed pass uses the district's actual rear setback.
	screeningRearSetback = 20

	// netBuildableFactor discounts the gross setback rectangle for
	// real-world losses (easements, trees, irregular boundaries).
	netBuildableFactor = 0.8

	// dimensionTolerance is how far a parsed "WxD" pair may disagree with
	// the recorded lot area before we discard the parse.
	dimensionTolerance = 0.2
)

// dimsPattern matches "60x120", "60 X 120.5", "60×120" embedded in remarks.
var dimsPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*[xX×]\s*(\d+(?:\.\d+)?)`)

// Resolve determines a lot's width and depth. Explicit dimensions win; next
// an "NxM" pattern parsed from the description, accepted only when the
// implied area is within 20% of the recorded lot area; otherwise both are
// estimated from the lot area with the screening aspect ratio.
func Resolve(lotArea float64, explicit *model.LotDimensions, description string) model.LotDimensions {
	if explicit != nil && explicit.Width > 0 && explicit.Depth > 0 {
		return model.LotDimensions{Width: explicit.Width, Depth: explicit.Depth, Source: model.DimensionExplicit}
	}

	if w, d, ok := parseDimensions(description); ok {
		if lotArea > 0 && math.Abs(w*d-lotArea) <= dimensionTolerance*lotArea {
			return model.LotDimensions{Width: w, Depth: d, Source: model.DimensionParsed}
		}
	}

	w := EstimateWidth(lotArea)
	return model.LotDimensions{Width: w, Depth: safeDiv(lotArea, w), Source: model.DimensionEstimated}
}

// EstimateWidth estimates street frontage from lot area alone, assuming the
// screening aspect ratio.
func EstimateWidth(lotArea float64) float64 {
	if lotArea <= 0 {
		return 0
	}
	return math.Sqrt(lotArea * screeningAspect)
}

// ScreeningBuildable is the quick-check envelope: side setbacks off the
// width, front setback plus a fixed 20 ft rear approximation off the depth.
// Used when sketching the kept lot; the detailed report uses
// DetailedBuildable.
func ScreeningBuildable(dims model.LotDimensions, d zoning.District) float64 {
	w := math.Max(0, dims.Width-2*d.SideSetback)
	depth := math.Max(0, dims.Depth-d.FrontSetback-screeningRearSetback)
	return w * depth
}

// DetailedBuildable computes the net buildable area of a lot of the given
// area under a district's actual setbacks. The lot is assumed rectangular
// with the detail aspect ratio; the gross envelope is discounted by the
// net-buildable factor.
func DetailedBuildable(lotArea float64, d zoning.District) float64 {
	if lotArea <= 0 {
		return 0
	}
	width := math.Sqrt(lotArea * detailAspect)
	depth := lotArea / width

	w := math.Max(0, width-2*d.SideSetback)
	dep := math.Max(0, depth-d.FrontSetback-d.RearSetback)
	return w * dep * netBuildableFactor
}

// parseDimensions extracts the first "NxM" pair from free text.
func parseDimensions(s string) (width, depth float64, ok bool) {
	m := dimsPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	w, err1 := strconv.ParseFloat(m[1], 64)
	d, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil || w <= 0 || d <= 0 {
		return 0, 0, false
	}
	return w, d, true
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
