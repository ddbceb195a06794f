// Package plotmap renders a schematic SVG of a lot split: the parcel
// outline, the proposed split line, and the buildable envelope of the new
// lot. The drawing is diagrammatic, not a survey.
package plotmap

import (
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"

	"github.com/lotworks/lotsplit/internal/geometry"
	"github.com/lotworks/lotsplit/internal/model"
	"github.com/lotworks/lotsplit/internal/zoning"
)

const (
	svgWidth  = 480.0
	svgMargin = 40.0
)

// Render draws the property as an SVG document. For feasible splits the
// parcel is divided front (kept) / rear (new) in proportion to the
// resulting lot areas and the new lot's setback envelope is drawn inset.
func Render(p model.Property, f model.Feasibility) (string, error) {
	if f.Dimensions.Width <= 0 || f.Dimensions.Depth <= 0 {
		return "", eris.Errorf("plotmap: property %q has no usable dimensions", p.Address)
	}

	d := zoning.Lookup(f.District)
	w, depth := f.Dimensions.Width, f.Dimensions.Depth

	lot := geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{{
		{0, 0}, {w, 0}, {w, depth}, {0, depth}, {0, 0},
	}})

	scale := (svgWidth - 2*svgMargin) / w
	svgH := depth*scale + 2*svgMargin

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f">`+"\n", svgWidth, svgH)
	fmt.Fprintf(&b, `<rect x="0" y="0" width="%.0f" height="%.0f" fill="#f7f7f2"/>`+"\n", svgWidth, svgH)

	// Parcel outline. Street frontage is the bottom edge.
	rect(&b, 0, 0, w, depth, scale, svgH, "none", "#2d3748", 2)

	if f.CanSplit {
		// Split line: front lot keeps the house, rear lot is new. Depth is
		// apportioned by the resulting areas.
		total := f.KeptLotArea + f.NewLotArea
		splitDepth := depth * (f.KeptLotArea / total)

		fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#c53030" stroke-width="2" stroke-dasharray="8,4"/>`+"\n",
			sx(0, scale), sy(splitDepth, scale, svgH), sx(w, scale), sy(splitDepth, scale, svgH))

		// New-lot buildable envelope: side setbacks off the width, front and
		// rear setbacks off the new lot's depth.
		newDepth := depth - splitDepth
		bw := math.Max(0, w-2*d.SideSetback)
		bd := math.Max(0, newDepth-d.FrontSetback-d.RearSetback)
		if bw > 0 && bd > 0 {
			rect(&b, d.SideSetback, splitDepth+d.FrontSetback, bw, bd, scale, svgH, "#9ae6b4", "#276749", 1)
		}

		keptEnv := geometry.ScreeningBuildable(model.LotDimensions{Width: w, Depth: splitDepth}, d)
		label(&b, svgWidth/2, sy(splitDepth/2, scale, svgH), fmt.Sprintf("existing home lot (~%.0f sq ft buildable)", keptEnv))
		label(&b, svgWidth/2, sy(splitDepth+newDepth/2, scale, svgH), fmt.Sprintf("new lot %.0f sq ft", f.NewLotArea))
	} else {
		label(&b, svgWidth/2, svgH/2, "no split")
	}

	label(&b, svgWidth/2, svgH-12, fmt.Sprintf("%s  |  %s  |  %.0f sq ft (%.0f x %.0f ft, %s)",
		p.Address, f.District, lot.Area(), w, depth, f.Dimensions.Source))

	b.WriteString("</svg>\n")
	return b.String(), nil
}

// sx/sy map lot feet to SVG pixels; the y axis flips so the street edge
// (depth 0) sits at the bottom.
func sx(x, scale float64) float64 { return svgMargin + x*scale }

func sy(y, scale, svgH float64) float64 { return svgH - svgMargin - y*scale }

func rect(b *strings.Builder, x, y, w, h, scale, svgH float64, fill, stroke string, strokeWidth int) {
	fmt.Fprintf(b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="%d"/>`+"\n",
		sx(x, scale), sy(y+h, scale, svgH), w*scale, h*scale, fill, stroke, strokeWidth)
}

func label(b *strings.Builder, x, y float64, text string) {
	fmt.Fprintf(b, `<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="11" fill="#2d3748" text-anchor="middle">%s</text>`+"\n",
		x, y, escape(text))
}

func escape(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(s)
}
