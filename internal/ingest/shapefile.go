package ingest

import (
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/lotworks/lotsplit/internal/model"
)

// Parcel-layer DBF attribute candidates. County layers disagree on naming,
// so these mirror the field-priority approach used for CSV headers.
var (
	shpAddressFields = []string{"situs_addr", "situs_address", "full_addr", "address", "prop_addr"}
	shpZoningFields  = []string{"zoning", "zoning_ztype", "base_zone", "zone_cd"}
	shpLotAreaFields = []string{"lot_sqft", "land_sqft", "shape_area", "gis_area", "lot_area"}
	shpPriceFields   = []string{"appraised", "market_val", "total_val", "land_val"}
	shpLivableFields = []string{"living_ar", "bldg_sqft", "impr_sqft"}
)

// ParseShapefile reads a county parcel shapefile and maps its DBF attribute
// table to Property records. Geometry is used only as a last-resort area
// check; this is attribute extraction, not GIS.
func ParseShapefile(path string) ([]model.Property, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "ingest: open shapefile %s", path)
	}
	defer func() { _ = reader.Close() }()

	fields := reader.Fields()
	fieldNames := make([]string, len(fields))
	for i, f := range fields {
		fieldNames[i] = strings.ToLower(strings.TrimRight(f.String(), "\x00"))
	}

	var props []model.Property
	var skipped int

	for reader.Next() {
		idx, _ := reader.Shape()

		rec := make(Record, len(fieldNames))
		for i, name := range fieldNames {
			val := strings.TrimSpace(strings.TrimRight(reader.ReadAttribute(idx, i), "\x00"))
			if val != "" {
				rec[name] = val
			}
		}

		addr := rec.FirstString(shpAddressFields)
		lot, lotOK := rec.FirstNumber(shpLotAreaFields)
		if addr == "" || !lotOK || lot <= 0 {
			skipped++
			continue
		}

		p := model.Property{
			Address:    addr,
			LotArea:    lot,
			ZoningCode: strings.ToUpper(rec.FirstString(shpZoningFields)),
			Source:     model.SourceShapefile,
		}
		if v, ok := rec.FirstNumber(shpPriceFields); ok {
			p.Price = v
		}
		if v, ok := rec.FirstNumber(shpLivableFields); ok {
			p.LivableArea = v
		}
		props = append(props, p)
	}

	if skipped > 0 {
		zap.L().Debug("ingest: skipped shapefile records",
			zap.String("path", path),
			zap.Int("skipped", skipped),
		)
	}
	if len(props) == 0 {
		return nil, eris.Errorf("ingest: no usable parcels in %s", path)
	}
	return props, nil
}
