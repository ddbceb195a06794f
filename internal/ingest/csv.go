// Package ingest turns external tabular data (CSV exports, MLS extracts,
// XLSX workbooks, parcel shapefiles) into Property records. Column names
// vary wildly between sources, so each semantic field carries an ordered
// candidate list tried in priority order; malformed values are treated as
// absent rather than raised.
package ingest

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/lotworks/lotsplit/internal/model"
)

// Candidate column names per semantic field, in priority order.
var (
	addressFields = []string{"address", "street address", "property address", "full address", "situs address"}
	priceFields   = []string{"price", "list price", "asking price", "sale price"}
	lotFields     = []string{"lot size", "lot size sqft", "lot sq ft", "lot area", "land area", "land sqft"}
	zoningFields  = []string{"zoning", "zone", "zoning code"}
	livableFields = []string{"square feet", "sqft", "living area", "livable area", "building area"}
	bedFields     = []string{"bedrooms", "beds", "br"}
	bathFields    = []string{"bathrooms", "baths", "ba"}
	yearFields    = []string{"year built", "yr built", "built"}
	remarkFields  = []string{"description", "remarks", "public remarks", "legal description"}
)

// Record is one raw row keyed by normalized (lowercased, trimmed) header.
type Record map[string]string

// ParseCSV reads a property CSV with heuristic column matching. Rows missing
// any of address, price, or lot size are dropped; everything else degrades
// to zero values.
func ParseCSV(r io.Reader) ([]model.Property, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}

	var props []model.Property
	skipped := 0
	for _, rec := range records {
		p, ok := propertyFromRecord(rec, model.SourceCSV)
		if !ok {
			skipped++
			continue
		}
		props = append(props, p)
	}

	if skipped > 0 {
		zap.L().Debug("ingest: dropped incomplete rows", zap.Int("skipped", skipped))
	}
	if len(props) == 0 {
		return nil, eris.New("ingest: no valid properties found in csv")
	}
	return props, nil
}

// ParseCSVFile is ParseCSV over a file path.
func ParseCSVFile(path string) ([]model.Property, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "ingest: open %s", path)
	}
	defer f.Close()
	return ParseCSV(f)
}

// readRecords parses the CSV and zips each row against the normalized
// header. Short rows are padded with empty strings.
func readRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "ingest: read csv")
	}
	if len(rows) < 2 {
		return nil, eris.New("ingest: csv needs a header row and at least one data row")
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(strings.Trim(h, `"`)))
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = strings.TrimSpace(row[i])
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// propertyFromRecord maps a raw record to a Property. Returns ok=false when
// a required field (address, price, lot size) is missing.
func propertyFromRecord(rec Record, source model.PropertySource) (model.Property, bool) {
	addr := rec.FirstString(addressFields)
	price, priceOK := rec.FirstNumber(priceFields)
	lot, lotOK := rec.FirstNumber(lotFields)
	if addr == "" || !priceOK || !lotOK {
		return model.Property{}, false
	}

	p := model.Property{
		Address:     addr,
		Price:       price,
		LotArea:     lot,
		ZoningCode:  strings.ToUpper(rec.FirstString(zoningFields)),
		Description: rec.FirstString(remarkFields),
		Source:      source,
	}
	if v, ok := rec.FirstNumber(livableFields); ok {
		p.LivableArea = v
	}
	if v, ok := rec.FirstNumber(bedFields); ok {
		p.Bedrooms = int(v)
	}
	if v, ok := rec.FirstNumber(bathFields); ok {
		p.Bathrooms = v
	}
	if v, ok := rec.FirstNumber(yearFields); ok {
		p.YearBuilt = int(v)
	}
	return p, true
}

// FirstString returns the first non-empty candidate value.
func (r Record) FirstString(candidates []string) string {
	for _, c := range candidates {
		if v := strings.Trim(r[c], `"`); v != "" {
			return v
		}
	}
	return ""
}

// FirstNumber returns the first candidate value that parses as a number
// after stripping currency symbols, commas, and stray whitespace.
func (r Record) FirstNumber(candidates []string) (float64, bool) {
	for _, c := range candidates {
		if v := r[c]; v != "" {
			if n, err := parseNumber(v); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}

func parseNumber(s string) (float64, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "", `"`, "").Replace(s)
	return strconv.ParseFloat(cleaned, 64)
}
