package ingest

import (
	"io"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/lotworks/lotsplit/internal/model"
)

// SqFtPerAcre converts MLS acreage to square feet.
const SqFtPerAcre = 43560

// MLS extracts report lot size in acres and usually omit zoning entirely.
var acreFields = []string{"acres", "lot acres", "acreage", "lot size acres"}

// ParseMLSCSV reads an MLS-flavored export: acreage is converted to square
// feet and, when the feed carries no zoning column, a district is inferred
// from the lot size band.
func ParseMLSCSV(r io.Reader) ([]model.Property, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}

	var props []model.Property
	for _, rec := range records {
		// Acres take precedence over any square-foot column in MLS feeds.
		if acres, ok := rec.FirstNumber(acreFields); ok && acres > 0 {
			lotKey := lotFields[0]
			rec[lotKey] = formatSqFt(acres * SqFtPerAcre)
			for _, k := range lotFields[1:] {
				delete(rec, k)
			}
		}

		p, ok := propertyFromRecord(rec, model.SourceMLS)
		if !ok {
			continue
		}
		if p.ZoningCode == "" {
			p.ZoningCode = InferZoning(p.LotArea)
		}
		props = append(props, p)
	}

	if len(props) == 0 {
		return nil, eris.New("ingest: no valid properties found in mls csv")
	}
	return props, nil
}

// InferZoning guesses the likeliest single-family district from lot size
// alone. Rough heuristic for feeds with no zoning column; the analyzer
// treats anything unknown as the fallback district anyway.
func InferZoning(lotArea float64) string {
	switch {
	case lotArea <= 0:
		return ""
	case lotArea < 7000:
		return "SF-2"
	case lotArea < 10000:
		return "SF-3"
	case lotArea < 15000:
		return "SF-4A"
	case lotArea < 0.5*SqFtPerAcre:
		return "SF-5"
	default:
		return "SF-6"
	}
}

func formatSqFt(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
