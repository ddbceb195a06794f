package analysis

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/lotworks/lotsplit/internal/model"
)

// exportHeader is the flat tabular schema for result exports.
var exportHeader = []string{
	"Address", "Purchase Price", "Original Lot Size", "New Lot Size",
	"Buildable Area", "Estimated Profit", "Profit Margin", "Status", "Score",
}

// WriteCSV writes one quoted-field record per result. Price, lot areas, and
// score survive a round trip exactly; buildable area and profit are rounded
// to whole numbers and margin to two decimals.
func WriteCSV(w io.Writer, results []model.AnalysisResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return eris.Wrap(err, "export: write header")
	}
	for _, r := range results {
		rec := []string{
			r.Property.Address,
			strconv.FormatFloat(r.Property.Price, 'f', -1, 64),
			strconv.FormatFloat(r.Property.LotArea, 'f', -1, 64),
			strconv.FormatFloat(r.Feasibility.NewLotArea, 'f', -1, 64),
			strconv.FormatFloat(math.Round(r.Feasibility.BuildableArea), 'f', 0, 64),
			strconv.FormatFloat(math.Round(r.Financials.Profit), 'f', 0, 64),
			strconv.FormatFloat(r.Financials.ProfitMarginPct, 'f', 2, 64),
			string(r.Status),
			strconv.Itoa(r.Score),
		}
		if err := cw.Write(rec); err != nil {
			return eris.Wrap(err, "export: write record")
		}
	}

	cw.Flush()
	return eris.Wrap(cw.Error(), "export: flush")
}

// ExportRow is one re-parsed record from an exported results file.
type ExportRow struct {
	Address       string
	Price         float64
	LotArea       float64
	NewLotArea    float64
	BuildableArea float64
	Profit        float64
	MarginPct     float64
	Status        model.Status
	Score         int
}

// ReadCSV re-parses a results export. Used by downstream tooling that folds
// prior runs back into spreadsheets.
func ReadCSV(r io.Reader) ([]ExportRow, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "export: read csv")
	}
	if len(records) < 1 {
		return nil, eris.New("export: empty file")
	}

	var rows []ExportRow
	for _, rec := range records[1:] {
		if len(rec) != len(exportHeader) {
			return nil, eris.Errorf("export: expected %d columns, got %d", len(exportHeader), len(rec))
		}
		row := ExportRow{Address: rec[0], Status: model.Status(rec[7])}
		if row.Price, err = strconv.ParseFloat(rec[1], 64); err != nil {
			return nil, eris.Wrapf(err, "export: parse price %q", rec[1])
		}
		if row.LotArea, err = strconv.ParseFloat(rec[2], 64); err != nil {
			return nil, eris.Wrapf(err, "export: parse lot size %q", rec[2])
		}
		if row.NewLotArea, err = strconv.ParseFloat(rec[3], 64); err != nil {
			return nil, eris.Wrapf(err, "export: parse new lot size %q", rec[3])
		}
		if row.BuildableArea, err = strconv.ParseFloat(rec[4], 64); err != nil {
			return nil, eris.Wrapf(err, "export: parse buildable area %q", rec[4])
		}
		if row.Profit, err = strconv.ParseFloat(rec[5], 64); err != nil {
			return nil, eris.Wrapf(err, "export: parse profit %q", rec[5])
		}
		if row.MarginPct, err = strconv.ParseFloat(rec[6], 64); err != nil {
			return nil, eris.Wrapf(err, "export: parse margin %q", rec[6])
		}
		if row.Score, err = strconv.Atoi(rec[8]); err != nil {
			return nil, eris.Wrapf(err, "export: parse score %q", rec[8])
		}
		rows = append(rows, row)
	}
	return rows, nil
}
