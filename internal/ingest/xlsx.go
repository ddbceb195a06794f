package ingest

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/lotworks/lotsplit/internal/model"
)

// XLSXOptions configures the workbook reader.
type XLSXOptions struct {
	SheetIndex int    // default 0
	SheetName  string // if set, overrides SheetIndex
}

// ParseXLSX reads a property workbook using the same column heuristics as
// ParseCSV. The first row of the selected sheet is the header.
func ParseXLSX(path string, opts XLSXOptions) ([]model.Property, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "ingest: open xlsx %s", path)
	}

	sheet, err := selectSheet(f, opts)
	if err != nil {
		return nil, err
	}
	if len(sheet.Rows) < 2 {
		return nil, eris.New("ingest: xlsx sheet needs a header row and at least one data row")
	}

	header := make([]string, 0, len(sheet.Rows[0].Cells))
	for _, cell := range sheet.Rows[0].Cells {
		header = append(header, strings.ToLower(strings.TrimSpace(cell.String())))
	}

	var props []model.Property
	for _, row := range sheet.Rows[1:] {
		rec := make(Record, len(header))
		for i, col := range header {
			if i < len(row.Cells) {
				rec[col] = strings.TrimSpace(row.Cells[i].String())
			}
		}
		if p, ok := propertyFromRecord(rec, model.SourceXLSX); ok {
			props = append(props, p)
		}
	}

	if len(props) == 0 {
		return nil, eris.New("ingest: no valid properties found in xlsx")
	}
	return props, nil
}

func selectSheet(f *xlsx.File, opts XLSXOptions) (*xlsx.Sheet, error) {
	if opts.SheetName != "" {
		sheet, ok := f.Sheet[opts.SheetName]
		if !ok {
			return nil, eris.Errorf("ingest: sheet %q not found", opts.SheetName)
		}
		return sheet, nil
	}
	if opts.SheetIndex >= len(f.Sheets) {
		return nil, eris.Errorf("ingest: sheet index %d out of range (%d sheets)", opts.SheetIndex, len(f.Sheets))
	}
	return f.Sheets[opts.SheetIndex], nil
}
