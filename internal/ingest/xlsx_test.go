package ingest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/lotworks/lotsplit/internal/model"
)

func writeWorkbook(t *testing.T, sheets map[string][][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	for name, rows := range sheets {
		sheet, err := f.AddSheet(name)
		require.NoError(t, err)
		for _, row := range rows {
			r := sheet.AddRow()
			for _, cell := range row {
				r.AddCell().SetString(cell)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "listings.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestParseXLSX(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, map[string][][]string{
		"Listings": {
			{"Address", "Price", "Lot Size", "Zoning"},
			{"2204 Alta Vista Ave, Austin, TX 78704", "650000", "14500", "SF-3"},
			{"No Price Rd, Austin, TX", "", "9000", "SF-3"},
		},
	})

	props, err := ParseXLSX(path, XLSXOptions{})
	require.NoError(t, err)
	require.Len(t, props, 1)
	assert.Equal(t, "2204 Alta Vista Ave, Austin, TX 78704", props[0].Address)
	assert.Equal(t, 650000.0, props[0].Price)
	assert.Equal(t, 14500.0, props[0].LotArea)
	assert.Equal(t, model.SourceXLSX, props[0].Source)
}

func TestParseXLSXSheetSelection(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, map[string][][]string{
		"Notes": {
			{"junk"},
			{"more junk"},
		},
		"Data": {
			{"address", "price", "lot size"},
			{"800 Elm St, Austin, TX 78702", "550000", "9800"},
		},
	})

	props, err := ParseXLSX(path, XLSXOptions{SheetName: "Data"})
	require.NoError(t, err)
	require.Len(t, props, 1)
	assert.Equal(t, "800 Elm St, Austin, TX 78702", props[0].Address)

	_, err = ParseXLSX(path, XLSXOptions{SheetName: "Nope"})
	assert.Error(t, err)

	_, err = ParseXLSX(path, XLSXOptions{SheetIndex: 5})
	assert.Error(t, err)
}

func TestParseXLSXErrors(t *testing.T) {
	t.Parallel()

	_, err := ParseXLSX(filepath.Join(t.TempDir(), "missing.xlsx"), XLSXOptions{})
	assert.Error(t, err)

	path := writeWorkbook(t, map[string][][]string{
		"Empty": {{"address", "price", "lot size"}},
	})
	_, err = ParseXLSX(path, XLSXOptions{})
	assert.Error(t, err)
}
