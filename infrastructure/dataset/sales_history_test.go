package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-insights-api/internal/config"
	"github.com/xuri/excelize/v2"
)

func writeExportFile(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "sales-history.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func exportConfig(path string) *config.Config {
	return &config.Config{
		EnrichmentSync: config.EnrichmentSync{
			SalesExportPath: path,
		},
	}
}

func TestSalesHistoryReader_ReadRows(t *testing.T) {
	path := writeExportFile(t, [][]any{
		{"SKU", "MSKU", "Product Name", "Title", "Brand", "Secondary Category", "Tertiary Category", "Date", "Sales Volume", "Sales Amount", "Transactions"},
		{"ABC-1", "ABC-1-M", "Birthday Plates", "Birthday Plates 20ct", "House of Party", "Tableware", "Plates", "2024-01-15", "10", "$1,234.50", "5"},
		{"XYZ-9", "", "", "", "", "", "", "2024-02-01", "abc", "45", ""},
	})

	reader := NewSalesHistoryReader(exportConfig(path))

	rows, err := reader.ReadRows()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "ABC-1", first.SKU)
	assert.Equal(t, "ABC-1-M", first.MSKU)
	assert.Equal(t, "Birthday Plates", first.ProductName)
	assert.Equal(t, "House of Party", first.Brand)
	assert.Equal(t, "Tableware", first.Category)
	assert.Equal(t, "Plates", first.Subcategory)
	assert.Equal(t, 10.0, first.Units)
	assert.Equal(t, 1234.50, first.Revenue)
	assert.Equal(t, 5, first.Transactions)

	// Campo numérico ilegível vale zero, campo vazio também
	second := rows[1]
	assert.Equal(t, "XYZ-9", second.SKU)
	assert.Zero(t, second.Units)
	assert.Equal(t, 45.0, second.Revenue)
	assert.Zero(t, second.Transactions)
}

func TestSalesHistoryReader_HeaderAliases(t *testing.T) {
	path := writeExportFile(t, [][]any{
		{"sku", "product", "salesvolume", "salesamount"},
		{"ALT-1", "Produto Alternativo", "3", "30"},
	})

	reader := NewSalesHistoryReader(exportConfig(path))

	rows, err := reader.ReadRows()
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "ALT-1", rows[0].SKU)
	assert.Equal(t, "Produto Alternativo", rows[0].ProductName)
	assert.Equal(t, 3.0, rows[0].Units)
	assert.Equal(t, 30.0, rows[0].Revenue)
}

func TestSalesHistoryReader_MissingSKUColumn(t *testing.T) {
	path := writeExportFile(t, [][]any{
		{"Product Name", "Sales Amount"},
		{"Sem SKU", "10"},
	})

	reader := NewSalesHistoryReader(exportConfig(path))

	rows, err := reader.ReadRows()
	assert.Error(t, err)
	assert.Nil(t, rows)
}

func TestSalesHistoryReader_MissingFile(t *testing.T) {
	reader := NewSalesHistoryReader(exportConfig(filepath.Join(t.TempDir(), "nao-existe.xlsx")))

	rows, err := reader.ReadRows()
	assert.Error(t, err)
	assert.Nil(t, rows)
}
