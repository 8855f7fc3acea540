package enriching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-insights-api/internal/domain"
)

func TestRowAggregator_Add(t *testing.T) {
	aggregator := NewRowAggregator()

	rows := []domain.SalesRow{
		{SKU: "ABC-1", MSKU: "ABC-1-M", ProductName: "Birthday Plates", Title: "Birthday Plates 20ct", Brand: "House of Party", Date: "2024-01-15", Units: 10, Revenue: 100, Transactions: 5},
		{SKU: "ABC-1", Date: "2024-03-10", Units: 20, Revenue: 250, Transactions: 8},
		{SKU: "XYZ-9", Date: "2024-02-01", Units: 3, Revenue: 45, Transactions: 2},
		{SKU: "", Date: "2024-02-01", Units: 99, Revenue: 999},
		{SKU: "ABC-1", Date: "data-invalida", Units: 1, Revenue: 10, Transactions: 1},
	}

	for _, row := range rows {
		aggregator.Add(row)
	}

	assert.Equal(t, 1, aggregator.SkippedRows())
	assert.Equal(t, 1, aggregator.UnparsableDates())

	aggregates := aggregator.Aggregates()
	require.Len(t, aggregates, 2)

	// Ordem de primeira aparição
	first := aggregates[0]
	assert.Equal(t, "ABC-1", first.SKU)
	assert.Equal(t, "XYZ-9", aggregates[1].SKU)

	// Totais acumulam inclusive a linha com data inválida
	assert.Equal(t, 31.0, first.HistoricalUnits)
	assert.Equal(t, 360.0, first.HistoricalRevenue)
	assert.Equal(t, 14, first.HistoricalTransactions)

	// Mas a série mensal e diária ignoram a data inválida
	assert.Equal(t, 100.0, first.MonthlyRevenue[0])
	assert.Equal(t, 250.0, first.MonthlyRevenue[2])
	assert.Len(t, first.DailySales, 2)

	assert.Equal(t, "2024-01-15", first.FirstSale)
	assert.Equal(t, "2024-03-10", first.LastSale)
}

func TestRowAggregator_IdentityFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		row      domain.SalesRow
		expected domain.ProductAggregate
	}{
		{
			name: "Linha completa preserva todos os campos",
			row:  domain.SalesRow{SKU: "SKU-1", MSKU: "MSKU-1", ProductName: "Name", Title: "Title", Brand: "Fomin"},
			expected: domain.ProductAggregate{
				SKU: "SKU-1", MSKU: "MSKU-1", ProductName: "Name", Title: "Title", Brand: "Fomin",
			},
		},
		{
			name: "Campos ausentes caem em cascata a partir do SKU",
			row:  domain.SalesRow{SKU: "SKU-2"},
			expected: domain.ProductAggregate{
				SKU: "SKU-2", MSKU: "SKU-2", ProductName: "SKU-2", Title: "SKU-2", Brand: "Unknown",
			},
		},
		{
			name: "Título ausente herda o nome do produto",
			row:  domain.SalesRow{SKU: "SKU-3", ProductName: "Produto"},
			expected: domain.ProductAggregate{
				SKU: "SKU-3", MSKU: "SKU-3", ProductName: "Produto", Title: "Produto", Brand: "Unknown",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aggregator := NewRowAggregator()
			aggregator.Add(tt.row)

			aggregates := aggregator.Aggregates()
			require.Len(t, aggregates, 1)

			assert.Equal(t, tt.expected.SKU, aggregates[0].SKU)
			assert.Equal(t, tt.expected.MSKU, aggregates[0].MSKU)
			assert.Equal(t, tt.expected.ProductName, aggregates[0].ProductName)
			assert.Equal(t, tt.expected.Title, aggregates[0].Title)
			assert.Equal(t, tt.expected.Brand, aggregates[0].Brand)
		})
	}
}

func TestRowAggregator_FlexibleDateFormats(t *testing.T) {
	aggregator := NewRowAggregator()

	aggregator.Add(domain.SalesRow{SKU: "FMT-1", Date: "2024/01/15", Revenue: 10})
	aggregator.Add(domain.SalesRow{SKU: "FMT-1", Date: "01/20/2024", Revenue: 20})
	aggregator.Add(domain.SalesRow{SKU: "FMT-1", Date: "2024-01-25 13:45:00", Revenue: 30})

	assert.Zero(t, aggregator.UnparsableDates())

	aggregates := aggregator.Aggregates()
	require.Len(t, aggregates, 1)
	assert.Equal(t, "2024-01-15", aggregates[0].FirstSale)
	assert.Equal(t, "2024-01-25", aggregates[0].LastSale)
	assert.Equal(t, 60.0, aggregates[0].MonthlyRevenue[0])
}
