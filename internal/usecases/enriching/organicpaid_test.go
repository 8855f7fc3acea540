package enriching

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/seller-insights-api/internal/domain"
)

func TestOrganicPaidCalculator_Window(t *testing.T) {
	now := time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC)
	calculator := NewOrganicPaidCalculator(now, 2, 30)

	start, end := calculator.Window()
	assert.Equal(t, "2024-01-30", start)
	assert.Equal(t, "2024-02-29", end)
}

func TestOrganicPaidCalculator_Calculate(t *testing.T) {
	now := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	calculator := NewOrganicPaidCalculator(now, 2, 30)

	tests := []struct {
		name              string
		totalAdSales      float64
		totalRevenue      float64
		dailySales        []domain.DailySale
		expectedOrganic   float64
		expectedPaid      float64
		expectedFormatted string
	}{
		{
			name:         "Divisão proporcional entre orgânico e pago",
			totalAdSales: 250,
			totalRevenue: 1000,
			dailySales: []domain.DailySale{
				{Date: "2024-02-10", Revenue: 400},
			},
			expectedOrganic:   300,
			expectedPaid:      100,
			expectedFormatted: "3.0:1",
		},
		{
			name:         "Sem vendas de anúncio o produto é somente orgânico",
			totalAdSales: 0,
			totalRevenue: 1000,
			dailySales: []domain.DailySale{
				{Date: "2024-02-10", Revenue: 300},
			},
			expectedOrganic:   300,
			expectedPaid:      0,
			expectedFormatted: "Organic Only",
		},
		{
			name:              "Sem vendas na janela não há razão",
			totalAdSales:      250,
			totalRevenue:      1000,
			dailySales:        []domain.DailySale{{Date: "2023-06-01", Revenue: 500}},
			expectedOrganic:   0,
			expectedPaid:      0,
			expectedFormatted: "N/A",
		},
		{
			name:              "Série diária vazia não há razão",
			totalAdSales:      100,
			totalRevenue:      500,
			dailySales:        nil,
			expectedOrganic:   0,
			expectedPaid:      0,
			expectedFormatted: "N/A",
		},
		{
			name:         "Vendas de anúncio maiores que a receita zeram o orgânico",
			totalAdSales: 2000,
			totalRevenue: 1000,
			dailySales: []domain.DailySale{
				{Date: "2024-02-10", Revenue: 100},
			},
			expectedOrganic:   0,
			expectedPaid:      200,
			expectedFormatted: "0.0:1",
		},
		{
			name:         "Limites da janela são inclusivos",
			totalAdSales: 0,
			totalRevenue: 100,
			dailySales: []domain.DailySale{
				{Date: "2024-01-30", Revenue: 10},
				{Date: "2024-02-29", Revenue: 20},
				{Date: "2024-01-29", Revenue: 999},
				{Date: "2024-03-01", Revenue: 999},
			},
			expectedOrganic:   30,
			expectedPaid:      0,
			expectedFormatted: "Organic Only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := calculator.Calculate(tt.totalAdSales, tt.totalRevenue, tt.dailySales)

			assert.Equal(t, tt.expectedOrganic, metrics.OrganicSales30d)
			assert.Equal(t, tt.expectedPaid, metrics.PaidSales30d)
			assert.Equal(t, tt.expectedFormatted, metrics.OrganicToPaidRatioFormatted)

			if tt.expectedFormatted == "Organic Only" {
				assert.True(t, math.IsInf(float64(metrics.OrganicToPaidRatio), 1))
			}
		})
	}
}

func TestRatio_MarshalJSON(t *testing.T) {
	infinite := domain.Ratio(math.Inf(1))
	payload, err := infinite.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "null", string(payload))

	finite := domain.Ratio(3.5)
	payload, err = finite.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "3.5", string(payload))
}
