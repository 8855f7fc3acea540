package enriching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-insights-api/internal/domain"
)

func newTestReconciler(now time.Time) *MergeReconciler {
	return NewMergeReconciler(
		NewOrganicPaidCalculator(now, 2, 30),
		NewThemeClassifier(DefaultThemePatterns()),
		NewSeasonalityEstimator(DefaultThemeSeasonality(), DefaultSeasonalityBadges()),
	)
}

func TestMergeReconciler_Merge(t *testing.T) {
	now := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	reconciler := newTestReconciler(now)

	historical := []*domain.EnrichedProduct{
		{
			SKU:               "MATCH-1",
			ProductName:       "Birthday Plates",
			Title:             "Birthday Plates 20ct",
			Brand:             "House of Party",
			Theme:             "BIRTHDAY",
			Seasonality:       domain.SeasonalityYearRound,
			HistoricalRevenue: 500,
			DailySales: []domain.DailySale{
				{Date: "2024-02-10", Revenue: 400},
			},
		},
		{
			SKU:               "HIST-1",
			ProductName:       "Christmas Banner",
			Title:             "Christmas Banner",
			Brand:             "House of Party",
			Theme:             "CHRISTMAS",
			Seasonality:       domain.SeasonalityQ4,
			HistoricalRevenue: 300,
		},
	}

	existing := []*domain.FinancialAggregate{
		{
			SKU:         "MATCH-1",
			Product:     "Birthday Plates (financeiro)",
			Brand:       "HOP",
			Marketplace: "HOP-US",
			Units:       120,
			Revenue:     1000,
			COGS:        200,
			AdSpend:     80,
			AdSales:     250,
			Margin:      20.5,
		},
		{
			SKU:     "FIN-1",
			Product: "Halloween Pumpkin Set",
			Brand:   "Fomin",
			Revenue: 700,
		},
	}

	merged := reconciler.Merge(historical, existing)

	// União completa: um registro por SKU de qualquer fonte
	require.Len(t, merged, 3)

	bySKU := make(map[string]*domain.MergedRecord)
	for _, record := range merged {
		bySKU[record.SKU] = record
	}
	require.Contains(t, bySKU, "MATCH-1")
	require.Contains(t, bySKU, "HIST-1")
	require.Contains(t, bySKU, "FIN-1")

	// Ordenação por receita decrescente
	assert.Equal(t, "MATCH-1", merged[0].SKU)
	assert.Equal(t, "FIN-1", merged[1].SKU)
	assert.Equal(t, "HIST-1", merged[2].SKU)

	// SKU casado: financeiro vem do existente, descritivo do histórico
	match := bySKU["MATCH-1"]
	assert.Equal(t, "Birthday Plates", match.ProductName)
	assert.Equal(t, "House of Party", match.Brand)
	assert.Equal(t, "BIRTHDAY", match.Theme)
	assert.Equal(t, 1000.0, match.Revenue)
	assert.Equal(t, 120, match.Units)
	assert.Equal(t, 20.5, match.Margin)
	assert.Equal(t, "HOP-US", match.Marketplace)

	// Orgânico/pago calculado sobre a janela: paid = (250/1000)*400 = 100
	assert.Equal(t, 100.0, match.PaidSales30d)
	assert.Equal(t, 300.0, match.OrganicSales30d)
	assert.Equal(t, "3.0:1", match.OrganicToPaidRatioFormatted)

	// SKU apenas histórico: campos financeiros zerados, razão indisponível
	hist := bySKU["HIST-1"]
	assert.Zero(t, hist.Revenue)
	assert.Zero(t, hist.Units)
	assert.Equal(t, "CHRISTMAS", hist.Theme)
	assert.Equal(t, "N/A", hist.OrganicToPaidRatioFormatted)

	// SKU apenas financeiro: tema derivado do texto, sazonalidade contínua
	fin := bySKU["FIN-1"]
	assert.Equal(t, "Halloween Pumpkin Set", fin.ProductName)
	assert.Equal(t, "HALLOWEEN", fin.Theme)
	assert.Equal(t, domain.SeasonalityYearRound, fin.Seasonality)
	assert.Equal(t, 700.0, fin.Revenue)
	assert.Equal(t, "N/A", fin.OrganicToPaidRatioFormatted)
}

func TestMergeReconciler_BrandFallback(t *testing.T) {
	now := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	reconciler := newTestReconciler(now)

	historical := []*domain.EnrichedProduct{
		{SKU: "SKU-1", ProductName: "Produto", Brand: ""},
	}
	existing := []*domain.FinancialAggregate{
		{SKU: "SKU-1", Brand: "Fomin", Revenue: 10},
	}

	merged := reconciler.Merge(historical, existing)
	require.Len(t, merged, 1)
	assert.Equal(t, "Fomin", merged[0].Brand)
}

func TestMergeReconciler_ExistingOnlyWithoutProductName(t *testing.T) {
	now := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	reconciler := newTestReconciler(now)

	merged := reconciler.Merge(nil, []*domain.FinancialAggregate{
		{SKU: "NO-NAME", Revenue: 50},
	})

	require.Len(t, merged, 1)
	assert.Equal(t, "NO-NAME", merged[0].ProductName)
	assert.Equal(t, "NO-NAME", merged[0].Title)
	assert.Equal(t, "GENERAL", merged[0].Theme)
}
