package enriching

import (
	"sort"

	"github.com/vfg2006/seller-insights-api/internal/domain"
)

// MergeReconciler combina os agregados históricos recém-enriquecidos com o
// conjunto pré-existente de agregados financeiros. Precedência por campo:
// campos financeiros sempre do lado existente; campos descritivos e de
// enriquecimento sempre do lado histórico; marca prefere o histórico com
// fallback para o existente.
type MergeReconciler struct {
	organicPaid *OrganicPaidCalculator
	themes      *ThemeClassifier
	seasonality *SeasonalityEstimator
}

// NewMergeReconciler cria o reconciliador com os componentes de enriquecimento
// necessários para os registros que só existem no lado financeiro.
func NewMergeReconciler(
	organicPaid *OrganicPaidCalculator,
	themes *ThemeClassifier,
	seasonality *SeasonalityEstimator,
) *MergeReconciler {
	return &MergeReconciler{
		organicPaid: organicPaid,
		themes:      themes,
		seasonality: seasonality,
	}
}

// Merge produz exatamente um MergedRecord por SKU presente na união dos dois
// conjuntos, ordenado por receita decrescente.
func (m *MergeReconciler) Merge(
	historical []*domain.EnrichedProduct,
	existing []*domain.FinancialAggregate,
) []*domain.MergedRecord {
	existingBySKU := make(map[string]*domain.FinancialAggregate, len(existing))
	for _, agg := range existing {
		existingBySKU[agg.SKU] = agg
	}

	historicalSKUs := make(map[string]bool, len(historical))
	merged := make([]*domain.MergedRecord, 0, len(historical))

	for _, product := range historical {
		historicalSKUs[product.SKU] = true

		if financial, ok := existingBySKU[product.SKU]; ok {
			merged = append(merged, m.mergeMatched(product, financial))
			continue
		}

		merged = append(merged, m.historicalOnly(product))
	}

	// SKUs presentes apenas no lado financeiro também entram na saída, com
	// enriquecimento básico derivado do texto descritivo disponível
	for _, financial := range existing {
		if !historicalSKUs[financial.SKU] {
			merged = append(merged, m.existingOnly(financial))
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Revenue > merged[j].Revenue
	})

	return merged
}

func (m *MergeReconciler) mergeMatched(product *domain.EnrichedProduct, financial *domain.FinancialAggregate) *domain.MergedRecord {
	record := m.recordFromEnriched(product)

	if product.Brand == "" {
		record.Brand = financial.Brand
	}

	record.Marketplace = financial.Marketplace
	record.Units = financial.Units
	record.Revenue = financial.Revenue
	record.COGS = financial.COGS
	record.Refunds = financial.Refunds
	record.RefundRate = financial.RefundRate
	record.FBAFee = financial.FBAFee
	record.AdSpend = financial.AdSpend
	record.AdSales = financial.AdSales
	record.ACoS = financial.ACoS
	record.Storage = financial.Storage
	record.GrossProfit = financial.GrossProfit
	record.Margin = financial.Margin

	record.OrganicPaidMetrics = m.organicPaid.Calculate(
		financial.AdSales,
		financial.Revenue,
		product.DailySales,
	)

	return record
}

func (m *MergeReconciler) historicalOnly(product *domain.EnrichedProduct) *domain.MergedRecord {
	record := m.recordFromEnriched(product)

	// Sem agregado financeiro: campos zerados e divisão orgânico/pago calculada
	// assumindo zero em vendas de anúncio e receita (degenera para "N/A")
	record.OrganicPaidMetrics = m.organicPaid.Calculate(0, 0, product.DailySales)

	return record
}

func (m *MergeReconciler) existingOnly(financial *domain.FinancialAggregate) *domain.MergedRecord {
	name := financial.Product
	if name == "" {
		name = financial.SKU
	}

	return &domain.MergedRecord{
		SKU:              financial.SKU,
		ProductName:      name,
		Title:            name,
		Brand:            financial.Brand,
		Marketplace:      financial.Marketplace,
		Theme:            m.themes.Classify(financial.Product, "", financial.SKU),
		Seasonality:      domain.SeasonalityYearRound,
		SeasonalityBadge: m.seasonality.Badge(domain.SeasonalityYearRound),

		Units:       financial.Units,
		Revenue:     financial.Revenue,
		COGS:        financial.COGS,
		Refunds:     financial.Refunds,
		RefundRate:  financial.RefundRate,
		FBAFee:      financial.FBAFee,
		AdSpend:     financial.AdSpend,
		AdSales:     financial.AdSales,
		ACoS:        financial.ACoS,
		Storage:     financial.Storage,
		GrossProfit: financial.GrossProfit,
		Margin:      financial.Margin,

		OrganicPaidMetrics: m.organicPaid.Calculate(financial.AdSales, financial.Revenue, nil),
	}
}

func (m *MergeReconciler) recordFromEnriched(product *domain.EnrichedProduct) *domain.MergedRecord {
	return &domain.MergedRecord{
		SKU:         product.SKU,
		MSKU:        product.MSKU,
		ProductName: product.ProductName,
		Title:       product.Title,
		Brand:       product.Brand,
		Category:    product.Category,
		Subcategory: product.Subcategory,

		Theme:            product.Theme,
		Seasonality:      product.Seasonality,
		SeasonalityBadge: product.SeasonalityBadge,

		FirstSale:     product.FirstSale,
		LastSale:      product.LastSale,
		PeakMonth:     product.PeakMonth,
		AvgDailySales: product.AvgDailySales,

		HistoricalUnits:        product.HistoricalUnits,
		HistoricalRevenue:      product.HistoricalRevenue,
		HistoricalTransactions: product.HistoricalTransactions,

		MonthlySales:   product.MonthlySales,
		PeakMonthIndex: product.PeakMonthIndex,
		PeakMonthUnits: product.PeakMonthUnits,
	}
}
