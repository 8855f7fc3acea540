package enriching

import (
	"time"

	"github.com/vfg2006/seller-insights-api/internal/domain"
	"github.com/vfg2006/seller-insights-api/pkg/utils"
)

// RowAggregator dobra as linhas do histórico de vendas em um ProductAggregate
// por SKU. A ordem de inserção segue a primeira aparição de cada SKU.
type RowAggregator struct {
	order        []string
	bySKU        map[string]*domain.ProductAggregate
	skippedNoSKU int
	badDates     int
}

// NewRowAggregator cria um agregador vazio
func NewRowAggregator() *RowAggregator {
	return &RowAggregator{
		bySKU: make(map[string]*domain.ProductAggregate),
	}
}

// Add incorpora uma linha ao agregado do SKU correspondente. Linhas sem SKU são
// descartadas silenciosamente; uma data inválida ainda contribui para os totais
// acumulados, mas não para as séries mensal e diária.
func (a *RowAggregator) Add(row domain.SalesRow) {
	if row.SKU == "" {
		a.skippedNoSKU++
		return
	}

	agg, ok := a.bySKU[row.SKU]
	if !ok {
		agg = newAggregate(row)
		a.bySKU[row.SKU] = agg
		a.order = append(a.order, row.SKU)
	}

	agg.HistoricalUnits += row.Units
	agg.HistoricalRevenue += row.Revenue
	agg.HistoricalTransactions += row.Transactions

	if row.Date == "" {
		return
	}

	parsed, err := utils.ParseFlexibleDate(row.Date)
	if err != nil {
		a.badDates++
		return
	}

	dateStr := parsed.Format(time.DateOnly)
	if agg.FirstSale == "" || dateStr < agg.FirstSale {
		agg.FirstSale = dateStr
	}
	if agg.LastSale == "" || dateStr > agg.LastSale {
		agg.LastSale = dateStr
	}

	month := int(parsed.Month()) - 1
	agg.MonthlyRevenue[month] += row.Revenue
	agg.MonthlyUnits[month] += row.Units

	agg.DailySales = append(agg.DailySales, domain.DailySale{
		Date:    dateStr,
		Units:   row.Units,
		Revenue: row.Revenue,
	})
}

// Aggregates retorna os agregados finalizados na ordem de primeira aparição
func (a *RowAggregator) Aggregates() []*domain.ProductAggregate {
	result := make([]*domain.ProductAggregate, 0, len(a.order))
	for _, sku := range a.order {
		result = append(result, a.bySKU[sku])
	}
	return result
}

// SkippedRows retorna quantas linhas foram descartadas por falta de SKU
func (a *RowAggregator) SkippedRows() int {
	return a.skippedNoSKU
}

// UnparsableDates retorna quantas linhas tinham data que não pôde ser interpretada
func (a *RowAggregator) UnparsableDates() int {
	return a.badDates
}

func newAggregate(row domain.SalesRow) *domain.ProductAggregate {
	agg := &domain.ProductAggregate{
		SKU:         row.SKU,
		MSKU:        row.MSKU,
		ProductName: row.ProductName,
		Title:       row.Title,
		Brand:       row.Brand,
		Category:    row.Category,
		Subcategory: row.Subcategory,
	}

	// Fallbacks de identificação quando a exportação vem incompleta
	if agg.MSKU == "" {
		agg.MSKU = row.SKU
	}
	if agg.ProductName == "" {
		agg.ProductName = row.SKU
	}
	if agg.Title == "" {
		agg.Title = agg.ProductName
	}
	if agg.Brand == "" {
		agg.Brand = "Unknown"
	}

	return agg
}
