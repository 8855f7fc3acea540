package enriching

import (
	"fmt"
	"math"
	"time"

	"github.com/vfg2006/seller-insights-api/internal/domain"
	"github.com/vfg2006/seller-insights-api/pkg/utils"
)

// OrganicPaidCalculator estima a divisão de receita entre descoberta orgânica e
// anúncios pagos em uma janela de 30 dias. A janela é calculada uma única vez
// por execução e compartilhada entre todos os produtos.
//
// A escala proporcional (vendas de anúncio distribuídas uniformemente por todo
// o histórico do produto, projetadas na janela) é uma aproximação: o pipeline
// não tem o número nativo de atribuição de anúncios em 30 dias.
type OrganicPaidCalculator struct {
	startDate string
	endDate   string
}

// NewOrganicPaidCalculator cria a calculadora com a janela derivada de now:
// fim = now − offsetDays, início = fim − spanDays (intervalo inclusivo).
func NewOrganicPaidCalculator(now time.Time, offsetDays, spanDays int) *OrganicPaidCalculator {
	end := now.AddDate(0, 0, -offsetDays)
	start := end.AddDate(0, 0, -spanDays)

	return &OrganicPaidCalculator{
		startDate: start.Format(time.DateOnly),
		endDate:   end.Format(time.DateOnly),
	}
}

// Window retorna os limites da janela em formato ISO
func (c *OrganicPaidCalculator) Window() (string, string) {
	return c.startDate, c.endDate
}

// Calculate produz as métricas de orgânico/pago de um produto a partir dos
// totais financeiros (receita e vendas atribuídas a anúncios de todo o período)
// e da série diária de vendas históricas.
func (c *OrganicPaidCalculator) Calculate(totalAdSales, totalRevenue float64, dailySales []domain.DailySale) domain.OrganicPaidMetrics {
	var total30d float64
	for _, day := range dailySales {
		if day.Date >= c.startDate && day.Date <= c.endDate {
			total30d += day.Revenue
		}
	}

	var paid30d float64
	if total30d > 0 && totalRevenue > 0 {
		paid30d = (totalAdSales / totalRevenue) * total30d
	}

	// Piso em zero protege contra excesso da escala proporcional
	organic30d := math.Max(0, total30d-paid30d)

	metrics := domain.OrganicPaidMetrics{
		OrganicSales30d:             utils.RoundWithTwoDecimalPlace(organic30d),
		PaidSales30d:                utils.RoundWithTwoDecimalPlace(paid30d),
		OrganicToPaidRatio:          0,
		OrganicToPaidRatioFormatted: "N/A",
	}

	switch {
	case paid30d == 0 && organic30d > 0:
		metrics.OrganicToPaidRatio = domain.Ratio(math.Inf(1))
		metrics.OrganicToPaidRatioFormatted = "Organic Only"
	case total30d == 0:
		// "N/A": o zero numérico aqui não é uma razão genuína
	case paid30d > 0:
		ratio := organic30d / paid30d
		metrics.OrganicToPaidRatio = domain.Ratio(utils.RoundWithTwoDecimalPlace(ratio))
		metrics.OrganicToPaidRatioFormatted = fmt.Sprintf("%.1f:1", ratio)
	}

	return metrics
}
