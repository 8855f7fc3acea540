package domain

import (
	"encoding/json"
	"math"
)

// Ratio é uma razão que pode assumir o sentinela +Inf ("Organic Only").
// Serializa infinito como null, já que JSON não representa infinito; a string
// formatada que o acompanha carrega o sentinela.
type Ratio float64

func (r Ratio) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(r), 1) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(r))
}

func (r *Ratio) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Ratio(math.Inf(1))
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*r = Ratio(f)

	return nil
}

// OrganicPaidMetrics é a divisão orgânico/pago estimada para a janela de 30 dias.
// A string formatada é a fonte de verdade para exibição: o valor numérico sozinho
// não distingue "N/A" (sem dados) de uma razão genuinamente zero.
type OrganicPaidMetrics struct {
	OrganicSales30d             float64 `json:"organicSales30d"`
	PaidSales30d                float64 `json:"paidSales30d"`
	OrganicToPaidRatio          Ratio   `json:"organicToPaidRatio"`
	OrganicToPaidRatioFormatted string  `json:"organicToPaidRatioFormatted"`
}

// MergedRecord é a linha final do relatório: união dos campos financeiros
// (quando existem) com os campos de enriquecimento histórico, mais as métricas
// de orgânico/pago. Exatamente um registro por SKU presente em qualquer fonte.
type MergedRecord struct {
	SKU         string `json:"sku"`
	MSKU        string `json:"msku,omitempty"`
	ProductName string `json:"productName"`
	Title       string `json:"title"`
	Brand       string `json:"brand"`
	Marketplace string `json:"marketplace,omitempty"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`

	Theme            string `json:"theme"`
	Seasonality      string `json:"seasonality"`
	SeasonalityBadge string `json:"seasonalityBadge"`

	FirstSale     string  `json:"firstSale,omitempty"`
	LastSale      string  `json:"lastSale,omitempty"`
	PeakMonth     string  `json:"peakMonth,omitempty"`
	AvgDailySales float64 `json:"avgDailySales"`

	HistoricalUnits        int     `json:"historicalUnits"`
	HistoricalRevenue      float64 `json:"historicalRevenue"`
	HistoricalTransactions int     `json:"historicalTransactions"`

	MonthlySales   []MonthlySalesPoint `json:"monthlySales,omitempty"`
	PeakMonthIndex int                 `json:"peakMonthIndex"`
	PeakMonthUnits int                 `json:"peakMonthUnits"`

	// Agregados financeiros (zerados quando o SKU não existe na fonte financeira)
	Units       int     `json:"units"`
	Revenue     float64 `json:"revenue"`
	COGS        float64 `json:"cogs"`
	Refunds     float64 `json:"refunds"`
	RefundRate  float64 `json:"refundRate"`
	FBAFee      float64 `json:"fbaFee"`
	AdSpend     float64 `json:"adSpend"`
	AdSales     float64 `json:"adSales"`
	ACoS        float64 `json:"acos"`
	Storage     float64 `json:"storage"`
	GrossProfit float64 `json:"grossProfit"`
	Margin      float64 `json:"margin"`

	OrganicPaidMetrics
}
