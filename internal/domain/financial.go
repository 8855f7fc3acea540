package domain

// FinancialAggregate é o registro pré-existente de agregados financeiros por SKU
// (custos, taxas e investimento em anúncios) vindo da API da plataforma de vendas.
// Os campos financeiros são autoritativos: o pipeline de enriquecimento nunca os
// sobrescreve.
type FinancialAggregate struct {
	SKU         string `json:"sku"`
	Product     string `json:"product,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Marketplace string `json:"marketplace,omitempty"`

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
}
