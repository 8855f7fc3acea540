package domain

// ReportFilters restringe a listagem de registros do relatório
type ReportFilters struct {
	Theme       string
	Seasonality string
	Brand       string
	Limit       int
}

// PortfolioSummary agrega as distribuições do portfólio para o painel
type PortfolioSummary struct {
	TotalSKUs    int            `json:"totalSkus"`
	TotalRevenue float64        `json:"totalRevenue"`
	ByTheme      map[string]int `json:"byTheme"`
	BySeason     map[string]int `json:"bySeasonality"`
	ByBrand      map[string]int `json:"byBrand"`
	OrganicOnly  int            `json:"organicOnly"`
	NoRatioData  int            `json:"noRatioData"`
}
