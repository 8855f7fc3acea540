package domain

// AccessTokenResponse é a resposta do endpoint de autenticação da API
type AccessTokenResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int    `json:"expires_in"`
	} `json:"data"`
}

// ProfitReportRecord é um registro de lucro e perda por SKU/loja retornado
// pelo relatório de sellers da API
type ProfitReportRecord struct {
	SID         int    `json:"sid"`
	LocalSKU    string `json:"localSku"`
	SKU         string `json:"sku"`
	ProductName string `json:"productName"`
	Title       string `json:"title"`

	TotalSalesQuantity        float64 `json:"totalSalesQuantity"`
	TotalSalesAmount          float64 `json:"totalSalesAmount"`
	CGPriceTotal              float64 `json:"cgPriceTotal"`
	TotalSalesRefunds         float64 `json:"totalSalesRefunds"`
	TotalFBADeliveryFee       float64 `json:"totalFbaDeliveryFee"`
	TotalAdsCost              float64 `json:"totalAdsCost"`
	TotalAdsOrdersSalesAmount float64 `json:"totalAdsOrdersSalesAmount"`
	TotalStorageFee           float64 `json:"totalStorageFee"`
	GrossProfit               float64 `json:"grossProfit"`
}

// ProfitReportResponse é o envelope do relatório de lucro e perda
type ProfitReportResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		Total   int                  `json:"total"`
		Records []ProfitReportRecord `json:"records"`
	} `json:"data"`
}

// ProfitReportParams são os parâmetros de consulta do relatório
type ProfitReportParams struct {
	StartDate string
	EndDate   string
	Offset    int
	Length    int
}
