package domain

// Seasonality são os rótulos possíveis de sazonalidade de um produto
const (
	SeasonalityQ1        = "Q1"
	SeasonalityQ2        = "Q2"
	SeasonalityQ3        = "Q3"
	SeasonalityQ4        = "Q4"
	SeasonalityYearRound = "Year-Round"
)

// ProductAggregate acumula os totais de um SKU durante a varredura do histórico.
// Criado na primeira linha que referencia o SKU; cresce monotonicamente e é
// finalizado (somente leitura) quando todas as linhas foram processadas.
type ProductAggregate struct {
	SKU         string
	MSKU        string
	ProductName string
	Title       string
	Brand       string
	Category    string
	Subcategory string

	HistoricalUnits        float64
	HistoricalRevenue      float64
	HistoricalTransactions int

	// Limites de datas em formato ISO (comparação lexicográfica)
	FirstSale string
	LastSale  string

	// Índice 0 = janeiro
	MonthlyRevenue [12]float64
	MonthlyUnits   [12]float64

	DailySales []DailySale
}

// MonthlySalesPoint é um ponto da série mensal usada no gráfico de sazonalidade
type MonthlySalesPoint struct {
	Month     string `json:"month"`
	Units     int    `json:"units"`
	MonthName string `json:"monthName"`
}

// EnrichedProduct é o resultado do enriquecimento de um ProductAggregate:
// tema, sazonalidade e métricas derivadas prontas para exibição.
type EnrichedProduct struct {
	SKU         string `json:"sku"`
	MSKU        string `json:"msku"`
	ProductName string `json:"productName"`
	Title       string `json:"title"`
	Brand       string `json:"brand"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`

	Theme            string `json:"theme"`
	Seasonality      string `json:"seasonality"`
	SeasonalityBadge string `json:"seasonalityBadge"`

	FirstSale     string  `json:"firstSale"`
	LastSale      string  `json:"lastSale"`
	PeakMonth     string  `json:"peakMonth"`
	AvgDailySales float64 `json:"avgDailySales"`

	HistoricalUnits        int     `json:"historicalUnits"`
	HistoricalRevenue      float64 `json:"historicalRevenue"`
	HistoricalTransactions int     `json:"historicalTransactions"`

	MonthlySales   []MonthlySalesPoint `json:"monthlySales"`
	PeakMonthIndex int                 `json:"peakMonthIndex"`
	PeakMonthUnits int                 `json:"peakMonthUnits"`

	// Retido apenas para o cálculo de orgânico/pago; não vai para a saída final
	DailySales []DailySale `json:"-"`
}
