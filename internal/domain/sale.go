package domain

// SalesRow representa uma linha da exportação de histórico de vendas
// (uma combinação transação-data-produto). Imutável após a leitura.
type SalesRow struct {
	SKU          string
	MSKU         string
	ProductName  string
	Title        string
	Brand        string
	Category     string
	Subcategory  string
	Date         string
	Units        float64
	Revenue      float64
	Transactions int
}

// DailySale é uma amostra diária de vendas retida para os cálculos de janela
type DailySale struct {
	Date    string  `json:"date"`
	Units   float64 `json:"units"`
	Revenue float64 `json:"revenue"`
}
