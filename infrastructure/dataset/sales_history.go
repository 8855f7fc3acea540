package dataset

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-insights-api/internal/config"
	"github.com/vfg2006/seller-insights-api/internal/domain"
	"github.com/vfg2006/seller-insights-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

// Aliases aceitos para cada campo da exportação, comparados sem distinção de
// caixa. As exportações variam o cabeçalho entre versões da plataforma.
var columnAliases = map[string][]string{
	"sku":          {"sku"},
	"msku":         {"msku", "marketplace sku"},
	"productName":  {"product name", "productname", "product"},
	"title":        {"title"},
	"brand":        {"brand"},
	"category":     {"secondary category", "category"},
	"subcategory":  {"tertiary category", "subcategory"},
	"date":         {"date"},
	"units":        {"sales volume", "salesvolume"},
	"revenue":      {"sales amount", "salesamount"},
	"transactions": {"transactions"},
}

// SalesHistoryReader lê a exportação tabular de histórico de vendas (planilha
// Excel) e a converte em linhas SalesRow.
type SalesHistoryReader struct {
	cfg *config.Config
}

func NewSalesHistoryReader(cfg *config.Config) *SalesHistoryReader {
	return &SalesHistoryReader{cfg: cfg}
}

// ReadRows abre a planilha configurada e converte cada linha da primeira aba
// com dados. Campos numéricos ilegíveis valem zero e são contabilizados, nunca
// abortam a leitura.
func (r *SalesHistoryReader) ReadRows() ([]domain.SalesRow, error) {
	path := r.cfg.EnrichmentSync.SalesExportPath

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir a exportação de vendas %s", path)
	}
	defer f.Close()

	var rows [][]string
	var sheetName string

	// A primeira aba com ao menos cabeçalho e uma linha de dados vence
	for _, name := range f.GetSheetList() {
		sheetRows, err := f.GetRows(name)
		if err == nil && len(sheetRows) > 1 {
			rows = sheetRows
			sheetName = name
			break
		}
	}

	if rows == nil {
		return nil, errors.Errorf("nenhuma aba com dados encontrada em %s", path)
	}

	columns := mapColumns(rows[0])
	if _, ok := columns["sku"]; !ok {
		return nil, errors.Errorf("coluna SKU não encontrada na aba %s", sheetName)
	}

	salesRows := make([]domain.SalesRow, 0, len(rows)-1)
	unparsable := 0

	for _, cells := range rows[1:] {
		row, badFields := buildRow(cells, columns)
		unparsable += badFields
		salesRows = append(salesRows, row)
	}

	logrus.WithFields(logrus.Fields{
		"path":              path,
		"sheet":             sheetName,
		"rows":              len(salesRows),
		"unparsable_fields": unparsable,
	}).Info("Exportação de histórico de vendas carregada")

	return salesRows, nil
}

// mapColumns resolve o índice de cada campo conhecido a partir do cabeçalho
func mapColumns(header []string) map[string]int {
	columns := make(map[string]int)

	for idx, cell := range header {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for field, aliases := range columnAliases {
			if _, taken := columns[field]; taken {
				continue
			}
			for _, alias := range aliases {
				if normalized == alias {
					columns[field] = idx
					break
				}
			}
		}
	}

	return columns
}

func buildRow(cells []string, columns map[string]int) (domain.SalesRow, int) {
	get := func(field string) string {
		idx, ok := columns[field]
		if !ok || idx >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[idx])
	}

	badFields := 0

	units, status := utils.ParseFloatField(get("units"))
	if status == utils.FieldUnparsable {
		badFields++
	}

	revenue, status := utils.ParseFloatField(get("revenue"))
	if status == utils.FieldUnparsable {
		badFields++
	}

	transactions, status := utils.ParseIntField(get("transactions"))
	if status == utils.FieldUnparsable {
		badFields++
	}

	return domain.SalesRow{
		SKU:          get("sku"),
		MSKU:         get("msku"),
		ProductName:  get("productName"),
		Title:        get("title"),
		Brand:        get("brand"),
		Category:     get("category"),
		Subcategory:  get("subcategory"),
		Date:         get("date"),
		Units:        units,
		Revenue:      revenue,
		Transactions: transactions,
	}, badFields
}
