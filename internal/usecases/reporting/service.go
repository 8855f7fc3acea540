package reporting

import (
	"github.com/vfg2006/seller-insights-api/infrastructure/repository"
	"github.com/vfg2006/seller-insights-api/internal/domain"
	"github.com/vfg2006/seller-insights-api/pkg/utils"
)

// Service responde as consultas de leitura a partir dos registros persistidos
// pela última execução do pipeline
type Service struct {
	mergedRecordRepository repository.MergedRecordRepository
}

func NewService(mergedRecordRepo repository.MergedRecordRepository) Reporter {
	return &Service{
		mergedRecordRepository: mergedRecordRepo,
	}
}

// ListProducts lista os registros consolidados, ordenados por receita
// decrescente, aplicando os filtros informados
func (s *Service) ListProducts(filters *domain.ReportFilters) ([]*domain.MergedRecord, error) {
	return s.mergedRecordRepository.ListRecords(filters)
}

// GetProduct busca o registro consolidado de um SKU. Retorna nil quando o SKU
// não existe no relatório.
func (s *Service) GetProduct(sku string) (*domain.MergedRecord, error) {
	return s.mergedRecordRepository.GetBySKU(sku)
}

// Summary calcula as distribuições do portfólio (por tema, sazonalidade e
// marca) sobre o relatório completo
func (s *Service) Summary() (*domain.PortfolioSummary, error) {
	records, err := s.mergedRecordRepository.ListRecords(nil)
	if err != nil {
		return nil, err
	}

	summary := &domain.PortfolioSummary{
		TotalSKUs: len(records),
		ByTheme:   make(map[string]int),
		BySeason:  make(map[string]int),
		ByBrand:   make(map[string]int),
	}

	for _, record := range records {
		summary.TotalRevenue += record.Revenue
		summary.ByTheme[record.Theme]++
		summary.BySeason[record.Seasonality]++
		summary.ByBrand[record.Brand]++

		switch record.OrganicToPaidRatioFormatted {
		case "Organic Only":
			summary.OrganicOnly++
		case "N/A":
			summary.NoRatioData++
		}
	}

	summary.TotalRevenue = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue)

	return summary, nil
}
