package reporting

import (
	"github.com/vfg2006/seller-insights-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// Reporter expõe as consultas de leitura sobre o relatório consolidado
type Reporter interface {
	ListProducts(filters *domain.ReportFilters) ([]*domain.MergedRecord, error)
	GetProduct(sku string) (*domain.MergedRecord, error)
	Summary() (*domain.PortfolioSummary, error)
}
