package enriching

import (
	"context"

	"github.com/vfg2006/seller-insights-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// SalesHistorySource fornece as linhas da exportação de histórico de vendas
type SalesHistorySource interface {
	ReadRows() ([]domain.SalesRow, error)
}

// FinancialAggregateSource fornece o conjunto pré-existente de agregados
// financeiros por SKU
type FinancialAggregateSource interface {
	ListAggregates() ([]*domain.FinancialAggregate, error)
}

// MergedRecordStore persiste o resultado de uma execução do pipeline
type MergedRecordStore interface {
	SaveRun(ctx context.Context, runID string, records []*domain.MergedRecord) error
}

// Enricher executa o pipeline completo de enriquecimento
type Enricher interface {
	Run(ctx context.Context) (*RunSummary, error)
}
