package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/seller-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-insights-api/internal/domain"
)

const (
	financialAggregatesTable = "financial_aggregates fa"
)

//go:generate mockgen -source=financial_aggregate.go -destination=mocks/financial_aggregate.go -package=mocks

type FinancialAggregateRepository interface {
	SaveOrUpdate(aggregate *domain.FinancialAggregate) error
	ListAggregates() ([]*domain.FinancialAggregate, error)
}

type financialAggregateRepository struct {
	conn *postgres.Connection
}

func NewFinancialAggregateRepository(conn *postgres.Connection) FinancialAggregateRepository {
	return &financialAggregateRepository{
		conn: conn,
	}
}

func (r *financialAggregateRepository) SaveOrUpdate(aggregate *domain.FinancialAggregate) error {
	metricsJSON, err := json.Marshal(aggregate)
	if err != nil {
		return fmt.Errorf("erro ao serializar FinancialAggregate para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("financial_aggregates").
		Columns("sku", "brand", "revenue", "metrics").
		Values(
			aggregate.SKU,
			aggregate.Brand,
			aggregate.Revenue,
			metricsJSON,
		).
		Suffix(`
			ON CONFLICT (sku) DO UPDATE SET
				brand = EXCLUDED.brand,
				revenue = EXCLUDED.revenue,
				metrics = EXCLUDED.metrics,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *financialAggregateRepository) ListAggregates() ([]*domain.FinancialAggregate, error) {
	query, args, err := squirrel.
		Select("fa.metrics").
		From(financialAggregatesTable).
		OrderBy("fa.revenue DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	aggregates := make([]*domain.FinancialAggregate, 0)
	for rows.Next() {
		var metricsJSON []byte
		if err := rows.Scan(&metricsJSON); err != nil {
			return nil, fmt.Errorf("erro ao escanear financial aggregate: %w", err)
		}

		aggregate := &domain.FinancialAggregate{}
		if err := json.Unmarshal(metricsJSON, aggregate); err != nil {
			return nil, fmt.Errorf("erro ao desserializar financial aggregate: %w", err)
		}

		aggregates = append(aggregates, aggregate)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return aggregates, nil
}
