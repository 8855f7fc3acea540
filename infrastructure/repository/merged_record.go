package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/seller-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-insights-api/internal/domain"
)

const (
	mergedRecordsTable = "merged_records mr"
)

//go:generate mockgen -source=merged_record.go -destination=mocks/merged_record.go -package=mocks

type MergedRecordRepository interface {
	SaveRun(ctx context.Context, runID string, records []*domain.MergedRecord) error
	ListRecords(filters *domain.ReportFilters) ([]*domain.MergedRecord, error)
	GetBySKU(sku string) (*domain.MergedRecord, error)
}

type mergedRecordRepository struct {
	conn *postgres.Connection
}

func NewMergedRecordRepository(conn *postgres.Connection) MergedRecordRepository {
	return &mergedRecordRepository{
		conn: conn,
	}
}

// SaveRun grava todos os registros de uma execução do pipeline em uma única
// transação. Registros de execuções anteriores são sobrescritos por SKU.
func (r *mergedRecordRepository) SaveRun(ctx context.Context, runID string, records []*domain.MergedRecord) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, record := range records {
			recordJSON, err := json.Marshal(record)
			if err != nil {
				return fmt.Errorf("erro ao serializar MergedRecord para JSON: %w", err)
			}

			query := squirrel.StatementBuilder.
				Insert("merged_records").
				Columns("sku", "run_id", "brand", "theme", "seasonality", "revenue", "record").
				Values(
					record.SKU,
					runID,
					record.Brand,
					record.Theme,
					record.Seasonality,
					record.Revenue,
					recordJSON,
				).
				Suffix(`
					ON CONFLICT (sku) DO UPDATE SET
						run_id = EXCLUDED.run_id,
						brand = EXCLUDED.brand,
						theme = EXCLUDED.theme,
						seasonality = EXCLUDED.seasonality,
						revenue = EXCLUDED.revenue,
						record = EXCLUDED.record,
						updated_at = NOW()
				`).
				PlaceholderFormat(squirrel.Dollar)

			sqlQuery, args, err := query.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("erro ao executar a query: %w", err)
			}
		}

		return nil
	})
}

func (r *mergedRecordRepository) ListRecords(filters *domain.ReportFilters) ([]*domain.MergedRecord, error) {
	builder := squirrel.
		Select("mr.record").
		From(mergedRecordsTable).
		OrderBy("mr.revenue DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		if filters.Theme != "" {
			builder = builder.Where(squirrel.Eq{"mr.theme": filters.Theme})
		}
		if filters.Seasonality != "" {
			builder = builder.Where(squirrel.Eq{"mr.seasonality": filters.Seasonality})
		}
		if filters.Brand != "" {
			builder = builder.Where(squirrel.Eq{"mr.brand": filters.Brand})
		}
		if filters.Limit > 0 {
			builder = builder.Limit(uint64(filters.Limit))
		}
	}

	query, args, err := builder.ToSql()
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

	records := make([]*domain.MergedRecord, 0)
	for rows.Next() {
		var recordJSON []byte
		if err := rows.Scan(&recordJSON); err != nil {
			return nil, fmt.Errorf("erro ao escanear merged record: %w", err)
		}

		record := &domain.MergedRecord{}
		if err := json.Unmarshal(recordJSON, record); err != nil {
			return nil, fmt.Errorf("erro ao desserializar merged record: %w", err)
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *mergedRecordRepository) GetBySKU(sku string) (*domain.MergedRecord, error) {
	query, args, err := squirrel.
		Select("mr.record").
		From(mergedRecordsTable).
		Where(squirrel.Eq{"mr.sku": sku}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var recordJSON []byte
	if err := r.conn.QueryRow(query, args...).Scan(&recordJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	record := &domain.MergedRecord{}
	if err := json.Unmarshal(recordJSON, record); err != nil {
		return nil, fmt.Errorf("erro ao desserializar merged record: %w", err)
	}

	return record, nil
}
