package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	portsrepo "github.com/harmonia-labs/label_ledger_app/internal/core/ports/repositories"
)

type PgxIncomeRepository struct {
	pool *pgxpool.Pool
}

// NewPgxIncomeRepository creates a new repository for income records.
func NewPgxIncomeRepository(pool *pgxpool.Pool) portsrepo.IncomeRepositoryFacade {
	return &PgxIncomeRepository{pool: pool}
}

// ListIncomeByProjectID retrieves a project's income rows in date order.
func (r *PgxIncomeRepository) ListIncomeByProjectID(ctx context.Context, projectID string) ([]domain.Income, error) {
	query := `
		SELECT income_id, project_id, income_date, description, amount_minor, currency_code,
			source, external_ref, created_at, created_by, last_updated_at, last_updated_by
		FROM income_records
		WHERE project_id = $1
		ORDER BY income_date, income_id;
	`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query income records: %w", err)
	}
	defer rows.Close()

	var records []domain.Income
	for rows.Next() {
		var rec domain.Income
		if err := rows.Scan(
			&rec.IncomeID, &rec.ProjectID, &rec.Date, &rec.Description, &rec.AmountMinor, &rec.CurrencyCode,
			&rec.Source, &rec.ExternalRef, &rec.CreatedAt, &rec.CreatedBy, &rec.LastUpdatedAt, &rec.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan income record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating income records: %w", err)
	}
	return records, nil
}

// SaveIncome persists a new income record.
func (r *PgxIncomeRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	query := `
		INSERT INTO income_records (
			income_id, project_id, income_date, description, amount_minor, currency_code,
			source, external_ref, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.pool.Exec(ctx, query,
		income.IncomeID, income.ProjectID, income.Date, income.Description, income.AmountMinor, income.CurrencyCode,
		income.Source, income.ExternalRef, income.CreatedAt, income.CreatedBy, income.LastUpdatedAt, income.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert income record %s: %w", income.IncomeID, err)
	}
	return nil
}
