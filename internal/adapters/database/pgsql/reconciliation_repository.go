package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	portsrepo "github.com/harmonia-labs/label_ledger_app/internal/core/ports/repositories"
)

type PgxReconciliationRepository struct {
	pool *pgxpool.Pool
}

// NewPgxReconciliationRepository creates a new repository for the
// reconciliation ledger.
func NewPgxReconciliationRepository(pool *pgxpool.Pool) portsrepo.ReconciliationRepositoryFacade {
	return &PgxReconciliationRepository{pool: pool}
}

// AppendEntry durably appends one immutable entry. There is deliberately no
// update or delete: the ledger is append-only.
func (r *PgxReconciliationRepository) AppendEntry(ctx context.Context, entry domain.ReconciliationEntry) error {
	query := `
		INSERT INTO reconciliation_entries (
			entry_id, project_id, budget_line_item_id, kind, amount_minor, currency_code,
			hours, rate_used_minor, billing_role_id, writeoff_reason, description,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.pool.Exec(ctx, query,
		entry.EntryID,
		entry.ProjectID,
		entry.BudgetLineItemID,
		entry.Kind,
		entry.AmountMinor,
		entry.CurrencyCode,
		entry.Hours,
		entry.RateUsedMinor,
		entry.BillingRoleID,
		entry.WriteoffReason,
		entry.Description,
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert reconciliation entry %s: %w", entry.EntryID, err)
	}
	return nil
}

// ListEntries returns matching entries in creation order.
func (r *PgxReconciliationRepository) ListEntries(ctx context.Context, filter portsrepo.ReconciliationFilter) ([]domain.ReconciliationEntry, error) {
	query := `
		SELECT entry_id, project_id, budget_line_item_id, kind, amount_minor, currency_code,
		       hours, rate_used_minor, billing_role_id, writeoff_reason, description,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM reconciliation_entries
		WHERE ($1::text IS NULL OR project_id = $1)
		  AND ($2::text IS NULL OR budget_line_item_id = $2)
		  AND ($3::text IS NULL OR kind = $3)
		ORDER BY created_at, entry_id;
	`
	rows, err := r.pool.Query(ctx, query, filter.ProjectID, filter.BudgetLineItemID, filter.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to query reconciliation entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.ReconciliationEntry
	for rows.Next() {
		var e domain.ReconciliationEntry
		err := rows.Scan(
			&e.EntryID,
			&e.ProjectID,
			&e.BudgetLineItemID,
			&e.Kind,
			&e.AmountMinor,
			&e.CurrencyCode,
			&e.Hours,
			&e.RateUsedMinor,
			&e.BillingRoleID,
			&e.WriteoffReason,
			&e.Description,
			&e.CreatedAt,
			&e.CreatedBy,
			&e.LastUpdatedAt,
			&e.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reconciliation entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reconciliation entries: %w", err)
	}
	return entries, nil
}
