package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harmonia-labs/label_ledger_app/internal/apperrors"
	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	portsrepo "github.com/harmonia-labs/label_ledger_app/internal/core/ports/repositories"
)

type PgxBudgetRepository struct {
	pool *pgxpool.Pool
}

// NewPgxBudgetRepository creates a new repository for budgets and line items.
func NewPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{pool: pool}
}

const budgetColumns = `budget_id, project_id, currency_code, total_amount, alert_thresholds,
		created_at, created_by, last_updated_at, last_updated_by`

func scanBudget(row pgx.Row) (*domain.Budget, error) {
	var b domain.Budget
	err := row.Scan(
		&b.BudgetID, &b.ProjectID, &b.CurrencyCode, &b.TotalAmount, &b.AlertThresholds,
		&b.CreatedAt, &b.CreatedBy, &b.LastUpdatedAt, &b.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan budget: %w", err)
	}
	return &b, nil
}

// FindBudgetByID retrieves a budget by ID.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE budget_id = $1;`
	return scanBudget(r.pool.QueryRow(ctx, query, budgetID))
}

// FindBudgetByProjectID retrieves the budget attached to a project.
func (r *PgxBudgetRepository) FindBudgetByProjectID(ctx context.Context, projectID string) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE project_id = $1;`
	return scanBudget(r.pool.QueryRow(ctx, query, projectID))
}

// FindLineItemByID retrieves a single line item.
func (r *PgxBudgetRepository) FindLineItemByID(ctx context.Context, lineItemID string) (*domain.BudgetLineItem, error) {
	query := `
		SELECT line_item_id, budget_id, name, category, allocated_amount,
			created_at, created_by, last_updated_at, last_updated_by
		FROM budget_line_items WHERE line_item_id = $1;
	`
	var li domain.BudgetLineItem
	err := r.pool.QueryRow(ctx, query, lineItemID).Scan(
		&li.LineItemID, &li.BudgetID, &li.Name, &li.Category, &li.AllocatedAmount,
		&li.CreatedAt, &li.CreatedBy, &li.LastUpdatedAt, &li.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan line item: %w", err)
	}
	return &li, nil
}

// ListLineItemsByBudgetID retrieves all line items of a budget in creation order.
func (r *PgxBudgetRepository) ListLineItemsByBudgetID(ctx context.Context, budgetID string) ([]domain.BudgetLineItem, error) {
	query := `
		SELECT line_item_id, budget_id, name, category, allocated_amount,
			created_at, created_by, last_updated_at, last_updated_by
		FROM budget_line_items
		WHERE budget_id = $1
		ORDER BY created_at, line_item_id;
	`
	rows, err := r.pool.Query(ctx, query, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query line items: %w", err)
	}
	defer rows.Close()

	var items []domain.BudgetLineItem
	for rows.Next() {
		var li domain.BudgetLineItem
		if err := rows.Scan(
			&li.LineItemID, &li.BudgetID, &li.Name, &li.Category, &li.AllocatedAmount,
			&li.CreatedAt, &li.CreatedBy, &li.LastUpdatedAt, &li.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		items = append(items, li)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line items: %w", err)
	}
	return items, nil
}

// SaveBudget persists a new budget. One budget per project is enforced by a
// unique index on project_id.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		budget.BudgetID, budget.ProjectID, budget.CurrencyCode, budget.TotalAmount, budget.AlertThresholds,
		budget.CreatedAt, budget.CreatedBy, budget.LastUpdatedAt, budget.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert budget %s: %w", budget.BudgetID, err)
	}
	return nil
}

// SaveLineItem persists a new budget line item.
func (r *PgxBudgetRepository) SaveLineItem(ctx context.Context, item domain.BudgetLineItem) error {
	query := `
		INSERT INTO budget_line_items (
			line_item_id, budget_id, name, category, allocated_amount,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		item.LineItemID, item.BudgetID, item.Name, item.Category, item.AllocatedAmount,
		item.CreatedAt, item.CreatedBy, item.LastUpdatedAt, item.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert line item %s: %w", item.LineItemID, err)
	}
	return nil
}
