package repositories

import (
	"context"

	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
)

// BudgetReader defines read operations for budgets and their line items.
type BudgetReader interface {
	// FindBudgetByID retrieves a budget by its unique identifier.
	FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)

	// FindBudgetByProjectID retrieves the budget attached to a project.
	FindBudgetByProjectID(ctx context.Context, projectID string) (*domain.Budget, error)

	// FindLineItemByID retrieves a single line item.
	FindLineItemByID(ctx context.Context, lineItemID string) (*domain.BudgetLineItem, error)

	// ListLineItemsByBudgetID retrieves all line items of a budget in creation order.
	ListLineItemsByBudgetID(ctx context.Context, budgetID string) ([]domain.BudgetLineItem, error)
}

// BudgetWriter defines write operations for budgets and their line items.
type BudgetWriter interface {
	// SaveBudget persists a new budget.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// SaveLineItem persists a new budget line item.
	SaveLineItem(ctx context.Context, item domain.BudgetLineItem) error
}

// BudgetRepositoryFacade combines all budget operations.
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
