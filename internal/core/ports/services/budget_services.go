package services

import (
	"context"

	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	"github.com/harmonia-labs/label_ledger_app/internal/dto"
)

// BudgetSvcFacade manages budgets and computes their utilization.
type BudgetSvcFacade interface {
	// CreateBudget creates a budget for a project.
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, creatorUserID string) (*domain.Budget, error)

	// AddLineItem adds a line item to a budget.
	AddLineItem(ctx context.Context, budgetID string, req dto.CreateLineItemRequest, creatorUserID string) (*domain.BudgetLineItem, error)

	// GetBudget retrieves a budget by ID.
	GetBudget(ctx context.Context, budgetID string) (*domain.Budget, error)

	// GetUtilization recomputes budget and line-item utilization from the
	// reconciliation ledger. Pure read-side aggregation: no state is
	// persisted, so the figures are always consistent with the ledger.
	GetUtilization(ctx context.Context, budgetID string) (*dto.BudgetUtilization, error)

	// CheckAlerts evaluates the budget's thresholds against current
	// utilization, budget-wide and per line item, creating alerts through the
	// alert evaluator. Safe to re-run: evaluation is idempotent.
	CheckAlerts(ctx context.Context, budgetID string) error
}
