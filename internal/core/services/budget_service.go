package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harmonia-labs/label_ledger_app/internal/apperrors"
	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	portsrepo "github.com/harmonia-labs/label_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/harmonia-labs/label_ledger_app/internal/core/ports/services"
	"github.com/harmonia-labs/label_ledger_app/internal/dto"
)

// defaultAlertThresholds apply when a budget is created without explicit ones.
var defaultAlertThresholds = []float64{0.75, 0.9, 1.0}

// budgetService manages budgets and computes utilization from the
// reconciliation ledger.
type budgetService struct {
	budgetRepo portsrepo.BudgetRepositoryFacade
	reconRepo  portsrepo.ReconciliationRepositoryFacade
	alertSvc   portssvc.AlertSvcFacade
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, reconRepo portsrepo.ReconciliationRepositoryFacade, alertSvc portssvc.AlertSvcFacade) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo: budgetRepo,
		reconRepo:  reconRepo,
		alertSvc:   alertSvc,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// CreateBudget creates a budget for a project.
func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, creatorUserID string) (*domain.Budget, error) {
	if req.TotalAmount <= 0 {
		return nil, fmt.Errorf("%w: budget total amount must be positive", apperrors.ErrValidation)
	}

	thresholds := req.AlertThresholds
	if len(thresholds) == 0 {
		thresholds = defaultAlertThresholds
	}
	for _, t := range thresholds {
		if t <= 0 {
			return nil, fmt.Errorf("%w: alert thresholds must be positive fractions", apperrors.ErrValidation)
		}
	}

	currency := req.CurrencyCode
	if currency == "" {
		currency = defaultCurrency
	}

	budget := domain.Budget{
		BudgetID:        uuid.NewString(),
		ProjectID:       req.ProjectID,
		CurrencyCode:    currency,
		TotalAmount:     req.TotalAmount,
		AlertThresholds: thresholds,
		AuditFields:     newAuditFields(creatorUserID),
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}
	return &budget, nil
}

// AddLineItem adds a line item to a budget.
func (s *budgetService) AddLineItem(ctx context.Context, budgetID string, req dto.CreateLineItemRequest, creatorUserID string) (*domain.BudgetLineItem, error) {
	if req.AllocatedAmount <= 0 {
		return nil, fmt.Errorf("%w: allocated amount must be positive", apperrors.ErrValidation)
	}

	if _, err := s.budgetRepo.FindBudgetByID(ctx, budgetID); err != nil {
		return nil, fmt.Errorf("failed to find budget %s: %w", budgetID, err)
	}

	item := domain.BudgetLineItem{
		LineItemID:      uuid.NewString(),
		BudgetID:        budgetID,
		Name:            req.Name,
		Category:        req.Category,
		AllocatedAmount: req.AllocatedAmount,
		AuditFields:     newAuditFields(creatorUserID),
	}

	if err := s.budgetRepo.SaveLineItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to save line item: %w", err)
	}
	return &item, nil
}

// GetBudget retrieves a budget by ID.
func (s *budgetService) GetBudget(ctx context.Context, budgetID string) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get budget %s: %w", budgetID, err)
	}
	return budget, nil
}

// GetUtilization recomputes utilization for a budget and each of its line
// items from the reconciliation ledger.
func (s *budgetService) GetUtilization(ctx context.Context, budgetID string) (*dto.BudgetUtilization, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get budget %s: %w", budgetID, err)
	}

	items, err := s.budgetRepo.ListLineItemsByBudgetID(ctx, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list line items for budget %s: %w", budgetID, err)
	}

	result := &dto.BudgetUtilization{
		BudgetID:       budget.BudgetID,
		TotalAllocated: budget.TotalAmount,
		LineItems:      make([]dto.LineItemUtilization, 0, len(items)),
	}

	var totalActual int64
	for _, item := range items {
		itemID := item.LineItemID
		entries, err := s.reconRepo.ListEntries(ctx, portsrepo.ReconciliationFilter{BudgetLineItemID: &itemID})
		if err != nil {
			return nil, fmt.Errorf("failed to list entries for line item %s: %w", itemID, err)
		}

		actualGross, writeoffs := netEntries(entries)
		actualNet := actualGross - writeoffs

		result.LineItems = append(result.LineItems, dto.LineItemUtilization{
			LineItemID:            item.LineItemID,
			Name:                  item.Name,
			Category:              item.Category,
			Allocated:             item.AllocatedAmount,
			ActualGross:           actualGross,
			Writeoffs:             writeoffs,
			ActualNet:             actualNet,
			Variance:              actualNet - item.AllocatedAmount,
			UtilizationPercentage: utilizationPercentage(actualNet, item.AllocatedAmount),
		})
		totalActual += actualNet
	}

	result.TotalActual = totalActual
	result.UtilizationPercentage = utilizationPercentage(totalActual, budget.TotalAmount)
	return result, nil
}

// CheckAlerts evaluates threshold alerts for the budget and its line items.
func (s *budgetService) CheckAlerts(ctx context.Context, budgetID string) error {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return fmt.Errorf("failed to get budget %s: %w", budgetID, err)
	}

	utilization, err := s.GetUtilization(ctx, budgetID)
	if err != nil {
		return err
	}

	if _, err := s.alertSvc.Evaluate(ctx, domain.AlertScopeBudget, budget.BudgetID, utilization.UtilizationPercentage, budget.AlertThresholds); err != nil {
		return fmt.Errorf("failed to evaluate budget alerts: %w", err)
	}

	for _, item := range utilization.LineItems {
		if _, err := s.alertSvc.Evaluate(ctx, domain.AlertScopeLineItem, item.LineItemID, item.UtilizationPercentage, budget.AlertThresholds); err != nil {
			return fmt.Errorf("failed to evaluate line item alerts for %s: %w", item.LineItemID, err)
		}
	}
	return nil
}

// netEntries sums a line item's entries into gross actuals (time + expenses)
// and write-off magnitudes. Write-offs are stored with their effective
// negative sign, so magnitude is taken via absolute value.
func netEntries(entries []domain.ReconciliationEntry) (actualGross, writeoffs int64) {
	for _, e := range entries {
		switch e.Kind {
		case domain.KindTime, domain.KindExpense:
			actualGross += e.AmountMinor
		case domain.KindWriteoff:
			amount := e.AmountMinor
			if amount < 0 {
				amount = -amount
			}
			writeoffs += amount
		}
	}
	return actualGross, writeoffs
}

// utilizationPercentage is round-half-away-from-zero(actualNet/allocated×100),
// or 0 when nothing is allocated.
func utilizationPercentage(actualNet, allocated int64) int64 {
	if allocated <= 0 {
		return 0
	}
	return decimal.NewFromInt(actualNet).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(allocated)).
		Round(0).
		IntPart()
}
