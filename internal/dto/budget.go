package dto

import "github.com/harmonia-labs/label_ledger_app/internal/core/domain"

// CreateBudgetRequest defines the payload for creating a project budget.
type CreateBudgetRequest struct {
	ProjectID       string    `json:"projectID" binding:"required"`
	CurrencyCode    string    `json:"currencyCode"`
	TotalAmount     int64     `json:"totalAmount" binding:"required,gt=0"` // minor units
	AlertThresholds []float64 `json:"alertThresholds"`                     // defaults to 0.75, 0.9, 1.0
}

// CreateLineItemRequest defines the payload for adding a budget line item.
type CreateLineItemRequest struct {
	Name            string `json:"name" binding:"required"`
	Category        string `json:"category" binding:"required"`
	AllocatedAmount int64  `json:"allocatedAmount" binding:"required,gt=0"` // minor units
}

// LineItemUtilization is the read-side utilization view of one line item.
// All monetary figures are minor units.
type LineItemUtilization struct {
	LineItemID            string `json:"lineItemID"`
	Name                  string `json:"name"`
	Category              string `json:"category"`
	Allocated             int64  `json:"allocated"`
	ActualGross           int64  `json:"actualGross"`
	Writeoffs             int64  `json:"writeoffs"`
	ActualNet             int64  `json:"actualNet"`
	Variance              int64  `json:"variance"`
	UtilizationPercentage int64  `json:"utilizationPercentage"`
}

// BudgetUtilization is the read-side utilization view of a whole budget.
type BudgetUtilization struct {
	BudgetID              string                `json:"budgetID"`
	TotalAllocated        int64                 `json:"totalAllocated"`
	TotalActual           int64                 `json:"totalActual"`
	UtilizationPercentage int64                 `json:"utilizationPercentage"`
	LineItems             []LineItemUtilization `json:"lineItems"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID        string    `json:"budgetID"`
	ProjectID       string    `json:"projectID"`
	CurrencyCode    string    `json:"currencyCode"`
	TotalAmount     int64     `json:"totalAmount"`
	AlertThresholds []float64 `json:"alertThresholds"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:        b.BudgetID,
		ProjectID:       b.ProjectID,
		CurrencyCode:    b.CurrencyCode,
		TotalAmount:     b.TotalAmount,
		AlertThresholds: b.AlertThresholds,
	}
}
