package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeCharge is a raw timesheet charge to be reconciled. Hours must already be
// normalized to 0.1-hour (6-minute) granularity by the caller.
type TimeCharge struct {
	ProjectID        string          `json:"projectID" binding:"required"`
	BudgetLineItemID *string         `json:"budgetLineItemID,omitempty"`
	UserID           string          `json:"userID" binding:"required"`
	BillingRoleID    *string         `json:"billingRoleID,omitempty"`
	Date             time.Time       `json:"date" binding:"required"`
	Description      string          `json:"description"`
	Hours            decimal.Decimal `json:"hours" binding:"required"`
}

// ExpenseCharge is a raw external expense to be reconciled. The net amount is
// what enters the reconciliation ledger; VAT is captured separately and never
// reconciled.
type ExpenseCharge struct {
	ProjectID        string    `json:"projectID" binding:"required"`
	BudgetLineItemID *string   `json:"budgetLineItemID,omitempty"`
	Vendor           string    `json:"vendor" binding:"required"`
	Date             time.Time `json:"date" binding:"required"`
	Description      string    `json:"description"`
	AmountNetMinor   int64     `json:"amountNetMinor" binding:"required"`
	AmountVatMinor   *int64    `json:"amountVatMinor,omitempty"`
	CurrencyCode     string    `json:"currencyCode"`
}

// WriteoffCharge reduces a line item's reconciled cost. The caller supplies a
// positive magnitude; the ledger stores the entry with its effective
// (negative) sign.
type WriteoffCharge struct {
	ProjectID        string  `json:"projectID" binding:"required"`
	BudgetLineItemID *string `json:"budgetLineItemID,omitempty"`
	AmountMinor      int64   `json:"amountMinor" binding:"required"`
	Reason           string  `json:"reason" binding:"required"`
}
