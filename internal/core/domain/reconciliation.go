package domain

import "github.com/shopspring/decimal"

// ReconciliationKind classifies a reconciliation ledger entry.
type ReconciliationKind string

const (
	KindTime     ReconciliationKind = "TIME"
	KindExpense  ReconciliationKind = "EXPENSE"
	KindWriteoff ReconciliationKind = "WRITEOFF"
)

// ReconciliationEntry is one signed posting in the reconciliation ledger.
// Entries are immutable and append-only: they are never updated or deleted
// once written.
//
// AmountMinor carries the effective sign: time and expense entries are
// positive costs, write-offs are stored negative (a cost reduction) and must
// be netted via absolute value.
type ReconciliationEntry struct {
	EntryID          string             `json:"entryID"`
	ProjectID        string             `json:"projectID"`
	BudgetLineItemID *string            `json:"budgetLineItemID,omitempty"`
	Kind             ReconciliationKind `json:"kind"`
	AmountMinor      int64              `json:"amountMinor"`
	CurrencyCode     string             `json:"currencyCode"`

	// Time entries only.
	Hours         *decimal.Decimal `json:"hours,omitempty"` // 0.1h granularity
	RateUsedMinor *int64           `json:"rateUsedMinor,omitempty"`
	BillingRoleID *string          `json:"billingRoleID,omitempty"`

	// Write-off entries only.
	WriteoffReason *string `json:"writeoffReason,omitempty"`

	Description string `json:"description"`
	AuditFields
}
