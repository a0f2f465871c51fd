package dto

import (
	"time"

	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReconciliationEntryResponse defines the data returned for a ledger entry.
type ReconciliationEntryResponse struct {
	EntryID          string           `json:"entryID"`
	ProjectID        string           `json:"projectID"`
	BudgetLineItemID *string          `json:"budgetLineItemID,omitempty"`
	Kind             string           `json:"kind"`
	AmountMinor      int64            `json:"amountMinor"`
	CurrencyCode     string           `json:"currencyCode"`
	Hours            *decimal.Decimal `json:"hours,omitempty"`
	RateUsedMinor    *int64           `json:"rateUsedMinor,omitempty"`
	WriteoffReason   *string          `json:"writeoffReason,omitempty"`
	Description      string           `json:"description"`
	CreatedAt        time.Time        `json:"createdAt"`
}

// ToReconciliationEntryResponse converts a domain entry to its DTO.
func ToReconciliationEntryResponse(e *domain.ReconciliationEntry) ReconciliationEntryResponse {
	return ReconciliationEntryResponse{
		EntryID:          e.EntryID,
		ProjectID:        e.ProjectID,
		BudgetLineItemID: e.BudgetLineItemID,
		Kind:             string(e.Kind),
		AmountMinor:      e.AmountMinor,
		CurrencyCode:     e.CurrencyCode,
		Hours:            e.Hours,
		RateUsedMinor:    e.RateUsedMinor,
		WriteoffReason:   e.WriteoffReason,
		Description:      e.Description,
		CreatedAt:        e.CreatedAt,
	}
}

// ToReconciliationEntryResponses converts a slice of entries to DTOs.
func ToReconciliationEntryResponses(entries []domain.ReconciliationEntry) []ReconciliationEntryResponse {
	responses := make([]ReconciliationEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToReconciliationEntryResponse(&entries[i])
	}
	return responses
}
