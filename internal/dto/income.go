package dto

import (
	"time"

	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
)

// RecordIncomeRequest defines the payload for recording income manually.
type RecordIncomeRequest struct {
	ProjectID   string    `json:"projectID" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Description string    `json:"description"`
	AmountMinor int64     `json:"amountMinor" binding:"required,gt=0"`
	Currency    string    `json:"currency"`
}

// IncomeResponse defines the data returned for an income record.
type IncomeResponse struct {
	IncomeID    string    `json:"incomeID"`
	ProjectID   *string   `json:"projectID,omitempty"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	AmountMinor int64     `json:"amountMinor"`
	Currency    string    `json:"currency"`
	Source      string    `json:"source"`
}

// ToIncomeResponse converts a domain.Income to IncomeResponse DTO.
func ToIncomeResponse(in *domain.Income) IncomeResponse {
	return IncomeResponse{
		IncomeID:    in.IncomeID,
		ProjectID:   in.ProjectID,
		Date:        in.Date,
		Description: in.Description,
		AmountMinor: in.AmountMinor,
		Currency:    in.CurrencyCode,
		Source:      string(in.Source),
	}
}
