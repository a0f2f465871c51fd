package dto

import (
	"time"

	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
)

// RecoupmentCalculationResponse mirrors a calculation for API consumers.
type RecoupmentCalculationResponse struct {
	ArtistID       string  `json:"artistID"`
	ProjectID      *string `json:"projectID,omitempty"`
	Scope          string  `json:"scope"`
	OpeningBalance int64   `json:"openingBalance"`
	Income         int64   `json:"income"`
	Expenses       int64   `json:"expenses"`
	TimeCharges    int64   `json:"timeCharges"`
	Writeoffs      int64   `json:"writeoffs"`
	NetAmount      int64   `json:"netAmount"`
	ArtistShare    int64   `json:"artistShare"`
	LabelShare     int64   `json:"labelShare"`
	ClosingBalance int64   `json:"closingBalance"`
}

// ToRecoupmentCalculationResponse converts a domain calculation to its DTO.
func ToRecoupmentCalculationResponse(c *domain.RecoupmentCalculation) RecoupmentCalculationResponse {
	return RecoupmentCalculationResponse{
		ArtistID:       c.ArtistID,
		ProjectID:      c.ProjectID,
		Scope:          string(c.Scope),
		OpeningBalance: c.OpeningBalance,
		Income:         c.Income,
		Expenses:       c.Expenses,
		TimeCharges:    c.TimeCharges,
		Writeoffs:      c.Writeoffs,
		NetAmount:      c.NetAmount,
		ArtistShare:    c.ArtistShare,
		LabelShare:     c.LabelShare,
		ClosingBalance: c.ClosingBalance,
	}
}

// StatementLine is one recoupment ledger row plus the running balance after it.
type StatementLine struct {
	EntryID        string    `json:"entryID"`
	EntryType      string    `json:"entryType"`
	AmountMinor    int64     `json:"amountMinor"`
	Note           string    `json:"note"`
	CreatedAt      time.Time `json:"createdAt"`
	RunningBalance int64     `json:"runningBalance"`
}

// StatementResponse is an artist's ledger statement for one scope.
type StatementResponse struct {
	ArtistID       string          `json:"artistID"`
	Scope          string          `json:"scope"`
	ProjectID      *string         `json:"projectID,omitempty"`
	Lines          []StatementLine `json:"lines"`
	ClosingBalance int64           `json:"closingBalance"`
}
