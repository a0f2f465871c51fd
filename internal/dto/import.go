package dto

import "github.com/shopspring/decimal"

// Canonical import rows. Column mapping and defaulting happen in the import
// front end; these are the already-mapped shapes the engine accepts.

// ExpenseRow is one mapped expense row from an accounting export.
type ExpenseRow struct {
	Vendor      string          `json:"vendor" validate:"required"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	Description string          `json:"description"`
	AmountNet   decimal.Decimal `json:"amountNet" validate:"required"` // major units, converted to minor on import
	AmountVat   *decimal.Decimal `json:"amountVat,omitempty"`
	Currency    string          `json:"currency" validate:"omitempty,len=3"`
	ProjectCode string          `json:"projectCode"`
}

// IncomeRow is one mapped income row from an accounting export.
type IncomeRow struct {
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Currency    string          `json:"currency" validate:"omitempty,len=3"`
	ProjectCode string          `json:"projectCode"`
}

// TimeRow is one mapped time-tracking row.
type TimeRow struct {
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	Hours       decimal.Decimal `json:"hours" validate:"required,hourstep"`
	UserEmail   string          `json:"userEmail" validate:"omitempty,email"`
	ProjectCode string          `json:"projectCode" validate:"required"`
	Description string          `json:"description"`
}

// RowError reports why one row of a batch was rejected. Row is zero-based.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResult summarizes a batch import: rows that failed validation are
// skipped and reported here, the rest of the batch still goes through.
type ImportResult struct {
	Imported int        `json:"imported"`
	Errors   []RowError `json:"errors"`
}
