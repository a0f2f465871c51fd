package domain

import "time"

// IncomeSource records where an income row came from.
type IncomeSource string

const (
	IncomeManual     IncomeSource = "MANUAL"
	IncomeXeroImport IncomeSource = "XERO_IMPORT"
)

// Income is money received against a project. Income is not a reconciliation
// entry; it feeds the recoupment calculator's totalIncome side.
type Income struct {
	IncomeID     string       `json:"incomeID"`
	ProjectID    *string      `json:"projectID,omitempty"`
	Date         time.Time    `json:"date"`
	Description  string       `json:"description"`
	AmountMinor  int64        `json:"amountMinor"`
	CurrencyCode string       `json:"currencyCode"`
	Source       IncomeSource `json:"source"`
	ExternalRef  *string      `json:"externalRef,omitempty"`
	AuditFields
}
