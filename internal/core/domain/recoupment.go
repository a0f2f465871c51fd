package domain

// RecoupmentScope identifies which running balance an entry belongs to.
type RecoupmentScope string

const (
	// ScopeProject is a per-project standalone balance.
	ScopeProject RecoupmentScope = "PROJECT"
	// ScopeMainTab is the artist's shared balance spanning all their activity.
	ScopeMainTab RecoupmentScope = "MAIN_TAB"
)

// RecoupmentEntryType classifies a recoupment ledger posting.
type RecoupmentEntryType string

const (
	EntryExpenseAdd    RecoupmentEntryType = "EXPENSE_ADD"
	EntryTimeAdd       RecoupmentEntryType = "TIME_ADD"
	EntryIncomeApply   RecoupmentEntryType = "INCOME_APPLY"
	EntryWriteoffApply RecoupmentEntryType = "WRITEOFF_APPLY"
	EntryProfitSplit   RecoupmentEntryType = "PROFIT_SPLIT"
)

// RecoupmentLedgerEntry is one signed posting against an artist's balance.
// Additions to the owed/recoupable balance are positive; reductions (income,
// write-offs) are negative. Entries are immutable and append-only, and a
// scope's current balance is always the running sum of its entries in
// creation order: balances are derived, never stored.
type RecoupmentLedgerEntry struct {
	EntryID      string                `json:"entryID"`
	ArtistID     string                `json:"artistID"`
	Scope        RecoupmentScope       `json:"scope"`
	ProjectID    *string               `json:"projectID,omitempty"` // set when Scope is PROJECT
	EntryType    RecoupmentEntryType   `json:"entryType"`
	AmountMinor  int64                 `json:"amountMinor"`
	CurrencyCode string                `json:"currencyCode"`
	Note         string                `json:"note"`
	// CalcSnapshot preserves the calculation that produced this posting for audit.
	CalcSnapshot *RecoupmentCalculation `json:"calcSnapshot,omitempty"`
	AuditFields
}

// RecoupmentCalculation is the result of running a recoupment strategy over a
// period. It is a pure value: the caller decides whether and when to post it.
// All amounts are minor units; Income, Expenses, TimeCharges and Writeoffs are
// non-negative magnitudes aggregated from the reconciliation ledger.
type RecoupmentCalculation struct {
	ArtistID       string          `json:"artistID"`
	ProjectID      *string         `json:"projectID,omitempty"`
	Scope          RecoupmentScope `json:"scope"`
	OpeningBalance int64           `json:"openingBalance"`
	Income         int64           `json:"income"`
	Expenses       int64           `json:"expenses"`
	TimeCharges    int64           `json:"timeCharges"`
	Writeoffs      int64           `json:"writeoffs"`
	NetAmount      int64           `json:"netAmount"`
	ArtistShare    int64           `json:"artistShare"`
	LabelShare     int64           `json:"labelShare"`
	ClosingBalance int64           `json:"closingBalance"`
}

// TotalCosts is the netted cost side of the calculation.
func (c RecoupmentCalculation) TotalCosts() int64 {
	return c.TimeCharges + c.Expenses - c.Writeoffs
}
