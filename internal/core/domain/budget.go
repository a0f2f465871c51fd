package domain

// Budget holds the money allocated to a project, in minor currency units.
type Budget struct {
	BudgetID     string  `json:"budgetID"`
	ProjectID    string  `json:"projectID"`
	CurrencyCode string  `json:"currencyCode"`
	TotalAmount  int64   `json:"totalAmount"` // minor units
	// AlertThresholds are utilization fractions (e.g. 0.75, 0.9, 1.0) that
	// trigger an alert when crossed, evaluated in ascending order.
	AlertThresholds []float64 `json:"alertThresholds"`
	AuditFields
}

// BudgetLineItem is a sub-allocation within a budget, tracked independently
// for utilization. AllocatedAmount is always non-negative.
type BudgetLineItem struct {
	LineItemID      string `json:"lineItemID"`
	BudgetID        string `json:"budgetID"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	AllocatedAmount int64  `json:"allocatedAmount"` // minor units
	AuditFields
}
