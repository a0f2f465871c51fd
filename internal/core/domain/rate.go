package domain

// RateCard is a user's personal hourly rate, in minor units per hour.
// Currently latest-only; versioned rate cards would add an effective date.
type RateCard struct {
	RateCardID         string `json:"rateCardID"`
	UserID             string `json:"userID"`
	AmountPerHourMinor int64  `json:"amountPerHourMinor"`
	AuditFields
}

// BillingRole is a named hourly rate (e.g. "Standard Rate", "Assistant Rate")
// that, when attached to a time charge, takes precedence over the user's
// personal rate card.
type BillingRole struct {
	BillingRoleID      string `json:"billingRoleID"`
	Name               string `json:"name"`
	AmountPerHourMinor int64  `json:"amountPerHourMinor"`
	AuditFields
}
