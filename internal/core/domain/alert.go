package domain

import "time"

// AlertScope identifies what kind of reference an alert points at.
type AlertScope string

const (
	AlertScopeBudget   AlertScope = "BUDGET"
	AlertScopeLineItem AlertScope = "LINE_ITEM"
)

// AlertType distinguishes reaching a threshold from overshooting the budget.
type AlertType string

const (
	AlertThresholdReached AlertType = "THRESHOLD_REACHED"
	AlertExceeded         AlertType = "EXCEEDED"
)

// Alert records a utilization threshold crossing for a budget or line item.
// At most one unresolved alert may exist per (scope, refID, level); resolution
// is owned by the dashboard, the evaluator only reads ResolvedAt to decide
// re-triggering eligibility.
type Alert struct {
	AlertID    string     `json:"alertID"`
	Scope      AlertScope `json:"scope"`
	RefID      string     `json:"refID"`
	Level      float64    `json:"level"` // threshold fraction, e.g. 0.9
	Type       AlertType  `json:"type"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}
