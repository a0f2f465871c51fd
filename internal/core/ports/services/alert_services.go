package services

import (
	"context"

	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
)

// AlertSvcFacade evaluates utilization thresholds and manages alert lifecycle.
type AlertSvcFacade interface {
	// Evaluate walks the thresholds in ascending order and creates an alert
	// for each level the utilization percentage has reached that has no
	// unresolved alert yet. Returns how many alerts were created. Re-running
	// with unchanged inputs creates nothing: the existence check and create
	// are one atomic conditional write at the persistence boundary.
	Evaluate(ctx context.Context, scope domain.AlertScope, refID string, utilizationPct int64, thresholds []float64) (int, error)

	// ListUnresolved returns all currently unresolved alerts.
	ListUnresolved(ctx context.Context) ([]domain.Alert, error)

	// Resolve marks an alert as resolved, re-arming its (scope, refID, level).
	Resolve(ctx context.Context, alertID string) error
}
