package repositories

import (
	"context"
	"time"

	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
)

// AlertReader defines read operations for threshold alerts.
type AlertReader interface {
	// FindUnresolved returns the unresolved alert for the exact
	// (scope, refID, level) triple, or apperrors.ErrNotFound.
	FindUnresolved(ctx context.Context, scope domain.AlertScope, refID string, level float64) (*domain.Alert, error)

	// ListUnresolved returns all alerts with a null resolvedAt, newest first.
	ListUnresolved(ctx context.Context) ([]domain.Alert, error)
}

// AlertWriter defines write operations for threshold alerts.
type AlertWriter interface {
	// CreateIfAbsent atomically creates the alert unless an unresolved alert
	// already exists for the same (scope, refID, level). It returns whether a
	// row was created. Implementations must perform the existence check and
	// the insert as a single conditional write: a separate read followed by a
	// write would let two concurrent evaluations both pass the check.
	CreateIfAbsent(ctx context.Context, alert domain.Alert) (bool, error)

	// Resolve marks an alert resolved at the given time.
	Resolve(ctx context.Context, alertID string, resolvedAt time.Time) error
}

// AlertRepositoryFacade combines all alert operations.
type AlertRepositoryFacade interface {
	AlertReader
	AlertWriter
}
