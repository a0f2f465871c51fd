package repositories

import (
	"context"

	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
)

// ReconciliationFilter narrows a reconciliation ledger query. Nil fields are
// not applied.
type ReconciliationFilter struct {
	ProjectID        *string
	BudgetLineItemID *string
	Kind             *domain.ReconciliationKind
}

// ReconciliationReader defines read operations over the reconciliation ledger.
type ReconciliationReader interface {
	// ListEntries returns matching ledger entries in creation order.
	ListEntries(ctx context.Context, filter ReconciliationFilter) ([]domain.ReconciliationEntry, error)
}

// ReconciliationWriter defines write operations for the reconciliation ledger.
// The ledger is append-only: there are no update or delete operations.
type ReconciliationWriter interface {
	// AppendEntry durably appends one immutable entry.
	AppendEntry(ctx context.Context, entry domain.ReconciliationEntry) error
}

// ReconciliationRepositoryFacade combines all reconciliation ledger operations.
type ReconciliationRepositoryFacade interface {
	ReconciliationReader
	ReconciliationWriter
}
