package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
)

// RecoupmentFilter selects the ledger rows for one balance scope.
// ProjectID must be set when Scope is PROJECT and nil for MAIN_TAB.
type RecoupmentFilter struct {
	ArtistID  string
	Scope     domain.RecoupmentScope
	ProjectID *string
}

// RecoupmentReader defines read operations over the recoupment ledger.
type RecoupmentReader interface {
	// ListEntries returns the scope's ledger entries in creation order.
	// Balances are derived by summing these rows; they are never stored.
	ListEntries(ctx context.Context, filter RecoupmentFilter) ([]domain.RecoupmentLedgerEntry, error)
}

// RecoupmentWriter defines write operations for the recoupment ledger.
type RecoupmentWriter interface {
	// SaveEntries appends the given entries within the caller's transaction tx.
	// The caller commits or rolls back: either all entries become durable or
	// none do, and no partial ledger state is observable.
	SaveEntries(ctx context.Context, tx pgx.Tx, entries []domain.RecoupmentLedgerEntry) error
}

// RecoupmentRepositoryFacade combines all recoupment ledger operations.
// Embedding TransactionManager lets the service scope a multi-row append to
// one transaction, which is what serializes writes per balance scope.
type RecoupmentRepositoryFacade interface {
	RecoupmentReader
	RecoupmentWriter
	TransactionManager
}
