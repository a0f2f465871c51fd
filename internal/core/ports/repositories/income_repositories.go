package repositories

import (
	"context"

	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
)

// IncomeReader defines read operations for income records.
type IncomeReader interface {
	// ListIncomeByProjectID retrieves a project's income rows in date order.
	ListIncomeByProjectID(ctx context.Context, projectID string) ([]domain.Income, error)
}

// IncomeWriter defines write operations for income records.
type IncomeWriter interface {
	// SaveIncome persists a new income record.
	SaveIncome(ctx context.Context, income domain.Income) error
}

// IncomeRepositoryFacade combines all income operations.
type IncomeRepositoryFacade interface {
	IncomeReader
	IncomeWriter
}
