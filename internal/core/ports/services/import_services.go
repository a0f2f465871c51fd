package services

import (
	"context"

	"github.com/harmonia-labs/label_ledger_app/internal/dto"
)

// ImportSvcFacade ingests batches of canonical (already column-mapped) rows.
// Invalid rows are skipped and reported per index; the batch continues.
type ImportSvcFacade interface {
	// ImportExpenses reconciles a batch of expense rows.
	ImportExpenses(ctx context.Context, rows []dto.ExpenseRow, creatorUserID string) (*dto.ImportResult, error)

	// ImportIncome records a batch of income rows.
	ImportIncome(ctx context.Context, rows []dto.IncomeRow, creatorUserID string) (*dto.ImportResult, error)

	// ImportTime reconciles a batch of time rows, resolving users by email
	// (falling back to the importing user) and rates via the rate resolver.
	ImportTime(ctx context.Context, rows []dto.TimeRow, creatorUserID string) (*dto.ImportResult, error)
}
