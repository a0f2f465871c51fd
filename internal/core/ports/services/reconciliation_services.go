package services

import (
	"context"

	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	portsrepo "github.com/harmonia-labs/label_ledger_app/internal/core/ports/repositories"
	"github.com/harmonia-labs/label_ledger_app/internal/dto"
)

// ReconciliationSvcFacade converts raw charges into signed ledger entries and
// appends them to the reconciliation ledger.
type ReconciliationSvcFacade interface {
	// RecordTimeCharge reconciles a timesheet charge: amount = round(hours × rate).
	RecordTimeCharge(ctx context.Context, charge dto.TimeCharge, creatorUserID string) (*domain.ReconciliationEntry, error)

	// RecordExpense reconciles an external expense at its net amount.
	RecordExpense(ctx context.Context, charge dto.ExpenseCharge, creatorUserID string) (*domain.ReconciliationEntry, error)

	// RecordWriteoff posts a negative-cost adjustment with a mandatory reason.
	RecordWriteoff(ctx context.Context, charge dto.WriteoffCharge, creatorUserID string) (*domain.ReconciliationEntry, error)

	// ListEntries returns reconciliation ledger entries matching the filter.
	ListEntries(ctx context.Context, filter portsrepo.ReconciliationFilter) ([]domain.ReconciliationEntry, error)
}
