package services

import (
	"context"

	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	"github.com/harmonia-labs/label_ledger_app/internal/dto"
)

// RecoupmentSvcFacade computes and posts artist/label recoupment.
type RecoupmentSvcFacade interface {
	// Calculate runs the project's recoupment strategy over the current
	// ledger state and returns the resulting calculation without posting
	// anything (dry run).
	Calculate(ctx context.Context, projectID string) (*domain.RecoupmentCalculation, error)

	// Process calculates and then posts the calculation to the recoupment
	// ledger as one atomic set of entries.
	Process(ctx context.Context, projectID string, creatorUserID string) (*domain.RecoupmentCalculation, error)

	// GetBalance derives a scope's current balance as the running sum of its
	// ledger entries. projectID is required for ScopeProject, ignored otherwise.
	GetBalance(ctx context.Context, artistID string, scope domain.RecoupmentScope, projectID *string) (int64, error)

	// GetStatement returns a scope's ledger rows with running balances.
	GetStatement(ctx context.Context, artistID string, scope domain.RecoupmentScope, projectID *string) (*dto.StatementResponse, error)
}
