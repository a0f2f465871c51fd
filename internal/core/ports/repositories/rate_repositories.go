package repositories

import (
	"context"
	"time"

	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
)

// RateReader defines read operations for rate cards and billing roles.
type RateReader interface {
	// FindRateCardByUserID retrieves the rate card effective for a user at
	// the given time. Storage is currently latest-only; asOf is plumbed for
	// rate-card versioning.
	FindRateCardByUserID(ctx context.Context, userID string, asOf time.Time) (*domain.RateCard, error)

	// FindBillingRoleByID retrieves a billing role.
	FindBillingRoleByID(ctx context.Context, billingRoleID string) (*domain.BillingRole, error)
}

// RateWriter defines write operations for rate cards and billing roles.
type RateWriter interface {
	// SaveRateCard persists a rate card.
	SaveRateCard(ctx context.Context, card domain.RateCard) error

	// SaveBillingRole persists a billing role.
	SaveBillingRole(ctx context.Context, role domain.BillingRole) error
}

// RateRepositoryFacade combines all rate operations.
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}
