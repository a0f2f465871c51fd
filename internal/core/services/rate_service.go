package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harmonia-labs/label_ledger_app/internal/apperrors"
	portsrepo "github.com/harmonia-labs/label_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/harmonia-labs/label_ledger_app/internal/core/ports/services"
)

// rateService resolves hourly rates for time charges.
type rateService struct {
	rateRepo portsrepo.RateRepositoryFacade
}

// NewRateService creates a new RateService.
func NewRateService(rateRepo portsrepo.RateRepositoryFacade) portssvc.RateSvcFacade {
	return &rateService{rateRepo: rateRepo}
}

var _ portssvc.RateSvcFacade = (*rateService)(nil)

// ResolveHourlyRate resolves the hourly rate in minor units for a user.
// An explicit billing role takes precedence over the personal rate card.
func (s *rateService) ResolveHourlyRate(ctx context.Context, userID string, billingRoleID *string, asOf time.Time) (int64, error) {
	if billingRoleID != nil && *billingRoleID != "" {
		role, err := s.rateRepo.FindBillingRoleByID(ctx, *billingRoleID)
		if err == nil {
			return role.AmountPerHourMinor, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return 0, fmt.Errorf("failed to look up billing role %s: %w", *billingRoleID, err)
		}
		// Unknown role id falls through to the personal rate card.
	}

	card, err := s.rateRepo.FindRateCardByUserID(ctx, userID, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, fmt.Errorf("%w: user %s has no rate card and no billing role resolved", apperrors.ErrRateNotFound, userID)
		}
		return 0, fmt.Errorf("failed to look up rate card for user %s: %w", userID, err)
	}

	return card.AmountPerHourMinor, nil
}
