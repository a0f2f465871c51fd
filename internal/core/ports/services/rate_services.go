package services

import (
	"context"
	"time"
)

// RateSvcFacade resolves hourly rates for time charges.
type RateSvcFacade interface {
	// ResolveHourlyRate returns the hourly rate in minor units for a user.
	// An explicit billing role, when supplied and found, takes precedence
	// over the user's personal rate card; if neither resolves it returns
	// apperrors.ErrRateNotFound. Pure lookup, no side effects.
	ResolveHourlyRate(ctx context.Context, userID string, billingRoleID *string, asOf time.Time) (int64, error)
}
