package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/harmonia-labs/label_ledger_app/internal/apperrors"
	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	"github.com/harmonia-labs/label_ledger_app/internal/core/services"
)

func TestResolveHourlyRate_BillingRoleTakesPrecedence(t *testing.T) {
	mockRepo := new(MockRateRepository)
	svc := services.NewRateService(mockRepo)
	ctx := context.Background()
	asOf := time.Now()

	roleID := "role-assistant"
	mockRepo.On("FindBillingRoleByID", ctx, roleID).
		Return(&domain.BillingRole{BillingRoleID: roleID, Name: "Assistant Rate", AmountPerHourMinor: 9500}, nil)

	rate, err := svc.ResolveHourlyRate(ctx, "user-1", &roleID, asOf)

	assert.NoError(t, err)
	assert.Equal(t, int64(9500), rate)
	// The rate card must not even be consulted.
	mockRepo.AssertNotCalled(t, "FindRateCardByUserID", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolveHourlyRate_UnknownRoleFallsBackToRateCard(t *testing.T) {
	mockRepo := new(MockRateRepository)
	svc := services.NewRateService(mockRepo)
	ctx := context.Background()
	asOf := time.Now()

	roleID := "role-missing"
	mockRepo.On("FindBillingRoleByID", ctx, roleID).Return(nil, apperrors.ErrNotFound)
	mockRepo.On("FindRateCardByUserID", ctx, "user-1", asOf).
		Return(&domain.RateCard{RateCardID: "card-1", UserID: "user-1", AmountPerHourMinor: 15000}, nil)

	rate, err := svc.ResolveHourlyRate(ctx, "user-1", &roleID, asOf)

	assert.NoError(t, err)
	assert.Equal(t, int64(15000), rate)
}

func TestResolveHourlyRate_NoRateResolvable(t *testing.T) {
	mockRepo := new(MockRateRepository)
	svc := services.NewRateService(mockRepo)
	ctx := context.Background()
	asOf := time.Now()

	mockRepo.On("FindRateCardByUserID", ctx, "user-2", asOf).Return(nil, apperrors.ErrNotFound)

	_, err := svc.ResolveHourlyRate(ctx, "user-2", nil, asOf)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrRateNotFound))
}

func TestResolveHourlyRate_RepoErrorPropagates(t *testing.T) {
	mockRepo := new(MockRateRepository)
	svc := services.NewRateService(mockRepo)
	ctx := context.Background()
	asOf := time.Now()

	dbErr := errors.New("connection refused")
	mockRepo.On("FindRateCardByUserID", ctx, "user-3", asOf).Return(nil, dbErr)

	_, err := svc.ResolveHourlyRate(ctx, "user-3", nil, asOf)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, dbErr))
	assert.False(t, errors.Is(err, apperrors.ErrRateNotFound))
}
