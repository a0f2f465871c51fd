package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	"github.com/harmonia-labs/label_ledger_app/internal/core/services"
)

func TestEvaluate_CreatesOneAlertPerCrossedLevel(t *testing.T) {
	mockRepo := new(MockAlertRepository)
	svc := services.NewAlertService(mockRepo)
	ctx := context.Background()

	var created []domain.Alert
	mockRepo.On("CreateIfAbsent", ctx, mock.AnythingOfType("domain.Alert")).
		Run(func(args mock.Arguments) {
			created = append(created, args.Get(1).(domain.Alert))
		}).
		Return(true, nil)

	// 92% crosses 0.75 and 0.9 but not 1.0.
	count, err := svc.Evaluate(ctx, domain.AlertScopeLineItem, "li-1", 92, []float64{0.75, 0.9, 1.0})

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Len(t, created, 2)
	assert.Equal(t, 0.75, created[0].Level)
	assert.Equal(t, 0.9, created[1].Level)
	assert.Equal(t, domain.AlertThresholdReached, created[0].Type)
}

func TestEvaluate_IdempotentRerunCreatesNothing(t *testing.T) {
	mockRepo := new(MockAlertRepository)
	svc := services.NewAlertService(mockRepo)
	ctx := context.Background()

	// The conditional write reports the row already exists.
	mockRepo.On("CreateIfAbsent", ctx, mock.AnythingOfType("domain.Alert")).Return(false, nil)

	count, err := svc.Evaluate(ctx, domain.AlertScopeBudget, "budget-1", 92, []float64{0.75, 0.9})

	require.NoError(t, err)
	assert.Equal(t, 0, count)
	mockRepo.AssertNumberOfCalls(t, "CreateIfAbsent", 2)
}

func TestEvaluate_OverBudgetIsExceeded(t *testing.T) {
	mockRepo := new(MockAlertRepository)
	svc := services.NewAlertService(mockRepo)
	ctx := context.Background()

	var created []domain.Alert
	mockRepo.On("CreateIfAbsent", ctx, mock.AnythingOfType("domain.Alert")).
		Run(func(args mock.Arguments) {
			created = append(created, args.Get(1).(domain.Alert))
		}).
		Return(true, nil)

	count, err := svc.Evaluate(ctx, domain.AlertScopeBudget, "budget-1", 105, []float64{0.75, 0.9, 1.0})

	require.NoError(t, err)
	assert.Equal(t, 3, count)
	for _, a := range created {
		assert.Equal(t, domain.AlertExceeded, a.Type)
	}
}

func TestEvaluate_ExactlyAtThresholdIsReachedNotExceeded(t *testing.T) {
	mockRepo := new(MockAlertRepository)
	svc := services.NewAlertService(mockRepo)
	ctx := context.Background()

	var created []domain.Alert
	mockRepo.On("CreateIfAbsent", ctx, mock.AnythingOfType("domain.Alert")).
		Run(func(args mock.Arguments) {
			created = append(created, args.Get(1).(domain.Alert))
		}).
		Return(true, nil)

	count, err := svc.Evaluate(ctx, domain.AlertScopeBudget, "budget-1", 100, []float64{1.0})

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, domain.AlertThresholdReached, created[0].Type)
}

func TestEvaluate_BelowLowestLevelCreatesNothing(t *testing.T) {
	mockRepo := new(MockAlertRepository)
	svc := services.NewAlertService(mockRepo)
	ctx := context.Background()

	count, err := svc.Evaluate(ctx, domain.AlertScopeBudget, "budget-1", 40, []float64{0.75, 0.9})

	require.NoError(t, err)
	assert.Equal(t, 0, count)
	mockRepo.AssertNotCalled(t, "CreateIfAbsent", mock.Anything, mock.Anything)
}
