package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/harmonia-labs/label_ledger_app/internal/apperrors"
	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	portssvc "github.com/harmonia-labs/label_ledger_app/internal/core/ports/services"
	"github.com/harmonia-labs/label_ledger_app/internal/core/services"
	"github.com/harmonia-labs/label_ledger_app/internal/dto"
)

type importFixture struct {
	projects *MockProjectRepository
	users    *MockUserRepository
	income   *MockIncomeRepository
	recon    *MockReconciliationRepository
	rate     *MockRateService
	svc      portssvc.ImportSvcFacade
}

func newImportFixture() *importFixture {
	f := &importFixture{
		projects: new(MockProjectRepository),
		users:    new(MockUserRepository),
		income:   new(MockIncomeRepository),
		recon:    new(MockReconciliationRepository),
		rate:     new(MockRateService),
	}
	// The import service goes through the real reconciliation service so the
	// tests exercise rate resolution and amount derivation end to end.
	reconSvc := services.NewReconciliationService(f.recon, f.rate)
	f.svc = services.NewImportService(f.projects, f.users, f.income, reconSvc)
	return f
}

func TestImportExpenses_SkipsBadRowsButContinues(t *testing.T) {
	f := newImportFixture()
	ctx := context.Background()

	f.projects.On("FindProjectByCode", ctx, "ALB-001").
		Return(&domain.Project{ProjectID: "proj-1", Code: "ALB-001"}, nil)
	f.projects.On("FindProjectByCode", ctx, "GONE").Return(nil, apperrors.ErrNotFound)
	f.recon.On("AppendEntry", ctx, mock.AnythingOfType("domain.ReconciliationEntry")).Return(nil)

	rows := []dto.ExpenseRow{
		{Vendor: "Studio Hire Ltd", Date: "2025-03-01", AmountNet: decimal.RequireFromString("250.00"), ProjectCode: "ALB-001"},
		{Vendor: "Courier Co", Date: "2025-03-02", AmountNet: decimal.RequireFromString("14.50"), ProjectCode: "ALB-001"},
		{Vendor: "", Date: "2025-03-03", AmountNet: decimal.RequireFromString("10.00"), ProjectCode: "ALB-001"}, // missing vendor
		{Vendor: "Print Shop", Date: "2025-03-04", AmountNet: decimal.RequireFromString("99.99"), ProjectCode: "GONE"}, // unknown project
		{Vendor: "Mastering Inc", Date: "2025-03-05", AmountNet: decimal.RequireFromString("120.00"), ProjectCode: "ALB-001"},
	}

	result, err := f.svc.ImportExpenses(ctx, rows, "admin-1")

	require.NoError(t, err)
	assert.Equal(t, 3, result.Imported)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 2, result.Errors[0].Row)
	assert.Equal(t, 3, result.Errors[1].Row)
	assert.Contains(t, result.Errors[1].Message, "GONE")
}

func TestImportExpenses_ConvertsMajorToMinorUnits(t *testing.T) {
	f := newImportFixture()
	ctx := context.Background()

	f.projects.On("FindProjectByCode", ctx, "ALB-001").
		Return(&domain.Project{ProjectID: "proj-1", Code: "ALB-001"}, nil)

	var saved domain.ReconciliationEntry
	f.recon.On("AppendEntry", ctx, mock.AnythingOfType("domain.ReconciliationEntry")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.ReconciliationEntry)
		}).
		Return(nil)

	rows := []dto.ExpenseRow{
		{Vendor: "Studio Hire Ltd", Date: "2025-03-01", AmountNet: decimal.RequireFromString("250.00"), ProjectCode: "ALB-001"},
	}

	result, err := f.svc.ImportExpenses(ctx, rows, "admin-1")

	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, int64(25000), saved.AmountMinor)
	assert.Equal(t, domain.KindExpense, saved.Kind)
}

func TestImportIncome_RowsWithoutProjectStillRecorded(t *testing.T) {
	f := newImportFixture()
	ctx := context.Background()

	var saved []domain.Income
	f.income.On("SaveIncome", ctx, mock.AnythingOfType("domain.Income")).
		Run(func(args mock.Arguments) {
			saved = append(saved, args.Get(1).(domain.Income))
		}).
		Return(nil)

	rows := []dto.IncomeRow{
		{Date: "2025-03-01", Description: "Sync licence", Amount: decimal.RequireFromString("6500.00")},
	}

	result, err := f.svc.ImportIncome(ctx, rows, "admin-1")

	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	require.Len(t, saved, 1)
	assert.Nil(t, saved[0].ProjectID)
	assert.Equal(t, int64(650000), saved[0].AmountMinor)
	assert.Equal(t, domain.IncomeXeroImport, saved[0].Source)
}

func TestImportIncome_NonPositiveAmountRejected(t *testing.T) {
	f := newImportFixture()
	ctx := context.Background()

	rows := []dto.IncomeRow{
		{Date: "2025-03-01", Amount: decimal.RequireFromString("-5.00")},
	}

	result, err := f.svc.ImportIncome(ctx, rows, "admin-1")

	require.NoError(t, err)
	assert.Equal(t, 0, result.Imported)
	require.Len(t, result.Errors, 1)
	f.income.AssertNotCalled(t, "SaveIncome", mock.Anything, mock.Anything)
}

func TestImportTime_ResolvesUserByEmailWithFallback(t *testing.T) {
	f := newImportFixture()
	ctx := context.Background()

	f.projects.On("FindProjectByCode", ctx, "ALB-001").
		Return(&domain.Project{ProjectID: "proj-1", Code: "ALB-001"}, nil)
	f.users.On("FindUserByEmail", ctx, "engineer@label.example").
		Return(&domain.User{UserID: "user-9", Email: "engineer@label.example"}, nil)
	f.users.On("FindUserByEmail", ctx, "unknown@label.example").
		Return(nil, apperrors.ErrNotFound)

	f.rate.On("ResolveHourlyRate", ctx, "user-9", (*string)(nil), mock.AnythingOfType("time.Time")).Return(int64(15000), nil)
	// Unknown email falls back to the importing user.
	f.rate.On("ResolveHourlyRate", ctx, "admin-1", (*string)(nil), mock.AnythingOfType("time.Time")).Return(int64(12000), nil)

	var saved []domain.ReconciliationEntry
	f.recon.On("AppendEntry", ctx, mock.AnythingOfType("domain.ReconciliationEntry")).
		Run(func(args mock.Arguments) {
			saved = append(saved, args.Get(1).(domain.ReconciliationEntry))
		}).
		Return(nil)

	rows := []dto.TimeRow{
		{Date: "2025-03-01", Hours: decimal.RequireFromString("2.5"), UserEmail: "engineer@label.example", ProjectCode: "ALB-001"},
		{Date: "2025-03-02", Hours: decimal.RequireFromString("1.0"), UserEmail: "unknown@label.example", ProjectCode: "ALB-001"},
	}

	result, err := f.svc.ImportTime(ctx, rows, "admin-1")

	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	require.Len(t, saved, 2)
	assert.Equal(t, int64(37500), saved[0].AmountMinor)
	assert.Equal(t, int64(12000), saved[1].AmountMinor)
}

func TestImportTime_InvalidHourGranularityRejected(t *testing.T) {
	f := newImportFixture()
	ctx := context.Background()

	f.projects.On("FindProjectByCode", ctx, "ALB-001").
		Return(&domain.Project{ProjectID: "proj-1", Code: "ALB-001"}, nil)
	f.rate.On("ResolveHourlyRate", ctx, "admin-1", (*string)(nil), mock.AnythingOfType("time.Time")).Return(int64(10000), nil)
	f.recon.On("AppendEntry", ctx, mock.AnythingOfType("domain.ReconciliationEntry")).Return(nil)

	rows := []dto.TimeRow{
		{Date: "2025-03-01", Hours: decimal.RequireFromString("1.5"), ProjectCode: "ALB-001"},
		{Date: "2025-03-02", Hours: decimal.RequireFromString("0.25"), ProjectCode: "ALB-001"}, // not a 0.1h step
	}

	result, err := f.svc.ImportTime(ctx, rows, "admin-1")

	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 1, result.Errors[0].Row)
}

func TestImportTime_NonPositiveHoursRowSkippedInBatch(t *testing.T) {
	f := newImportFixture()
	ctx := context.Background()

	f.projects.On("FindProjectByCode", ctx, "ALB-001").
		Return(&domain.Project{ProjectID: "proj-1", Code: "ALB-001"}, nil)
	f.rate.On("ResolveHourlyRate", ctx, "admin-1", (*string)(nil), mock.AnythingOfType("time.Time")).Return(int64(10000), nil)
	f.recon.On("AppendEntry", ctx, mock.AnythingOfType("domain.ReconciliationEntry")).Return(nil)

	rows := []dto.TimeRow{
		{Date: "2025-03-01", Hours: decimal.RequireFromString("1.0"), ProjectCode: "ALB-001"},
		{Date: "2025-03-02", Hours: decimal.RequireFromString("2.5"), ProjectCode: "ALB-001"},
		{Date: "2025-03-03", Hours: decimal.RequireFromString("0"), ProjectCode: "ALB-001"},
		{Date: "2025-03-04", Hours: decimal.RequireFromString("0.5"), ProjectCode: "ALB-001"},
		{Date: "2025-03-05", Hours: decimal.RequireFromString("8.0"), ProjectCode: "ALB-001"},
	}

	result, err := f.svc.ImportTime(ctx, rows, "admin-1")

	require.NoError(t, err)
	assert.Equal(t, 4, result.Imported)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Row)
	f.recon.AssertNumberOfCalls(t, "AppendEntry", 4)
}

func TestImportTime_MissingProjectCodeRejected(t *testing.T) {
	f := newImportFixture()
	ctx := context.Background()

	rows := []dto.TimeRow{
		{Date: "2025-03-01", Hours: decimal.RequireFromString("1.0")},
	}

	result, err := f.svc.ImportTime(ctx, rows, "admin-1")

	require.NoError(t, err)
	assert.Equal(t, 0, result.Imported)
	require.Len(t, result.Errors, 1)
}
