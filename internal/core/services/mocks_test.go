package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	portsrepo "github.com/harmonia-labs/label_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/harmonia-labs/label_ledger_app/internal/core/ports/services"
)

// --- Mock ReconciliationRepository ---

type MockReconciliationRepository struct {
	mock.Mock
}

var _ portsrepo.ReconciliationRepositoryFacade = (*MockReconciliationRepository)(nil)

func (m *MockReconciliationRepository) ListEntries(ctx context.Context, filter portsrepo.ReconciliationFilter) ([]domain.ReconciliationEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReconciliationEntry), args.Error(1)
}

func (m *MockReconciliationRepository) AppendEntry(ctx context.Context, entry domain.ReconciliationEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Mock RecoupmentRepository ---

type MockRecoupmentRepository struct {
	mock.Mock
}

var _ portsrepo.RecoupmentRepositoryFacade = (*MockRecoupmentRepository)(nil)

func (m *MockRecoupmentRepository) ListEntries(ctx context.Context, filter portsrepo.RecoupmentFilter) ([]domain.RecoupmentLedgerEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecoupmentLedgerEntry), args.Error(1)
}

func (m *MockRecoupmentRepository) SaveEntries(ctx context.Context, tx pgx.Tx, entries []domain.RecoupmentLedgerEntry) error {
	args := m.Called(ctx, tx, entries)
	return args.Error(0)
}

func (m *MockRecoupmentRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockRecoupmentRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockRecoupmentRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock AlertRepository ---

type MockAlertRepository struct {
	mock.Mock
}

var _ portsrepo.AlertRepositoryFacade = (*MockAlertRepository)(nil)

func (m *MockAlertRepository) FindUnresolved(ctx context.Context, scope domain.AlertScope, refID string, level float64) (*domain.Alert, error) {
	args := m.Called(ctx, scope, refID, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Alert), args.Error(1)
}

func (m *MockAlertRepository) ListUnresolved(ctx context.Context) ([]domain.Alert, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Alert), args.Error(1)
}

func (m *MockAlertRepository) CreateIfAbsent(ctx context.Context, alert domain.Alert) (bool, error) {
	args := m.Called(ctx, alert)
	return args.Bool(0), args.Error(1)
}

func (m *MockAlertRepository) Resolve(ctx context.Context, alertID string, resolvedAt time.Time) error {
	args := m.Called(ctx, alertID, resolvedAt)
	return args.Error(0)
}

// --- Mock BudgetRepository ---

type MockBudgetRepository struct {
	mock.Mock
}

var _ portsrepo.BudgetRepositoryFacade = (*MockBudgetRepository)(nil)

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) FindBudgetByProjectID(ctx context.Context, projectID string) (*domain.Budget, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) FindLineItemByID(ctx context.Context, lineItemID string) (*domain.BudgetLineItem, error) {
	args := m.Called(ctx, lineItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetLineItem), args.Error(1)
}

func (m *MockBudgetRepository) ListLineItemsByBudgetID(ctx context.Context, budgetID string) ([]domain.BudgetLineItem, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetLineItem), args.Error(1)
}

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) SaveLineItem(ctx context.Context, item domain.BudgetLineItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// --- Mock ProjectRepository ---

type MockProjectRepository struct {
	mock.Mock
}

var _ portsrepo.ProjectRepositoryFacade = (*MockProjectRepository)(nil)

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindProjectByCode(ctx context.Context, code string) (*domain.Project, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindArtistByID(ctx context.Context, artistID string) (*domain.Artist, error) {
	args := m.Called(ctx, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) SaveArtist(ctx context.Context, artist domain.Artist) error {
	args := m.Called(ctx, artist)
	return args.Error(0)
}

// --- Mock RateRepository ---

type MockRateRepository struct {
	mock.Mock
}

var _ portsrepo.RateRepositoryFacade = (*MockRateRepository)(nil)

func (m *MockRateRepository) FindRateCardByUserID(ctx context.Context, userID string, asOf time.Time) (*domain.RateCard, error) {
	args := m.Called(ctx, userID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateCard), args.Error(1)
}

func (m *MockRateRepository) FindBillingRoleByID(ctx context.Context, billingRoleID string) (*domain.BillingRole, error) {
	args := m.Called(ctx, billingRoleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillingRole), args.Error(1)
}

func (m *MockRateRepository) SaveRateCard(ctx context.Context, card domain.RateCard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockRateRepository) SaveBillingRole(ctx context.Context, role domain.BillingRole) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock IncomeRepository ---

type MockIncomeRepository struct {
	mock.Mock
}

var _ portsrepo.IncomeRepositoryFacade = (*MockIncomeRepository)(nil)

func (m *MockIncomeRepository) ListIncomeByProjectID(ctx context.Context, projectID string) ([]domain.Income, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Income), args.Error(1)
}

func (m *MockIncomeRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	args := m.Called(ctx, income)
	return args.Error(0)
}

// --- Mock RateService (as used by ReconciliationService) ---

type MockRateService struct {
	mock.Mock
}

var _ portssvc.RateSvcFacade = (*MockRateService)(nil)

func (m *MockRateService) ResolveHourlyRate(ctx context.Context, userID string, billingRoleID *string, asOf time.Time) (int64, error) {
	args := m.Called(ctx, userID, billingRoleID, asOf)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock AlertService (as used by BudgetService) ---

type MockAlertService struct {
	mock.Mock
}

var _ portssvc.AlertSvcFacade = (*MockAlertService)(nil)

func (m *MockAlertService) Evaluate(ctx context.Context, scope domain.AlertScope, refID string, utilizationPct int64, thresholds []float64) (int, error) {
	args := m.Called(ctx, scope, refID, utilizationPct, thresholds)
	return args.Int(0), args.Error(1)
}

func (m *MockAlertService) ListUnresolved(ctx context.Context) ([]domain.Alert, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Alert), args.Error(1)
}

func (m *MockAlertService) Resolve(ctx context.Context, alertID string) error {
	args := m.Called(ctx, alertID)
	return args.Error(0)
}
