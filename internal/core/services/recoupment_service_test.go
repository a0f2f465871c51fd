package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/harmonia-labs/label_ledger_app/internal/apperrors"
	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	portsrepo "github.com/harmonia-labs/label_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/harmonia-labs/label_ledger_app/internal/core/ports/services"
	"github.com/harmonia-labs/label_ledger_app/internal/core/services"
)

type recoupmentFixture struct {
	projects   *MockProjectRepository
	recon      *MockReconciliationRepository
	recoupment *MockRecoupmentRepository
	income     *MockIncomeRepository
	svc        portssvc.RecoupmentSvcFacade
}

func newRecoupmentFixture() *recoupmentFixture {
	f := &recoupmentFixture{
		projects:   new(MockProjectRepository),
		recon:      new(MockReconciliationRepository),
		recoupment: new(MockRecoupmentRepository),
		income:     new(MockIncomeRepository),
	}
	f.svc = services.NewRecoupmentService(f.projects, f.recon, f.recoupment, f.income)
	return f
}

// stubProject wires up a project with its reconciliation entries, income rows
// and prior recoupment ledger state.
func (f *recoupmentFixture) stubProject(project *domain.Project, reconEntries []domain.ReconciliationEntry, incomes []domain.Income, priorLedger []domain.RecoupmentLedgerEntry) {
	ctx := context.Background()
	projectID := project.ProjectID

	f.projects.On("FindProjectByID", ctx, projectID).Return(project, nil)
	f.recon.On("ListEntries", ctx, portsrepo.ReconciliationFilter{ProjectID: &projectID}).Return(reconEntries, nil)
	f.income.On("ListIncomeByProjectID", ctx, projectID).Return(incomes, nil)
	f.recoupment.On("ListEntries", ctx, mock.AnythingOfType("repositories.RecoupmentFilter")).Return(priorLedger, nil)
}

// stubTx wires the transaction handshake around an atomic ledger append.
func (f *recoupmentFixture) stubTx() {
	f.recoupment.On("Begin", mock.Anything).Return(nil, nil)
	f.recoupment.On("Commit", mock.Anything, mock.Anything).Return(nil)
	f.recoupment.On("Rollback", mock.Anything, mock.Anything).Return(nil)
}

func standaloneProject() *domain.Project {
	artistID := "artist-1"
	return &domain.Project{
		ProjectID: "proj-1",
		Code:      "ALB-001",
		ArtistID:  &artistID,
		Type:      domain.ProjectArtist,
		Mode:      domain.ModeStandalone,
	}
}

func mainTabProject() *domain.Project {
	artistID := "artist-1"
	return &domain.Project{
		ProjectID: "proj-2",
		Code:      "ALB-002",
		ArtistID:  &artistID,
		Type:      domain.ProjectArtist,
		Mode:      domain.ModeMainTab,
	}
}

func TestCalculate_StandaloneProfitSplit(t *testing.T) {
	f := newRecoupmentFixture()
	f.stubProject(standaloneProject(),
		[]domain.ReconciliationEntry{
			{EntryID: "e1", Kind: domain.KindTime, AmountMinor: 45000},
			{EntryID: "e2", Kind: domain.KindExpense, AmountMinor: 275000},
			{EntryID: "e3", Kind: domain.KindWriteoff, AmountMinor: -5000},
		},
		[]domain.Income{
			{IncomeID: "i1", AmountMinor: 650000},
		},
		nil,
	)

	calc, err := f.svc.Calculate(context.Background(), "proj-1")

	require.NoError(t, err)
	assert.Equal(t, domain.ScopeProject, calc.Scope)
	assert.Equal(t, int64(0), calc.OpeningBalance)
	assert.Equal(t, int64(650000), calc.Income)
	assert.Equal(t, int64(315000), calc.TotalCosts())
	assert.Equal(t, int64(335000), calc.NetAmount)
	assert.Equal(t, int64(167500), calc.ArtistShare)
	assert.Equal(t, int64(167500), calc.LabelShare)
	assert.Equal(t, int64(167500), calc.ClosingBalance)
}

func TestCalculate_StandaloneLossAccruesToArtist(t *testing.T) {
	f := newRecoupmentFixture()
	f.stubProject(standaloneProject(),
		[]domain.ReconciliationEntry{
			{EntryID: "e1", Kind: domain.KindExpense, AmountMinor: 50000},
		},
		[]domain.Income{
			{IncomeID: "i1", AmountMinor: 10000},
		},
		nil,
	)

	calc, err := f.svc.Calculate(context.Background(), "proj-1")

	require.NoError(t, err)
	assert.Equal(t, int64(-40000), calc.NetAmount)
	assert.Equal(t, int64(-40000), calc.ArtistShare)
	assert.Equal(t, int64(0), calc.LabelShare)
	assert.Equal(t, int64(-40000), calc.ClosingBalance)
}

func TestCalculate_MainTabServicesOutstandingBalance(t *testing.T) {
	f := newRecoupmentFixture()
	// Prior tab balance of 150000 owed.
	f.stubProject(mainTabProject(),
		nil,
		[]domain.Income{
			{IncomeID: "i1", AmountMinor: 200000},
		},
		[]domain.RecoupmentLedgerEntry{
			{EntryID: "p1", AmountMinor: 150000},
		},
	)

	calc, err := f.svc.Calculate(context.Background(), "proj-2")

	require.NoError(t, err)
	assert.Equal(t, domain.ScopeMainTab, calc.Scope)
	assert.Equal(t, int64(150000), calc.OpeningBalance)
	// Artist is paid immediately on gross income.
	assert.Equal(t, int64(100000), calc.ArtistShare)
	// Label's 100000 share fully services the tab; nothing left as profit.
	assert.Equal(t, int64(0), calc.LabelShare)
	assert.Equal(t, int64(50000), calc.ClosingBalance)
}

func TestCalculate_MainTabNegativeBalanceClampsReduction(t *testing.T) {
	f := newRecoupmentFixture()
	f.stubProject(mainTabProject(),
		nil,
		[]domain.Income{
			{IncomeID: "i1", AmountMinor: 100000},
		},
		[]domain.RecoupmentLedgerEntry{
			{EntryID: "p1", AmountMinor: -50000},
		},
	)

	calc, err := f.svc.Calculate(context.Background(), "proj-2")

	require.NoError(t, err)
	// Nothing to service: the reduction clamps at zero, the label keeps its
	// full income share and the negative balance carries forward untouched.
	assert.Equal(t, int64(50000), calc.ArtistShare)
	assert.Equal(t, int64(50000), calc.LabelShare)
	assert.Equal(t, int64(-50000), calc.ClosingBalance)
}

func TestCalculate_ProjectWithoutArtistRejected(t *testing.T) {
	f := newRecoupmentFixture()
	project := &domain.Project{ProjectID: "proj-3", Type: domain.ProjectInternal, Mode: domain.ModeStandalone}
	f.projects.On("FindProjectByID", mock.Anything, "proj-3").Return(project, nil)

	_, err := f.svc.Calculate(context.Background(), "proj-3")

	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestProcess_PostsOrderedSignedEntriesAtomically(t *testing.T) {
	f := newRecoupmentFixture()
	f.stubProject(standaloneProject(),
		[]domain.ReconciliationEntry{
			{EntryID: "e1", Kind: domain.KindTime, AmountMinor: 45000},
			{EntryID: "e2", Kind: domain.KindExpense, AmountMinor: 275000},
			{EntryID: "e3", Kind: domain.KindWriteoff, AmountMinor: -5000},
		},
		[]domain.Income{
			{IncomeID: "i1", AmountMinor: 650000},
		},
		nil,
	)

	f.stubTx()
	var posted []domain.RecoupmentLedgerEntry
	f.recoupment.On("SaveEntries", mock.Anything, mock.Anything, mock.AnythingOfType("[]domain.RecoupmentLedgerEntry")).
		Run(func(args mock.Arguments) {
			posted = args.Get(2).([]domain.RecoupmentLedgerEntry)
		}).
		Return(nil)

	calc, err := f.svc.Process(context.Background(), "proj-1", "admin-1")

	require.NoError(t, err)
	require.Len(t, posted, 5)
	f.recoupment.AssertCalled(t, "Begin", mock.Anything)
	f.recoupment.AssertCalled(t, "Commit", mock.Anything, mock.Anything)

	assert.Equal(t, domain.EntryExpenseAdd, posted[0].EntryType)
	assert.Equal(t, int64(275000), posted[0].AmountMinor)
	assert.Equal(t, domain.EntryTimeAdd, posted[1].EntryType)
	assert.Equal(t, int64(45000), posted[1].AmountMinor)
	assert.Equal(t, domain.EntryIncomeApply, posted[2].EntryType)
	assert.Equal(t, int64(-650000), posted[2].AmountMinor)
	assert.Equal(t, domain.EntryWriteoffApply, posted[3].EntryType)
	assert.Equal(t, int64(-5000), posted[3].AmountMinor)
	assert.Equal(t, domain.EntryProfitSplit, posted[4].EntryType)
	assert.Equal(t, int64(167500), posted[4].AmountMinor)

	for _, e := range posted {
		assert.Equal(t, "artist-1", e.ArtistID)
		assert.Equal(t, domain.ScopeProject, e.Scope)
		require.NotNil(t, e.CalcSnapshot)
		assert.Equal(t, *calc, *e.CalcSnapshot)
	}
}

func TestProcess_LossPostsNoProfitSplit(t *testing.T) {
	f := newRecoupmentFixture()
	f.stubProject(standaloneProject(),
		[]domain.ReconciliationEntry{
			{EntryID: "e1", Kind: domain.KindExpense, AmountMinor: 50000},
		},
		[]domain.Income{
			{IncomeID: "i1", AmountMinor: 10000},
		},
		nil,
	)

	f.stubTx()
	var posted []domain.RecoupmentLedgerEntry
	f.recoupment.On("SaveEntries", mock.Anything, mock.Anything, mock.AnythingOfType("[]domain.RecoupmentLedgerEntry")).
		Run(func(args mock.Arguments) {
			posted = args.Get(2).([]domain.RecoupmentLedgerEntry)
		}).
		Return(nil)

	_, err := f.svc.Process(context.Background(), "proj-1", "admin-1")

	require.NoError(t, err)
	require.Len(t, posted, 2)
	assert.Equal(t, domain.EntryExpenseAdd, posted[0].EntryType)
	assert.Equal(t, domain.EntryIncomeApply, posted[1].EntryType)
}

func TestProcess_SaveFailureDiscardsComputation(t *testing.T) {
	f := newRecoupmentFixture()
	f.stubProject(standaloneProject(),
		[]domain.ReconciliationEntry{
			{EntryID: "e1", Kind: domain.KindExpense, AmountMinor: 50000},
		},
		nil,
		nil,
	)

	dbErr := errors.New("deadlock detected")
	f.stubTx()
	f.recoupment.On("SaveEntries", mock.Anything, mock.Anything, mock.Anything).Return(dbErr)

	_, err := f.svc.Process(context.Background(), "proj-1", "admin-1")

	assert.True(t, errors.Is(err, dbErr))
	f.recoupment.AssertCalled(t, "Rollback", mock.Anything, mock.Anything)
	f.recoupment.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything)
}

func TestProcess_BeginFailureAbortsBeforeAppend(t *testing.T) {
	f := newRecoupmentFixture()
	f.stubProject(standaloneProject(),
		[]domain.ReconciliationEntry{
			{EntryID: "e1", Kind: domain.KindExpense, AmountMinor: 50000},
		},
		nil,
		nil,
	)

	txErr := errors.New("too many clients already")
	f.recoupment.On("Begin", mock.Anything).Return(nil, txErr)

	_, err := f.svc.Process(context.Background(), "proj-1", "admin-1")

	assert.True(t, errors.Is(err, txErr))
	f.recoupment.AssertNotCalled(t, "SaveEntries", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetBalance_IsRunningSumOfLedger(t *testing.T) {
	f := newRecoupmentFixture()
	projectID := "proj-1"

	f.recoupment.On("ListEntries", mock.Anything, portsrepo.RecoupmentFilter{
		ArtistID:  "artist-1",
		Scope:     domain.ScopeProject,
		ProjectID: &projectID,
	}).Return([]domain.RecoupmentLedgerEntry{
		{EntryID: "p1", AmountMinor: 275000},
		{EntryID: "p2", AmountMinor: 45000},
		{EntryID: "p3", AmountMinor: -650000},
		{EntryID: "p4", AmountMinor: -5000},
		{EntryID: "p5", AmountMinor: 167500},
	}, nil)

	balance, err := f.svc.GetBalance(context.Background(), "artist-1", domain.ScopeProject, &projectID)

	require.NoError(t, err)
	assert.Equal(t, int64(-167500), balance)
}

func TestGetStatement_RunningBalances(t *testing.T) {
	f := newRecoupmentFixture()

	f.recoupment.On("ListEntries", mock.Anything, portsrepo.RecoupmentFilter{
		ArtistID: "artist-1",
		Scope:    domain.ScopeMainTab,
	}).Return([]domain.RecoupmentLedgerEntry{
		{EntryID: "p1", EntryType: domain.EntryExpenseAdd, AmountMinor: 100000},
		{EntryID: "p2", EntryType: domain.EntryIncomeApply, AmountMinor: -60000},
	}, nil)

	statement, err := f.svc.GetStatement(context.Background(), "artist-1", domain.ScopeMainTab, nil)

	require.NoError(t, err)
	require.Len(t, statement.Lines, 2)
	assert.Equal(t, int64(100000), statement.Lines[0].RunningBalance)
	assert.Equal(t, int64(40000), statement.Lines[1].RunningBalance)
	assert.Equal(t, int64(40000), statement.ClosingBalance)
}
