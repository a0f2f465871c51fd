package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/harmonia-labs/label_ledger_app/internal/apperrors"
	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	portsrepo "github.com/harmonia-labs/label_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/harmonia-labs/label_ledger_app/internal/core/ports/services"
	"github.com/harmonia-labs/label_ledger_app/internal/dto"
	"github.com/harmonia-labs/label_ledger_app/internal/platform/metrics"
)

// recoupmentService aggregates the ledgers for a project's scope, runs the
// mode's strategy and, on Process, posts the result atomically.
type recoupmentService struct {
	projectRepo    portsrepo.ProjectRepositoryFacade
	reconRepo      portsrepo.ReconciliationRepositoryFacade
	recoupmentRepo portsrepo.RecoupmentRepositoryFacade
	incomeRepo     portsrepo.IncomeRepositoryFacade
}

// NewRecoupmentService creates a new RecoupmentService.
func NewRecoupmentService(
	projectRepo portsrepo.ProjectRepositoryFacade,
	reconRepo portsrepo.ReconciliationRepositoryFacade,
	recoupmentRepo portsrepo.RecoupmentRepositoryFacade,
	incomeRepo portsrepo.IncomeRepositoryFacade,
) portssvc.RecoupmentSvcFacade {
	return &recoupmentService{
		projectRepo:    projectRepo,
		reconRepo:      reconRepo,
		recoupmentRepo: recoupmentRepo,
		incomeRepo:     incomeRepo,
	}
}

var _ portssvc.RecoupmentSvcFacade = (*recoupmentService)(nil)

// Calculate runs the project's strategy over current ledger state without
// posting anything.
func (s *recoupmentService) Calculate(ctx context.Context, projectID string) (*domain.RecoupmentCalculation, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}
	if project.ArtistID == nil {
		return nil, fmt.Errorf("%w: project %s has no artist to recoup against", apperrors.ErrValidation, projectID)
	}

	strategy := strategyForMode(project.Mode)

	inputs, err := s.aggregateInputs(ctx, project, strategy.Scope())
	if err != nil {
		return nil, err
	}

	calc := strategy.Calculate(inputs)
	return &calc, nil
}

// Process calculates and posts the result to the recoupment ledger. The
// entries are appended as one atomic unit; a persistence failure discards the
// computation with no partial commit.
func (s *recoupmentService) Process(ctx context.Context, projectID string, creatorUserID string) (*domain.RecoupmentCalculation, error) {
	calc, err := s.Calculate(ctx, projectID)
	if err != nil {
		return nil, err
	}

	entries := buildLedgerEntries(*calc, creatorUserID)
	if len(entries) == 0 {
		return calc, nil
	}

	tx, err := s.recoupmentRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin recoupment posting: %w", err)
	}
	defer func() {
		_ = s.recoupmentRepo.Rollback(ctx, tx)
	}()

	if err := s.recoupmentRepo.SaveEntries(ctx, tx, entries); err != nil {
		return nil, fmt.Errorf("failed to post recoupment entries: %w", err)
	}
	if err := s.recoupmentRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit recoupment entries: %w", err)
	}
	metrics.RecoupmentEntriesPosted.Add(float64(len(entries)))
	return calc, nil
}

// GetBalance derives a scope's balance from its ledger rows. There is no
// cached balance anywhere: every read recomputes from the ledger.
func (s *recoupmentService) GetBalance(ctx context.Context, artistID string, scope domain.RecoupmentScope, projectID *string) (int64, error) {
	entries, err := s.recoupmentRepo.ListEntries(ctx, recoupmentFilter(artistID, scope, projectID))
	if err != nil {
		return 0, fmt.Errorf("failed to list recoupment entries: %w", err)
	}

	var balance int64
	for _, e := range entries {
		balance += e.AmountMinor
	}
	return balance, nil
}

// GetStatement returns a scope's ledger rows with running balances.
func (s *recoupmentService) GetStatement(ctx context.Context, artistID string, scope domain.RecoupmentScope, projectID *string) (*dto.StatementResponse, error) {
	entries, err := s.recoupmentRepo.ListEntries(ctx, recoupmentFilter(artistID, scope, projectID))
	if err != nil {
		return nil, fmt.Errorf("failed to list recoupment entries: %w", err)
	}

	statement := &dto.StatementResponse{
		ArtistID:  artistID,
		Scope:     string(scope),
		ProjectID: projectID,
		Lines:     make([]dto.StatementLine, 0, len(entries)),
	}

	var running int64
	for _, e := range entries {
		running += e.AmountMinor
		statement.Lines = append(statement.Lines, dto.StatementLine{
			EntryID:        e.EntryID,
			EntryType:      string(e.EntryType),
			AmountMinor:    e.AmountMinor,
			Note:           e.Note,
			CreatedAt:      e.CreatedAt,
			RunningBalance: running,
		})
	}
	statement.ClosingBalance = running
	return statement, nil
}

// aggregateInputs sums the reconciliation ledger and income records for the
// project into the non-negative magnitudes a strategy consumes, and derives
// the opening balance for the scope.
func (s *recoupmentService) aggregateInputs(ctx context.Context, project *domain.Project, scope domain.RecoupmentScope) (recoupmentInputs, error) {
	projectID := project.ProjectID

	entries, err := s.reconRepo.ListEntries(ctx, portsrepo.ReconciliationFilter{ProjectID: &projectID})
	if err != nil {
		return recoupmentInputs{}, fmt.Errorf("failed to list reconciliation entries for project %s: %w", projectID, err)
	}

	var timeCharges, expenses, writeoffs int64
	for _, e := range entries {
		switch e.Kind {
		case domain.KindTime:
			timeCharges += e.AmountMinor
		case domain.KindExpense:
			expenses += e.AmountMinor
		case domain.KindWriteoff:
			amount := e.AmountMinor
			if amount < 0 {
				amount = -amount
			}
			writeoffs += amount
		}
	}

	incomes, err := s.incomeRepo.ListIncomeByProjectID(ctx, projectID)
	if err != nil {
		return recoupmentInputs{}, fmt.Errorf("failed to list income for project %s: %w", projectID, err)
	}
	var totalIncome int64
	for _, in := range incomes {
		totalIncome += in.AmountMinor
	}

	var scopeProjectID *string
	if scope == domain.ScopeProject {
		scopeProjectID = &projectID
	}

	opening, err := s.GetBalance(ctx, *project.ArtistID, scope, scopeProjectID)
	if err != nil {
		return recoupmentInputs{}, err
	}

	return recoupmentInputs{
		ArtistID:       *project.ArtistID,
		ProjectID:      scopeProjectID,
		OpeningBalance: opening,
		Income:         totalIncome,
		TimeCharges:    timeCharges,
		Expenses:       expenses,
		Writeoffs:      writeoffs,
	}, nil
}

// buildLedgerEntries turns a calculation into its ordered set of signed
// postings. Each non-zero component yields exactly one entry; the profit
// split posts only for standalone projects with a positive artist share.
func buildLedgerEntries(calc domain.RecoupmentCalculation, creatorUserID string) []domain.RecoupmentLedgerEntry {
	snapshot := calc
	draft := func(entryType domain.RecoupmentEntryType, amount int64, note string) domain.RecoupmentLedgerEntry {
		return domain.RecoupmentLedgerEntry{
			EntryID:      uuid.NewString(),
			ArtistID:     calc.ArtistID,
			Scope:        calc.Scope,
			ProjectID:    calc.ProjectID,
			EntryType:    entryType,
			AmountMinor:  amount,
			CurrencyCode: defaultCurrency,
			Note:         note,
			CalcSnapshot: &snapshot,
			AuditFields:  newAuditFields(creatorUserID),
		}
	}

	entries := make([]domain.RecoupmentLedgerEntry, 0, 5)
	if calc.Expenses > 0 {
		entries = append(entries, draft(domain.EntryExpenseAdd, calc.Expenses, "Expenses added to recoupment"))
	}
	if calc.TimeCharges > 0 {
		entries = append(entries, draft(domain.EntryTimeAdd, calc.TimeCharges, "Time charges added to recoupment"))
	}
	if calc.Income > 0 {
		entries = append(entries, draft(domain.EntryIncomeApply, -calc.Income, "Income applied to recoupment"))
	}
	if calc.Writeoffs > 0 {
		entries = append(entries, draft(domain.EntryWriteoffApply, -calc.Writeoffs, "Write-offs applied to reduce charges"))
	}
	if calc.Scope == domain.ScopeProject && calc.ArtistShare > 0 {
		entries = append(entries, draft(domain.EntryProfitSplit, calc.ArtistShare, "Profit split: artist share of net profit"))
	}
	return entries
}

func recoupmentFilter(artistID string, scope domain.RecoupmentScope, projectID *string) portsrepo.RecoupmentFilter {
	filter := portsrepo.RecoupmentFilter{
		ArtistID: artistID,
		Scope:    scope,
	}
	if scope == domain.ScopeProject {
		filter.ProjectID = projectID
	}
	return filter
}
