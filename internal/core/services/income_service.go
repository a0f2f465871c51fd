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
)

// incomeService records and lists project income.
type incomeService struct {
	incomeRepo  portsrepo.IncomeRepositoryFacade
	projectRepo portsrepo.ProjectRepositoryFacade
}

// NewIncomeService creates a new IncomeService.
func NewIncomeService(incomeRepo portsrepo.IncomeRepositoryFacade, projectRepo portsrepo.ProjectRepositoryFacade) portssvc.IncomeSvcFacade {
	return &incomeService{
		incomeRepo:  incomeRepo,
		projectRepo: projectRepo,
	}
}

var _ portssvc.IncomeSvcFacade = (*incomeService)(nil)

// RecordIncome persists a manual income record against a project.
func (s *incomeService) RecordIncome(ctx context.Context, req dto.RecordIncomeRequest, creatorUserID string) (*domain.Income, error) {
	if req.AmountMinor <= 0 {
		return nil, fmt.Errorf("%w: income amount must be positive", apperrors.ErrValidation)
	}

	project, err := s.projectRepo.FindProjectByID(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project %s: %w", req.ProjectID, err)
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	income := domain.Income{
		IncomeID:     uuid.NewString(),
		ProjectID:    &project.ProjectID,
		Date:         req.Date,
		Description:  req.Description,
		AmountMinor:  req.AmountMinor,
		CurrencyCode: currency,
		Source:       domain.IncomeManual,
		AuditFields:  newAuditFields(creatorUserID),
	}

	if err := s.incomeRepo.SaveIncome(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to save income: %w", err)
	}
	return &income, nil
}

// ListIncome returns a project's income rows.
func (s *incomeService) ListIncome(ctx context.Context, projectID string) ([]domain.Income, error) {
	incomes, err := s.incomeRepo.ListIncomeByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list income for project %s: %w", projectID, err)
	}
	return incomes, nil
}
