package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harmonia-labs/label_ledger_app/internal/apperrors"
	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	portsrepo "github.com/harmonia-labs/label_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/harmonia-labs/label_ledger_app/internal/core/ports/services"
	"github.com/harmonia-labs/label_ledger_app/internal/dto"
	"github.com/harmonia-labs/label_ledger_app/internal/platform/metrics"
)

const rowDateLayout = "2006-01-02"

// importService ingests batches of canonical rows. One bad row never aborts
// the batch: it is skipped, reported by index, and the remaining rows proceed.
type importService struct {
	projectRepo portsrepo.ProjectRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
	incomeRepo  portsrepo.IncomeRepositoryFacade
	reconSvc    portssvc.ReconciliationSvcFacade
}

// NewImportService creates a new ImportService.
func NewImportService(
	projectRepo portsrepo.ProjectRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	incomeRepo portsrepo.IncomeRepositoryFacade,
	reconSvc portssvc.ReconciliationSvcFacade,
) portssvc.ImportSvcFacade {
	return &importService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		incomeRepo:  incomeRepo,
		reconSvc:    reconSvc,
	}
}

var _ portssvc.ImportSvcFacade = (*importService)(nil)

// ImportExpenses reconciles a batch of mapped expense rows.
func (s *importService) ImportExpenses(ctx context.Context, rows []dto.ExpenseRow, creatorUserID string) (*dto.ImportResult, error) {
	result := &dto.ImportResult{}

	for i, row := range rows {
		if err := dto.ValidateRow(row); err != nil {
			s.reject(result, i, err)
			continue
		}

		date, err := time.Parse(rowDateLayout, row.Date)
		if err != nil {
			s.reject(result, i, fmt.Errorf("invalid date %q", row.Date))
			continue
		}

		project, err := s.resolveProject(ctx, row.ProjectCode)
		if err != nil {
			s.reject(result, i, err)
			continue
		}
		if project == nil {
			s.reject(result, i, errors.New("project code is required"))
			continue
		}

		var vat *int64
		if row.AmountVat != nil {
			v := toMinor(*row.AmountVat)
			vat = &v
		}

		charge := dto.ExpenseCharge{
			ProjectID:      project.ProjectID,
			Vendor:         row.Vendor,
			Date:           date,
			Description:    row.Description,
			AmountNetMinor: toMinor(row.AmountNet),
			AmountVatMinor: vat,
			CurrencyCode:   row.Currency,
		}

		if _, err := s.reconSvc.RecordExpense(ctx, charge, creatorUserID); err != nil {
			s.reject(result, i, err)
			continue
		}
		s.accept(result)
	}
	return result, nil
}

// ImportIncome records a batch of mapped income rows.
func (s *importService) ImportIncome(ctx context.Context, rows []dto.IncomeRow, creatorUserID string) (*dto.ImportResult, error) {
	result := &dto.ImportResult{}

	for i, row := range rows {
		if err := dto.ValidateRow(row); err != nil {
			s.reject(result, i, err)
			continue
		}

		amount := toMinor(row.Amount)
		if amount <= 0 {
			s.reject(result, i, errors.New("income amount must be positive"))
			continue
		}

		date, err := time.Parse(rowDateLayout, row.Date)
		if err != nil {
			s.reject(result, i, fmt.Errorf("invalid date %q", row.Date))
			continue
		}

		project, err := s.resolveProject(ctx, row.ProjectCode)
		if err != nil {
			s.reject(result, i, err)
			continue
		}

		currency := row.Currency
		if currency == "" {
			currency = defaultCurrency
		}

		income := domain.Income{
			IncomeID:     uuid.NewString(),
			Date:         date,
			Description:  row.Description,
			AmountMinor:  amount,
			CurrencyCode: currency,
			Source:       domain.IncomeXeroImport,
			AuditFields:  newAuditFields(creatorUserID),
		}
		if project != nil {
			income.ProjectID = &project.ProjectID
		}

		if err := s.incomeRepo.SaveIncome(ctx, income); err != nil {
			s.reject(result, i, err)
			continue
		}
		s.accept(result)
	}
	return result, nil
}

// ImportTime reconciles a batch of mapped time rows. The user is resolved by
// email, falling back to the importing user; the rate comes from the resolver
// through the reconciliation service.
func (s *importService) ImportTime(ctx context.Context, rows []dto.TimeRow, creatorUserID string) (*dto.ImportResult, error) {
	result := &dto.ImportResult{}

	for i, row := range rows {
		if err := dto.ValidateRow(row); err != nil {
			s.reject(result, i, err)
			continue
		}
		if row.Hours.LessThanOrEqual(decimal.Zero) {
			s.reject(result, i, errors.New("invalid hours value"))
			continue
		}

		date, err := time.Parse(rowDateLayout, row.Date)
		if err != nil {
			s.reject(result, i, fmt.Errorf("invalid date %q", row.Date))
			continue
		}

		project, err := s.resolveProject(ctx, row.ProjectCode)
		if err != nil {
			s.reject(result, i, err)
			continue
		}
		if project == nil {
			s.reject(result, i, errors.New("project code is required"))
			continue
		}

		userID := creatorUserID
		if row.UserEmail != "" {
			user, err := s.userRepo.FindUserByEmail(ctx, row.UserEmail)
			if err == nil {
				userID = user.UserID
			} else if !errors.Is(err, apperrors.ErrNotFound) {
				s.reject(result, i, err)
				continue
			}
		}

		charge := dto.TimeCharge{
			ProjectID:   project.ProjectID,
			UserID:      userID,
			Date:        date,
			Description: row.Description,
			Hours:       row.Hours,
		}

		if _, err := s.reconSvc.RecordTimeCharge(ctx, charge, creatorUserID); err != nil {
			s.reject(result, i, err)
			continue
		}
		s.accept(result)
	}
	return result, nil
}

// resolveProject looks a project up by code. An empty code returns nil with
// no error; callers decide whether the code is mandatory for their row kind.
func (s *importService) resolveProject(ctx context.Context, code string) (*domain.Project, error) {
	if code == "" {
		return nil, nil
	}
	project, err := s.projectRepo.FindProjectByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("project not found: %s", code)
		}
		return nil, err
	}
	return project, nil
}

func (s *importService) accept(result *dto.ImportResult) {
	result.Imported++
	metrics.ImportRows.WithLabelValues("imported").Inc()
}

func (s *importService) reject(result *dto.ImportResult, row int, err error) {
	result.Errors = append(result.Errors, dto.RowError{Row: row, Message: err.Error()})
	metrics.ImportRows.WithLabelValues("rejected").Inc()
	slog.Debug("Import row rejected", slog.Int("row", row), slog.String("error", err.Error()))
}

// toMinor converts a major-unit decimal amount to minor units, rounding half
// away from zero.
func toMinor(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
