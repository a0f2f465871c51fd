package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harmonia-labs/label_ledger_app/internal/apperrors"
	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	portsrepo "github.com/harmonia-labs/label_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/harmonia-labs/label_ledger_app/internal/core/ports/services"
	"github.com/harmonia-labs/label_ledger_app/internal/dto"
)

const defaultCurrency = "GBP"

// reconciliationService converts raw charges into signed, immutable ledger
// entries. Entries are only ever appended; existing rows are never touched.
type reconciliationService struct {
	reconRepo portsrepo.ReconciliationRepositoryFacade
	rateSvc   portssvc.RateSvcFacade
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(reconRepo portsrepo.ReconciliationRepositoryFacade, rateSvc portssvc.RateSvcFacade) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{
		reconRepo: reconRepo,
		rateSvc:   rateSvc,
	}
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

// RecordTimeCharge reconciles a timesheet charge. Hours arrive normalized to
// 0.1-hour granularity; the amount is round(hours × rate) in minor units.
func (s *reconciliationService) RecordTimeCharge(ctx context.Context, charge dto.TimeCharge, creatorUserID string) (*domain.ReconciliationEntry, error) {
	if charge.Hours.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: hours must be positive, got %s", apperrors.ErrValidation, charge.Hours.String())
	}

	rate, err := s.rateSvc.ResolveHourlyRate(ctx, charge.UserID, charge.BillingRoleID, charge.Date)
	if err != nil {
		return nil, err
	}

	amount := charge.Hours.Mul(decimal.NewFromInt(rate)).Round(0).IntPart()

	hours := charge.Hours
	entry := domain.ReconciliationEntry{
		EntryID:          uuid.NewString(),
		ProjectID:        charge.ProjectID,
		BudgetLineItemID: charge.BudgetLineItemID,
		Kind:             domain.KindTime,
		AmountMinor:      amount,
		CurrencyCode:     defaultCurrency,
		Hours:            &hours,
		RateUsedMinor:    &rate,
		BillingRoleID:    charge.BillingRoleID,
		Description:      charge.Description,
		AuditFields:      newAuditFields(creatorUserID),
	}

	if err := s.reconRepo.AppendEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to append time entry: %w", err)
	}
	return &entry, nil
}

// RecordExpense reconciles an external expense at its net amount. VAT is
// captured on the source record only and never enters the reconciliation ledger.
func (s *reconciliationService) RecordExpense(ctx context.Context, charge dto.ExpenseCharge, creatorUserID string) (*domain.ReconciliationEntry, error) {
	if charge.AmountNetMinor <= 0 {
		return nil, fmt.Errorf("%w: expense net amount must be positive", apperrors.ErrValidation)
	}
	if charge.Vendor == "" {
		return nil, fmt.Errorf("%w: expense vendor is required", apperrors.ErrValidation)
	}

	currency := charge.CurrencyCode
	if currency == "" {
		currency = defaultCurrency
	}

	description := charge.Description
	if description == "" {
		description = charge.Vendor
	}

	entry := domain.ReconciliationEntry{
		EntryID:          uuid.NewString(),
		ProjectID:        charge.ProjectID,
		BudgetLineItemID: charge.BudgetLineItemID,
		Kind:             domain.KindExpense,
		AmountMinor:      charge.AmountNetMinor,
		CurrencyCode:     currency,
		Description:      description,
		AuditFields:      newAuditFields(creatorUserID),
	}

	if err := s.reconRepo.AppendEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to append expense entry: %w", err)
	}
	return &entry, nil
}

// RecordWriteoff posts a cost reduction. The caller supplies a positive
// magnitude; the entry is stored with its effective (negative) sign.
func (s *reconciliationService) RecordWriteoff(ctx context.Context, charge dto.WriteoffCharge, creatorUserID string) (*domain.ReconciliationEntry, error) {
	if charge.AmountMinor <= 0 {
		return nil, fmt.Errorf("%w: write-off magnitude must be positive", apperrors.ErrInvalidWriteoff)
	}
	if strings.TrimSpace(charge.Reason) == "" {
		return nil, fmt.Errorf("%w: write-off reason is required", apperrors.ErrInvalidWriteoff)
	}

	reason := charge.Reason
	entry := domain.ReconciliationEntry{
		EntryID:          uuid.NewString(),
		ProjectID:        charge.ProjectID,
		BudgetLineItemID: charge.BudgetLineItemID,
		Kind:             domain.KindWriteoff,
		AmountMinor:      -charge.AmountMinor,
		CurrencyCode:     defaultCurrency,
		WriteoffReason:   &reason,
		Description:      reason,
		AuditFields:      newAuditFields(creatorUserID),
	}

	if err := s.reconRepo.AppendEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to append write-off entry: %w", err)
	}
	return &entry, nil
}

// ListEntries returns reconciliation ledger entries matching the filter.
func (s *reconciliationService) ListEntries(ctx context.Context, filter portsrepo.ReconciliationFilter) ([]domain.ReconciliationEntry, error) {
	entries, err := s.reconRepo.ListEntries(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list reconciliation entries: %w", err)
	}
	return entries, nil
}

// newAuditFields stamps creation metadata for a new entity.
func newAuditFields(creatorUserID string) domain.AuditFields {
	now := time.Now()
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}
}
