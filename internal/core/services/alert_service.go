package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/harmonia-labs/label_ledger_app/internal/apperrors"
	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	portsrepo "github.com/harmonia-labs/label_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/harmonia-labs/label_ledger_app/internal/core/ports/services"
	"github.com/harmonia-labs/label_ledger_app/internal/platform/metrics"
)

// alertService is a per-(scope, refID) threshold-crossing detector.
type alertService struct {
	alertRepo portsrepo.AlertRepositoryFacade
}

// NewAlertService creates a new AlertService.
func NewAlertService(alertRepo portsrepo.AlertRepositoryFacade) portssvc.AlertSvcFacade {
	return &alertService{alertRepo: alertRepo}
}

var _ portssvc.AlertSvcFacade = (*alertService)(nil)

// Evaluate creates at most one unresolved alert per crossed threshold level.
// The existence check and the insert happen as a single conditional write in
// the repository, so concurrent evaluations cannot double-post; losing that
// race is a benign no-op.
func (s *alertService) Evaluate(ctx context.Context, scope domain.AlertScope, refID string, utilizationPct int64, thresholds []float64) (int, error) {
	levels := make([]float64, len(thresholds))
	copy(levels, thresholds)
	sort.Float64s(levels)

	alertType := domain.AlertThresholdReached
	if utilizationPct > 100 {
		alertType = domain.AlertExceeded
	}

	created := 0
	for _, level := range levels {
		if float64(utilizationPct) < level*100 {
			// Levels are ascending; nothing further can be crossed.
			break
		}

		alert := domain.Alert{
			AlertID:   uuid.NewString(),
			Scope:     scope,
			RefID:     refID,
			Level:     level,
			Type:      alertType,
			CreatedAt: time.Now(),
		}

		ok, err := s.alertRepo.CreateIfAbsent(ctx, alert)
		if err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				continue
			}
			return created, fmt.Errorf("failed to create alert for %s/%s at %.2f: %w", scope, refID, level, err)
		}
		if ok {
			created++
			metrics.AlertsCreated.Inc()
			slog.Info("Budget alert raised",
				slog.String("scope", string(scope)),
				slog.String("ref_id", refID),
				slog.Float64("level", level),
				slog.Int64("utilization_pct", utilizationPct),
			)
		}
	}
	return created, nil
}

// ListUnresolved returns all currently unresolved alerts.
func (s *alertService) ListUnresolved(ctx context.Context) ([]domain.Alert, error) {
	alerts, err := s.alertRepo.ListUnresolved(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unresolved alerts: %w", err)
	}
	return alerts, nil
}

// Resolve marks an alert resolved, making its level eligible to fire again.
func (s *alertService) Resolve(ctx context.Context, alertID string) error {
	if err := s.alertRepo.Resolve(ctx, alertID, time.Now()); err != nil {
		return fmt.Errorf("failed to resolve alert %s: %w", alertID, err)
	}
	return nil
}
