package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harmonia-labs/label_ledger_app/internal/apperrors"
	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	portsrepo "github.com/harmonia-labs/label_ledger_app/internal/core/ports/repositories"
)

const pgUniqueViolation = "23505"

type PgxAlertRepository struct {
	pool *pgxpool.Pool
}

// NewPgxAlertRepository creates a new repository for threshold alerts.
func NewPgxAlertRepository(pool *pgxpool.Pool) portsrepo.AlertRepositoryFacade {
	return &PgxAlertRepository{pool: pool}
}

// CreateIfAbsent inserts the alert unless an unresolved alert already exists
// for the same (scope, ref_id, level). The existence check and the insert are
// a single conditional statement, and the partial unique index
// alerts_unresolved_unique backstops any remaining race: a unique violation
// means another evaluation won, reported as created=false.
func (r *PgxAlertRepository) CreateIfAbsent(ctx context.Context, alert domain.Alert) (bool, error) {
	query := `
		INSERT INTO alerts (alert_id, scope, ref_id, level, alert_type, resolved_at, created_at)
		SELECT $1, $2, $3, $4, $5, NULL, $6
		WHERE NOT EXISTS (
			SELECT 1 FROM alerts
			WHERE scope = $2 AND ref_id = $3 AND level = $4 AND resolved_at IS NULL
		);
	`
	tag, err := r.pool.Exec(ctx, query,
		alert.AlertID,
		alert.Scope,
		alert.RefID,
		alert.Level,
		alert.Type,
		alert.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return false, nil
		}
		return false, fmt.Errorf("failed to create alert: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// FindUnresolved returns the unresolved alert for the exact triple.
func (r *PgxAlertRepository) FindUnresolved(ctx context.Context, scope domain.AlertScope, refID string, level float64) (*domain.Alert, error) {
	query := `
		SELECT alert_id, scope, ref_id, level, alert_type, resolved_at, created_at
		FROM alerts
		WHERE scope = $1 AND ref_id = $2 AND level = $3 AND resolved_at IS NULL;
	`
	var a domain.Alert
	err := r.pool.QueryRow(ctx, query, scope, refID, level).Scan(
		&a.AlertID, &a.Scope, &a.RefID, &a.Level, &a.Type, &a.ResolvedAt, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find unresolved alert: %w", err)
	}
	return &a, nil
}

// ListUnresolved returns all unresolved alerts, newest first.
func (r *PgxAlertRepository) ListUnresolved(ctx context.Context) ([]domain.Alert, error) {
	query := `
		SELECT alert_id, scope, ref_id, level, alert_type, resolved_at, created_at
		FROM alerts
		WHERE resolved_at IS NULL
		ORDER BY created_at DESC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query unresolved alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.Alert
	for rows.Next() {
		var a domain.Alert
		if err := rows.Scan(&a.AlertID, &a.Scope, &a.RefID, &a.Level, &a.Type, &a.ResolvedAt, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alerts: %w", err)
	}
	return alerts, nil
}

// Resolve marks an alert resolved.
func (r *PgxAlertRepository) Resolve(ctx context.Context, alertID string, resolvedAt time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE alerts SET resolved_at = $2 WHERE alert_id = $1 AND resolved_at IS NULL;`,
		alertID, resolvedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to resolve alert %s: %w", alertID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
