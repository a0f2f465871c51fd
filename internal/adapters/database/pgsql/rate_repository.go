package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harmonia-labs/label_ledger_app/internal/apperrors"
	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	portsrepo "github.com/harmonia-labs/label_ledger_app/internal/core/ports/repositories"
)

type PgxRateRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRateRepository creates a new repository for rate cards and billing roles.
func NewPgxRateRepository(pool *pgxpool.Pool) portsrepo.RateRepositoryFacade {
	return &PgxRateRepository{pool: pool}
}

// FindRateCardByUserID retrieves the rate card effective for a user at asOf.
// Cards created after asOf are excluded so backdated time charges pick up the
// rate that was in force on the charge date.
func (r *PgxRateRepository) FindRateCardByUserID(ctx context.Context, userID string, asOf time.Time) (*domain.RateCard, error) {
	query := `
		SELECT rate_card_id, user_id, amount_per_hour_minor,
			created_at, created_by, last_updated_at, last_updated_by
		FROM rate_cards
		WHERE user_id = $1 AND created_at <= $2
		ORDER BY created_at DESC
		LIMIT 1;
	`
	var c domain.RateCard
	err := r.pool.QueryRow(ctx, query, userID, asOf).Scan(
		&c.RateCardID, &c.UserID, &c.AmountPerHourMinor,
		&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan rate card: %w", err)
	}
	return &c, nil
}

// FindBillingRoleByID retrieves a billing role.
func (r *PgxRateRepository) FindBillingRoleByID(ctx context.Context, billingRoleID string) (*domain.BillingRole, error) {
	query := `
		SELECT billing_role_id, name, amount_per_hour_minor,
			created_at, created_by, last_updated_at, last_updated_by
		FROM billing_roles WHERE billing_role_id = $1;
	`
	var role domain.BillingRole
	err := r.pool.QueryRow(ctx, query, billingRoleID).Scan(
		&role.BillingRoleID, &role.Name, &role.AmountPerHourMinor,
		&role.CreatedAt, &role.CreatedBy, &role.LastUpdatedAt, &role.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan billing role: %w", err)
	}
	return &role, nil
}

// SaveRateCard persists a rate card.
func (r *PgxRateRepository) SaveRateCard(ctx context.Context, card domain.RateCard) error {
	query := `
		INSERT INTO rate_cards (
			rate_card_id, user_id, amount_per_hour_minor,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		card.RateCardID, card.UserID, card.AmountPerHourMinor,
		card.CreatedAt, card.CreatedBy, card.LastUpdatedAt, card.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert rate card %s: %w", card.RateCardID, err)
	}
	return nil
}

// SaveBillingRole persists a billing role.
func (r *PgxRateRepository) SaveBillingRole(ctx context.Context, role domain.BillingRole) error {
	query := `
		INSERT INTO billing_roles (
			billing_role_id, name, amount_per_hour_minor,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		role.BillingRoleID, role.Name, role.AmountPerHourMinor,
		role.CreatedAt, role.CreatedBy, role.LastUpdatedAt, role.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert billing role %s: %w", role.BillingRoleID, err)
	}
	return nil
}
