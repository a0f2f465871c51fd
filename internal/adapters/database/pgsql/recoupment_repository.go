package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	portsrepo "github.com/harmonia-labs/label_ledger_app/internal/core/ports/repositories"
)

type PgxRecoupmentRepository struct {
	BaseRepository
}

// NewPgxRecoupmentRepository creates a new repository for the recoupment ledger.
func NewPgxRecoupmentRepository(pool *pgxpool.Pool) portsrepo.RecoupmentRepositoryFacade {
	return &PgxRecoupmentRepository{BaseRepository{Pool: pool}}
}

// SaveEntries appends the entries within the caller's transaction, so the
// write becomes durable only when the caller commits.
func (r *PgxRecoupmentRepository) SaveEntries(ctx context.Context, tx pgx.Tx, entries []domain.RecoupmentLedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO recoupment_entries (
			entry_id, artist_id, scope, project_id, entry_type, amount_minor,
			currency_code, note, calc_snapshot,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	for _, e := range entries {
		var snapshot []byte
		if e.CalcSnapshot != nil {
			var err error
			snapshot, err = json.Marshal(e.CalcSnapshot)
			if err != nil {
				return fmt.Errorf("failed to marshal calc snapshot for entry %s: %w", e.EntryID, err)
			}
		}
		batch.Queue(query,
			e.EntryID,
			e.ArtistID,
			e.Scope,
			e.ProjectID,
			e.EntryType,
			e.AmountMinor,
			e.CurrencyCode,
			e.Note,
			snapshot,
			e.CreatedAt,
			e.CreatedBy,
			e.LastUpdatedAt,
			e.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute recoupment entry batch: %w", err)
	}
	return nil
}

// ListEntries returns the scope's entries in creation order, so summing the
// amounts in slice order yields the running balance.
func (r *PgxRecoupmentRepository) ListEntries(ctx context.Context, filter portsrepo.RecoupmentFilter) ([]domain.RecoupmentLedgerEntry, error) {
	query := `
		SELECT entry_id, artist_id, scope, project_id, entry_type, amount_minor,
		       currency_code, note, calc_snapshot,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM recoupment_entries
		WHERE artist_id = $1
		  AND scope = $2
		  AND ($3::text IS NULL OR project_id = $3)
		ORDER BY created_at, entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, filter.ArtistID, filter.Scope, filter.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recoupment entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.RecoupmentLedgerEntry
	for rows.Next() {
		var e domain.RecoupmentLedgerEntry
		var snapshot []byte
		err := rows.Scan(
			&e.EntryID,
			&e.ArtistID,
			&e.Scope,
			&e.ProjectID,
			&e.EntryType,
			&e.AmountMinor,
			&e.CurrencyCode,
			&e.Note,
			&snapshot,
			&e.CreatedAt,
			&e.CreatedBy,
			&e.LastUpdatedAt,
			&e.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recoupment entry: %w", err)
		}
		if len(snapshot) > 0 {
			var calc domain.RecoupmentCalculation
			if err := json.Unmarshal(snapshot, &calc); err != nil {
				return nil, fmt.Errorf("failed to unmarshal calc snapshot for entry %s: %w", e.EntryID, err)
			}
			e.CalcSnapshot = &calc
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recoupment entries: %w", err)
	}
	return entries, nil
}
