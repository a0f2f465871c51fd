package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harmonia-labs/label_ledger_app/internal/apperrors"
	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	portsrepo "github.com/harmonia-labs/label_ledger_app/internal/core/ports/repositories"
)

type PgxProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgxProjectRepository creates a new repository for projects and artists.
func NewPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{pool: pool}
}

const projectColumns = `project_id, code, name, artist_id, project_type, project_mode,
		start_date, end_date, created_at, created_by, last_updated_at, last_updated_by`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ProjectID, &p.Code, &p.Name, &p.ArtistID, &p.Type, &p.Mode,
		&p.StartDate, &p.EndDate, &p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}
	return &p, nil
}

// FindProjectByID retrieves a project by ID.
func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE project_id = $1;`
	return scanProject(r.pool.QueryRow(ctx, query, projectID))
}

// FindProjectByCode retrieves a project by its human-facing code.
func (r *PgxProjectRepository) FindProjectByCode(ctx context.Context, code string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE code = $1;`
	return scanProject(r.pool.QueryRow(ctx, query, code))
}

// ListProjects retrieves all projects in creation order.
func (r *PgxProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at, project_id;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(
			&p.ProjectID, &p.Code, &p.Name, &p.ArtistID, &p.Type, &p.Mode,
			&p.StartDate, &p.EndDate, &p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}
	return projects, nil
}

// FindArtistByID retrieves an artist.
func (r *PgxProjectRepository) FindArtistByID(ctx context.Context, artistID string) (*domain.Artist, error) {
	query := `
		SELECT artist_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM artists WHERE artist_id = $1;
	`
	var a domain.Artist
	err := r.pool.QueryRow(ctx, query, artistID).Scan(
		&a.ArtistID, &a.Name, &a.CreatedAt, &a.CreatedBy, &a.LastUpdatedAt, &a.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan artist: %w", err)
	}
	return &a, nil
}

// SaveProject persists a new project. A duplicate code maps to ErrDuplicate.
func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.pool.Exec(ctx, query,
		project.ProjectID, project.Code, project.Name, project.ArtistID, project.Type, project.Mode,
		project.StartDate, project.EndDate, project.CreatedAt, project.CreatedBy, project.LastUpdatedAt, project.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert project %s: %w", project.ProjectID, err)
	}
	return nil
}

// SaveArtist persists a new artist.
func (r *PgxProjectRepository) SaveArtist(ctx context.Context, artist domain.Artist) error {
	query := `
		INSERT INTO artists (artist_id, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		artist.ArtistID, artist.Name,
		artist.CreatedAt, artist.CreatedBy, artist.LastUpdatedAt, artist.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert artist %s: %w", artist.ArtistID, err)
	}
	return nil
}
