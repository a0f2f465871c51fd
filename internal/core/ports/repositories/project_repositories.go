package repositories

import (
	"context"

	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
)

// ProjectReader defines read operations for projects and artists.
type ProjectReader interface {
	// FindProjectByID retrieves a project by its unique identifier.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// FindProjectByCode retrieves a project by its human-facing code,
	// as referenced by imported rows.
	FindProjectByCode(ctx context.Context, code string) (*domain.Project, error)

	// ListProjects retrieves all projects in creation order.
	ListProjects(ctx context.Context) ([]domain.Project, error)

	// FindArtistByID retrieves an artist.
	FindArtistByID(ctx context.Context, artistID string) (*domain.Artist, error)
}

// ProjectWriter defines write operations for projects and artists.
type ProjectWriter interface {
	// SaveProject persists a new project. A duplicate code yields apperrors.ErrDuplicate.
	SaveProject(ctx context.Context, project domain.Project) error

	// SaveArtist persists a new artist.
	SaveArtist(ctx context.Context, artist domain.Artist) error
}

// ProjectRepositoryFacade combines all project operations.
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
