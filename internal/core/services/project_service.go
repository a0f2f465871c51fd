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

// projectService manages projects and artists.
type projectService struct {
	projectRepo portsrepo.ProjectRepositoryFacade
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo portsrepo.ProjectRepositoryFacade) portssvc.ProjectSvcFacade {
	return &projectService{projectRepo: projectRepo}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

// CreateProject creates a project. Artist projects must name an artist;
// the mode is fixed at creation and never changes afterwards.
func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error) {
	if domain.ProjectType(req.Type) == domain.ProjectArtist && req.ArtistID == nil {
		return nil, fmt.Errorf("%w: artist projects require an artistID", apperrors.ErrValidation)
	}

	if req.ArtistID != nil {
		if _, err := s.projectRepo.FindArtistByID(ctx, *req.ArtistID); err != nil {
			return nil, fmt.Errorf("failed to find artist %s: %w", *req.ArtistID, err)
		}
	}

	project := domain.Project{
		ProjectID:   uuid.NewString(),
		Code:        req.Code,
		Name:        req.Name,
		ArtistID:    req.ArtistID,
		Type:        domain.ProjectType(req.Type),
		Mode:        domain.ProjectMode(req.Mode),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		AuditFields: newAuditFields(creatorUserID),
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}
	return &project, nil
}

// GetProject retrieves a project by ID.
func (s *projectService) GetProject(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project %s: %w", projectID, err)
	}
	return project, nil
}

// ListProjects retrieves all projects.
func (s *projectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// CreateArtist creates an artist.
func (s *projectService) CreateArtist(ctx context.Context, req dto.CreateArtistRequest, creatorUserID string) (*domain.Artist, error) {
	artist := domain.Artist{
		ArtistID:    uuid.NewString(),
		Name:        req.Name,
		AuditFields: newAuditFields(creatorUserID),
	}

	if err := s.projectRepo.SaveArtist(ctx, artist); err != nil {
		return nil, fmt.Errorf("failed to save artist: %w", err)
	}
	return &artist, nil
}
