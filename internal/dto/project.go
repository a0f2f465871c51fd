package dto

import (
	"time"

	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
)

// CreateProjectRequest defines the payload for creating a project.
type CreateProjectRequest struct {
	Code      string     `json:"code" binding:"required"`
	Name      string     `json:"name" binding:"required"`
	ArtistID  *string    `json:"artistID,omitempty"`
	Type      string     `json:"type" binding:"required,oneof=ARTIST INTERNAL"`
	Mode      string     `json:"mode" binding:"required,oneof=STANDALONE MAIN_TAB"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// CreateArtistRequest defines the payload for creating an artist.
type CreateArtistRequest struct {
	Name string `json:"name" binding:"required"`
}

// ProjectResponse defines the data returned for a project.
type ProjectResponse struct {
	ProjectID string     `json:"projectID"`
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	ArtistID  *string    `json:"artistID,omitempty"`
	Type      string     `json:"type"`
	Mode      string     `json:"mode"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// ToProjectResponse converts a domain.Project to ProjectResponse DTO.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID: p.ProjectID,
		Code:      p.Code,
		Name:      p.Name,
		ArtistID:  p.ArtistID,
		Type:      string(p.Type),
		Mode:      string(p.Mode),
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		CreatedAt: p.CreatedAt,
	}
}

// ToProjectResponses converts a slice of domain.Project to []ProjectResponse.
func ToProjectResponses(projects []domain.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = ToProjectResponse(&projects[i])
	}
	return responses
}
