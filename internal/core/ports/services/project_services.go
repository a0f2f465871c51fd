package services

import (
	"context"
	"time"

	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	"github.com/harmonia-labs/label_ledger_app/internal/dto"
)

// ProjectSvcFacade manages projects and artists.
type ProjectSvcFacade interface {
	// CreateProject creates a project; duplicate codes yield apperrors.ErrDuplicate.
	CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error)

	// GetProject retrieves a project by ID.
	GetProject(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProjects retrieves all projects.
	ListProjects(ctx context.Context) ([]domain.Project, error)

	// CreateArtist creates an artist.
	CreateArtist(ctx context.Context, req dto.CreateArtistRequest, creatorUserID string) (*domain.Artist, error)
}

// IncomeSvcFacade records and lists project income.
type IncomeSvcFacade interface {
	// RecordIncome persists a manual income record.
	RecordIncome(ctx context.Context, req dto.RecordIncomeRequest, creatorUserID string) (*domain.Income, error)

	// ListIncome returns a project's income rows.
	ListIncome(ctx context.Context, projectID string) ([]domain.Income, error)
}

// UserSvcFacade manages dashboard users.
type UserSvcFacade interface {
	// CreateUser creates a user with a bcrypt-hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// AuthSvcFacade performs credentials sign-in and token issuance.
type AuthSvcFacade interface {
	// Login verifies credentials and returns a signed JWT plus the user.
	Login(ctx context.Context, req dto.LoginRequest) (string, *domain.User, error)

	// TokenExpiry reports the configured token lifetime.
	TokenExpiry() time.Duration
}
