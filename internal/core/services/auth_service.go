package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/harmonia-labs/label_ledger_app/internal/apperrors"
	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	portssvc "github.com/harmonia-labs/label_ledger_app/internal/core/ports/services"
	"github.com/harmonia-labs/label_ledger_app/internal/dto"
	"github.com/harmonia-labs/label_ledger_app/internal/platform/config"
)

// ErrInvalidCredentials is returned for a wrong email/password combination.
// It deliberately does not distinguish the two cases.
var ErrInvalidCredentials = errors.New("invalid email or password")

// authService performs credentials sign-in and JWT issuance.
type authService struct {
	cfg     *config.Config
	userSvc portssvc.UserSvcFacade
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, userSvc portssvc.UserSvcFacade) portssvc.AuthSvcFacade {
	return &authService{
		cfg:     cfg,
		userSvc: userSvc,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies credentials and returns a signed JWT plus the user.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (string, *domain.User, error) {
	user, err := s.userSvc.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, user, nil
}

// TokenExpiry reports the configured token lifetime.
func (s *authService) TokenExpiry() time.Duration {
	return s.cfg.JWTExpiryDuration
}

func (s *authService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.UserID,
		Issuer:    s.cfg.JWTIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiryDuration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
