package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/harmonia-labs/label_ledger_app/internal/apperrors"
	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	portssvc "github.com/harmonia-labs/label_ledger_app/internal/core/ports/services"
	"github.com/harmonia-labs/label_ledger_app/internal/core/services"
	"github.com/harmonia-labs/label_ledger_app/internal/dto"
	"github.com/harmonia-labs/label_ledger_app/internal/platform/config"
)

// --- Mock UserService (as used by AuthService) ---

type MockUserService struct {
	mock.Mock
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "label-ledger-test",
	}
}

func TestLogin_IssuesTokenWithUserSubject(t *testing.T) {
	mockUsers := new(MockUserService)
	svc := services.NewAuthService(testAuthConfig(), mockUsers)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{UserID: "user-1", Email: "sam@label.example", PasswordHash: string(hash)}

	mockUsers.On("GetUserByEmail", ctx, "sam@label.example").Return(user, nil)

	token, loggedIn, err := svc.Login(ctx, dto.LoginRequest{Email: "sam@label.example", Password: "correct-horse"})

	require.NoError(t, err)
	assert.Equal(t, "user-1", loggedIn.UserID)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "label-ledger-test", claims.Issuer)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockUsers := new(MockUserService)
	svc := services.NewAuthService(testAuthConfig(), mockUsers)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{UserID: "user-1", PasswordHash: string(hash)}

	mockUsers.On("GetUserByEmail", ctx, "sam@label.example").Return(user, nil)

	_, _, err = svc.Login(ctx, dto.LoginRequest{Email: "sam@label.example", Password: "wrong"})

	assert.True(t, errors.Is(err, services.ErrInvalidCredentials))
}

func TestLogin_UnknownEmailIndistinguishable(t *testing.T) {
	mockUsers := new(MockUserService)
	svc := services.NewAuthService(testAuthConfig(), mockUsers)
	ctx := context.Background()

	mockUsers.On("GetUserByEmail", ctx, "nobody@label.example").
		Return(nil, apperrors.ErrNotFound)

	_, _, err := svc.Login(ctx, dto.LoginRequest{Email: "nobody@label.example", Password: "whatever"})

	assert.True(t, errors.Is(err, services.ErrInvalidCredentials))
}
