package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	"github.com/harmonia-labs/label_ledger_app/internal/core/services"
	"github.com/harmonia-labs/label_ledger_app/internal/dto"
)

func TestCreateUser_HashesPasswordAndLowercasesEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := services.NewUserService(mockRepo)
	ctx := context.Background()

	var saved domain.User
	mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.User)
		}).
		Return(nil)

	user, err := svc.CreateUser(ctx, dto.CreateUserRequest{
		Name:     "Sam Porter",
		Email:    "Sam.Porter@Label.Example",
		Password: "correct-horse",
		Role:     "MANAGER",
	}, "admin-1")

	require.NoError(t, err)
	assert.Equal(t, "sam.porter@label.example", user.Email)
	assert.Equal(t, domain.RoleManager, user.Role)
	assert.NotEqual(t, "correct-horse", saved.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("correct-horse")))
}

func TestGetUserByEmail_LowercasesLookup(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := services.NewUserService(mockRepo)
	ctx := context.Background()

	mockRepo.On("FindUserByEmail", ctx, "sam@label.example").
		Return(&domain.User{UserID: "user-1", Email: "sam@label.example"}, nil)

	user, err := svc.GetUserByEmail(ctx, "SAM@Label.Example")

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.UserID)
}
