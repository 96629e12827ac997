package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"quick-bite/internal/auth"
	"quick-bite/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testTokens() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour)
}

func TestUserService_Register_Success(t *testing.T) {
	ctx := context.Background()

	var created *model.User

	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", ctx, "new@example.com").Return(nil, nil)
	userRepo.On("Create", ctx, mock.MatchedBy(func(user *model.User) bool {
		created = user
		return user.Email == "new@example.com"
	})).Return(nil)

	svc := NewUserService(userRepo, testTokens(), zerolog.Nop())

	result, err := svc.Register(ctx, &model.RegisterRequest{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, model.RoleCustomer, result.Role)

	require.NotNil(t, created)
	assert.Equal(t, model.RoleCustomer, created.Role)
	assert.Empty(t, created.Cart)
	assert.NotNil(t, created.Cart)
	assert.NotEqual(t, "password123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("password123")))
}

func TestUserService_Register_InvalidEmail(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)

	svc := NewUserService(userRepo, testTokens(), zerolog.Nop())

	_, err := svc.Register(ctx, &model.RegisterRequest{
		Name:     "User",
		Email:    "not-an-email",
		Password: "password123",
	})

	assert.ErrorIs(t, err, model.ErrInvalidEmail)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)

	svc := NewUserService(userRepo, testTokens(), zerolog.Nop())

	_, err := svc.Register(ctx, &model.RegisterRequest{
		Name:     "User",
		Email:    "user@example.com",
		Password: "weak",
	})

	assert.ErrorIs(t, err, model.ErrWeakPassword)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	existing := testUser(model.Cart{})
	existing.Email = "taken@example.com"

	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", ctx, "taken@example.com").Return(existing, nil)

	svc := NewUserService(userRepo, testTokens(), zerolog.Nop())

	_, err := svc.Register(ctx, &model.RegisterRequest{
		Name:     "User",
		Email:    "taken@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, model.ErrUserExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Login_Success(t *testing.T) {
	ctx := context.Background()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := testUser(model.Cart{})
	user.PasswordHash = hash

	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil)

	svc := NewUserService(userRepo, testTokens(), zerolog.Nop())

	result, err := svc.Login(ctx, &model.LoginRequest{
		Email:    user.Email,
		Password: "password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, model.RoleCustomer, result.Role)

	// The minted token must verify back to the same user.
	got, err := testTokens().Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()

	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, nil)

	svc := NewUserService(userRepo, testTokens(), zerolog.Nop())

	_, err := svc.Login(ctx, &model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := testUser(model.Cart{})
	user.PasswordHash = hash

	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil)

	svc := NewUserService(userRepo, testTokens(), zerolog.Nop())

	_, err = svc.Login(ctx, &model.LoginRequest{
		Email:    user.Email,
		Password: "wrongpassword",
	})

	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestUserService_Login_StorageError(t *testing.T) {
	ctx := context.Background()

	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", ctx, mock.Anything).Return(nil, errors.New("connection refused"))

	svc := NewUserService(userRepo, testTokens(), zerolog.Nop())

	_, err := svc.Login(ctx, &model.LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrUserNotFound)
}
