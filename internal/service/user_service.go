package service

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"quick-bite/internal/auth"
	"quick-bite/internal/model"
	"quick-bite/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const minPasswordLength = 8

// userService implements UserService.
type userService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
	logger   zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(
	userRepo repository.UserRepository,
	tokens *auth.TokenManager,
	logger zerolog.Logger,
) UserService {
	return &userService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger.With().Str("service", "user").Logger(),
	}
}

// Register creates a new customer account and returns a signed token.
func (s *userService) Register(ctx context.Context, req *model.RegisterRequest) (*AuthResult, error) {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		s.logger.Warn().Str("email", req.Email).Msg("invalid email at registration")
		return nil, model.ErrInvalidEmail
	}

	if len(req.Password) < minPasswordLength {
		return nil, model.ErrWeakPassword
	}

	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to check existing user")
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, model.ErrUserExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.RoleCustomer,
		Cart:         model.Cart{},
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID.String()).Msg("failed to create user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Sign(user.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID.String()).Msg("failed to sign token")
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.Info().
		Str("user_id", user.ID.String()).
		Msg("user registered")

	return &AuthResult{Token: token, Role: user.Role}, nil
}

// Login authenticates an existing account and returns a signed token.
func (s *userService) Login(ctx context.Context, req *model.LoginRequest) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load user for login")
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Warn().Str("user_id", user.ID.String()).Msg("invalid credentials")
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(user.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID.String()).Msg("failed to sign token")
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.Info().
		Str("user_id", user.ID.String()).
		Msg("user logged in")

	return &AuthResult{Token: token, Role: user.Role}, nil
}
