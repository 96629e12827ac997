package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"quick-bite/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// userRepository implements the UserRepository interface using PostgreSQL.
// The cart snapshot lives as a JSONB document on the user row, so every cart
// mutation is a single-row atomic write.
type userRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewUserRepository creates a new PostgreSQL-backed user repository.
func NewUserRepository(pool *pgxpool.Pool, logger zerolog.Logger) UserRepository {
	return &userRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "user").Logger(),
	}
}

// Create inserts a new user record.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, cart, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	cartJSON, err := json.Marshal(user.Cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	_, err = r.pool.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, cartJSON, user.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("user_id", user.ID.String()).
			Msg("failed to create user")
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Debug().
		Str("user_id", user.ID.String()).
		Msg("user created successfully")

	return nil
}

// GetByID retrieves a user by id. Returns (nil, nil) when not found.
func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, cart, created_at
		FROM users
		WHERE id = $1
	`
	return r.getOne(ctx, query, id)
}

// GetByEmail retrieves a user by email. Returns (nil, nil) when not found.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, cart, created_at
		FROM users
		WHERE email = $1
	`
	return r.getOne(ctx, query, email)
}

func (r *userRepository) getOne(ctx context.Context, query string, arg any) (*model.User, error) {
	var user model.User
	var cartJSON []byte

	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&cartJSON,
		&user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Msg("user not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query user")
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if err := json.Unmarshal(cartJSON, &user.Cart); err != nil {
		r.logger.Error().Err(err).Str("user_id", user.ID.String()).Msg("failed to unmarshal cart")
		return nil, fmt.Errorf("failed to unmarshal cart: %w", err)
	}
	if user.Cart == nil {
		user.Cart = model.Cart{}
	}

	return &user, nil
}

// UpdateCart replaces the user's cart snapshot in a single write.
func (r *userRepository) UpdateCart(ctx context.Context, userID uuid.UUID, cart model.Cart) error {
	query := `
		UPDATE users
		SET cart = $2
		WHERE id = $1
	`

	cartJSON, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, userID, cartJSON)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("user_id", userID.String()).
			Msg("failed to update cart")
		return fmt.Errorf("failed to update cart: %w", err)
	}

	r.logger.Debug().
		Str("user_id", userID.String()).
		Int("item_count", len(cart)).
		Msg("cart updated successfully")

	return nil
}
