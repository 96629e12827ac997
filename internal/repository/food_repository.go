package repository

import (
	"context"
	"fmt"

	"quick-bite/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// foodRepository implements the FoodRepository interface using PostgreSQL.
type foodRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewFoodRepository creates a new PostgreSQL-backed catalogue repository.
func NewFoodRepository(pool *pgxpool.Pool, logger zerolog.Logger) FoodRepository {
	return &foodRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "food").Logger(),
	}
}

// Create inserts a new catalogue item.
func (r *foodRepository) Create(ctx context.Context, food *model.FoodItem) error {
	query := `
		INSERT INTO foods (id, name, description, price, category, image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		food.ID, food.Name, food.Description, food.Price, food.Category, food.Image, food.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("food_id", food.ID.String()).
			Msg("failed to create food item")
		return fmt.Errorf("failed to create food item: %w", err)
	}

	r.logger.Debug().
		Str("food_id", food.ID.String()).
		Str("name", food.Name).
		Msg("food item created successfully")

	return nil
}

// GetAll retrieves every catalogue item.
func (r *foodRepository) GetAll(ctx context.Context) ([]model.FoodItem, error) {
	query := `
		SELECT id, name, description, price, category, image, created_at
		FROM foods
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query food items")
		return nil, fmt.Errorf("failed to query food items: %w", err)
	}
	defer rows.Close()

	var foods []model.FoodItem
	for rows.Next() {
		var food model.FoodItem
		err := rows.Scan(
			&food.ID,
			&food.Name,
			&food.Description,
			&food.Price,
			&food.Category,
			&food.Image,
			&food.CreatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan food item row")
			return nil, fmt.Errorf("failed to scan food item: %w", err)
		}
		foods = append(foods, food)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating food item rows")
		return nil, fmt.Errorf("error iterating food items: %w", err)
	}

	return foods, nil
}

// GetByID retrieves a single catalogue item by id. Returns (nil, nil) when
// not found.
func (r *foodRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.FoodItem, error) {
	query := `
		SELECT id, name, description, price, category, image, created_at
		FROM foods
		WHERE id = $1
	`

	var food model.FoodItem
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&food.ID,
		&food.Name,
		&food.Description,
		&food.Price,
		&food.Category,
		&food.Image,
		&food.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("food_id", id.String()).Msg("food item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("food_id", id.String()).Msg("failed to query food item")
		return nil, fmt.Errorf("failed to query food item: %w", err)
	}

	return &food, nil
}

// Delete removes a catalogue item.
func (r *foodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM foods WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("food_id", id.String()).
			Msg("failed to delete food item")
		return fmt.Errorf("failed to delete food item: %w", err)
	}

	r.logger.Debug().
		Str("food_id", id.String()).
		Msg("food item deleted successfully")

	return nil
}
