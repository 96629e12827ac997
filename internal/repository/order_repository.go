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

// orderRepository implements the OrderRepository interface using PostgreSQL.
// Line items are a JSONB document on the order row: a point-in-time copy,
// decoupled from the catalogue.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// Create inserts a new order record.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	query := `
		INSERT INTO orders (id, user_id, items, amount, address, payment, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal order items: %w", err)
	}

	_, err = r.pool.Exec(ctx, query,
		order.ID, order.UserID, itemsJSON, order.Amount, order.Address,
		order.Payment, order.Status, order.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID.String()).
		Msg("order created successfully")

	return nil
}

// GetByID retrieves an order by id. Returns (nil, nil) when not found.
func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	query := `
		SELECT id, user_id, items, amount, address, payment, status, created_at
		FROM orders
		WHERE id = $1
	`

	var order model.Order
	var itemsJSON []byte

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&itemsJSON,
		&order.Amount,
		&order.Address,
		&order.Payment,
		&order.Status,
		&order.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	if err := json.Unmarshal(itemsJSON, &order.Items); err != nil {
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to unmarshal order items")
		return nil, fmt.Errorf("failed to unmarshal order items: %w", err)
	}

	return &order, nil
}

// GetByUser retrieves all orders owned by the user, newest first.
func (r *orderRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	query := `
		SELECT id, user_id, items, amount, address, payment, status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return r.getMany(ctx, query, userID)
}

// GetAll retrieves all orders system-wide, newest first.
func (r *orderRepository) GetAll(ctx context.Context) ([]model.Order, error) {
	query := `
		SELECT id, user_id, items, amount, address, payment, status, created_at
		FROM orders
		ORDER BY created_at DESC
	`
	return r.getMany(ctx, query)
}

func (r *orderRepository) getMany(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var order model.Order
		var itemsJSON []byte
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&itemsJSON,
			&order.Amount,
			&order.Address,
			&order.Payment,
			&order.Status,
			&order.CreatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		if err := json.Unmarshal(itemsJSON, &order.Items); err != nil {
			r.logger.Error().Err(err).Msg("failed to unmarshal order items")
			return nil, fmt.Errorf("failed to unmarshal order items: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}

// SetPayment updates the order's payment flag.
func (r *orderRepository) SetPayment(ctx context.Context, id uuid.UUID, paid bool) error {
	query := `UPDATE orders SET payment = $2 WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id, paid)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", id.String()).
			Msg("failed to update payment flag")
		return fmt.Errorf("failed to update payment flag: %w", err)
	}

	r.logger.Debug().
		Str("order_id", id.String()).
		Bool("paid", paid).
		Msg("payment flag updated")

	return nil
}

// UpdateStatus updates the order's fulfillment status.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error {
	query := `UPDATE orders SET status = $2 WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", id.String()).
			Str("status", string(status)).
			Msg("failed to update order status")
		return fmt.Errorf("failed to update order status: %w", err)
	}

	r.logger.Debug().
		Str("order_id", id.String()).
		Str("status", string(status)).
		Msg("order status updated")

	return nil
}

// Delete removes an order record entirely.
func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM orders WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", id.String()).
			Msg("failed to delete order")
		return fmt.Errorf("failed to delete order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", id.String()).
		Msg("order deleted")

	return nil
}
