package repository

import (
	"context"

	"quick-bite/internal/model"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user data access operations.
// Lookups return (nil, nil) when the record does not exist.
type UserRepository interface {
	// Create inserts a new user record.
	Create(ctx context.Context, user *model.User) error

	// GetByID retrieves a user by id.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// UpdateCart replaces the user's cart snapshot in a single write.
	UpdateCart(ctx context.Context, userID uuid.UUID, cart model.Cart) error
}

// FoodRepository defines the interface for catalogue data access operations.
type FoodRepository interface {
	// Create inserts a new catalogue item.
	Create(ctx context.Context, food *model.FoodItem) error

	// GetAll retrieves every catalogue item.
	GetAll(ctx context.Context) ([]model.FoodItem, error)

	// GetByID retrieves a single catalogue item by id.
	GetByID(ctx context.Context, id uuid.UUID) (*model.FoodItem, error)

	// Delete removes a catalogue item.
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// Create inserts a new order record.
	Create(ctx context.Context, order *model.Order) error

	// GetByID retrieves an order by id.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// GetByUser retrieves all orders owned by the user, newest first.
	GetByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error)

	// GetAll retrieves all orders system-wide, newest first.
	GetAll(ctx context.Context) ([]model.Order, error)

	// SetPayment updates the order's payment flag.
	SetPayment(ctx context.Context, id uuid.UUID, paid bool) error

	// UpdateStatus updates the order's fulfillment status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error

	// Delete removes an order record entirely.
	Delete(ctx context.Context, id uuid.UUID) error
}
