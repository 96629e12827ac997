package service

import (
	"context"

	"quick-bite/internal/model"

	"github.com/google/uuid"
)

// AuthResult is returned by registration and login: a signed bearer token and
// the account's role for the client UI.
type AuthResult struct {
	Token string
	Role  model.Role
}

// UserService defines operations for account management.
type UserService interface {
	// Register creates a new customer account and returns a signed token.
	Register(ctx context.Context, req *model.RegisterRequest) (*AuthResult, error)

	// Login authenticates an existing account and returns a signed token.
	Login(ctx context.Context, req *model.LoginRequest) (*AuthResult, error)
}

// CartService defines operations on a user's cart snapshot.
type CartService interface {
	// AddItem increments the quantity for itemID by one.
	AddItem(ctx context.Context, userID uuid.UUID, itemID string) error

	// RemoveItem decrements the quantity for itemID by one, removing the
	// entry at zero. Absent items are a successful no-op.
	RemoveItem(ctx context.Context, userID uuid.UUID, itemID string) error

	// GetCart returns the current snapshot unmodified.
	GetCart(ctx context.Context, userID uuid.UUID) (model.Cart, error)
}

// FoodService defines operations for catalogue management.
type FoodService interface {
	// Add stores the image and creates a catalogue item. Admin only.
	Add(ctx context.Context, userID uuid.UUID, req *AddFoodRequest) (*model.FoodItem, error)

	// List retrieves the full catalogue.
	List(ctx context.Context) ([]model.FoodItem, error)

	// Remove deletes a catalogue item and its stored image. Admin only.
	Remove(ctx context.Context, userID uuid.UUID, foodID uuid.UUID) error
}

// OrderService defines checkout, payment confirmation, and fulfillment
// operations.
type OrderService interface {
	// PlaceOrder converts the submitted items into a persisted order, clears
	// the user's cart, and returns the payment session redirect URL.
	PlaceOrder(ctx context.Context, userID uuid.UUID, req *model.PlaceOrderRequest) (string, error)

	// VerifyOrder applies the payment callback's outcome: confirm the payment
	// flag on success, delete the order on failure. Returns whether the order
	// is now paid.
	VerifyOrder(ctx context.Context, req *model.VerifyOrderRequest, signature string) (bool, error)

	// UserOrders returns all orders owned by the user.
	UserOrders(ctx context.Context, userID uuid.UUID) ([]model.Order, error)

	// ListOrders returns all orders system-wide. Admin only.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]model.Order, error)

	// UpdateStatus sets the order's fulfillment status. Admin only; any
	// status in the closed set is accepted from any prior status.
	UpdateStatus(ctx context.Context, userID uuid.UUID, req *model.UpdateStatusRequest) error
}
