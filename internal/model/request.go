package model

// RegisterRequest is the payload for POST /api/user/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for POST /api/user/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CartRequest is the payload for cart add/remove operations.
type CartRequest struct {
	ItemID string `json:"itemId"`
}

// PlaceOrderRequest is the payload for POST /api/order/place. Amount is
// trusted as submitted; the engine does not recompute it from the catalogue.
type PlaceOrderRequest struct {
	Items   []OrderItem `json:"items"`
	Amount  float64     `json:"amount"`
	Address string      `json:"address"`
}

// VerifyOrderRequest is the payment-callback payload for POST /api/order/verify.
type VerifyOrderRequest struct {
	OrderID string `json:"orderId"`
	Success bool   `json:"success"`
}

// UpdateStatusRequest is the payload for POST /api/order/status.
type UpdateStatusRequest struct {
	OrderID string      `json:"orderId"`
	Status  OrderStatus `json:"status"`
}

// RemoveFoodRequest is the payload for POST /api/food/remove.
type RemoveFoodRequest struct {
	ID string `json:"id"`
}
