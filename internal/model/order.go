package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the closed set of fulfillment stages. There is no enforced
// transition graph: an admin may set any order to any status in this set.
type OrderStatus string

const (
	StatusFoodProcessing OrderStatus = "Food Processing"
	StatusOutForDelivery OrderStatus = "Out for delivery"
	StatusDelivered      OrderStatus = "Delivered"
)

// Valid reports whether s is a known fulfillment status.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusFoodProcessing, StatusOutForDelivery, StatusDelivered:
		return true
	}
	return false
}

// OrderItem is a point-in-time copy of a catalogue item at checkout. Later
// catalogue changes never affect a placed order.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order represents a placed order. Payment and Status are the only fields
// that mutate after creation.
type Order struct {
	ID        uuid.UUID   `json:"id" db:"id"`
	UserID    uuid.UUID   `json:"userId" db:"user_id"`
	Items     []OrderItem `json:"items" db:"items"`
	Amount    float64     `json:"amount" db:"amount"`
	Address   string      `json:"address" db:"address"`
	Payment   bool        `json:"payment" db:"payment"`
	Status    OrderStatus `json:"status" db:"status"`
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`
}
