package model

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of user roles. Adding a role means touching every
// switch over this type, which is the point.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether r grants administrative access.
func (r Role) IsAdmin() bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleCustomer:
		return false
	}
	return false
}

// Cart maps item IDs to pending quantities. Invariant: no entry is ever <= 0;
// decrementing an entry at quantity 1 deletes the key.
type Cart map[string]int

// Add increments the quantity for itemID, starting from zero if absent.
func (c Cart) Add(itemID string) {
	c[itemID]++
}

// Remove decrements the quantity for itemID, deleting the entry when it
// reaches zero. Removing an absent item is a no-op.
func (c Cart) Remove(itemID string) {
	qty, ok := c[itemID]
	if !ok {
		return
	}
	if qty <= 1 {
		delete(c, itemID)
		return
	}
	c[itemID] = qty - 1
}

// User represents a registered account.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	Cart         Cart      `json:"cartData" db:"cart"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
