package payment

import (
	"context"

	"quick-bite/internal/model"
)

// Gateway abstracts the external payment provider.
type Gateway interface {
	// CreateCheckoutSession opens a payment session for the order and returns
	// the URL the customer is redirected to.
	CreateCheckoutSession(ctx context.Context, order *model.Order) (string, error)

	// VerifyCallback checks the authenticity of a payment callback. Callers
	// must invoke it before trusting the callback's outcome; implementations
	// decide how strict to be.
	VerifyCallback(signature string) error
}
