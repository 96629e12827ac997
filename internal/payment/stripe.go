package payment

import (
	"context"
	"fmt"
	"math"

	"quick-bite/internal/config"
	"quick-bite/internal/model"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// stripeGateway implements Gateway on top of Stripe Checkout.
type stripeGateway struct {
	api    *client.API
	cfg    config.StripeConfig
	logger zerolog.Logger
}

// NewStripeGateway creates a Stripe-backed payment gateway. The API key is
// injected through the client, never set on package globals.
func NewStripeGateway(cfg config.StripeConfig, logger zerolog.Logger) Gateway {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)

	return &stripeGateway{
		api:    api,
		cfg:    cfg,
		logger: logger.With().Str("gateway", "stripe").Logger(),
	}
}

// CreateCheckoutSession opens a Stripe Checkout session scoped to the order's
// line items plus the flat delivery charge, redirecting back to the frontend
// verify page with the order id and outcome.
func (g *stripeGateway) CreateCheckoutSession(ctx context.Context, order *model.Order) (string, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(order.Items)+1)
	for _, item := range order.Items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(g.cfg.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(toCents(item.Price)),
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}

	if g.cfg.DeliveryFee > 0 {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(g.cfg.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String("Delivery Charges"),
				},
				UnitAmount: stripe.Int64(toCents(g.cfg.DeliveryFee)),
			},
			Quantity: stripe.Int64(1),
		})
	}

	params := &stripe.CheckoutSessionParams{
		LineItems:  lineItems,
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(fmt.Sprintf("%s/verify?success=true&orderId=%s", g.cfg.FrontendURL, order.ID)),
		CancelURL:  stripe.String(fmt.Sprintf("%s/verify?success=false&orderId=%s", g.cfg.FrontendURL, order.ID)),
	}
	params.Context = ctx

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		g.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to create checkout session")
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	g.logger.Info().
		Str("order_id", order.ID.String()).
		Str("session_id", session.ID).
		Msg("checkout session created")

	return session.URL, nil
}

// VerifyCallback accepts every callback today. The seam exists so webhook
// signature checking can land here without changing callers.
func (g *stripeGateway) VerifyCallback(signature string) error {
	return nil
}

// toCents converts a decimal price to the smallest currency unit.
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
