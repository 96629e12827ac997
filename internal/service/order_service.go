package service

import (
	"context"
	"fmt"
	"time"

	"quick-bite/internal/model"
	"quick-bite/internal/payment"
	"quick-bite/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	gateway   payment.Gateway
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	gateway payment.Gateway,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		gateway:   gateway,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// PlaceOrder persists a new order, clears the user's cart, and opens a payment
// session. The cart clears before payment confirmation: a placed order always
// empties the cart, even if the payment later fails. The submitted amount is
// stored as-is, never recomputed from the catalogue.
func (s *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, req *model.PlaceOrderRequest) (string, error) {
	if err := s.validatePlaceRequest(req); err != nil {
		return "", err
	}

	order := &model.Order{
		ID:        uuid.New(),
		UserID:    userID,
		Items:     req.Items,
		Amount:    req.Amount,
		Address:   req.Address,
		Payment:   false,
		Status:    model.StatusFoodProcessing,
		CreatedAt: time.Now(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return "", fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.userRepo.UpdateCart(ctx, userID, model.Cart{}); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to clear cart")
		return "", fmt.Errorf("failed to clear cart: %w", err)
	}

	sessionURL, err := s.gateway.CreateCheckoutSession(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create payment session")
		return "", fmt.Errorf("failed to create payment session: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("user_id", userID.String()).
		Float64("amount", order.Amount).
		Msg("order placed")

	return sessionURL, nil
}

// VerifyOrder applies the payment callback's outcome. A confirmed payment
// sets the payment flag and leaves the fulfillment status untouched; a failed
// payment deletes the order entirely, leaving no trace.
func (s *orderService) VerifyOrder(ctx context.Context, req *model.VerifyOrderRequest, signature string) (bool, error) {
	if err := s.gateway.VerifyCallback(signature); err != nil {
		s.logger.Warn().Err(err).Str("order_id", req.OrderID).Msg("callback verification failed")
		return false, model.ErrNotAuthorized
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return false, model.ErrOrderNotFound
	}

	if !req.Success {
		if err := s.orderRepo.Delete(ctx, orderID); err != nil {
			s.logger.Error().Err(err).Str("order_id", req.OrderID).Msg("failed to roll back order")
			return false, fmt.Errorf("failed to roll back order: %w", err)
		}
		s.logger.Info().Str("order_id", req.OrderID).Msg("payment failed, order rolled back")
		return false, nil
	}

	if err := s.orderRepo.SetPayment(ctx, orderID, true); err != nil {
		s.logger.Error().Err(err).Str("order_id", req.OrderID).Msg("failed to confirm payment")
		return false, fmt.Errorf("failed to confirm payment: %w", err)
	}

	s.logger.Info().Str("order_id", req.OrderID).Msg("payment confirmed")
	return true, nil
}

// UserOrders returns all orders owned by the user.
func (s *orderService) UserOrders(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	orders, err := s.orderRepo.GetByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list user orders")
		return nil, fmt.Errorf("failed to list user orders: %w", err)
	}
	return orders, nil
}

// ListOrders returns all orders system-wide. Admin only.
func (s *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	if err := requireAdmin(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus sets the order's fulfillment status. Any status in the closed
// set is accepted regardless of the current one; there is deliberately no
// transition graph.
func (s *orderService) UpdateStatus(ctx context.Context, userID uuid.UUID, req *model.UpdateStatusRequest) error {
	if err := requireAdmin(ctx, s.userRepo, userID); err != nil {
		// The status endpoint has its own rejection wording that clients
		// match on.
		if err == model.ErrNotAdmin {
			return model.ErrNotAnAdmin
		}
		return err
	}

	if !req.Status.Valid() {
		return model.ErrInvalidStatus
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return model.ErrOrderNotFound
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, req.Status); err != nil {
		s.logger.Error().Err(err).Str("order_id", req.OrderID).Msg("failed to update status")
		return fmt.Errorf("failed to update status: %w", err)
	}

	s.logger.Info().
		Str("order_id", req.OrderID).
		Str("status", string(req.Status)).
		Msg("order status updated")

	return nil
}

func (s *orderService) validatePlaceRequest(req *model.PlaceOrderRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeValidation, "Invalid order data")
	}
	if len(req.Items) == 0 {
		return model.NewDomainError(model.ErrCodeValidation, "Order must contain at least one item")
	}
	for _, item := range req.Items {
		if item.Name == "" || item.Quantity <= 0 || item.Price < 0 {
			return model.NewDomainError(model.ErrCodeValidation, "Invalid order data")
		}
	}
	if req.Amount < 0 {
		return model.NewDomainError(model.ErrCodeValidation, "Invalid order data")
	}
	if req.Address == "" {
		return model.NewDomainError(model.ErrCodeValidation, "Address is required")
	}
	return nil
}
