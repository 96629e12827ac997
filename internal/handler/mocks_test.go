package handler

import (
	"context"

	"quick-bite/internal/model"
	"quick-bite/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCartService is a mock implementation of service.CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) AddItem(ctx context.Context, userID uuid.UUID, itemID string) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

func (m *MockCartService) RemoveItem(ctx context.Context, userID uuid.UUID, itemID string) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

func (m *MockCartService) GetCart(ctx context.Context, userID uuid.UUID) (model.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Cart), args.Error(1)
}

// MockOrderService is a mock implementation of service.OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) PlaceOrder(ctx context.Context, userID uuid.UUID, req *model.PlaceOrderRequest) (string, error) {
	args := m.Called(ctx, userID, req)
	return args.String(0), args.Error(1)
}

func (m *MockOrderService) VerifyOrder(ctx context.Context, req *model.VerifyOrderRequest, signature string) (bool, error) {
	args := m.Called(ctx, req, signature)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderService) UserOrders(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, userID uuid.UUID, req *model.UpdateStatusRequest) error {
	args := m.Called(ctx, userID, req)
	return args.Error(0)
}

// compile-time interface checks
var (
	_ service.CartService  = (*MockCartService)(nil)
	_ service.OrderService = (*MockOrderService)(nil)
)
