package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"quick-bite/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testUser(cart model.Cart) *model.User {
	return &model.User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "hash",
		Role:         model.RoleCustomer,
		Cart:         cart,
		CreatedAt:    time.Now(),
	}
}

func TestCartService_AddItem_NewItem(t *testing.T) {
	ctx := context.Background()
	user := testUser(model.Cart{})

	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", ctx, user.ID).Return(user, nil)
	userRepo.On("UpdateCart", ctx, user.ID, model.Cart{"pizza": 1}).Return(nil)

	svc := NewCartService(userRepo, zerolog.Nop())

	err := svc.AddItem(ctx, user.ID, "pizza")

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestCartService_AddItem_IncrementsExisting(t *testing.T) {
	ctx := context.Background()
	user := testUser(model.Cart{"pizza": 2})

	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", ctx, user.ID).Return(user, nil)
	userRepo.On("UpdateCart", ctx, user.ID, model.Cart{"pizza": 3}).Return(nil)

	svc := NewCartService(userRepo, zerolog.Nop())

	err := svc.AddItem(ctx, user.ID, "pizza")

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestCartService_RemoveItem_Decrements(t *testing.T) {
	ctx := context.Background()
	user := testUser(model.Cart{"pizza": 3})

	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", ctx, user.ID).Return(user, nil)
	userRepo.On("UpdateCart", ctx, user.ID, model.Cart{"pizza": 2}).Return(nil)

	svc := NewCartService(userRepo, zerolog.Nop())

	err := svc.RemoveItem(ctx, user.ID, "pizza")

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestCartService_RemoveItem_DeletesEntryAtOne(t *testing.T) {
	ctx := context.Background()
	user := testUser(model.Cart{"pizza": 1, "salad": 2})

	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", ctx, user.ID).Return(user, nil)
	userRepo.On("UpdateCart", ctx, user.ID, mock.MatchedBy(func(cart model.Cart) bool {
		_, exists := cart["pizza"]
		return !exists && cart["salad"] == 2
	})).Return(nil)

	svc := NewCartService(userRepo, zerolog.Nop())

	err := svc.RemoveItem(ctx, user.ID, "pizza")

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestCartService_RemoveItem_AbsentIsNoOp(t *testing.T) {
	ctx := context.Background()
	user := testUser(model.Cart{"pizza": 1})

	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", ctx, user.ID).Return(user, nil)
	userRepo.On("UpdateCart", ctx, user.ID, model.Cart{"pizza": 1}).Return(nil)

	svc := NewCartService(userRepo, zerolog.Nop())

	err := svc.RemoveItem(ctx, user.ID, "burger")

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestCartService_GetCart_ReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	user := testUser(model.Cart{"pizza": 2, "salad": 1})

	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", ctx, user.ID).Return(user, nil)

	svc := NewCartService(userRepo, zerolog.Nop())

	cart, err := svc.GetCart(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, model.Cart{"pizza": 2, "salad": 1}, cart)
	userRepo.AssertNotCalled(t, "UpdateCart", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_UserNotFound(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", ctx, userID).Return(nil, nil)

	svc := NewCartService(userRepo, zerolog.Nop())

	err := svc.AddItem(ctx, userID, "pizza")
	assert.ErrorIs(t, err, model.ErrUserNotFound)

	err = svc.RemoveItem(ctx, userID, "pizza")
	assert.ErrorIs(t, err, model.ErrUserNotFound)

	_, err = svc.GetCart(ctx, userID)
	assert.ErrorIs(t, err, model.ErrUserNotFound)

	userRepo.AssertNotCalled(t, "UpdateCart", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_StorageError(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", ctx, userID).Return(nil, errors.New("connection refused"))

	svc := NewCartService(userRepo, zerolog.Nop())

	err := svc.AddItem(ctx, userID, "pizza")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrUserNotFound)
}

func TestCartService_PersistFailure(t *testing.T) {
	ctx := context.Background()
	user := testUser(model.Cart{})

	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", ctx, user.ID).Return(user, nil)
	userRepo.On("UpdateCart", ctx, user.ID, mock.Anything).Return(errors.New("write failed"))

	svc := NewCartService(userRepo, zerolog.Nop())

	err := svc.AddItem(ctx, user.ID, "pizza")
	assert.Error(t, err)
}
