package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"quick-bite/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func addFoodRequest() *AddFoodRequest {
	return &AddFoodRequest{
		Name:        "Margherita",
		Description: "Classic pizza",
		Price:       12.5,
		Category:    "Pizza",
		Image:       strings.NewReader("fake image bytes"),
		ImageName:   "margherita.jpg",
	}
}

func TestFoodService_Add_Admin(t *testing.T) {
	ctx := context.Background()
	admin := adminUser()
	dir := t.TempDir()

	var created *model.FoodItem

	foodRepo := new(MockFoodRepository)
	foodRepo.On("Create", ctx, mock.MatchedBy(func(food *model.FoodItem) bool {
		created = food
		return food.Name == "Margherita"
	})).Return(nil)

	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", ctx, admin.ID).Return(admin, nil)

	svc := NewFoodService(foodRepo, userRepo, dir, zerolog.Nop())

	food, err := svc.Add(ctx, admin.ID, addFoodRequest())

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, food.ID, created.ID)
	assert.True(t, strings.HasSuffix(created.Image, ".jpg"))

	// The image must exist on disk under the stored name.
	data, err := os.ReadFile(filepath.Join(dir, created.Image))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestFoodService_Add_ForbiddenForCustomer(t *testing.T) {
	ctx := context.Background()
	customer := testUser(model.Cart{})
	dir := t.TempDir()

	foodRepo := new(MockFoodRepository)
	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", ctx, customer.ID).Return(customer, nil)

	svc := NewFoodService(foodRepo, userRepo, dir, zerolog.Nop())

	_, err := svc.Add(ctx, customer.ID, addFoodRequest())

	assert.ErrorIs(t, err, model.ErrNotAdmin)
	foodRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	// Nothing may be written before the gate rejects.
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestFoodService_Add_ValidationFailure(t *testing.T) {
	ctx := context.Background()
	admin := adminUser()

	foodRepo := new(MockFoodRepository)
	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", ctx, admin.ID).Return(admin, nil)

	svc := NewFoodService(foodRepo, userRepo, t.TempDir(), zerolog.Nop())

	req := addFoodRequest()
	req.Name = ""

	_, err := svc.Add(ctx, admin.ID, req)

	assert.Error(t, err)
	foodRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFoodService_List(t *testing.T) {
	ctx := context.Background()
	foods := []model.FoodItem{
		{ID: uuid.New(), Name: "Margherita", Price: 12.5, Category: "Pizza", CreatedAt: time.Now()},
	}

	foodRepo := new(MockFoodRepository)
	foodRepo.On("GetAll", ctx).Return(foods, nil)

	svc := NewFoodService(foodRepo, new(MockUserRepository), t.TempDir(), zerolog.Nop())

	got, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, foods, got)
}

func TestFoodService_Remove_Admin(t *testing.T) {
	ctx := context.Background()
	admin := adminUser()
	dir := t.TempDir()

	food := &model.FoodItem{ID: uuid.New(), Name: "Margherita", Image: "12345.jpg"}
	require.NoError(t, os.WriteFile(filepath.Join(dir, food.Image), []byte("img"), 0o644))

	foodRepo := new(MockFoodRepository)
	foodRepo.On("GetByID", ctx, food.ID).Return(food, nil)
	foodRepo.On("Delete", ctx, food.ID).Return(nil)

	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", ctx, admin.ID).Return(admin, nil)

	svc := NewFoodService(foodRepo, userRepo, dir, zerolog.Nop())

	err := svc.Remove(ctx, admin.ID, food.ID)

	require.NoError(t, err)
	foodRepo.AssertExpectations(t)

	_, statErr := os.Stat(filepath.Join(dir, food.Image))
	assert.True(t, os.IsNotExist(statErr))
}

func TestFoodService_Remove_ForbiddenForCustomer(t *testing.T) {
	ctx := context.Background()
	customer := testUser(model.Cart{})

	foodRepo := new(MockFoodRepository)
	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", ctx, customer.ID).Return(customer, nil)

	svc := NewFoodService(foodRepo, userRepo, t.TempDir(), zerolog.Nop())

	err := svc.Remove(ctx, customer.ID, uuid.New())

	assert.ErrorIs(t, err, model.ErrNotAdmin)
	foodRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestFoodService_Remove_NotFound(t *testing.T) {
	ctx := context.Background()
	admin := adminUser()

	foodRepo := new(MockFoodRepository)
	foodRepo.On("GetByID", ctx, mock.Anything).Return(nil, nil)

	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", ctx, admin.ID).Return(admin, nil)

	svc := NewFoodService(foodRepo, userRepo, t.TempDir(), zerolog.Nop())

	err := svc.Remove(ctx, admin.ID, uuid.New())

	assert.Error(t, err)
	foodRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
