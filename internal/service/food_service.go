package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"quick-bite/internal/model"
	"quick-bite/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AddFoodRequest carries a new catalogue item together with its image upload.
type AddFoodRequest struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Image       io.Reader
	ImageName   string // original filename, used for its extension only
}

// foodService implements FoodService. Images live on local disk under the
// configured upload directory and are served statically.
type foodService struct {
	foodRepo  repository.FoodRepository
	userRepo  repository.UserRepository
	uploadDir string
	logger    zerolog.Logger
}

// NewFoodService creates a new catalogue service.
func NewFoodService(
	foodRepo repository.FoodRepository,
	userRepo repository.UserRepository,
	uploadDir string,
	logger zerolog.Logger,
) FoodService {
	return &foodService{
		foodRepo:  foodRepo,
		userRepo:  userRepo,
		uploadDir: uploadDir,
		logger:    logger.With().Str("service", "food").Logger(),
	}
}

// Add stores the image and creates a catalogue item. The admin check runs
// before anything is written.
func (s *foodService) Add(ctx context.Context, userID uuid.UUID, req *AddFoodRequest) (*model.FoodItem, error) {
	if err := requireAdmin(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	if err := s.validateAddRequest(req); err != nil {
		return nil, err
	}

	id := uuid.New()
	imageName := fmt.Sprintf("%d%s", time.Now().UnixMilli(), filepath.Ext(req.ImageName))
	if err := s.saveImage(req.Image, imageName); err != nil {
		s.logger.Error().Err(err).Str("image", imageName).Msg("failed to store image")
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	food := &model.FoodItem{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       imageName,
		CreatedAt:   time.Now(),
	}

	if err := s.foodRepo.Create(ctx, food); err != nil {
		// Don't leave an orphaned file behind.
		_ = os.Remove(filepath.Join(s.uploadDir, imageName))
		s.logger.Error().Err(err).Str("food_id", id.String()).Msg("failed to create food item")
		return nil, fmt.Errorf("failed to create food item: %w", err)
	}

	s.logger.Info().
		Str("food_id", id.String()).
		Str("name", food.Name).
		Msg("food item added")

	return food, nil
}

// List retrieves the full catalogue.
func (s *foodService) List(ctx context.Context) ([]model.FoodItem, error) {
	foods, err := s.foodRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list food items")
		return nil, fmt.Errorf("failed to list food items: %w", err)
	}
	return foods, nil
}

// Remove deletes a catalogue item and its stored image.
func (s *foodService) Remove(ctx context.Context, userID uuid.UUID, foodID uuid.UUID) error {
	if err := requireAdmin(ctx, s.userRepo, userID); err != nil {
		return err
	}

	food, err := s.foodRepo.GetByID(ctx, foodID)
	if err != nil {
		s.logger.Error().Err(err).Str("food_id", foodID.String()).Msg("failed to load food item")
		return fmt.Errorf("failed to load food item: %w", err)
	}
	if food == nil {
		return model.NewDomainError(model.ErrCodeNotFound, "Food not found")
	}

	if err := s.foodRepo.Delete(ctx, foodID); err != nil {
		s.logger.Error().Err(err).Str("food_id", foodID.String()).Msg("failed to delete food item")
		return fmt.Errorf("failed to delete food item: %w", err)
	}

	// Best-effort: the row is gone, a stale image file is harmless.
	if err := os.Remove(filepath.Join(s.uploadDir, food.Image)); err != nil {
		s.logger.Warn().Err(err).Str("image", food.Image).Msg("failed to remove image file")
	}

	s.logger.Info().
		Str("food_id", foodID.String()).
		Msg("food item removed")

	return nil
}

func (s *foodService) validateAddRequest(req *AddFoodRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeValidation, "Invalid food data")
	}
	if req.Name == "" || req.Category == "" {
		return model.NewDomainError(model.ErrCodeValidation, "Invalid food data")
	}
	if req.Price < 0 {
		return model.NewDomainError(model.ErrCodeValidation, "Invalid food data")
	}
	if req.Image == nil {
		return model.NewDomainError(model.ErrCodeValidation, "Image is required")
	}
	return nil
}

func (s *foodService) saveImage(src io.Reader, name string) error {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(s.uploadDir, name))
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write image file: %w", err)
	}
	return nil
}
