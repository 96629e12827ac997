package service

import (
	"context"
	"fmt"

	"quick-bite/internal/model"
	"quick-bite/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// cartService implements CartService. Each mutation is a read-modify-write of
// the user's cart snapshot persisted as one atomic row update. There is no
// optimistic locking: concurrent sessions of the same user are last-writer-wins.
type cartService struct {
	userRepo repository.UserRepository
	logger   zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(userRepo repository.UserRepository, logger zerolog.Logger) CartService {
	return &cartService{
		userRepo: userRepo,
		logger:   logger.With().Str("service", "cart").Logger(),
	}
}

// AddItem increments the quantity for itemID by one. The item id is not
// checked against the catalogue.
func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, itemID string) error {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return err
	}

	user.Cart.Add(itemID)

	if err := s.userRepo.UpdateCart(ctx, userID, user.Cart); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to persist cart")
		return fmt.Errorf("failed to persist cart: %w", err)
	}

	s.logger.Debug().
		Str("user_id", userID.String()).
		Str("item_id", itemID).
		Int("quantity", user.Cart[itemID]).
		Msg("item added to cart")

	return nil
}

// RemoveItem decrements the quantity for itemID by one, removing the entry at
// zero. Removing an absent item still succeeds.
func (s *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, itemID string) error {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return err
	}

	user.Cart.Remove(itemID)

	if err := s.userRepo.UpdateCart(ctx, userID, user.Cart); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to persist cart")
		return fmt.Errorf("failed to persist cart: %w", err)
	}

	s.logger.Debug().
		Str("user_id", userID.String()).
		Str("item_id", itemID).
		Msg("item removed from cart")

	return nil
}

// GetCart returns the current snapshot unmodified.
func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (model.Cart, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Cart, nil
}

func (s *cartService) loadUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to load user")
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}
