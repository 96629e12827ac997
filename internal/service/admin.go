package service

import (
	"context"
	"fmt"

	"quick-bite/internal/model"
	"quick-bite/internal/repository"

	"github.com/google/uuid"
)

// requireAdmin loads the user's role and rejects non-admins. It runs strictly
// after authentication and before any state is touched. The switch is
// exhaustive over model.Role so new roles surface here at review time.
func requireAdmin(ctx context.Context, users repository.UserRepository, userID uuid.UUID) error {
	user, err := users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user for admin check: %w", err)
	}
	if user == nil {
		return model.ErrUserNotFound
	}

	switch user.Role {
	case model.RoleAdmin:
		return nil
	case model.RoleCustomer:
		return model.ErrNotAdmin
	}
	return model.ErrNotAdmin
}
