package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/domain/entity"
)

// GuestRepository defines the interface for guest persistence operations.
type GuestRepository interface {
	// Create creates a new guest.
	Create(ctx context.Context, guest *entity.Guest) error

	// FindByID retrieves a guest by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error)

	// FindByUserID retrieves all guests owned by a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Guest, error)

	// FindByUserAndGroup retrieves a user's guests belonging to a group,
	// preserving insertion order.
	FindByUserAndGroup(ctx context.Context, userID, groupID uuid.UUID) ([]*entity.Guest, error)

	// Save persists the full replacement state of an existing guest.
	Save(ctx context.Context, guest *entity.Guest) error

	// Delete removes a guest.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of guests across all users.
	Count(ctx context.Context) (int64, error)
}
