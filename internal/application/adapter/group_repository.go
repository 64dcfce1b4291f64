package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/domain/entity"
)

// GroupRepository defines the interface for guest group persistence.
type GroupRepository interface {
	// Create creates a new guest group.
	Create(ctx context.Context, group *entity.GuestGroup) error

	// FindByID retrieves a group by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.GuestGroup, error)

	// FindByUserID retrieves a user's groups ordered by sort_order ascending.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.GuestGroup, error)

	// Save persists the full replacement state of an existing group.
	Save(ctx context.Context, group *entity.GuestGroup) error

	// Delete removes a group. Guests referencing it keep their group_id;
	// the dangling reference is resolved at display time.
	Delete(ctx context.Context, id uuid.UUID) error
}
