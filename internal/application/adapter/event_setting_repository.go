package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/domain/entity"
)

// EventSettingRepository defines the interface for event setting persistence.
type EventSettingRepository interface {
	// Create creates a new event setting.
	Create(ctx context.Context, setting *entity.EventSetting) error

	// FindByID retrieves an event setting by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.EventSetting, error)

	// FindByUserID retrieves the event setting for a user. Returns
	// ErrEventSettingNotFound when the user has none.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.EventSetting, error)

	// Save persists the full replacement state of an existing setting.
	Save(ctx context.Context, setting *entity.EventSetting) error

	// CountActive returns the number of active event settings.
	CountActive(ctx context.Context) (int64, error)
}
