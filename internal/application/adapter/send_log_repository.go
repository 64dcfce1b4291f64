package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/domain/entity"
)

// SendLogRepository defines the interface for the append-only send audit trail.
type SendLogRepository interface {
	// Create appends an immutable send log entry.
	Create(ctx context.Context, log *entity.SendLog) error

	// FindByGuestID retrieves all log entries for a guest, newest first.
	FindByGuestID(ctx context.Context, guestID uuid.UUID) ([]*entity.SendLog, error)
}
