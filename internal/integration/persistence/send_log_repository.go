package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inviteable/backend/internal/application/adapter"
	"github.com/inviteable/backend/internal/domain/entity"
	"github.com/inviteable/backend/internal/integration/persistence/model"
)

// sendLogRepository implements the adapter.SendLogRepository interface.
type sendLogRepository struct {
	db *gorm.DB
}

// NewSendLogRepository creates a new send log repository instance.
func NewSendLogRepository(db *gorm.DB) adapter.SendLogRepository {
	return &sendLogRepository{
		db: db,
	}
}

// Create appends an immutable send log entry.
func (r *sendLogRepository) Create(ctx context.Context, log *entity.SendLog) error {
	logModel := model.SendLogFromEntity(log)
	result := r.db.WithContext(ctx).Create(logModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByGuestID retrieves all log entries for a guest, newest first.
func (r *sendLogRepository) FindByGuestID(ctx context.Context, guestID uuid.UUID) ([]*entity.SendLog, error) {
	var logModels []model.SendLogModel
	result := r.db.WithContext(ctx).
		Where("guest_id = ?", guestID).
		Order("sent_at DESC").
		Find(&logModels)
	if result.Error != nil {
		return nil, result.Error
	}

	logs := make([]*entity.SendLog, len(logModels))
	for i := range logModels {
		logs[i] = logModels[i].ToEntity()
	}
	return logs, nil
}
