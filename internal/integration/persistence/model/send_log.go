package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/domain/entity"
)

// SendLogModel represents the send_logs table in the database. Rows are
// append-only audit entries; guest and template IDs are recorded as given
// without referential constraints.
type SendLogModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	GuestID      uuid.UUID `gorm:"type:uuid;index;not null"`
	TemplateID   uuid.UUID `gorm:"type:uuid;not null"`
	Channel      string    `gorm:"type:varchar(10);not null"`
	SentByUserID uuid.UUID `gorm:"type:uuid;not null"`
	SentAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the SendLogModel.
func (SendLogModel) TableName() string {
	return "send_logs"
}

// ToEntity converts a SendLogModel to a domain SendLog entity.
func (m *SendLogModel) ToEntity() *entity.SendLog {
	return &entity.SendLog{
		ID:           m.ID,
		GuestID:      m.GuestID,
		TemplateID:   m.TemplateID,
		Channel:      entity.SendChannel(m.Channel),
		SentByUserID: m.SentByUserID,
		SentAt:       m.SentAt,
	}
}

// SendLogFromEntity creates a SendLogModel from a domain SendLog entity.
func SendLogFromEntity(log *entity.SendLog) *SendLogModel {
	return &SendLogModel{
		ID:           log.ID,
		GuestID:      log.GuestID,
		TemplateID:   log.TemplateID,
		Channel:      string(log.Channel),
		SentByUserID: log.SentByUserID,
		SentAt:       log.SentAt,
	}
}
