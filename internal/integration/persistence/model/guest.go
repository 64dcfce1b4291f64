package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/inviteable/backend/internal/domain/entity"
)

// GuestModel represents the guests table in the database. GroupID has no
// foreign key constraint so deleting a group leaves the reference dangling.
type GuestModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID      `gorm:"type:uuid;index;not null"`
	GroupID    *uuid.UUID     `gorm:"type:uuid;index"`
	EventID    *uuid.UUID     `gorm:"type:uuid;index"`
	Name       string         `gorm:"type:varchar(255);not null"`
	Phone      *string        `gorm:"type:varchar(50)"`
	Notes      *string        `gorm:"type:text"`
	Tags       pq.StringArray `gorm:"type:text[]"`
	IsSent     bool           `gorm:"default:false"`
	LastSentAt *time.Time     `gorm:"type:timestamptz"`
	CreatedAt  time.Time      `gorm:"not null"`
}

// TableName returns the table name for the GuestModel.
func (GuestModel) TableName() string {
	return "guests"
}

// ToEntity converts a GuestModel to a domain Guest entity.
func (m *GuestModel) ToEntity() *entity.Guest {
	return &entity.Guest{
		ID:         m.ID,
		UserID:     m.UserID,
		GroupID:    m.GroupID,
		EventID:    m.EventID,
		Name:       m.Name,
		Phone:      m.Phone,
		Notes:      m.Notes,
		Tags:       []string(m.Tags),
		IsSent:     m.IsSent,
		LastSentAt: m.LastSentAt,
		CreatedAt:  m.CreatedAt,
	}
}

// GuestFromEntity creates a GuestModel from a domain Guest entity.
func GuestFromEntity(guest *entity.Guest) *GuestModel {
	return &GuestModel{
		ID:         guest.ID,
		UserID:     guest.UserID,
		GroupID:    guest.GroupID,
		EventID:    guest.EventID,
		Name:       guest.Name,
		Phone:      guest.Phone,
		Notes:      guest.Notes,
		Tags:       pq.StringArray(guest.Tags),
		IsSent:     guest.IsSent,
		LastSentAt: guest.LastSentAt,
		CreatedAt:  guest.CreatedAt,
	}
}
