package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/domain/entity"
)

// GuestGroupModel represents the guest_groups table in the database.
type GuestGroupModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
	SortOrder   int       `gorm:"default:0"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the GuestGroupModel.
func (GuestGroupModel) TableName() string {
	return "guest_groups"
}

// ToEntity converts a GuestGroupModel to a domain GuestGroup entity.
func (m *GuestGroupModel) ToEntity() *entity.GuestGroup {
	return &entity.GuestGroup{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: m.Description,
		SortOrder:   m.SortOrder,
		CreatedAt:   m.CreatedAt,
	}
}

// GroupFromEntity creates a GuestGroupModel from a domain GuestGroup entity.
func GroupFromEntity(group *entity.GuestGroup) *GuestGroupModel {
	return &GuestGroupModel{
		ID:          group.ID,
		UserID:      group.UserID,
		Name:        group.Name,
		Description: group.Description,
		SortOrder:   group.SortOrder,
		CreatedAt:   group.CreatedAt,
	}
}
