package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/domain/entity"
)

// EventSettingModel represents the event_settings table in the database.
type EventSettingModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;index;not null"`
	EventName      string    `gorm:"type:varchar(255);not null"`
	InvitationSlug string    `gorm:"type:varchar(255);not null"`
	InvitationURL  *string   `gorm:"type:varchar(500)"`
	RSVPURL        *string   `gorm:"type:varchar(500)"`
	RSVPPassword   *string   `gorm:"type:varchar(255)"`
	IsActive       bool      `gorm:"default:true"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for the EventSettingModel.
func (EventSettingModel) TableName() string {
	return "event_settings"
}

// ToEntity converts an EventSettingModel to a domain EventSetting entity.
func (m *EventSettingModel) ToEntity() *entity.EventSetting {
	return &entity.EventSetting{
		ID:             m.ID,
		UserID:         m.UserID,
		EventName:      m.EventName,
		InvitationSlug: m.InvitationSlug,
		InvitationURL:  m.InvitationURL,
		RSVPURL:        m.RSVPURL,
		RSVPPassword:   m.RSVPPassword,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// EventSettingFromEntity creates an EventSettingModel from a domain EventSetting entity.
func EventSettingFromEntity(setting *entity.EventSetting) *EventSettingModel {
	return &EventSettingModel{
		ID:             setting.ID,
		UserID:         setting.UserID,
		EventName:      setting.EventName,
		InvitationSlug: setting.InvitationSlug,
		InvitationURL:  setting.InvitationURL,
		RSVPURL:        setting.RSVPURL,
		RSVPPassword:   setting.RSVPPassword,
		IsActive:       setting.IsActive,
		CreatedAt:      setting.CreatedAt,
		UpdatedAt:      setting.UpdatedAt,
	}
}
