package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/domain/entity"
)

// MessageTemplateModel represents the message_templates table in the database.
type MessageTemplateModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerUserID *uuid.UUID `gorm:"type:uuid;index"`
	Scope       string     `gorm:"type:varchar(10);not null;index"`
	Name        string     `gorm:"type:varchar(255);not null"`
	ContentWA   string     `gorm:"type:text;not null"`
	ContentCopy string     `gorm:"type:text;not null"`
	IsDefault   bool       `gorm:"default:false"`
	CreatedAt   time.Time  `gorm:"not null"`
}

// TableName returns the table name for the MessageTemplateModel.
func (MessageTemplateModel) TableName() string {
	return "message_templates"
}

// ToEntity converts a MessageTemplateModel to a domain MessageTemplate entity.
func (m *MessageTemplateModel) ToEntity() *entity.MessageTemplate {
	return &entity.MessageTemplate{
		ID:          m.ID,
		OwnerUserID: m.OwnerUserID,
		Scope:       entity.TemplateScope(m.Scope),
		Name:        m.Name,
		ContentWA:   m.ContentWA,
		ContentCopy: m.ContentCopy,
		IsDefault:   m.IsDefault,
		CreatedAt:   m.CreatedAt,
	}
}

// TemplateFromEntity creates a MessageTemplateModel from a domain MessageTemplate entity.
func TemplateFromEntity(template *entity.MessageTemplate) *MessageTemplateModel {
	return &MessageTemplateModel{
		ID:          template.ID,
		OwnerUserID: template.OwnerUserID,
		Scope:       string(template.Scope),
		Name:        template.Name,
		ContentWA:   template.ContentWA,
		ContentCopy: template.ContentCopy,
		IsDefault:   template.IsDefault,
		CreatedAt:   template.CreatedAt,
	}
}
