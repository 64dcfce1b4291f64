package entity

import (
	"time"

	"github.com/google/uuid"
)

// TemplateScope represents the visibility of a message template.
type TemplateScope string

const (
	// TemplateScopeGlobal templates are admin-provided and visible to all users.
	TemplateScopeGlobal TemplateScope = "global"
	// TemplateScopeUser templates are visible only to their owner.
	TemplateScopeUser TemplateScope = "user"
)

// MessageTemplate is a reusable invitation text with two renderings: the
// chat-channel text (ContentWA) and the plain copy text (ContentCopy).
type MessageTemplate struct {
	ID          uuid.UUID
	OwnerUserID *uuid.UUID // nil for global templates
	Scope       TemplateScope
	Name        string
	ContentWA   string
	ContentCopy string
	IsDefault   bool
	CreatedAt   time.Time
}

// NewUserTemplate creates a template owned by the given user.
func NewUserTemplate(ownerUserID uuid.UUID, name, contentWA, contentCopy string, isDefault bool) *MessageTemplate {
	return &MessageTemplate{
		ID:          uuid.New(),
		OwnerUserID: &ownerUserID,
		Scope:       TemplateScopeUser,
		Name:        name,
		ContentWA:   contentWA,
		ContentCopy: contentCopy,
		IsDefault:   isDefault,
		CreatedAt:   time.Now().UTC(),
	}
}

// NewGlobalTemplate creates an admin-provided template visible to all users.
func NewGlobalTemplate(name, contentWA, contentCopy string, isDefault bool) *MessageTemplate {
	return &MessageTemplate{
		ID:          uuid.New(),
		Scope:       TemplateScopeGlobal,
		Name:        name,
		ContentWA:   contentWA,
		ContentCopy: contentCopy,
		IsDefault:   isDefault,
		CreatedAt:   time.Now().UTC(),
	}
}

// VisibleTo reports whether the template is usable by the given user:
// global templates are usable by everyone, user templates only by the owner.
func (t *MessageTemplate) VisibleTo(userID uuid.UUID) bool {
	if t.Scope == TemplateScopeGlobal {
		return true
	}
	return t.OwnerUserID != nil && *t.OwnerUserID == userID
}

// OwnedBy reports whether the template is a user-scope template owned by the
// given user. Global templates are owned by no one.
func (t *MessageTemplate) OwnedBy(userID uuid.UUID) bool {
	return t.Scope == TemplateScopeUser && t.OwnerUserID != nil && *t.OwnerUserID == userID
}
