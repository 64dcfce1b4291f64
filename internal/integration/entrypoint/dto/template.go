package dto

import (
	"time"

	"github.com/inviteable/backend/internal/domain/entity"
)

// CreateTemplateRequest represents the request body for template creation.
type CreateTemplateRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	ContentWA   string `json:"content_wa" binding:"required"`
	ContentCopy string `json:"content_copy" binding:"required"`
	IsDefault   bool   `json:"is_default"`
}

// UpdateTemplateRequest represents the request body for template update.
type UpdateTemplateRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	ContentWA   string `json:"content_wa" binding:"required"`
	ContentCopy string `json:"content_copy" binding:"required"`
	IsDefault   *bool  `json:"is_default,omitempty"`
}

// SuggestTemplateRequest represents the request body for AI-assisted drafting.
type SuggestTemplateRequest struct {
	EventName string `json:"event_name" binding:"required,min=1,max=255"`
	Tone      string `json:"tone,omitempty"`
	Language  string `json:"language,omitempty"`
}

// TemplateResponse represents a single message template in API responses.
type TemplateResponse struct {
	ID          string    `json:"id"`
	OwnerUserID *string   `json:"owner_user_id,omitempty"`
	Scope       string    `json:"scope"`
	Name        string    `json:"name"`
	ContentWA   string    `json:"content_wa"`
	ContentCopy string    `json:"content_copy"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
}

// SuggestTemplateResponse represents the drafted template content.
type SuggestTemplateResponse struct {
	Name        string `json:"name"`
	ContentWA   string `json:"content_wa"`
	ContentCopy string `json:"content_copy"`
}

// ToTemplateResponse converts a domain MessageTemplate entity to a
// TemplateResponse DTO.
func ToTemplateResponse(template *entity.MessageTemplate) TemplateResponse {
	resp := TemplateResponse{
		ID:          template.ID.String(),
		Scope:       string(template.Scope),
		Name:        template.Name,
		ContentWA:   template.ContentWA,
		ContentCopy: template.ContentCopy,
		IsDefault:   template.IsDefault,
		CreatedAt:   template.CreatedAt,
	}
	if template.OwnerUserID != nil {
		id := template.OwnerUserID.String()
		resp.OwnerUserID = &id
	}
	return resp
}

// ToTemplateListResponse converts a list of templates to TemplateResponse DTOs.
func ToTemplateListResponse(templates []*entity.MessageTemplate) []TemplateResponse {
	responses := make([]TemplateResponse, len(templates))
	for i, t := range templates {
		responses[i] = ToTemplateResponse(t)
	}
	return responses
}
