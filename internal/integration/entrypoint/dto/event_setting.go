package dto

import (
	"time"

	"github.com/inviteable/backend/internal/domain/entity"
)

// CreateEventSettingRequest represents the request body for event setting
// creation.
type CreateEventSettingRequest struct {
	EventName      string  `json:"event_name" binding:"required,min=1,max=255"`
	InvitationSlug string  `json:"invitation_slug" binding:"required,min=1,max=255"`
	InvitationURL  *string `json:"invitation_url,omitempty" binding:"omitempty,url"`
	RSVPURL        *string `json:"rsvp_url,omitempty" binding:"omitempty,url"`
	RSVPPassword   *string `json:"rsvp_password,omitempty"`
}

// UpdateEventSettingRequest represents the request body for event setting
// update.
type UpdateEventSettingRequest struct {
	EventName      string  `json:"event_name" binding:"required,min=1,max=255"`
	InvitationSlug string  `json:"invitation_slug" binding:"required,min=1,max=255"`
	InvitationURL  *string `json:"invitation_url,omitempty" binding:"omitempty,url"`
	RSVPURL        *string `json:"rsvp_url,omitempty" binding:"omitempty,url"`
	RSVPPassword   *string `json:"rsvp_password,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

// EventSettingResponse represents an event setting in API responses.
type EventSettingResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	EventName      string    `json:"event_name"`
	InvitationSlug string    `json:"invitation_slug"`
	InvitationURL  *string   `json:"invitation_url"`
	RSVPURL        *string   `json:"rsvp_url"`
	RSVPPassword   *string   `json:"rsvp_password"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToEventSettingResponse converts a domain EventSetting entity to an
// EventSettingResponse DTO.
func ToEventSettingResponse(setting *entity.EventSetting) EventSettingResponse {
	return EventSettingResponse{
		ID:             setting.ID.String(),
		UserID:         setting.UserID.String(),
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
