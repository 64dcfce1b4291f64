package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/domain/entity"
)

// CreateGuestRequest represents the request body for guest creation.
type CreateGuestRequest struct {
	Name    string   `json:"name" binding:"required,min=1,max=255"`
	Phone   *string  `json:"phone,omitempty"`
	Notes   *string  `json:"notes,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	GroupID *string  `json:"group_id,omitempty" binding:"omitempty,uuid"`
	EventID *string  `json:"event_id,omitempty" binding:"omitempty,uuid"`
}

// UpdateGuestRequest represents the request body for guest update.
type UpdateGuestRequest struct {
	Name    string   `json:"name" binding:"required,min=1,max=255"`
	Phone   *string  `json:"phone,omitempty"`
	Notes   *string  `json:"notes,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	GroupID *string  `json:"group_id,omitempty" binding:"omitempty,uuid"`
}

// SendStatusRequest represents the request body for a send-status update.
// IsSent is a pointer so an absent field fails binding instead of silently
// defaulting to false.
type SendStatusRequest struct {
	IsSent *bool `json:"is_sent" binding:"required"`
}

// GuestResponse represents a single guest in API responses. GroupName is the
// resolved display label; a deleted group resolves to the fallback label.
type GuestResponse struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	GroupID    *string    `json:"group_id,omitempty"`
	GroupName  string     `json:"group_name,omitempty"`
	EventID    *string    `json:"event_id,omitempty"`
	Name       string     `json:"name"`
	Phone      *string    `json:"phone,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
	IsSent     bool       `json:"is_sent"`
	LastSentAt *time.Time `json:"last_sent_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ToGuestResponse converts a domain Guest entity to a GuestResponse DTO.
func ToGuestResponse(guest *entity.Guest) GuestResponse {
	resp := GuestResponse{
		ID:         guest.ID.String(),
		UserID:     guest.UserID.String(),
		Name:       guest.Name,
		Phone:      guest.Phone,
		Notes:      guest.Notes,
		Tags:       guest.Tags,
		IsSent:     guest.IsSent,
		LastSentAt: guest.LastSentAt,
		CreatedAt:  guest.CreatedAt,
	}
	if guest.GroupID != nil {
		id := guest.GroupID.String()
		resp.GroupID = &id
	}
	if guest.EventID != nil {
		id := guest.EventID.String()
		resp.EventID = &id
	}
	return resp
}

// ToGuestListResponse converts guests plus the resolved group names to
// GuestResponse DTOs. A guest whose group is missing from the map gets the
// fallback label.
func ToGuestListResponse(guests []*entity.Guest, groupNames map[uuid.UUID]string) []GuestResponse {
	responses := make([]GuestResponse, len(guests))
	for i, g := range guests {
		resp := ToGuestResponse(g)
		if g.GroupID != nil {
			name, ok := groupNames[*g.GroupID]
			if !ok {
				name = entity.FallbackGroupLabel
			}
			resp.GroupName = name
		}
		responses[i] = resp
	}
	return responses
}
