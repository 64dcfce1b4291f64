package dto

import (
	"time"

	"github.com/inviteable/backend/internal/domain/entity"
)

// CreateGroupRequest represents the request body for group creation.
type CreateGroupRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	SortOrder   int     `json:"sort_order"`
}

// UpdateGroupRequest represents the request body for group update.
type UpdateGroupRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
}

// GroupResponse represents a single guest group in API responses.
type GroupResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToGroupResponse converts a domain GuestGroup entity to a GroupResponse DTO.
func ToGroupResponse(group *entity.GuestGroup) GroupResponse {
	return GroupResponse{
		ID:          group.ID.String(),
		UserID:      group.UserID.String(),
		Name:        group.Name,
		Description: group.Description,
		SortOrder:   group.SortOrder,
		CreatedAt:   group.CreatedAt,
	}
}

// ToGroupListResponse converts a list of groups to GroupResponse DTOs.
func ToGroupListResponse(groups []*entity.GuestGroup) []GroupResponse {
	responses := make([]GroupResponse, len(groups))
	for i, g := range groups {
		responses[i] = ToGroupResponse(g)
	}
	return responses
}
