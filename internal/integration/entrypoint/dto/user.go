package dto

import (
	"time"

	"github.com/inviteable/backend/internal/domain/entity"
)

// CreateUserRequest represents the request body for user creation.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"omitempty,oneof=admin user"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateUserRequest represents the request body for user update.
type UpdateUserRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"omitempty,oneof=admin user"`
	Password string `json:"password" binding:"omitempty,min=8"`
}

// UserResponse represents a single profile in API responses. The password
// hash never leaves the persistence boundary.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse converts a domain Profile entity to a UserResponse DTO.
func ToUserResponse(profile *entity.Profile) UserResponse {
	return UserResponse{
		ID:        profile.ID.String(),
		Name:      profile.Name,
		Email:     profile.Email,
		Role:      string(profile.Role),
		CreatedAt: profile.CreatedAt,
	}
}

// ToUserListResponse converts a list of profiles to UserResponse DTOs.
func ToUserListResponse(profiles []*entity.Profile) []UserResponse {
	users := make([]UserResponse, len(profiles))
	for i, p := range profiles {
		users[i] = ToUserResponse(p)
	}
	return users
}
