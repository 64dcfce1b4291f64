// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the role of a profile in the system.
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

// IsValid reports whether the role is one of the known roles.
func (r UserRole) IsValid() bool {
	return r == UserRoleAdmin || r == UserRoleUser
}

// Profile represents a user account. Email is unique and doubles as the
// login lookup key.
type Profile struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Role         UserRole
	PasswordHash string
	CreatedAt    time.Time
}

// NewProfile creates a new Profile with a generated ID.
func NewProfile(name, email string, role UserRole, passwordHash string) *Profile {
	return &Profile{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}

// IsAdmin reports whether the profile has the admin role.
func (p *Profile) IsAdmin() bool {
	return p.Role == UserRoleAdmin
}
