package entity

import (
	"time"

	"github.com/google/uuid"
)

// FallbackGroupLabel is displayed when a guest references a deleted group.
// Deleting a group does not cascade; the dangling reference is tolerated.
const FallbackGroupLabel = "N/A"

// GuestGroup is a user-defined named bucket of guests, ordered by SortOrder
// ascending for display.
type GuestGroup struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description *string
	SortOrder   int
	CreatedAt   time.Time
}

// NewGuestGroup creates a new GuestGroup for the given user.
func NewGuestGroup(userID uuid.UUID, name string, description *string, sortOrder int) *GuestGroup {
	return &GuestGroup{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Description: description,
		SortOrder:   sortOrder,
		CreatedAt:   time.Now().UTC(),
	}
}
