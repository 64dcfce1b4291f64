package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventSetting holds per-user event metadata used to build invitation URLs.
// At most one active setting is consulted per user at generation time.
type EventSetting struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	EventName      string
	InvitationSlug string
	InvitationURL  *string
	RSVPURL        *string
	RSVPPassword   *string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewEventSetting creates a new EventSetting for the given user.
func NewEventSetting(userID uuid.UUID, eventName, invitationSlug string) *EventSetting {
	now := time.Now().UTC()
	return &EventSetting{
		ID:             uuid.New(),
		UserID:         userID,
		EventName:      eventName,
		InvitationSlug: invitationSlug,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
