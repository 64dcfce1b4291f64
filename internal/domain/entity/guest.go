package entity

import (
	"time"

	"github.com/google/uuid"
)

// Guest is an invitee record owned by a user, optionally grouped, with a
// send-status flag. IsSent transitions false->true on send (or is reset
// true->false); LastSentAt is set on the transition to true and cleared on
// false.
type Guest struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	GroupID    *uuid.UUID
	EventID    *uuid.UUID
	Name       string
	Phone      *string
	Notes      *string
	Tags       []string
	IsSent     bool
	LastSentAt *time.Time
	CreatedAt  time.Time
}

// NewGuest creates a new unsent Guest for the given user.
func NewGuest(userID uuid.UUID, name string, phone, notes *string, groupID, eventID *uuid.UUID) *Guest {
	return &Guest{
		ID:        uuid.New(),
		UserID:    userID,
		GroupID:   groupID,
		EventID:   eventID,
		Name:      name,
		Phone:     phone,
		Notes:     notes,
		IsSent:    false,
		CreatedAt: time.Now().UTC(),
	}
}

// MarkSent updates the send status. The timestamp is refreshed on every
// true-call (tracks the last attempt) and cleared when the flag is reset.
func (g *Guest) MarkSent(isSent bool, at time.Time) {
	g.IsSent = isSent
	if isSent {
		t := at.UTC()
		g.LastSentAt = &t
	} else {
		g.LastSentAt = nil
	}
}
