package entity

import (
	"time"

	"github.com/google/uuid"
)

// SendChannel is the delivery mechanism used for a send action.
type SendChannel string

const (
	SendChannelWhatsApp SendChannel = "whatsapp"
	SendChannelCopy     SendChannel = "copy"
	SendChannelLink     SendChannel = "link"
)

// IsValid reports whether the channel is one of the known channels.
func (c SendChannel) IsValid() bool {
	switch c {
	case SendChannelWhatsApp, SendChannelCopy, SendChannelLink:
		return true
	}
	return false
}

// SendLog is an immutable audit row recording that a guest's invitation was
// dispatched via a specific channel. Multiple rows per guest are allowed.
type SendLog struct {
	ID           uuid.UUID
	GuestID      uuid.UUID
	TemplateID   uuid.UUID
	Channel      SendChannel
	SentByUserID uuid.UUID
	SentAt       time.Time
}

// NewSendLog creates a new SendLog entry with a fresh identifier.
func NewSendLog(guestID, templateID uuid.UUID, channel SendChannel, sentByUserID uuid.UUID) *SendLog {
	return &SendLog{
		ID:           uuid.New(),
		GuestID:      guestID,
		TemplateID:   templateID,
		Channel:      channel,
		SentByUserID: sentByUserID,
		SentAt:       time.Now().UTC(),
	}
}
