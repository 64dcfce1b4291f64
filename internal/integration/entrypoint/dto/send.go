package dto

import (
	"time"

	"github.com/inviteable/backend/internal/domain/entity"
)

// LogSendRequest represents the request body for recording a send action.
type LogSendRequest struct {
	GuestID    string `json:"guest_id" binding:"required,uuid"`
	TemplateID string `json:"template_id" binding:"required,uuid"`
	Channel    string `json:"channel" binding:"required,oneof=whatsapp copy link"`
}

// SendLogResponse represents a single send log entry in API responses.
type SendLogResponse struct {
	ID           string    `json:"id"`
	GuestID      string    `json:"guest_id"`
	TemplateID   string    `json:"template_id"`
	Channel      string    `json:"channel"`
	SentByUserID string    `json:"sent_by_user_id"`
	SentAt       time.Time `json:"sent_at"`
}

// ToSendLogResponse converts a domain SendLog entity to a SendLogResponse DTO.
func ToSendLogResponse(log *entity.SendLog) SendLogResponse {
	return SendLogResponse{
		ID:           log.ID.String(),
		GuestID:      log.GuestID.String(),
		TemplateID:   log.TemplateID.String(),
		Channel:      string(log.Channel),
		SentByUserID: log.SentByUserID.String(),
		SentAt:       log.SentAt,
	}
}
