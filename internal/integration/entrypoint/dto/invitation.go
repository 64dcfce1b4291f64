package dto

import (
	"github.com/inviteable/backend/internal/application/usecase/invitation"
)

// GenerateInvitationsRequest represents the request body for invitation
// generation.
type GenerateInvitationsRequest struct {
	GroupID    string `json:"group_id" binding:"required,uuid"`
	TemplateID string `json:"template_id" binding:"required,uuid"`
}

// InvitationResponse represents one generated invitation.
type InvitationResponse struct {
	GuestID            string  `json:"guest_id"`
	GuestName          string  `json:"guest_name"`
	Phone              *string `json:"phone"`
	FinalInvitationURL string  `json:"final_invitation_url"`
	GeneratedWAText    string  `json:"generated_wa_text"`
	GeneratedCopyText  string  `json:"generated_copy_text"`
	WALink             string  `json:"wa_link"`
}

// ToInvitationListResponse converts generated invitations to DTOs, preserving
// guest order.
func ToInvitationListResponse(generated []invitation.GeneratedInvitation) []InvitationResponse {
	responses := make([]InvitationResponse, len(generated))
	for i, inv := range generated {
		responses[i] = InvitationResponse{
			GuestID:            inv.Guest.ID.String(),
			GuestName:          inv.Guest.Name,
			Phone:              inv.Guest.Phone,
			FinalInvitationURL: inv.FinalInvitationURL,
			GeneratedWAText:    inv.GeneratedWAText,
			GeneratedCopyText:  inv.GeneratedCopyText,
			WALink:             inv.WALink,
		}
	}
	return responses
}
