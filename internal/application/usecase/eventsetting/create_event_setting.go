package eventsetting

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/application/adapter"
	"github.com/inviteable/backend/internal/domain/entity"
	domainerror "github.com/inviteable/backend/internal/domain/error"
)

// CreateEventSettingInput represents the input for event setting creation.
type CreateEventSettingInput struct {
	UserID         uuid.UUID
	EventName      string
	InvitationSlug string
	InvitationURL  *string
	RSVPURL        *string
	RSVPPassword   *string
}

// CreateEventSettingOutput represents the output of event setting creation.
type CreateEventSettingOutput struct {
	Setting *entity.EventSetting
}

// CreateEventSettingUseCase handles event setting creation logic.
type CreateEventSettingUseCase struct {
	eventSettingRepo adapter.EventSettingRepository
}

// NewCreateEventSettingUseCase creates a new CreateEventSettingUseCase instance.
func NewCreateEventSettingUseCase(eventSettingRepo adapter.EventSettingRepository) *CreateEventSettingUseCase {
	return &CreateEventSettingUseCase{
		eventSettingRepo: eventSettingRepo,
	}
}

// Execute performs the event setting creation.
func (uc *CreateEventSettingUseCase) Execute(ctx context.Context, input CreateEventSettingInput) (*CreateEventSettingOutput, error) {
	if input.EventName == "" || input.InvitationSlug == "" {
		return nil, domainerror.NewEventError(
			domainerror.ErrCodeMissingEventFields,
			"event name and invitation slug are required",
			nil,
		)
	}

	setting := entity.NewEventSetting(input.UserID, input.EventName, input.InvitationSlug)
	setting.InvitationURL = input.InvitationURL
	setting.RSVPURL = input.RSVPURL
	setting.RSVPPassword = input.RSVPPassword

	if err := uc.eventSettingRepo.Create(ctx, setting); err != nil {
		return nil, fmt.Errorf("failed to create event setting: %w", err)
	}

	return &CreateEventSettingOutput{Setting: setting}, nil
}
