package eventsetting

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/application/adapter"
	"github.com/inviteable/backend/internal/domain/entity"
	domainerror "github.com/inviteable/backend/internal/domain/error"
)

// UpdateEventSettingInput represents the input for event setting update.
// UserID is the user named in the route; the stored setting must belong to
// the same user.
type UpdateEventSettingInput struct {
	SettingID      uuid.UUID
	UserID         uuid.UUID
	EventName      string
	InvitationSlug string
	InvitationURL  *string
	RSVPURL        *string
	RSVPPassword   *string
	IsActive       *bool
}

// UpdateEventSettingOutput represents the output of event setting update.
type UpdateEventSettingOutput struct {
	Setting *entity.EventSetting
}

// UpdateEventSettingUseCase handles event setting update logic.
type UpdateEventSettingUseCase struct {
	eventSettingRepo adapter.EventSettingRepository
}

// NewUpdateEventSettingUseCase creates a new UpdateEventSettingUseCase instance.
func NewUpdateEventSettingUseCase(eventSettingRepo adapter.EventSettingRepository) *UpdateEventSettingUseCase {
	return &UpdateEventSettingUseCase{
		eventSettingRepo: eventSettingRepo,
	}
}

// Execute performs the event setting update.
func (uc *UpdateEventSettingUseCase) Execute(ctx context.Context, input UpdateEventSettingInput) (*UpdateEventSettingOutput, error) {
	setting, err := uc.eventSettingRepo.FindByID(ctx, input.SettingID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEventSettingNotFound) {
			return nil, domainerror.NewEventError(
				domainerror.ErrCodeEventSettingNotFound,
				"event setting not found",
				domainerror.ErrEventSettingNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find event setting: %w", err)
	}

	if setting.UserID != input.UserID {
		return nil, domainerror.NewEventError(
			domainerror.ErrCodeEventUserMismatch,
			"event setting does not belong to this user",
			domainerror.ErrEventUserMismatch,
		)
	}

	if input.EventName == "" || input.InvitationSlug == "" {
		return nil, domainerror.NewEventError(
			domainerror.ErrCodeMissingEventFields,
			"event name and invitation slug are required",
			nil,
		)
	}

	setting.EventName = input.EventName
	setting.InvitationSlug = input.InvitationSlug
	setting.InvitationURL = input.InvitationURL
	setting.RSVPURL = input.RSVPURL
	setting.RSVPPassword = input.RSVPPassword
	if input.IsActive != nil {
		setting.IsActive = *input.IsActive
	}

	if err := uc.eventSettingRepo.Save(ctx, setting); err != nil {
		return nil, fmt.Errorf("failed to update event setting: %w", err)
	}

	return &UpdateEventSettingOutput{Setting: setting}, nil
}
