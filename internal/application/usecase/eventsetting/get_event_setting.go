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

// GetEventSettingInput represents the input for event setting retrieval.
type GetEventSettingInput struct {
	UserID uuid.UUID
}

// GetEventSettingOutput represents the output of event setting retrieval.
type GetEventSettingOutput struct {
	Setting *entity.EventSetting
}

// GetEventSettingUseCase handles event setting retrieval logic.
type GetEventSettingUseCase struct {
	eventSettingRepo adapter.EventSettingRepository
}

// NewGetEventSettingUseCase creates a new GetEventSettingUseCase instance.
func NewGetEventSettingUseCase(eventSettingRepo adapter.EventSettingRepository) *GetEventSettingUseCase {
	return &GetEventSettingUseCase{
		eventSettingRepo: eventSettingRepo,
	}
}

// Execute returns the active event setting for the given user.
func (uc *GetEventSettingUseCase) Execute(ctx context.Context, input GetEventSettingInput) (*GetEventSettingOutput, error) {
	setting, err := uc.eventSettingRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEventSettingNotFound) {
			return nil, domainerror.NewEventError(
				domainerror.ErrCodeEventSettingNotFound,
				"event settings not found for this user",
				domainerror.ErrEventSettingNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find event setting: %w", err)
	}

	return &GetEventSettingOutput{Setting: setting}, nil
}
