package guest

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/application/adapter"
	"github.com/inviteable/backend/internal/domain/entity"
	domainerror "github.com/inviteable/backend/internal/domain/error"
)

// UpdateGuestInput represents the input for guest update. Optional fields
// keep their current value when nil; the store persists a full replacement
// state after the merge.
type UpdateGuestInput struct {
	GuestID uuid.UUID
	UserID  uuid.UUID
	Name    string
	Phone   *string
	Notes   *string
	Tags    []string
	GroupID *uuid.UUID
}

// UpdateGuestOutput represents the output of guest update.
type UpdateGuestOutput struct {
	Guest *entity.Guest
}

// UpdateGuestUseCase handles guest update logic.
type UpdateGuestUseCase struct {
	guestRepo adapter.GuestRepository
}

// NewUpdateGuestUseCase creates a new UpdateGuestUseCase instance.
func NewUpdateGuestUseCase(guestRepo adapter.GuestRepository) *UpdateGuestUseCase {
	return &UpdateGuestUseCase{
		guestRepo: guestRepo,
	}
}

// Execute performs the guest update.
func (uc *UpdateGuestUseCase) Execute(ctx context.Context, input UpdateGuestInput) (*UpdateGuestOutput, error) {
	guest, err := uc.guestRepo.FindByID(ctx, input.GuestID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGuestNotFound) {
			return nil, domainerror.NewGuestError(
				domainerror.ErrCodeGuestNotFound,
				"guest not found",
				domainerror.ErrGuestNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find guest: %w", err)
	}

	if guest.UserID != input.UserID {
		return nil, domainerror.NewGuestError(
			domainerror.ErrCodeNotGuestOwner,
			"guest does not belong to this user",
			domainerror.ErrNotGuestOwner,
		)
	}

	if input.Name == "" {
		return nil, domainerror.NewGuestError(
			domainerror.ErrCodeGuestNameRequired,
			"guest name is required",
			domainerror.ErrGuestNameRequired,
		)
	}

	guest.Name = input.Name
	if input.Phone != nil {
		guest.Phone = input.Phone
	}
	if input.Notes != nil {
		guest.Notes = input.Notes
	}
	if input.Tags != nil {
		guest.Tags = input.Tags
	}
	if input.GroupID != nil {
		guest.GroupID = input.GroupID
	}

	if err := uc.guestRepo.Save(ctx, guest); err != nil {
		return nil, fmt.Errorf("failed to update guest: %w", err)
	}

	return &UpdateGuestOutput{Guest: guest}, nil
}
