// Package guest contains guest-related use cases.
package guest

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/application/adapter"
	"github.com/inviteable/backend/internal/domain/entity"
	domainerror "github.com/inviteable/backend/internal/domain/error"
)

// CreateGuestInput represents the input for guest creation.
type CreateGuestInput struct {
	UserID  uuid.UUID
	Name    string
	Phone   *string
	Notes   *string
	Tags    []string
	GroupID *uuid.UUID
	EventID *uuid.UUID
}

// CreateGuestOutput represents the output of guest creation.
type CreateGuestOutput struct {
	Guest *entity.Guest
}

// CreateGuestUseCase handles guest creation logic.
type CreateGuestUseCase struct {
	guestRepo adapter.GuestRepository
}

// NewCreateGuestUseCase creates a new CreateGuestUseCase instance.
func NewCreateGuestUseCase(guestRepo adapter.GuestRepository) *CreateGuestUseCase {
	return &CreateGuestUseCase{
		guestRepo: guestRepo,
	}
}

// Execute performs the guest creation.
func (uc *CreateGuestUseCase) Execute(ctx context.Context, input CreateGuestInput) (*CreateGuestOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewGuestError(
			domainerror.ErrCodeGuestNameRequired,
			"guest name is required",
			domainerror.ErrGuestNameRequired,
		)
	}

	guest := entity.NewGuest(input.UserID, input.Name, input.Phone, input.Notes, input.GroupID, input.EventID)
	guest.Tags = input.Tags

	if err := uc.guestRepo.Create(ctx, guest); err != nil {
		return nil, fmt.Errorf("failed to create guest: %w", err)
	}

	return &CreateGuestOutput{Guest: guest}, nil
}
