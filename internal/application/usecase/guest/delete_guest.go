package guest

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/application/adapter"
	domainerror "github.com/inviteable/backend/internal/domain/error"
)

// DeleteGuestInput represents the input for guest deletion.
type DeleteGuestInput struct {
	GuestID uuid.UUID
	UserID  uuid.UUID
}

// DeleteGuestUseCase handles guest deletion logic.
type DeleteGuestUseCase struct {
	guestRepo adapter.GuestRepository
}

// NewDeleteGuestUseCase creates a new DeleteGuestUseCase instance.
func NewDeleteGuestUseCase(guestRepo adapter.GuestRepository) *DeleteGuestUseCase {
	return &DeleteGuestUseCase{
		guestRepo: guestRepo,
	}
}

// Execute performs the guest deletion.
func (uc *DeleteGuestUseCase) Execute(ctx context.Context, input DeleteGuestInput) error {
	guest, err := uc.guestRepo.FindByID(ctx, input.GuestID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGuestNotFound) {
			return domainerror.NewGuestError(
				domainerror.ErrCodeGuestNotFound,
				"guest not found",
				domainerror.ErrGuestNotFound,
			)
		}
		return fmt.Errorf("failed to find guest: %w", err)
	}

	if guest.UserID != input.UserID {
		return domainerror.NewGuestError(
			domainerror.ErrCodeNotGuestOwner,
			"guest does not belong to this user",
			domainerror.ErrNotGuestOwner,
		)
	}

	if err := uc.guestRepo.Delete(ctx, input.GuestID); err != nil {
		return fmt.Errorf("failed to delete guest: %w", err)
	}

	return nil
}
