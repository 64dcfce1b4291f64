package guest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/application/adapter"
	"github.com/inviteable/backend/internal/domain/entity"
	domainerror "github.com/inviteable/backend/internal/domain/error"
)

// SetSentStatusInput represents the input for a send-status update.
type SetSentStatusInput struct {
	GuestID uuid.UUID
	UserID  uuid.UUID
	IsSent  bool
}

// SetSentStatusOutput represents the output of a send-status update.
type SetSentStatusOutput struct {
	Guest *entity.Guest
}

// SetSentStatusUseCase marks a guest's invitation as sent or unsent. The
// status update is issued optimistically on user action; the audit log append
// is a separate, independently retryable operation.
type SetSentStatusUseCase struct {
	guestRepo adapter.GuestRepository
	now       func() time.Time
}

// NewSetSentStatusUseCase creates a new SetSentStatusUseCase instance.
func NewSetSentStatusUseCase(guestRepo adapter.GuestRepository) *SetSentStatusUseCase {
	return &SetSentStatusUseCase{
		guestRepo: guestRepo,
		now:       time.Now,
	}
}

// Execute performs the send-status update. last_sent_at is refreshed on every
// true-call and cleared on false; is_sent itself is idempotent.
func (uc *SetSentStatusUseCase) Execute(ctx context.Context, input SetSentStatusInput) (*SetSentStatusOutput, error) {
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

	guest.MarkSent(input.IsSent, uc.now())

	if err := uc.guestRepo.Save(ctx, guest); err != nil {
		return nil, fmt.Errorf("failed to update send status: %w", err)
	}

	return &SetSentStatusOutput{Guest: guest}, nil
}
