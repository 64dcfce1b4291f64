// Package sendlog contains the send audit trail use cases.
package sendlog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/application/adapter"
	"github.com/inviteable/backend/internal/domain/entity"
	domainerror "github.com/inviteable/backend/internal/domain/error"
)

// LogSendInput represents the input for recording a send action.
type LogSendInput struct {
	GuestID      uuid.UUID
	TemplateID   uuid.UUID
	Channel      entity.SendChannel
	SentByUserID uuid.UUID
}

// LogSendOutput represents the output of recording a send action.
type LogSendOutput struct {
	Log *entity.SendLog
}

// LogSendUseCase appends an immutable audit entry for a dispatched
// invitation. Guest and template references are not validated: the audit
// trail is fire-and-forget, and a failed append never rolls back the
// optimistic sent-status update that precedes it.
type LogSendUseCase struct {
	sendLogRepo adapter.SendLogRepository
}

// NewLogSendUseCase creates a new LogSendUseCase instance.
func NewLogSendUseCase(sendLogRepo adapter.SendLogRepository) *LogSendUseCase {
	return &LogSendUseCase{
		sendLogRepo: sendLogRepo,
	}
}

// Execute records the send action.
func (uc *LogSendUseCase) Execute(ctx context.Context, input LogSendInput) (*LogSendOutput, error) {
	if !input.Channel.IsValid() {
		return nil, domainerror.NewSendError(
			domainerror.ErrCodeInvalidChannel,
			"channel must be 'whatsapp', 'copy' or 'link'",
			domainerror.ErrInvalidChannel,
		)
	}

	log := entity.NewSendLog(input.GuestID, input.TemplateID, input.Channel, input.SentByUserID)

	if err := uc.sendLogRepo.Create(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to record send action: %w", err)
	}

	return &LogSendOutput{Log: log}, nil
}
