package sendlog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/domain/entity"
	domainerror "github.com/inviteable/backend/internal/domain/error"
)

type fakeSendLogRepo struct {
	logs []*entity.SendLog
}

func (r *fakeSendLogRepo) Create(ctx context.Context, log *entity.SendLog) error {
	r.logs = append(r.logs, log)
	return nil
}

func (r *fakeSendLogRepo) FindByGuestID(ctx context.Context, guestID uuid.UUID) ([]*entity.SendLog, error) {
	return r.logs, nil
}

func TestLogSend(t *testing.T) {
	userID := uuid.New()
	guestID := uuid.New()
	templateID := uuid.New()

	t.Run("valid channels append a row each", func(t *testing.T) {
		repo := &fakeSendLogRepo{}
		uc := NewLogSendUseCase(repo)

		for _, channel := range []entity.SendChannel{entity.SendChannelWhatsApp, entity.SendChannelCopy, entity.SendChannelLink} {
			out, err := uc.Execute(context.Background(), LogSendInput{
				GuestID:      guestID,
				TemplateID:   templateID,
				Channel:      channel,
				SentByUserID: userID,
			})
			if err != nil {
				t.Fatalf("channel %s: unexpected error: %v", channel, err)
			}
			if out.Log.ID == uuid.Nil {
				t.Error("expected a fresh log id")
			}
			if out.Log.SentAt.IsZero() {
				t.Error("expected sent_at to be set")
			}
		}

		// Multiple sends per guest are allowed; nothing is deduplicated.
		if len(repo.logs) != 3 {
			t.Errorf("expected 3 log rows, got %d", len(repo.logs))
		}
	})

	t.Run("unknown channel is rejected", func(t *testing.T) {
		uc := NewLogSendUseCase(&fakeSendLogRepo{})
		_, err := uc.Execute(context.Background(), LogSendInput{
			GuestID:      guestID,
			TemplateID:   templateID,
			Channel:      entity.SendChannel("sms"),
			SentByUserID: userID,
		})
		if !errors.Is(err, domainerror.ErrInvalidChannel) {
			t.Errorf("expected ErrInvalidChannel, got %v", err)
		}
	})

	t.Run("guest and template references are not validated", func(t *testing.T) {
		// Fire-and-forget audit trail: no existence checks by design.
		uc := NewLogSendUseCase(&fakeSendLogRepo{})
		_, err := uc.Execute(context.Background(), LogSendInput{
			GuestID:      uuid.New(),
			TemplateID:   uuid.New(),
			Channel:      entity.SendChannelCopy,
			SentByUserID: userID,
		})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
