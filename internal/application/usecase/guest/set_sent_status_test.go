package guest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/domain/entity"
	domainerror "github.com/inviteable/backend/internal/domain/error"
)

type fakeGuestRepo struct {
	guests map[uuid.UUID]*entity.Guest
	saved  int
}

func newFakeGuestRepo(guests ...*entity.Guest) *fakeGuestRepo {
	m := make(map[uuid.UUID]*entity.Guest, len(guests))
	for _, g := range guests {
		m[g.ID] = g
	}
	return &fakeGuestRepo{guests: m}
}

func (r *fakeGuestRepo) Create(ctx context.Context, guest *entity.Guest) error {
	r.guests[guest.ID] = guest
	return nil
}

func (r *fakeGuestRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	if g, ok := r.guests[id]; ok {
		copied := *g
		return &copied, nil
	}
	return nil, domainerror.ErrGuestNotFound
}

func (r *fakeGuestRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Guest, error) {
	return nil, nil
}

func (r *fakeGuestRepo) FindByUserAndGroup(ctx context.Context, userID, groupID uuid.UUID) ([]*entity.Guest, error) {
	return nil, nil
}

func (r *fakeGuestRepo) Save(ctx context.Context, guest *entity.Guest) error {
	copied := *guest
	r.guests[guest.ID] = &copied
	r.saved++
	return nil
}

func (r *fakeGuestRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.guests, id)
	return nil
}

func (r *fakeGuestRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.guests)), nil
}

func TestSetSentStatus(t *testing.T) {
	userID := uuid.New()
	otherUserID := uuid.New()

	newUseCase := func(repo *fakeGuestRepo, now time.Time) *SetSentStatusUseCase {
		uc := NewSetSentStatusUseCase(repo)
		uc.now = func() time.Time { return now }
		return uc
	}

	t.Run("marking sent sets flag and timestamp", func(t *testing.T) {
		g := entity.NewGuest(userID, "Jane Doe", nil, nil, nil, nil)
		repo := newFakeGuestRepo(g)
		now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

		out, err := newUseCase(repo, now).Execute(context.Background(), SetSentStatusInput{
			GuestID: g.ID, UserID: userID, IsSent: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Guest.IsSent {
			t.Error("expected is_sent=true")
		}
		if out.Guest.LastSentAt == nil || !out.Guest.LastSentAt.Equal(now) {
			t.Errorf("expected last_sent_at=%v, got %v", now, out.Guest.LastSentAt)
		}
	})

	t.Run("repeated true calls refresh the timestamp", func(t *testing.T) {
		g := entity.NewGuest(userID, "Jane Doe", nil, nil, nil, nil)
		repo := newFakeGuestRepo(g)

		first := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		second := first.Add(time.Hour)

		if _, err := newUseCase(repo, first).Execute(context.Background(), SetSentStatusInput{GuestID: g.ID, UserID: userID, IsSent: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out, err := newUseCase(repo, second).Execute(context.Background(), SetSentStatusInput{GuestID: g.ID, UserID: userID, IsSent: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Guest.LastSentAt == nil || !out.Guest.LastSentAt.Equal(second) {
			t.Errorf("expected refreshed last_sent_at=%v, got %v", second, out.Guest.LastSentAt)
		}
	})

	t.Run("true then false clears flag and timestamp", func(t *testing.T) {
		g := entity.NewGuest(userID, "Jane Doe", nil, nil, nil, nil)
		repo := newFakeGuestRepo(g)
		now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		uc := newUseCase(repo, now)

		if _, err := uc.Execute(context.Background(), SetSentStatusInput{GuestID: g.ID, UserID: userID, IsSent: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out, err := uc.Execute(context.Background(), SetSentStatusInput{GuestID: g.ID, UserID: userID, IsSent: false})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Guest.IsSent {
			t.Error("expected is_sent=false")
		}
		if out.Guest.LastSentAt != nil {
			t.Errorf("expected last_sent_at=nil, got %v", out.Guest.LastSentAt)
		}
	})

	t.Run("unknown guest is not found", func(t *testing.T) {
		repo := newFakeGuestRepo()
		_, err := newUseCase(repo, time.Now()).Execute(context.Background(), SetSentStatusInput{
			GuestID: uuid.New(), UserID: userID, IsSent: true,
		})
		if !errors.Is(err, domainerror.ErrGuestNotFound) {
			t.Errorf("expected ErrGuestNotFound, got %v", err)
		}
	})

	t.Run("foreign guest is permission denied", func(t *testing.T) {
		g := entity.NewGuest(userID, "Jane Doe", nil, nil, nil, nil)
		repo := newFakeGuestRepo(g)
		_, err := newUseCase(repo, time.Now()).Execute(context.Background(), SetSentStatusInput{
			GuestID: g.ID, UserID: otherUserID, IsSent: true,
		})
		if !errors.Is(err, domainerror.ErrNotGuestOwner) {
			t.Errorf("expected ErrNotGuestOwner, got %v", err)
		}
		if repo.saved != 0 {
			t.Error("denied update must not persist")
		}
	})
}
