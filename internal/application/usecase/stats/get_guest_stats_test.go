package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/domain/entity"
)

type fakeGuestCounter struct {
	count    int64
	countErr error
	calls    int
}

func (r *fakeGuestCounter) Create(ctx context.Context, guest *entity.Guest) error  { return nil }
func (r *fakeGuestCounter) Save(ctx context.Context, guest *entity.Guest) error    { return nil }
func (r *fakeGuestCounter) Delete(ctx context.Context, id uuid.UUID) error         { return nil }
func (r *fakeGuestCounter) FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	return nil, nil
}
func (r *fakeGuestCounter) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Guest, error) {
	return nil, nil
}
func (r *fakeGuestCounter) FindByUserAndGroup(ctx context.Context, userID, groupID uuid.UUID) ([]*entity.Guest, error) {
	return nil, nil
}
func (r *fakeGuestCounter) Count(ctx context.Context) (int64, error) {
	r.calls++
	return r.count, r.countErr
}

type fakeStatsCache struct {
	values  map[string]int64
	getErr  error
	setErr  error
	setKeys []string
}

func newFakeStatsCache() *fakeStatsCache {
	return &fakeStatsCache{values: make(map[string]int64)}
}

func (c *fakeStatsCache) GetCount(ctx context.Context, key string) (int64, bool, error) {
	if c.getErr != nil {
		return 0, false, c.getErr
	}
	value, found := c.values[key]
	return value, found, nil
}

func (c *fakeStatsCache) SetCount(ctx context.Context, key string, value int64) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.values[key] = value
	c.setKeys = append(c.setKeys, key)
	return nil
}

func TestGetGuestStatsUseCase_Execute(t *testing.T) {
	t.Run("cache hit skips the direct count", func(t *testing.T) {
		repo := &fakeGuestCounter{count: 99}
		cache := newFakeStatsCache()
		cache.values[guestCountKey] = 42

		output, err := NewGetGuestStatsUseCase(repo, cache).Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.TotalGuests != 42 {
			t.Fatalf("expected cached count 42, got %d", output.TotalGuests)
		}
		if repo.calls != 0 {
			t.Fatal("repository should not be counted on a cache hit")
		}
	})

	t.Run("cache miss counts and backfills the cache", func(t *testing.T) {
		repo := &fakeGuestCounter{count: 7}
		cache := newFakeStatsCache()

		output, err := NewGetGuestStatsUseCase(repo, cache).Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.TotalGuests != 7 {
			t.Fatalf("expected count 7, got %d", output.TotalGuests)
		}
		if cache.values[guestCountKey] != 7 {
			t.Fatal("expected the count to be written back to the cache")
		}
	})

	t.Run("cache errors degrade to a direct count", func(t *testing.T) {
		repo := &fakeGuestCounter{count: 3}
		cache := newFakeStatsCache()
		cache.getErr = errors.New("redis down")
		cache.setErr = errors.New("redis down")

		output, err := NewGetGuestStatsUseCase(repo, cache).Execute(context.Background())
		if err != nil {
			t.Fatalf("cache failure must not surface: %v", err)
		}
		if output.TotalGuests != 3 {
			t.Fatalf("expected count 3, got %d", output.TotalGuests)
		}
	})

	t.Run("repository failure is returned", func(t *testing.T) {
		repo := &fakeGuestCounter{countErr: errors.New("db gone")}

		_, err := NewGetGuestStatsUseCase(repo, newFakeStatsCache()).Execute(context.Background())
		if err == nil {
			t.Fatal("expected an error when the count fails with a cold cache")
		}
	})
}
