// Package stats contains the admin dashboard counter use cases. Counters
// are served through a best-effort cache that falls back to a direct count.
package stats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/inviteable/backend/internal/application/adapter"
)

const guestCountKey = "stats:guests:total"

// GetGuestStatsOutput represents the output of the guest counter.
type GetGuestStatsOutput struct {
	TotalGuests int64
}

// GetGuestStatsUseCase returns the system-wide guest count.
type GetGuestStatsUseCase struct {
	guestRepo adapter.GuestRepository
	cache     adapter.StatsCache
}

// NewGetGuestStatsUseCase creates a new GetGuestStatsUseCase instance.
func NewGetGuestStatsUseCase(guestRepo adapter.GuestRepository, cache adapter.StatsCache) *GetGuestStatsUseCase {
	return &GetGuestStatsUseCase{
		guestRepo: guestRepo,
		cache:     cache,
	}
}

// Execute returns the guest count, preferring the cached value. Cache errors
// degrade to a direct count.
func (uc *GetGuestStatsUseCase) Execute(ctx context.Context) (*GetGuestStatsOutput, error) {
	if uc.cache != nil {
		if count, found, err := uc.cache.GetCount(ctx, guestCountKey); err == nil && found {
			return &GetGuestStatsOutput{TotalGuests: count}, nil
		} else if err != nil {
			slog.Warn("stats cache read failed", "key", guestCountKey, "error", err)
		}
	}

	count, err := uc.guestRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count guests: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.SetCount(ctx, guestCountKey, count); err != nil {
			slog.Warn("stats cache write failed", "key", guestCountKey, "error", err)
		}
	}

	return &GetGuestStatsOutput{TotalGuests: count}, nil
}
