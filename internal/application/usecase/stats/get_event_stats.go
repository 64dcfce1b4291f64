package stats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/inviteable/backend/internal/application/adapter"
)

const activeEventCountKey = "stats:events:active"

// GetEventStatsOutput represents the output of the event counter.
type GetEventStatsOutput struct {
	ActiveEvents int64
}

// GetEventStatsUseCase returns the number of active event settings.
type GetEventStatsUseCase struct {
	eventSettingRepo adapter.EventSettingRepository
	cache            adapter.StatsCache
}

// NewGetEventStatsUseCase creates a new GetEventStatsUseCase instance.
func NewGetEventStatsUseCase(eventSettingRepo adapter.EventSettingRepository, cache adapter.StatsCache) *GetEventStatsUseCase {
	return &GetEventStatsUseCase{
		eventSettingRepo: eventSettingRepo,
		cache:            cache,
	}
}

// Execute returns the active event count, preferring the cached value.
func (uc *GetEventStatsUseCase) Execute(ctx context.Context) (*GetEventStatsOutput, error) {
	if uc.cache != nil {
		if count, found, err := uc.cache.GetCount(ctx, activeEventCountKey); err == nil && found {
			return &GetEventStatsOutput{ActiveEvents: count}, nil
		} else if err != nil {
			slog.Warn("stats cache read failed", "key", activeEventCountKey, "error", err)
		}
	}

	count, err := uc.eventSettingRepo.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active events: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.SetCount(ctx, activeEventCountKey, count); err != nil {
			slog.Warn("stats cache write failed", "key", activeEventCountKey, "error", err)
		}
	}

	return &GetEventStatsOutput{ActiveEvents: count}, nil
}
