package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inviteable/backend/internal/application/usecase/stats"
	"github.com/inviteable/backend/internal/integration/entrypoint/dto"
)

// StatsController handles the admin dashboard counter endpoints. Counter
// failures degrade to zero values so the dashboard renders regardless.
type StatsController struct {
	guestStatsUseCase *stats.GetGuestStatsUseCase
	eventStatsUseCase *stats.GetEventStatsUseCase
}

// NewStatsController creates a new stats controller instance.
func NewStatsController(
	guestStatsUseCase *stats.GetGuestStatsUseCase,
	eventStatsUseCase *stats.GetEventStatsUseCase,
) *StatsController {
	return &StatsController{
		guestStatsUseCase: guestStatsUseCase,
		eventStatsUseCase: eventStatsUseCase,
	}
}

// GuestStats handles GET /api/admin/stats/guests requests.
func (c *StatsController) GuestStats(ctx *gin.Context) {
	output, err := c.guestStatsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		slog.Error("guest stats fetch failed", "error", err)
		ctx.JSON(http.StatusOK, dto.OK(dto.GuestStatsResponse{}))
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.GuestStatsResponse{TotalGuests: output.TotalGuests}))
}

// EventStats handles GET /api/admin/stats/events requests.
func (c *StatsController) EventStats(ctx *gin.Context) {
	output, err := c.eventStatsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		slog.Error("event stats fetch failed", "error", err)
		ctx.JSON(http.StatusOK, dto.OK(dto.EventStatsResponse{}))
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.EventStatsResponse{ActiveEvents: output.ActiveEvents}))
}
