package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/application/usecase/eventsetting"
	domainerror "github.com/inviteable/backend/internal/domain/error"
	"github.com/inviteable/backend/internal/integration/entrypoint/dto"
	"github.com/inviteable/backend/internal/integration/entrypoint/middleware"
)

// EventSettingController handles event setting endpoints. Users read their
// own setting; creation and update live on the admin surface.
type EventSettingController struct {
	getUseCase    *eventsetting.GetEventSettingUseCase
	createUseCase *eventsetting.CreateEventSettingUseCase
	updateUseCase *eventsetting.UpdateEventSettingUseCase
}

// NewEventSettingController creates a new event setting controller instance.
func NewEventSettingController(
	getUseCase *eventsetting.GetEventSettingUseCase,
	createUseCase *eventsetting.CreateEventSettingUseCase,
	updateUseCase *eventsetting.UpdateEventSettingUseCase,
) *EventSettingController {
	return &EventSettingController{
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
	}
}

// Get handles GET /api/users/:userId/event-settings requests.
func (c *EventSettingController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Fail("User not authenticated"))
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), eventsetting.GetEventSettingInput{UserID: userID})
	if err != nil {
		c.handleEventError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.ToEventSettingResponse(output.Setting)))
}

// AdminCreate handles POST /api/admin/users/:userId/event-settings requests.
func (c *EventSettingController) AdminCreate(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid user ID format"))
		return
	}

	var req dto.CreateEventSettingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithCode(
			"Invalid request body",
			string(domainerror.ErrCodeMissingEventFields),
		))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), eventsetting.CreateEventSettingInput{
		UserID:         userID,
		EventName:      req.EventName,
		InvitationSlug: req.InvitationSlug,
		InvitationURL:  req.InvitationURL,
		RSVPURL:        req.RSVPURL,
		RSVPPassword:   req.RSVPPassword,
	})
	if err != nil {
		c.handleEventError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK(dto.ToEventSettingResponse(output.Setting)))
}

// AdminUpdate handles PUT /api/admin/users/:userId/event-settings/:id requests.
func (c *EventSettingController) AdminUpdate(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid user ID format"))
		return
	}

	settingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid setting ID format"))
		return
	}

	var req dto.UpdateEventSettingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithCode(
			"Invalid request body",
			string(domainerror.ErrCodeMissingEventFields),
		))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), eventsetting.UpdateEventSettingInput{
		SettingID:      settingID,
		UserID:         userID,
		EventName:      req.EventName,
		InvitationSlug: req.InvitationSlug,
		InvitationURL:  req.InvitationURL,
		RSVPURL:        req.RSVPURL,
		RSVPPassword:   req.RSVPPassword,
		IsActive:       req.IsActive,
	})
	if err != nil {
		c.handleEventError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.ToEventSettingResponse(output.Setting)))
}

// handleEventError maps event setting errors to HTTP responses.
func (c *EventSettingController) handleEventError(ctx *gin.Context, err error) {
	var eventErr *domainerror.EventError
	if errors.As(err, &eventErr) {
		ctx.JSON(c.statusCodeForEventError(eventErr.Code), dto.FailWithCode(eventErr.Message, string(eventErr.Code)))
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.Fail("An internal error occurred"))
}

// statusCodeForEventError maps event error codes to HTTP status codes.
func (c *EventSettingController) statusCodeForEventError(code domainerror.EventErrorCode) int {
	switch code {
	case domainerror.ErrCodeEventSettingNotFound,
		domainerror.ErrCodeEventNotConfigured:
		return http.StatusNotFound
	case domainerror.ErrCodeEventUserMismatch:
		return http.StatusForbidden
	case domainerror.ErrCodeMissingEventFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
