package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/application/usecase/guest"
	domainerror "github.com/inviteable/backend/internal/domain/error"
	"github.com/inviteable/backend/internal/integration/entrypoint/dto"
	"github.com/inviteable/backend/internal/integration/entrypoint/middleware"
)

// GuestController handles guest endpoints.
type GuestController struct {
	listUseCase          *guest.ListGuestsUseCase
	createUseCase        *guest.CreateGuestUseCase
	updateUseCase        *guest.UpdateGuestUseCase
	deleteUseCase        *guest.DeleteGuestUseCase
	setSentStatusUseCase *guest.SetSentStatusUseCase
}

// NewGuestController creates a new guest controller instance.
func NewGuestController(
	listUseCase *guest.ListGuestsUseCase,
	createUseCase *guest.CreateGuestUseCase,
	updateUseCase *guest.UpdateGuestUseCase,
	deleteUseCase *guest.DeleteGuestUseCase,
	setSentStatusUseCase *guest.SetSentStatusUseCase,
) *GuestController {
	return &GuestController{
		listUseCase:          listUseCase,
		createUseCase:        createUseCase,
		updateUseCase:        updateUseCase,
		deleteUseCase:        deleteUseCase,
		setSentStatusUseCase: setSentStatusUseCase,
	}
}

// List handles GET /api/users/:userId/guests requests.
func (c *GuestController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Fail("User not authenticated"))
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), guest.ListGuestsInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.Fail("Failed to retrieve guests"))
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.ToGuestListResponse(output.Guests, output.GroupNames)))
}

// Create handles POST /api/users/:userId/guests requests.
func (c *GuestController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Fail("User not authenticated"))
		return
	}

	var req dto.CreateGuestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithCode(
			"Invalid request body",
			string(domainerror.ErrCodeMissingGuestFields),
		))
		return
	}

	groupID, err := parseOptionalUUID(req.GroupID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid group ID format"))
		return
	}
	eventID, err := parseOptionalUUID(req.EventID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid event ID format"))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), guest.CreateGuestInput{
		UserID:  userID,
		Name:    req.Name,
		Phone:   req.Phone,
		Notes:   req.Notes,
		Tags:    req.Tags,
		GroupID: groupID,
		EventID: eventID,
	})
	if err != nil {
		c.handleGuestError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK(dto.ToGuestResponse(output.Guest)))
}

// Update handles PUT /api/users/:userId/guests/:id requests.
func (c *GuestController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Fail("User not authenticated"))
		return
	}

	guestID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid guest ID format"))
		return
	}

	var req dto.UpdateGuestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithCode(
			"Invalid request body",
			string(domainerror.ErrCodeMissingGuestFields),
		))
		return
	}

	groupID, err := parseOptionalUUID(req.GroupID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid group ID format"))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), guest.UpdateGuestInput{
		GuestID: guestID,
		UserID:  userID,
		Name:    req.Name,
		Phone:   req.Phone,
		Notes:   req.Notes,
		Tags:    req.Tags,
		GroupID: groupID,
	})
	if err != nil {
		c.handleGuestError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.ToGuestResponse(output.Guest)))
}

// Delete handles DELETE /api/users/:userId/guests/:id requests.
func (c *GuestController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Fail("User not authenticated"))
		return
	}

	guestID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid guest ID format"))
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), guest.DeleteGuestInput{
		GuestID: guestID,
		UserID:  userID,
	}); err != nil {
		c.handleGuestError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(nil))
}

// SetSentStatus handles PUT /api/users/:userId/guests/:id/send-status requests.
func (c *GuestController) SetSentStatus(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Fail("User not authenticated"))
		return
	}

	guestID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid guest ID format"))
		return
	}

	var req dto.SendStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithCode(
			"Invalid request body",
			string(domainerror.ErrCodeMissingGuestFields),
		))
		return
	}

	output, err := c.setSentStatusUseCase.Execute(ctx.Request.Context(), guest.SetSentStatusInput{
		GuestID: guestID,
		UserID:  userID,
		IsSent:  *req.IsSent,
	})
	if err != nil {
		c.handleGuestError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.ToGuestResponse(output.Guest)))
}

// handleGuestError maps guest errors to HTTP responses.
func (c *GuestController) handleGuestError(ctx *gin.Context, err error) {
	var guestErr *domainerror.GuestError
	if errors.As(err, &guestErr) {
		ctx.JSON(c.statusCodeForGuestError(guestErr.Code), dto.FailWithCode(guestErr.Message, string(guestErr.Code)))
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.Fail("An internal error occurred"))
}

// statusCodeForGuestError maps guest error codes to HTTP status codes.
func (c *GuestController) statusCodeForGuestError(code domainerror.GuestErrorCode) int {
	switch code {
	case domainerror.ErrCodeGuestNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotGuestOwner:
		return http.StatusForbidden
	case domainerror.ErrCodeGuestNameRequired,
		domainerror.ErrCodeMissingGuestFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseOptionalUUID parses a nullable UUID string from a request body.
func parseOptionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
