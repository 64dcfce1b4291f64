package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/application/usecase/invitation"
	domainerror "github.com/inviteable/backend/internal/domain/error"
	"github.com/inviteable/backend/internal/integration/entrypoint/dto"
	"github.com/inviteable/backend/internal/integration/entrypoint/middleware"
)

// InvitationController handles invitation generation endpoints.
type InvitationController struct {
	generateUseCase *invitation.GenerateInvitationsUseCase
}

// NewInvitationController creates a new invitation controller instance.
func NewInvitationController(generateUseCase *invitation.GenerateInvitationsUseCase) *InvitationController {
	return &InvitationController{
		generateUseCase: generateUseCase,
	}
}

// Generate handles POST /api/users/:userId/invitations/generate requests.
func (c *InvitationController) Generate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Fail("User not authenticated"))
		return
	}

	var req dto.GenerateInvitationsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	groupID, err := uuid.Parse(req.GroupID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid group ID format"))
		return
	}
	templateID, err := uuid.Parse(req.TemplateID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid template ID format"))
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), invitation.GenerateInvitationsInput{
		UserID:     userID,
		GroupID:    groupID,
		TemplateID: templateID,
	})
	if err != nil {
		c.handleGenerateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.ToInvitationListResponse(output.Invitations)))
}

// handleGenerateError maps generation errors to HTTP responses. Generation
// crosses feature boundaries so it can surface event, template or guest
// errors.
func (c *InvitationController) handleGenerateError(ctx *gin.Context, err error) {
	var eventErr *domainerror.EventError
	if errors.As(err, &eventErr) {
		status := http.StatusInternalServerError
		switch eventErr.Code {
		case domainerror.ErrCodeEventNotConfigured, domainerror.ErrCodeEventSettingNotFound:
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.FailWithCode(eventErr.Message, string(eventErr.Code)))
		return
	}

	var templateErr *domainerror.TemplateError
	if errors.As(err, &templateErr) {
		status := http.StatusInternalServerError
		switch templateErr.Code {
		case domainerror.ErrCodeTemplateNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeNotTemplateOwner:
			status = http.StatusForbidden
		}
		ctx.JSON(status, dto.FailWithCode(templateErr.Message, string(templateErr.Code)))
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.Fail("An internal error occurred"))
}
