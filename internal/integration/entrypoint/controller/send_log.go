package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/application/usecase/sendlog"
	"github.com/inviteable/backend/internal/domain/entity"
	domainerror "github.com/inviteable/backend/internal/domain/error"
	"github.com/inviteable/backend/internal/integration/entrypoint/dto"
	"github.com/inviteable/backend/internal/integration/entrypoint/middleware"
)

// SendLogController handles send audit trail endpoints.
type SendLogController struct {
	logSendUseCase *sendlog.LogSendUseCase
}

// NewSendLogController creates a new send log controller instance.
func NewSendLogController(logSendUseCase *sendlog.LogSendUseCase) *SendLogController {
	return &SendLogController{
		logSendUseCase: logSendUseCase,
	}
}

// Create handles POST /api/users/:userId/send-logs requests.
func (c *SendLogController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Fail("User not authenticated"))
		return
	}

	var req dto.LogSendRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithCode(
			"Invalid request body",
			string(domainerror.ErrCodeMissingSendFields),
		))
		return
	}

	guestID, err := uuid.Parse(req.GuestID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid guest ID format"))
		return
	}
	templateID, err := uuid.Parse(req.TemplateID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid template ID format"))
		return
	}

	output, err := c.logSendUseCase.Execute(ctx.Request.Context(), sendlog.LogSendInput{
		GuestID:      guestID,
		TemplateID:   templateID,
		Channel:      entity.SendChannel(req.Channel),
		SentByUserID: userID,
	})
	if err != nil {
		c.handleSendError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK(dto.ToSendLogResponse(output.Log)))
}

// handleSendError maps send log errors to HTTP responses.
func (c *SendLogController) handleSendError(ctx *gin.Context, err error) {
	var sendErr *domainerror.SendError
	if errors.As(err, &sendErr) {
		ctx.JSON(http.StatusBadRequest, dto.FailWithCode(sendErr.Message, string(sendErr.Code)))
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.Fail("An internal error occurred"))
}
