package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/application/usecase/group"
	domainerror "github.com/inviteable/backend/internal/domain/error"
	"github.com/inviteable/backend/internal/integration/entrypoint/dto"
	"github.com/inviteable/backend/internal/integration/entrypoint/middleware"
)

// GroupController handles guest group endpoints.
type GroupController struct {
	listUseCase   *group.ListGroupsUseCase
	createUseCase *group.CreateGroupUseCase
	updateUseCase *group.UpdateGroupUseCase
	deleteUseCase *group.DeleteGroupUseCase
}

// NewGroupController creates a new group controller instance.
func NewGroupController(
	listUseCase *group.ListGroupsUseCase,
	createUseCase *group.CreateGroupUseCase,
	updateUseCase *group.UpdateGroupUseCase,
	deleteUseCase *group.DeleteGroupUseCase,
) *GroupController {
	return &GroupController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /api/users/:userId/groups requests.
func (c *GroupController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Fail("User not authenticated"))
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), group.ListGroupsInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.Fail("Failed to retrieve groups"))
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.ToGroupListResponse(output.Groups)))
}

// Create handles POST /api/users/:userId/groups requests.
func (c *GroupController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Fail("User not authenticated"))
		return
	}

	var req dto.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithCode(
			"Invalid request body",
			string(domainerror.ErrCodeMissingGroupFields),
		))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), group.CreateGroupInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK(dto.ToGroupResponse(output.Group)))
}

// Update handles PUT /api/users/:userId/groups/:id requests.
func (c *GroupController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Fail("User not authenticated"))
		return
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid group ID format"))
		return
	}

	var req dto.UpdateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithCode(
			"Invalid request body",
			string(domainerror.ErrCodeMissingGroupFields),
		))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), group.UpdateGroupInput{
		GroupID:     groupID,
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.ToGroupResponse(output.Group)))
}

// Delete handles DELETE /api/users/:userId/groups/:id requests.
func (c *GroupController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Fail("User not authenticated"))
		return
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid group ID format"))
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), group.DeleteGroupInput{
		GroupID: groupID,
		UserID:  userID,
	}); err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(nil))
}

// handleGroupError maps group errors to HTTP responses.
func (c *GroupController) handleGroupError(ctx *gin.Context, err error) {
	var groupErr *domainerror.GroupError
	if errors.As(err, &groupErr) {
		ctx.JSON(c.statusCodeForGroupError(groupErr.Code), dto.FailWithCode(groupErr.Message, string(groupErr.Code)))
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.Fail("An internal error occurred"))
}

// statusCodeForGroupError maps group error codes to HTTP status codes.
func (c *GroupController) statusCodeForGroupError(code domainerror.GroupErrorCode) int {
	switch code {
	case domainerror.ErrCodeGroupNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotGroupOwner:
		return http.StatusForbidden
	case domainerror.ErrCodeGroupNameRequired,
		domainerror.ErrCodeMissingGroupFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
