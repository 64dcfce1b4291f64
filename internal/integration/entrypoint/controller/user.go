package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/application/usecase/profile"
	"github.com/inviteable/backend/internal/domain/entity"
	domainerror "github.com/inviteable/backend/internal/domain/error"
	"github.com/inviteable/backend/internal/integration/entrypoint/dto"
)

// UserController handles the admin user management endpoints.
type UserController struct {
	listUseCase   *profile.ListUsersUseCase
	createUseCase *profile.CreateUserUseCase
	updateUseCase *profile.UpdateUserUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	listUseCase *profile.ListUsersUseCase,
	createUseCase *profile.CreateUserUseCase,
	updateUseCase *profile.UpdateUserUseCase,
) *UserController {
	return &UserController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
	}
}

// List handles GET /api/admin/users requests.
func (c *UserController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.Fail("Failed to retrieve users"))
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.ToUserListResponse(output.Profiles)))
}

// Create handles POST /api/admin/users requests.
func (c *UserController) Create(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithCode(
			"Invalid request body",
			string(domainerror.ErrCodeMissingUserFields),
		))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), profile.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Role:     entity.UserRole(req.Role),
		Password: req.Password,
	})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK(dto.ToUserResponse(output.Profile)))
}

// Update handles PUT /api/admin/users/:userId requests. The param name
// matches the event-settings routes nested under the same segment.
func (c *UserController) Update(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid user ID format"))
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithCode(
			"Invalid request body",
			string(domainerror.ErrCodeMissingUserFields),
		))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), profile.UpdateUserInput{
		UserID:   userID,
		Name:     req.Name,
		Email:    req.Email,
		Role:     entity.UserRole(req.Role),
		Password: req.Password,
	})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.ToUserResponse(output.Profile)))
}

// handleUserError maps user management errors to HTTP responses.
func (c *UserController) handleUserError(ctx *gin.Context, err error) {
	var userErr *domainerror.UserError
	if errors.As(err, &userErr) {
		ctx.JSON(c.statusCodeForUserError(userErr.Code), dto.FailWithCode(userErr.Message, string(userErr.Code)))
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.Fail("An internal error occurred"))
}

// statusCodeForUserError maps user error codes to HTTP status codes.
func (c *UserController) statusCodeForUserError(code domainerror.UserErrorCode) int {
	switch code {
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeInvalidRole,
		domainerror.ErrCodeMissingUserFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
