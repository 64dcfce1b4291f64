package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/application/usecase/template"
	domainerror "github.com/inviteable/backend/internal/domain/error"
	"github.com/inviteable/backend/internal/integration/entrypoint/dto"
	"github.com/inviteable/backend/internal/integration/entrypoint/middleware"
)

// TemplateController handles message template endpoints on both the user
// surface (own templates plus global ones) and the admin surface (global
// templates only).
type TemplateController struct {
	listUseCase       *template.ListTemplatesUseCase
	listGlobalUseCase *template.ListGlobalTemplatesUseCase
	createUseCase     *template.CreateTemplateUseCase
	updateUseCase     *template.UpdateTemplateUseCase
	deleteUseCase     *template.DeleteTemplateUseCase
	suggestUseCase    *template.SuggestTemplateUseCase
}

// NewTemplateController creates a new template controller instance.
func NewTemplateController(
	listUseCase *template.ListTemplatesUseCase,
	listGlobalUseCase *template.ListGlobalTemplatesUseCase,
	createUseCase *template.CreateTemplateUseCase,
	updateUseCase *template.UpdateTemplateUseCase,
	deleteUseCase *template.DeleteTemplateUseCase,
	suggestUseCase *template.SuggestTemplateUseCase,
) *TemplateController {
	return &TemplateController{
		listUseCase:       listUseCase,
		listGlobalUseCase: listGlobalUseCase,
		createUseCase:     createUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		suggestUseCase:    suggestUseCase,
	}
}

// List handles GET /api/users/:userId/templates requests.
func (c *TemplateController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Fail("User not authenticated"))
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), template.ListTemplatesInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.Fail("Failed to retrieve templates"))
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.ToTemplateListResponse(output.Templates)))
}

// Create handles POST /api/users/:userId/templates requests.
func (c *TemplateController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Fail("User not authenticated"))
		return
	}

	var req dto.CreateTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithCode(
			"Invalid request body",
			string(domainerror.ErrCodeMissingTemplateFields),
		))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), template.CreateTemplateInput{
		OwnerUserID: &userID,
		Name:        req.Name,
		ContentWA:   req.ContentWA,
		ContentCopy: req.ContentCopy,
		IsDefault:   req.IsDefault,
	})
	if err != nil {
		c.handleTemplateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK(dto.ToTemplateResponse(output.Template)))
}

// Update handles PUT /api/users/:userId/templates/:id requests.
func (c *TemplateController) Update(ctx *gin.Context) {
	c.update(ctx, false)
}

// Delete handles DELETE /api/users/:userId/templates/:id requests.
func (c *TemplateController) Delete(ctx *gin.Context) {
	c.delete(ctx, false)
}

// Suggest handles POST /api/users/:userId/templates/suggest requests.
func (c *TemplateController) Suggest(ctx *gin.Context) {
	var req dto.SuggestTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithCode(
			"Invalid request body",
			string(domainerror.ErrCodeMissingTemplateFields),
		))
		return
	}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), template.SuggestTemplateInput{
		EventName: req.EventName,
		Tone:      req.Tone,
		Language:  req.Language,
	})
	if err != nil {
		c.handleTemplateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.SuggestTemplateResponse{
		Name:        output.Name,
		ContentWA:   output.ContentWA,
		ContentCopy: output.ContentCopy,
	}))
}

// AdminList handles GET /api/admin/templates requests.
func (c *TemplateController) AdminList(ctx *gin.Context) {
	output, err := c.listGlobalUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.Fail("Failed to retrieve templates"))
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.ToTemplateListResponse(output.Templates)))
}

// AdminCreate handles POST /api/admin/templates requests. Templates created
// here are global scope.
func (c *TemplateController) AdminCreate(ctx *gin.Context) {
	var req dto.CreateTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithCode(
			"Invalid request body",
			string(domainerror.ErrCodeMissingTemplateFields),
		))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), template.CreateTemplateInput{
		Name:        req.Name,
		ContentWA:   req.ContentWA,
		ContentCopy: req.ContentCopy,
		IsDefault:   req.IsDefault,
	})
	if err != nil {
		c.handleTemplateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK(dto.ToTemplateResponse(output.Template)))
}

// AdminUpdate handles PUT /api/admin/templates/:id requests.
func (c *TemplateController) AdminUpdate(ctx *gin.Context) {
	c.update(ctx, true)
}

// AdminDelete handles DELETE /api/admin/templates/:id requests.
func (c *TemplateController) AdminDelete(ctx *gin.Context) {
	c.delete(ctx, true)
}

func (c *TemplateController) update(ctx *gin.Context, adminGlobal bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Fail("User not authenticated"))
		return
	}

	templateID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid template ID format"))
		return
	}

	var req dto.UpdateTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithCode(
			"Invalid request body",
			string(domainerror.ErrCodeMissingTemplateFields),
		))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), template.UpdateTemplateInput{
		TemplateID:  templateID,
		UserID:      userID,
		AdminGlobal: adminGlobal,
		Name:        req.Name,
		ContentWA:   req.ContentWA,
		ContentCopy: req.ContentCopy,
		IsDefault:   req.IsDefault,
	})
	if err != nil {
		c.handleTemplateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.ToTemplateResponse(output.Template)))
}

func (c *TemplateController) delete(ctx *gin.Context, adminGlobal bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Fail("User not authenticated"))
		return
	}

	templateID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid template ID format"))
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), template.DeleteTemplateInput{
		TemplateID:  templateID,
		UserID:      userID,
		AdminGlobal: adminGlobal,
	}); err != nil {
		c.handleTemplateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(nil))
}

// handleTemplateError maps template errors to HTTP responses.
func (c *TemplateController) handleTemplateError(ctx *gin.Context, err error) {
	var templateErr *domainerror.TemplateError
	if errors.As(err, &templateErr) {
		ctx.JSON(c.statusCodeForTemplateError(templateErr.Code), dto.FailWithCode(templateErr.Message, string(templateErr.Code)))
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.Fail("An internal error occurred"))
}

// statusCodeForTemplateError maps template error codes to HTTP status codes.
// A template that exists but is not editable by the caller is forbidden, not
// missing.
func (c *TemplateController) statusCodeForTemplateError(code domainerror.TemplateErrorCode) int {
	switch code {
	case domainerror.ErrCodeTemplateNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotTemplateOwner,
		domainerror.ErrCodeTemplateNotGlobal:
		return http.StatusForbidden
	case domainerror.ErrCodeTemplateNameRequired,
		domainerror.ErrCodeMissingTemplateFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeSuggestionUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeSuggestionFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
