package template

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/application/adapter"
	"github.com/inviteable/backend/internal/domain/entity"
	domainerror "github.com/inviteable/backend/internal/domain/error"
)

// UpdateTemplateInput represents the input for template update. UserID is
// the acting user for user-scope updates; AdminGlobal restricts the target
// to global templates instead (admin surface).
type UpdateTemplateInput struct {
	TemplateID  uuid.UUID
	UserID      uuid.UUID
	AdminGlobal bool
	Name        string
	ContentWA   string
	ContentCopy string
	IsDefault   *bool
}

// UpdateTemplateOutput represents the output of template update.
type UpdateTemplateOutput struct {
	Template *entity.MessageTemplate
}

// UpdateTemplateUseCase handles template update logic.
type UpdateTemplateUseCase struct {
	templateRepo adapter.TemplateRepository
}

// NewUpdateTemplateUseCase creates a new UpdateTemplateUseCase instance.
func NewUpdateTemplateUseCase(templateRepo adapter.TemplateRepository) *UpdateTemplateUseCase {
	return &UpdateTemplateUseCase{
		templateRepo: templateRepo,
	}
}

// Execute performs the template update. A template found but not editable by
// the caller is a permission error, not a not-found error.
func (uc *UpdateTemplateUseCase) Execute(ctx context.Context, input UpdateTemplateInput) (*UpdateTemplateOutput, error) {
	template, err := uc.templateRepo.FindByID(ctx, input.TemplateID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTemplateNotFound) {
			return nil, domainerror.NewTemplateError(
				domainerror.ErrCodeTemplateNotFound,
				"template not found",
				domainerror.ErrTemplateNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find template: %w", err)
	}

	if err := checkEditable(template, input.UserID, input.AdminGlobal); err != nil {
		return nil, err
	}

	if input.Name == "" {
		return nil, domainerror.NewTemplateError(
			domainerror.ErrCodeTemplateNameRequired,
			"template name is required",
			domainerror.ErrTemplateNameRequired,
		)
	}

	template.Name = input.Name
	template.ContentWA = input.ContentWA
	template.ContentCopy = input.ContentCopy
	if input.IsDefault != nil {
		template.IsDefault = *input.IsDefault
	}

	if err := uc.templateRepo.Save(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}

	return &UpdateTemplateOutput{Template: template}, nil
}

// checkEditable enforces the scope/ownership rule shared by update and
// delete: admin operations touch only global templates, user operations only
// the caller's own user-scope templates.
func checkEditable(template *entity.MessageTemplate, userID uuid.UUID, adminGlobal bool) error {
	if adminGlobal {
		if template.Scope != entity.TemplateScopeGlobal {
			return domainerror.NewTemplateError(
				domainerror.ErrCodeTemplateNotGlobal,
				"template is not a global template",
				domainerror.ErrTemplateNotGlobal,
			)
		}
		return nil
	}
	if !template.OwnedBy(userID) {
		return domainerror.NewTemplateError(
			domainerror.ErrCodeNotTemplateOwner,
			"template does not belong to this user",
			domainerror.ErrNotTemplateOwner,
		)
	}
	return nil
}
