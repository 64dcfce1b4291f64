package template

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/application/adapter"
	"github.com/inviteable/backend/internal/domain/entity"
	domainerror "github.com/inviteable/backend/internal/domain/error"
)

// CreateTemplateInput represents the input for template creation. When
// OwnerUserID is nil the template is created with global scope (admin only,
// enforced at the route level).
type CreateTemplateInput struct {
	OwnerUserID *uuid.UUID
	Name        string
	ContentWA   string
	ContentCopy string
	IsDefault   bool
}

// CreateTemplateOutput represents the output of template creation.
type CreateTemplateOutput struct {
	Template *entity.MessageTemplate
}

// CreateTemplateUseCase handles template creation logic.
type CreateTemplateUseCase struct {
	templateRepo adapter.TemplateRepository
}

// NewCreateTemplateUseCase creates a new CreateTemplateUseCase instance.
func NewCreateTemplateUseCase(templateRepo adapter.TemplateRepository) *CreateTemplateUseCase {
	return &CreateTemplateUseCase{
		templateRepo: templateRepo,
	}
}

// Execute performs the template creation.
func (uc *CreateTemplateUseCase) Execute(ctx context.Context, input CreateTemplateInput) (*CreateTemplateOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewTemplateError(
			domainerror.ErrCodeTemplateNameRequired,
			"template name is required",
			domainerror.ErrTemplateNameRequired,
		)
	}

	var template *entity.MessageTemplate
	if input.OwnerUserID != nil {
		template = entity.NewUserTemplate(*input.OwnerUserID, input.Name, input.ContentWA, input.ContentCopy, input.IsDefault)
	} else {
		template = entity.NewGlobalTemplate(input.Name, input.ContentWA, input.ContentCopy, input.IsDefault)
	}

	if err := uc.templateRepo.Create(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	return &CreateTemplateOutput{Template: template}, nil
}
