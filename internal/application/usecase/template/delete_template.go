package template

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/application/adapter"
	domainerror "github.com/inviteable/backend/internal/domain/error"
)

// DeleteTemplateInput represents the input for template deletion.
type DeleteTemplateInput struct {
	TemplateID  uuid.UUID
	UserID      uuid.UUID
	AdminGlobal bool
}

// DeleteTemplateUseCase handles template deletion logic.
type DeleteTemplateUseCase struct {
	templateRepo adapter.TemplateRepository
}

// NewDeleteTemplateUseCase creates a new DeleteTemplateUseCase instance.
func NewDeleteTemplateUseCase(templateRepo adapter.TemplateRepository) *DeleteTemplateUseCase {
	return &DeleteTemplateUseCase{
		templateRepo: templateRepo,
	}
}

// Execute performs the template deletion.
func (uc *DeleteTemplateUseCase) Execute(ctx context.Context, input DeleteTemplateInput) error {
	template, err := uc.templateRepo.FindByID(ctx, input.TemplateID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTemplateNotFound) {
			return domainerror.NewTemplateError(
				domainerror.ErrCodeTemplateNotFound,
				"template not found",
				domainerror.ErrTemplateNotFound,
			)
		}
		return fmt.Errorf("failed to find template: %w", err)
	}

	if err := checkEditable(template, input.UserID, input.AdminGlobal); err != nil {
		return err
	}

	if err := uc.templateRepo.Delete(ctx, input.TemplateID); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	return nil
}
