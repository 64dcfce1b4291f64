package template

import (
	"context"
	"fmt"

	"github.com/inviteable/backend/internal/application/adapter"
	"github.com/inviteable/backend/internal/domain/entity"
)

// ListGlobalTemplatesOutput represents the output of the admin listing of
// global templates.
type ListGlobalTemplatesOutput struct {
	Templates []*entity.MessageTemplate
}

// ListGlobalTemplatesUseCase handles the admin global template listing.
type ListGlobalTemplatesUseCase struct {
	templateRepo adapter.TemplateRepository
}

// NewListGlobalTemplatesUseCase creates a new ListGlobalTemplatesUseCase instance.
func NewListGlobalTemplatesUseCase(templateRepo adapter.TemplateRepository) *ListGlobalTemplatesUseCase {
	return &ListGlobalTemplatesUseCase{
		templateRepo: templateRepo,
	}
}

// Execute retrieves all global-scope templates.
func (uc *ListGlobalTemplatesUseCase) Execute(ctx context.Context) (*ListGlobalTemplatesOutput, error) {
	templates, err := uc.templateRepo.FindGlobal(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list global templates: %w", err)
	}

	return &ListGlobalTemplatesOutput{Templates: templates}, nil
}
