// Package template contains message template-related use cases.
package template

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/application/adapter"
	"github.com/inviteable/backend/internal/domain/entity"
)

// ListTemplatesInput represents the input for template listing.
type ListTemplatesInput struct {
	UserID uuid.UUID
}

// ListTemplatesOutput represents the output of template listing: every
// global template plus the caller's own user-scope templates.
type ListTemplatesOutput struct {
	Templates []*entity.MessageTemplate
}

// ListTemplatesUseCase handles template listing for a user.
type ListTemplatesUseCase struct {
	templateRepo adapter.TemplateRepository
}

// NewListTemplatesUseCase creates a new ListTemplatesUseCase instance.
func NewListTemplatesUseCase(templateRepo adapter.TemplateRepository) *ListTemplatesUseCase {
	return &ListTemplatesUseCase{
		templateRepo: templateRepo,
	}
}

// Execute performs the template listing.
func (uc *ListTemplatesUseCase) Execute(ctx context.Context, input ListTemplatesInput) (*ListTemplatesOutput, error) {
	templates, err := uc.templateRepo.FindVisibleToUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	return &ListTemplatesOutput{Templates: templates}, nil
}
