package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/domain/entity"
)

// TemplateRepository defines the interface for message template persistence.
type TemplateRepository interface {
	// Create creates a new message template.
	Create(ctx context.Context, template *entity.MessageTemplate) error

	// FindByID retrieves a template by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MessageTemplate, error)

	// FindVisibleToUser retrieves all templates usable by a user: global
	// templates plus the user's own.
	FindVisibleToUser(ctx context.Context, userID uuid.UUID) ([]*entity.MessageTemplate, error)

	// FindGlobal retrieves all global-scope templates.
	FindGlobal(ctx context.Context) ([]*entity.MessageTemplate, error)

	// Save persists the full replacement state of an existing template.
	Save(ctx context.Context, template *entity.MessageTemplate) error

	// Delete removes a template.
	Delete(ctx context.Context, id uuid.UUID) error
}
