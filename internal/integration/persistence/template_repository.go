package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inviteable/backend/internal/application/adapter"
	"github.com/inviteable/backend/internal/domain/entity"
	domainerror "github.com/inviteable/backend/internal/domain/error"
	"github.com/inviteable/backend/internal/integration/persistence/model"
)

// templateRepository implements the adapter.TemplateRepository interface.
type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository creates a new template repository instance.
func NewTemplateRepository(db *gorm.DB) adapter.TemplateRepository {
	return &templateRepository{
		db: db,
	}
}

// Create creates a new message template in the database.
func (r *templateRepository) Create(ctx context.Context, template *entity.MessageTemplate) error {
	templateModel := model.TemplateFromEntity(template)
	result := r.db.WithContext(ctx).Create(templateModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a template by its ID.
func (r *templateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MessageTemplate, error) {
	var templateModel model.MessageTemplateModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&templateModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTemplateNotFound
		}
		return nil, result.Error
	}
	return templateModel.ToEntity(), nil
}

// FindVisibleToUser retrieves global templates plus the user's own, global
// first, then by creation time.
func (r *templateRepository) FindVisibleToUser(ctx context.Context, userID uuid.UUID) ([]*entity.MessageTemplate, error) {
	var templateModels []model.MessageTemplateModel
	result := r.db.WithContext(ctx).
		Where("scope = ? OR owner_user_id = ?", string(entity.TemplateScopeGlobal), userID).
		Order("scope ASC, created_at ASC").
		Find(&templateModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTemplateEntities(templateModels), nil
}

// FindGlobal retrieves all global-scope templates.
func (r *templateRepository) FindGlobal(ctx context.Context) ([]*entity.MessageTemplate, error) {
	var templateModels []model.MessageTemplateModel
	result := r.db.WithContext(ctx).
		Where("scope = ?", string(entity.TemplateScopeGlobal)).
		Order("created_at ASC").
		Find(&templateModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTemplateEntities(templateModels), nil
}

// Save persists the full replacement state of an existing template.
func (r *templateRepository) Save(ctx context.Context, template *entity.MessageTemplate) error {
	templateModel := model.TemplateFromEntity(template)
	result := r.db.WithContext(ctx).Save(templateModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a template from the database.
func (r *templateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.MessageTemplateModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func toTemplateEntities(models []model.MessageTemplateModel) []*entity.MessageTemplate {
	templates := make([]*entity.MessageTemplate, len(models))
	for i := range models {
		templates[i] = models[i].ToEntity()
	}
	return templates
}
