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

// groupRepository implements the adapter.GroupRepository interface.
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository instance.
func NewGroupRepository(db *gorm.DB) adapter.GroupRepository {
	return &groupRepository{
		db: db,
	}
}

// Create creates a new guest group in the database.
func (r *groupRepository) Create(ctx context.Context, group *entity.GuestGroup) error {
	groupModel := model.GroupFromEntity(group)
	result := r.db.WithContext(ctx).Create(groupModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a group by its ID.
func (r *groupRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GuestGroup, error) {
	var groupModel model.GuestGroupModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&groupModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGroupNotFound
		}
		return nil, result.Error
	}
	return groupModel.ToEntity(), nil
}

// FindByUserID retrieves a user's groups ordered by sort_order ascending.
func (r *groupRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.GuestGroup, error) {
	var groupModels []model.GuestGroupModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sort_order ASC, created_at ASC").
		Find(&groupModels)
	if result.Error != nil {
		return nil, result.Error
	}

	groups := make([]*entity.GuestGroup, len(groupModels))
	for i := range groupModels {
		groups[i] = groupModels[i].ToEntity()
	}
	return groups, nil
}

// Save persists the full replacement state of an existing group.
func (r *groupRepository) Save(ctx context.Context, group *entity.GuestGroup) error {
	groupModel := model.GroupFromEntity(group)
	result := r.db.WithContext(ctx).Save(groupModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a group. Guests referencing it are left untouched.
func (r *groupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.GuestGroupModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
