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

// eventSettingRepository implements the adapter.EventSettingRepository interface.
type eventSettingRepository struct {
	db *gorm.DB
}

// NewEventSettingRepository creates a new event setting repository instance.
func NewEventSettingRepository(db *gorm.DB) adapter.EventSettingRepository {
	return &eventSettingRepository{
		db: db,
	}
}

// Create creates a new event setting in the database.
func (r *eventSettingRepository) Create(ctx context.Context, setting *entity.EventSetting) error {
	settingModel := model.EventSettingFromEntity(setting)
	result := r.db.WithContext(ctx).Create(settingModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an event setting by its ID.
func (r *eventSettingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.EventSetting, error) {
	var settingModel model.EventSettingModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&settingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEventSettingNotFound
		}
		return nil, result.Error
	}
	return settingModel.ToEntity(), nil
}

// FindByUserID retrieves the active event setting for a user.
func (r *eventSettingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.EventSetting, error) {
	var settingModel model.EventSettingModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		First(&settingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEventSettingNotFound
		}
		return nil, result.Error
	}
	return settingModel.ToEntity(), nil
}

// Save persists the full replacement state of an existing setting.
func (r *eventSettingRepository) Save(ctx context.Context, setting *entity.EventSetting) error {
	settingModel := model.EventSettingFromEntity(setting)
	result := r.db.WithContext(ctx).Save(settingModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CountActive returns the number of active event settings.
func (r *eventSettingRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.EventSettingModel{}).
		Where("is_active = ?", true).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
