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

// guestRepository implements the adapter.GuestRepository interface.
type guestRepository struct {
	db *gorm.DB
}

// NewGuestRepository creates a new guest repository instance.
func NewGuestRepository(db *gorm.DB) adapter.GuestRepository {
	return &guestRepository{
		db: db,
	}
}

// Create creates a new guest in the database.
func (r *guestRepository) Create(ctx context.Context, guest *entity.Guest) error {
	guestModel := model.GuestFromEntity(guest)
	result := r.db.WithContext(ctx).Create(guestModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a guest by its ID.
func (r *guestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	var guestModel model.GuestModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&guestModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGuestNotFound
		}
		return nil, result.Error
	}
	return guestModel.ToEntity(), nil
}

// FindByUserID retrieves all guests owned by a user in insertion order.
func (r *guestRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Guest, error) {
	var guestModels []model.GuestModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&guestModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toGuestEntities(guestModels), nil
}

// FindByUserAndGroup retrieves a user's guests belonging to a group in
// insertion order.
func (r *guestRepository) FindByUserAndGroup(ctx context.Context, userID, groupID uuid.UUID) ([]*entity.Guest, error) {
	var guestModels []model.GuestModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND group_id = ?", userID, groupID).
		Order("created_at ASC").
		Find(&guestModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toGuestEntities(guestModels), nil
}

// Save persists the full replacement state of an existing guest.
func (r *guestRepository) Save(ctx context.Context, guest *entity.Guest) error {
	guestModel := model.GuestFromEntity(guest)
	result := r.db.WithContext(ctx).Save(guestModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a guest from the database.
func (r *guestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.GuestModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Count returns the total number of guests across all users.
func (r *guestRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.GuestModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func toGuestEntities(models []model.GuestModel) []*entity.Guest {
	guests := make([]*entity.Guest, len(models))
	for i := range models {
		guests[i] = models[i].ToEntity()
	}
	return guests
}
