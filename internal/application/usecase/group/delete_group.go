package group

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/application/adapter"
	domainerror "github.com/inviteable/backend/internal/domain/error"
)

// DeleteGroupInput represents the input for group deletion.
type DeleteGroupInput struct {
	GroupID uuid.UUID
	UserID  uuid.UUID
}

// DeleteGroupUseCase handles guest group deletion logic. Deletion does not
// cascade to guests: their group_id keeps pointing at the removed group and
// resolves to a fallback label at display time.
type DeleteGroupUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewDeleteGroupUseCase creates a new DeleteGroupUseCase instance.
func NewDeleteGroupUseCase(groupRepo adapter.GroupRepository) *DeleteGroupUseCase {
	return &DeleteGroupUseCase{
		groupRepo: groupRepo,
	}
}

// Execute performs the group deletion.
func (uc *DeleteGroupUseCase) Execute(ctx context.Context, input DeleteGroupInput) error {
	group, err := uc.groupRepo.FindByID(ctx, input.GroupID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGroupNotFound) {
			return domainerror.NewGroupError(
				domainerror.ErrCodeGroupNotFound,
				"group not found",
				domainerror.ErrGroupNotFound,
			)
		}
		return fmt.Errorf("failed to find group: %w", err)
	}

	if group.UserID != input.UserID {
		return domainerror.NewGroupError(
			domainerror.ErrCodeNotGroupOwner,
			"group does not belong to this user",
			domainerror.ErrNotGroupOwner,
		)
	}

	if err := uc.groupRepo.Delete(ctx, input.GroupID); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	return nil
}
