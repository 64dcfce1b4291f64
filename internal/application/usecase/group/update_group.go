package group

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/application/adapter"
	"github.com/inviteable/backend/internal/domain/entity"
	domainerror "github.com/inviteable/backend/internal/domain/error"
)

// UpdateGroupInput represents the input for group update. Optional fields
// keep their current value when nil.
type UpdateGroupInput struct {
	GroupID     uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description *string
	SortOrder   *int
}

// UpdateGroupOutput represents the output of group update.
type UpdateGroupOutput struct {
	Group *entity.GuestGroup
}

// UpdateGroupUseCase handles guest group update logic.
type UpdateGroupUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewUpdateGroupUseCase creates a new UpdateGroupUseCase instance.
func NewUpdateGroupUseCase(groupRepo adapter.GroupRepository) *UpdateGroupUseCase {
	return &UpdateGroupUseCase{
		groupRepo: groupRepo,
	}
}

// Execute performs the group update.
func (uc *UpdateGroupUseCase) Execute(ctx context.Context, input UpdateGroupInput) (*UpdateGroupOutput, error) {
	group, err := uc.groupRepo.FindByID(ctx, input.GroupID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGroupNotFound) {
			return nil, domainerror.NewGroupError(
				domainerror.ErrCodeGroupNotFound,
				"group not found",
				domainerror.ErrGroupNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}

	if group.UserID != input.UserID {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeNotGroupOwner,
			"group does not belong to this user",
			domainerror.ErrNotGroupOwner,
		)
	}

	if input.Name == "" {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeGroupNameRequired,
			"group name is required",
			domainerror.ErrGroupNameRequired,
		)
	}

	group.Name = input.Name
	if input.Description != nil {
		group.Description = input.Description
	}
	if input.SortOrder != nil {
		group.SortOrder = *input.SortOrder
	}

	if err := uc.groupRepo.Save(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	return &UpdateGroupOutput{Group: group}, nil
}
