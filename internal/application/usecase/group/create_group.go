// Package group contains guest group-related use cases.
package group

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/application/adapter"
	"github.com/inviteable/backend/internal/domain/entity"
	domainerror "github.com/inviteable/backend/internal/domain/error"
)

// CreateGroupInput represents the input for group creation.
type CreateGroupInput struct {
	UserID      uuid.UUID
	Name        string
	Description *string
	SortOrder   int
}

// CreateGroupOutput represents the output of group creation.
type CreateGroupOutput struct {
	Group *entity.GuestGroup
}

// CreateGroupUseCase handles guest group creation logic.
type CreateGroupUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewCreateGroupUseCase creates a new CreateGroupUseCase instance.
func NewCreateGroupUseCase(groupRepo adapter.GroupRepository) *CreateGroupUseCase {
	return &CreateGroupUseCase{
		groupRepo: groupRepo,
	}
}

// Execute performs the group creation.
func (uc *CreateGroupUseCase) Execute(ctx context.Context, input CreateGroupInput) (*CreateGroupOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeGroupNameRequired,
			"group name is required",
			domainerror.ErrGroupNameRequired,
		)
	}

	group := entity.NewGuestGroup(input.UserID, input.Name, input.Description, input.SortOrder)

	if err := uc.groupRepo.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return &CreateGroupOutput{Group: group}, nil
}
