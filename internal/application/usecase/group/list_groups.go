package group

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/application/adapter"
	"github.com/inviteable/backend/internal/domain/entity"
)

// ListGroupsInput represents the input for group listing.
type ListGroupsInput struct {
	UserID uuid.UUID
}

// ListGroupsOutput represents the output of group listing, ordered by
// sort_order ascending.
type ListGroupsOutput struct {
	Groups []*entity.GuestGroup
}

// ListGroupsUseCase handles guest group listing logic.
type ListGroupsUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewListGroupsUseCase creates a new ListGroupsUseCase instance.
func NewListGroupsUseCase(groupRepo adapter.GroupRepository) *ListGroupsUseCase {
	return &ListGroupsUseCase{
		groupRepo: groupRepo,
	}
}

// Execute performs the group listing.
func (uc *ListGroupsUseCase) Execute(ctx context.Context, input ListGroupsInput) (*ListGroupsOutput, error) {
	groups, err := uc.groupRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	return &ListGroupsOutput{Groups: groups}, nil
}
