package profile

import (
	"context"
	"fmt"

	"github.com/inviteable/backend/internal/application/adapter"
	"github.com/inviteable/backend/internal/domain/entity"
)

// ListUsersOutput represents the output of user listing.
type ListUsersOutput struct {
	Profiles []*entity.Profile
}

// ListUsersUseCase handles user listing logic (admin surface).
type ListUsersUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewListUsersUseCase creates a new ListUsersUseCase instance.
func NewListUsersUseCase(profileRepo adapter.ProfileRepository) *ListUsersUseCase {
	return &ListUsersUseCase{
		profileRepo: profileRepo,
	}
}

// Execute returns all profiles in the system.
func (uc *ListUsersUseCase) Execute(ctx context.Context) (*ListUsersOutput, error) {
	profiles, err := uc.profileRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return &ListUsersOutput{Profiles: profiles}, nil
}
