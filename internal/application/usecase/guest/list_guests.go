package guest

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/application/adapter"
	"github.com/inviteable/backend/internal/domain/entity"
)

// ListGuestsInput represents the input for guest listing.
type ListGuestsInput struct {
	UserID uuid.UUID
}

// ListGuestsOutput represents the output of guest listing. GroupNames maps
// each referenced group ID to its display name; guests whose group was
// deleted resolve to the fallback label so listing never fails on a
// dangling reference.
type ListGuestsOutput struct {
	Guests     []*entity.Guest
	GroupNames map[uuid.UUID]string
}

// ListGuestsUseCase handles guest listing logic.
type ListGuestsUseCase struct {
	guestRepo adapter.GuestRepository
	groupRepo adapter.GroupRepository
}

// NewListGuestsUseCase creates a new ListGuestsUseCase instance.
func NewListGuestsUseCase(guestRepo adapter.GuestRepository, groupRepo adapter.GroupRepository) *ListGuestsUseCase {
	return &ListGuestsUseCase{
		guestRepo: guestRepo,
		groupRepo: groupRepo,
	}
}

// Execute performs the guest listing.
func (uc *ListGuestsUseCase) Execute(ctx context.Context, input ListGuestsInput) (*ListGuestsOutput, error) {
	guests, err := uc.guestRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}

	groups, err := uc.groupRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	known := make(map[uuid.UUID]string, len(groups))
	for _, g := range groups {
		known[g.ID] = g.Name
	}

	groupNames := make(map[uuid.UUID]string)
	for _, guest := range guests {
		if guest.GroupID == nil {
			continue
		}
		if name, ok := known[*guest.GroupID]; ok {
			groupNames[*guest.GroupID] = name
		} else {
			groupNames[*guest.GroupID] = entity.FallbackGroupLabel
		}
	}

	return &ListGuestsOutput{
		Guests:     guests,
		GroupNames: groupNames,
	}, nil
}
