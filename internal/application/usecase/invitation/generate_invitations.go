package invitation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/application/adapter"
	domainerror "github.com/inviteable/backend/internal/domain/error"
)

// GenerateInvitationsInput represents the input for invitation generation.
type GenerateInvitationsInput struct {
	UserID     uuid.UUID
	GroupID    uuid.UUID
	TemplateID uuid.UUID
}

// GenerateInvitationsOutput represents the output of invitation generation.
type GenerateInvitationsOutput struct {
	Invitations []GeneratedInvitation
}

// GenerateInvitationsUseCase resolves the group's guests, the template and
// the user's event setting, then renders one invitation per guest.
type GenerateInvitationsUseCase struct {
	guestRepo        adapter.GuestRepository
	templateRepo     adapter.TemplateRepository
	eventSettingRepo adapter.EventSettingRepository
	siteRootURL      string
}

// NewGenerateInvitationsUseCase creates a new GenerateInvitationsUseCase instance.
func NewGenerateInvitationsUseCase(
	guestRepo adapter.GuestRepository,
	templateRepo adapter.TemplateRepository,
	eventSettingRepo adapter.EventSettingRepository,
	siteRootURL string,
) *GenerateInvitationsUseCase {
	return &GenerateInvitationsUseCase{
		guestRepo:        guestRepo,
		templateRepo:     templateRepo,
		eventSettingRepo: eventSettingRepo,
		siteRootURL:      siteRootURL,
	}
}

// Execute performs the invitation generation. It is read-only: no guest or
// log state changes until the caller dispatches a send action.
func (uc *GenerateInvitationsUseCase) Execute(ctx context.Context, input GenerateInvitationsInput) (*GenerateInvitationsOutput, error) {
	// The event setting drives URL construction; without one, nothing can
	// be generated.
	setting, err := uc.eventSettingRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEventSettingNotFound) {
			return nil, domainerror.NewEventError(
				domainerror.ErrCodeEventNotConfigured,
				"event is not configured, no invitations can be generated",
				domainerror.ErrEventNotConfigured,
			)
		}
		return nil, fmt.Errorf("failed to load event setting: %w", err)
	}

	template, err := uc.templateRepo.FindByID(ctx, input.TemplateID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTemplateNotFound) {
			return nil, domainerror.NewTemplateError(
				domainerror.ErrCodeTemplateNotFound,
				"template not found",
				domainerror.ErrTemplateNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load template: %w", err)
	}

	if !template.VisibleTo(input.UserID) {
		return nil, domainerror.NewTemplateError(
			domainerror.ErrCodeNotTemplateOwner,
			"template does not belong to this user",
			domainerror.ErrNotTemplateOwner,
		)
	}

	guests, err := uc.guestRepo.FindByUserAndGroup(ctx, input.UserID, input.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load guests: %w", err)
	}

	return &GenerateInvitationsOutput{
		Invitations: Render(setting, template, guests, uc.siteRootURL),
	}, nil
}
