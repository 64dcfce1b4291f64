package template

import (
	"context"
	"strings"

	"github.com/inviteable/backend/internal/application/adapter"
	"github.com/inviteable/backend/internal/application/usecase/invitation"
	domainerror "github.com/inviteable/backend/internal/domain/error"
)

// SuggestTemplateInput represents the input for AI-assisted template drafting.
type SuggestTemplateInput struct {
	EventName string
	Tone      string
	Language  string
}

// SuggestTemplateOutput represents the drafted template content.
type SuggestTemplateOutput struct {
	Name        string
	ContentWA   string
	ContentCopy string
}

// SuggestTemplateUseCase drafts invitation text via the configured AI
// service. The draft is returned for review, never persisted directly.
type SuggestTemplateUseCase struct {
	suggester adapter.TemplateSuggester
}

// NewSuggestTemplateUseCase creates a new SuggestTemplateUseCase instance.
func NewSuggestTemplateUseCase(suggester adapter.TemplateSuggester) *SuggestTemplateUseCase {
	return &SuggestTemplateUseCase{
		suggester: suggester,
	}
}

// Execute drafts the template content.
func (uc *SuggestTemplateUseCase) Execute(ctx context.Context, input SuggestTemplateInput) (*SuggestTemplateOutput, error) {
	if !uc.suggester.IsAvailable() {
		return nil, domainerror.NewTemplateError(
			domainerror.ErrCodeSuggestionUnavailable,
			"template suggestion service is not available",
			domainerror.ErrSuggestionUnavailable,
		)
	}

	result, err := uc.suggester.Suggest(ctx, &adapter.TemplateSuggestionRequest{
		EventName: input.EventName,
		Tone:      input.Tone,
		Language:  input.Language,
	})
	if err != nil {
		return nil, domainerror.NewTemplateError(
			domainerror.ErrCodeSuggestionFailed,
			"failed to draft template",
			err,
		)
	}

	// A draft without the placeholder tokens cannot be personalized; anchor
	// them at the end rather than rejecting the draft.
	contentWA := ensurePlaceholders(result.ContentWA)
	contentCopy := ensurePlaceholders(result.ContentCopy)

	return &SuggestTemplateOutput{
		Name:        result.Name,
		ContentWA:   contentWA,
		ContentCopy: contentCopy,
	}, nil
}

func ensurePlaceholders(content string) string {
	if !strings.Contains(content, invitation.PlaceholderGuestName) {
		content = invitation.PlaceholderGuestName + "\n\n" + content
	}
	if !strings.Contains(content, invitation.PlaceholderInvitationLink) {
		content = content + "\n\n" + invitation.PlaceholderInvitationLink
	}
	return content
}
