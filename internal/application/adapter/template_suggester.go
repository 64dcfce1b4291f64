package adapter

import "context"

// TemplateSuggestionRequest represents a request to draft invitation text.
type TemplateSuggestionRequest struct {
	EventName string
	Tone      string
	Language  string
}

// TemplateSuggestionResult represents the drafted invitation texts. Both
// renderings include the guest-name and invitation-link placeholder tokens.
type TemplateSuggestionResult struct {
	Name        string
	ContentWA   string
	ContentCopy string
}

// TemplateSuggester defines the interface for AI-assisted template drafting.
type TemplateSuggester interface {
	// Suggest drafts invitation texts for the given event.
	Suggest(ctx context.Context, request *TemplateSuggestionRequest) (*TemplateSuggestionResult, error)

	// IsAvailable checks if the suggestion service is configured.
	IsAvailable() bool
}
