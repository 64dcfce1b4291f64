package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/inviteable/backend/internal/application/adapter"
)

// GeminiService implements the adapter.TemplateSuggester using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// suggestionResponse mirrors the JSON schema requested from the model.
type suggestionResponse struct {
	Name        string `json:"name"`
	ContentWA   string `json:"content_wa"`
	ContentCopy string `json:"content_copy"`
}

// Suggest drafts invitation texts for the given event.
func (s *GeminiService) Suggest(ctx context.Context, request *adapter.TemplateSuggestionRequest) (*adapter.TemplateSuggestionResult, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.7)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(request)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return s.parseResponse(resp)
}

// buildPrompt creates the drafting prompt for Gemini.
func (s *GeminiService) buildPrompt(request *adapter.TemplateSuggestionRequest) string {
	var sb strings.Builder

	sb.WriteString("You are a copywriter drafting event invitation messages sent over chat apps.\n\n")
	sb.WriteString("Draft an invitation message for the event below. Produce two renderings: one for WhatsApp (may use *bold* and _italic_ markers) and one plain-text rendering for copy-paste.\n\n")
	sb.WriteString("RULES:\n")
	sb.WriteString("- Include the literal token [nama-tamu] exactly once where the guest name belongs.\n")
	sb.WriteString("- Include the literal token [link-undangan] exactly once where the invitation link belongs.\n")
	sb.WriteString("- Do not invent real URLs or names; only the tokens stand in for them.\n\n")

	fmt.Fprintf(&sb, "Event name: %s\n", request.EventName)
	if request.Tone != "" {
		fmt.Fprintf(&sb, "Tone: %s\n", request.Tone)
	}
	if request.Language != "" {
		fmt.Fprintf(&sb, "Language: %s\n", request.Language)
	}

	sb.WriteString("\nRespond with a single JSON object:\n")
	sb.WriteString(`{"name": "<short template name>", "content_wa": "<whatsapp rendering>", "content_copy": "<plain rendering>"}`)

	return sb.String()
}

// parseResponse extracts the drafted texts from the model response.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) (*adapter.TemplateSuggestionResult, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var raw strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			raw.WriteString(string(text))
		}
	}

	var parsed suggestionResponse
	if err := json.Unmarshal([]byte(raw.String()), &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode gemini response: %w", err)
	}

	if parsed.ContentWA == "" && parsed.ContentCopy == "" {
		return nil, fmt.Errorf("gemini response contains no content")
	}
	if parsed.ContentCopy == "" {
		parsed.ContentCopy = parsed.ContentWA
	}
	if parsed.ContentWA == "" {
		parsed.ContentWA = parsed.ContentCopy
	}

	return &adapter.TemplateSuggestionResult{
		Name:        parsed.Name,
		ContentWA:   parsed.ContentWA,
		ContentCopy: parsed.ContentCopy,
	}, nil
}
