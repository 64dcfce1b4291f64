package invitation

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/domain/entity"
)

const testSiteRoot = "https://app.inviteable.id"

func strPtr(s string) *string {
	return &s
}

func testSetting(slug string, explicitURL *string) *entity.EventSetting {
	setting := entity.NewEventSetting(uuid.New(), "The Wedding of Fathia & Saverro", slug)
	setting.InvitationURL = explicitURL
	return setting
}

func TestBuildInvitationURL(t *testing.T) {
	tests := []struct {
		name        string
		slug        string
		explicitURL *string
		guestName   string
		want        string
	}{
		{
			name:      "slug fallback with encoded guest name",
			slug:      "my-event",
			guestName: "Jane Doe",
			want:      "https://app.inviteable.id/my-event/?to=Jane%20Doe",
		},
		{
			name:        "explicit invitation url wins over slug",
			slug:        "my-event",
			explicitURL: strPtr("https://custom.example.com/wedding/"),
			guestName:   "Budi",
			want:        "https://custom.example.com/wedding/?to=Budi",
		},
		{
			name:        "empty explicit url falls back to slug",
			slug:        "fathia-saverro",
			explicitURL: strPtr(""),
			guestName:   "Linda & Keluarga",
			want:        "https://app.inviteable.id/fathia-saverro/?to=Linda%20%26%20Keluarga",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildInvitationURL(testSetting(tt.slug, tt.explicitURL), testSiteRoot, tt.guestName)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}

			parsed, err := url.Parse(got)
			if err != nil {
				t.Fatalf("generated URL does not parse: %v", err)
			}
			if to := parsed.Query().Get("to"); to != tt.guestName {
				t.Errorf("expected to param %q, got %q", tt.guestName, to)
			}
		})
	}
}

func TestRenderText(t *testing.T) {
	link := "https://app.inviteable.id/my-event/?to=Jane%20Doe"

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "both placeholders substituted",
			content: "Hi [nama-tamu], visit [link-undangan]",
			want:    "Hi Jane Doe, visit " + link,
		},
		{
			name:    "repeated placeholders substituted globally",
			content: "[nama-tamu] [nama-tamu] [link-undangan] [link-undangan]",
			want:    "Jane Doe Jane Doe " + link + " " + link,
		},
		{
			name:    "no placeholders passes through unchanged",
			content: "plain invitation text",
			want:    "plain invitation text",
		},
		{
			name:    "case sensitive tokens are left alone",
			content: "Hi [Nama-Tamu]",
			want:    "Hi [Nama-Tamu]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderText(tt.content, "Jane Doe", link)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCleanPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone *string
		want  string
	}{
		{
			name:  "formatted indonesian number",
			phone: strPtr("+62 812-3456-7890"),
			want:  "6281234567890",
		},
		{
			name:  "already clean",
			phone: strPtr("6281234567891"),
			want:  "6281234567891",
		},
		{
			name:  "letters and punctuation stripped",
			phone: strPtr("(0812) abc 345.678"),
			want:  "0812345678",
		},
		{
			name:  "nil phone yields empty string",
			phone: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanPhone(tt.phone)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
			for _, r := range got {
				if r < '0' || r > '9' {
					t.Errorf("clean phone contains non-digit %q", r)
				}
			}
		})
	}
}

func TestBuildWhatsAppLink(t *testing.T) {
	link := BuildWhatsAppLink("6281234567890", "Hi Jane Doe, visit https://app.inviteable.id/my-event/?to=Jane%20Doe")

	if !strings.HasPrefix(link, "https://wa.me/6281234567890?text=") {
		t.Errorf("unexpected link prefix: %q", link)
	}
	if strings.Contains(link, " ") {
		t.Errorf("link contains unencoded spaces: %q", link)
	}

	// Empty phone still yields a structurally complete link.
	empty := BuildWhatsAppLink("", "hello")
	if !strings.HasPrefix(empty, "https://wa.me/?text=") {
		t.Errorf("unexpected empty-phone link: %q", empty)
	}
}

func TestRender(t *testing.T) {
	userID := uuid.New()
	setting := testSetting("my-event", nil)

	template := entity.NewGlobalTemplate(
		"Default",
		"Hi [nama-tamu], visit [link-undangan]",
		"Copy for [nama-tamu]: [link-undangan]",
		true,
	)

	guests := []*entity.Guest{
		entity.NewGuest(userID, "Jane Doe", strPtr("+62 812-3456-7890"), nil, nil, nil),
		entity.NewGuest(userID, "Budi Santoso", nil, nil, nil, nil),
	}

	generated := Render(setting, template, guests, testSiteRoot)

	if len(generated) != 2 {
		t.Fatalf("expected 2 invitations, got %d", len(generated))
	}

	// Guest order is preserved.
	if generated[0].Guest.Name != "Jane Doe" || generated[1].Guest.Name != "Budi Santoso" {
		t.Error("guest order not preserved")
	}

	first := generated[0]
	if first.FinalInvitationURL != "https://app.inviteable.id/my-event/?to=Jane%20Doe" {
		t.Errorf("unexpected invitation URL: %q", first.FinalInvitationURL)
	}
	if first.GeneratedWAText != "Hi Jane Doe, visit https://app.inviteable.id/my-event/?to=Jane%20Doe" {
		t.Errorf("unexpected WA text: %q", first.GeneratedWAText)
	}
	if !strings.HasPrefix(first.WALink, "https://wa.me/6281234567890?text=") {
		t.Errorf("unexpected WA link: %q", first.WALink)
	}

	for _, inv := range generated {
		for _, text := range []string{inv.GeneratedWAText, inv.GeneratedCopyText} {
			if strings.Contains(text, PlaceholderGuestName) || strings.Contains(text, PlaceholderInvitationLink) {
				t.Errorf("placeholder token left in rendered text: %q", text)
			}
			if !strings.Contains(text, inv.Guest.Name) {
				t.Errorf("rendered text missing guest name: %q", text)
			}
		}
	}

	// Phoneless guest still gets a WA link, with an empty phone segment.
	if !strings.HasPrefix(generated[1].WALink, "https://wa.me/?text=") {
		t.Errorf("unexpected phoneless WA link: %q", generated[1].WALink)
	}
}
