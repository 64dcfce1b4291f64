// Package invitation contains the invitation generation use case and its
// pure rendering helpers.
package invitation

import (
	"net/url"
	"strings"

	"github.com/inviteable/backend/internal/domain/entity"
)

// Placeholder tokens recognized in template content. These are literal
// bracket-delimited strings, not a general template language.
const (
	PlaceholderGuestName      = "[nama-tamu]"
	PlaceholderInvitationLink = "[link-undangan]"
)

// whatsAppBaseURL is the deep-link prefix for opening a chat with a
// pre-filled message.
const whatsAppBaseURL = "https://wa.me/"

// GeneratedInvitation is one rendered invitation row for a guest.
type GeneratedInvitation struct {
	Guest              *entity.Guest
	FinalInvitationURL string
	GeneratedWAText    string
	GeneratedCopyText  string
	WALink             string
}

// Render produces one invitation per guest, preserving guest order. It is a
// pure transformation with no side effects.
func Render(setting *entity.EventSetting, template *entity.MessageTemplate, guests []*entity.Guest, siteRootURL string) []GeneratedInvitation {
	generated := make([]GeneratedInvitation, len(guests))
	for i, guest := range guests {
		finalURL := BuildInvitationURL(setting, siteRootURL, guest.Name)
		waText := RenderText(template.ContentWA, guest.Name, finalURL)
		copyText := RenderText(template.ContentCopy, guest.Name, finalURL)

		generated[i] = GeneratedInvitation{
			Guest:              guest,
			FinalInvitationURL: finalURL,
			GeneratedWAText:    waText,
			GeneratedCopyText:  copyText,
			WALink:             BuildWhatsAppLink(CleanPhone(guest.Phone), waText),
		}
	}
	return generated
}

// BuildInvitationURL derives the per-guest tracking URL: the event's explicit
// invitation URL when set, otherwise the canonical <site-root>/<slug>/
// fallback, with the URL-encoded guest name carried in the "to" parameter.
func BuildInvitationURL(setting *entity.EventSetting, siteRootURL, guestName string) string {
	baseURL := ""
	if setting.InvitationURL != nil {
		baseURL = *setting.InvitationURL
	}
	if baseURL == "" {
		baseURL = strings.TrimSuffix(siteRootURL, "/") + "/" + setting.InvitationSlug + "/"
	}
	return baseURL + "?to=" + encodeQueryComponent(guestName)
}

// RenderText substitutes every occurrence of the guest-name and
// invitation-link placeholders. Substitution is global and case-sensitive;
// content without placeholders passes through unchanged.
func RenderText(content, guestName, invitationURL string) string {
	text := strings.ReplaceAll(content, PlaceholderGuestName, guestName)
	return strings.ReplaceAll(text, PlaceholderInvitationLink, invitationURL)
}

// CleanPhone strips every non-digit character from the phone number. A nil
// phone yields the empty string.
func CleanPhone(phone *string) string {
	if phone == nil {
		return ""
	}
	var b strings.Builder
	for _, r := range *phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BuildWhatsAppLink constructs the wa.me deep link. The link is built even
// when the phone segment is empty; callers disable the WhatsApp action for
// guests without a phone.
func BuildWhatsAppLink(phoneClean, waText string) string {
	return whatsAppBaseURL + phoneClean + "?text=" + encodeQueryComponent(waText)
}

// encodeQueryComponent percent-encodes a query component the way browsers'
// encodeURIComponent does, using %20 for spaces rather than '+'.
func encodeQueryComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
