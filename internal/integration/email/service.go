package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/inviteable/backend/internal/application/adapter"
)

// Service implements the adapter.EmailService interface on top of an
// EmailSender.
type Service struct {
	sender adapter.EmailSender
}

// NewService creates a new email service.
func NewService(sender adapter.EmailSender) *Service {
	return &Service{
		sender: sender,
	}
}

// SendWelcomeEmail sends a welcome email to a newly created user.
func (s *Service) SendWelcomeEmail(ctx context.Context, input adapter.WelcomeEmailInput) error {
	subject := "Welcome to Inviteable"

	html := renderWelcomeHTML(input)
	text := renderWelcomeText(input)

	if _, err := s.sender.Send(ctx, adapter.SendEmailInput{
		To:      input.UserEmail,
		Subject: subject,
		HTML:    html,
		Text:    text,
	}); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	return nil
}

func renderWelcomeHTML(input adapter.WelcomeEmailInput) string {
	var sb strings.Builder
	sb.WriteString("<h1>Welcome to Inviteable</h1>")
	fmt.Fprintf(&sb, "<p>Hi %s,</p>", input.UserName)
	sb.WriteString("<p>Your account is ready. Set up your event, add your guests and start sending invitations.</p>")
	if input.LoginURL != "" {
		fmt.Fprintf(&sb, `<p><a href="%s">Log in to get started</a></p>`, input.LoginURL)
	}
	return sb.String()
}

func renderWelcomeText(input adapter.WelcomeEmailInput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s,\n\n", input.UserName)
	sb.WriteString("Welcome to Inviteable. Your account is ready.\n")
	sb.WriteString("Set up your event, add your guests and start sending invitations.\n")
	if input.LoginURL != "" {
		fmt.Fprintf(&sb, "\nLog in: %s\n", input.LoginURL)
	}
	return sb.String()
}
