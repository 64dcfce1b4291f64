package adapter

import "context"

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// WelcomeEmailInput represents the input for a welcome email to a new user.
type WelcomeEmailInput struct {
	UserName  string
	UserEmail string
	LoginURL  string
}

// EmailService defines the interface for application-level email flows.
type EmailService interface {
	// SendWelcomeEmail sends a welcome email to a newly created user.
	SendWelcomeEmail(ctx context.Context, input WelcomeEmailInput) error
}
