package mailer

import "context"

// ContactNotification carries the fields the admin notification and the
// visitor auto-reply are rendered from.
type ContactNotification struct {
	Name        string
	Email       string
	Phone       string
	Company     string
	ServiceType string
	Message     string
}

// Sender delivers contact-form emails. Delivery is best-effort everywhere:
// callers log failures and never fail the originating request.
type Sender interface {
	SendContactNotification(ctx context.Context, n ContactNotification) error
	SendAutoReply(ctx context.Context, n ContactNotification) error
}
