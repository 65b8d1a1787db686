package mailer

import (
	"context"
	"log"
)

// LogSender is the fallback used when no RESEND_API_KEY is configured.
// It keeps local development working without an email provider.
type LogSender struct{}

var _ Sender = (*LogSender)(nil)

func (LogSender) SendContactNotification(_ context.Context, n ContactNotification) error {
	log.Printf("mailer (log only): contact notification from=%s email=%s", n.Name, n.Email)
	return nil
}

func (LogSender) SendAutoReply(_ context.Context, n ContactNotification) error {
	log.Printf("mailer (log only): auto-reply to=%s", n.Email)
	return nil
}
