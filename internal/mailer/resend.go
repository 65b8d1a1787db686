package mailer

import (
	"context"
	"fmt"
	"html"
	"log"

	"github.com/resend/resend-go/v2"
)

// ResendSender sends contact emails through the Resend API.
type ResendSender struct {
	client      *resend.Client
	from        string
	adminNotify string
}

func NewResendSender(apiKey, from, adminNotify string) *ResendSender {
	return &ResendSender{
		client:      resend.NewClient(apiKey),
		from:        from,
		adminNotify: adminNotify,
	}
}

var _ Sender = (*ResendSender)(nil)

func (s *ResendSender) SendContactNotification(ctx context.Context, n ContactNotification) error {
	if s.adminNotify == "" {
		return fmt.Errorf("no admin notification address configured")
	}

	subject := "New contact form submission"
	if n.ServiceType != "" {
		subject = fmt.Sprintf("New inquiry: %s", n.ServiceType)
	}

	body := fmt.Sprintf(
		"<h2>New contact message</h2>"+
			"<p><b>Name:</b> %s</p>"+
			"<p><b>Email:</b> %s</p>"+
			"<p><b>Phone:</b> %s</p>"+
			"<p><b>Company:</b> %s</p>"+
			"<p><b>Message:</b></p><p>%s</p>",
		html.EscapeString(n.Name),
		html.EscapeString(n.Email),
		html.EscapeString(n.Phone),
		html.EscapeString(n.Company),
		html.EscapeString(n.Message),
	)

	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.adminNotify},
		Subject: subject,
		Html:    body,
		ReplyTo: n.Email,
	})
	if err != nil {
		return fmt.Errorf("resend notification failed: %w", err)
	}

	log.Printf("contact notification sent id=%s to=%s", sent.Id, s.adminNotify)
	return nil
}

func (s *ResendSender) SendAutoReply(ctx context.Context, n ContactNotification) error {
	body := fmt.Sprintf(
		"<p>Dear %s,</p>"+
			"<p>Thank you for contacting us. We received your message and our team "+
			"will get back to you within one business day.</p>"+
			"<p>Best regards,<br>The Freightsite team</p>",
		html.EscapeString(n.Name),
	)

	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{n.Email},
		Subject: "We received your message",
		Html:    body,
	})
	if err != nil {
		return fmt.Errorf("resend auto-reply failed: %w", err)
	}

	log.Printf("auto-reply sent id=%s to=%s", sent.Id, n.Email)
	return nil
}
