package contact

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"freightsite/internal/domain"
	"freightsite/internal/mailer"
)

const mailTimeout = 15 * time.Second

type Service struct {
	messages MessageRepo
	mail     mailer.Sender
}

func NewService(messages MessageRepo, mail mailer.Sender) *Service {
	return &Service{
		messages: messages,
		mail:     mail,
	}
}

// Submit validates and stores a contact form submission, then fires the
// admin notification and the visitor auto-reply in the background. Email
// failures are logged and never surface to the visitor.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*domain.ContactMessage, error) {
	name := strings.TrimSpace(req.Name)
	message := strings.TrimSpace(req.Message)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if message == "" {
		return nil, fmt.Errorf("%w: message must not be empty", ErrValidation)
	}

	first, last := splitName(name)
	serviceType := strings.TrimSpace(req.ServiceType)
	if serviceType == "" {
		serviceType = strings.TrimSpace(req.Subject)
	}

	msg := &domain.ContactMessage{
		FirstName:   first,
		LastName:    last,
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       strings.TrimSpace(req.Phone),
		Company:     strings.TrimSpace(req.Company),
		ServiceType: serviceType,
		Message:     message,
		Status:      domain.MessageNew,
		IsRead:      false,
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.mail != nil {
		notification := mailer.ContactNotification{
			Name:        name,
			Email:       msg.Email,
			Phone:       msg.Phone,
			Company:     msg.Company,
			ServiceType: msg.ServiceType,
			Message:     msg.Message,
		}
		go s.deliver(notification)
	}

	return msg, nil
}

// deliver runs detached from the request with its own deadline.
func (s *Service) deliver(n mailer.ContactNotification) {
	ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
	defer cancel()

	if err := s.mail.SendContactNotification(ctx, n); err != nil {
		log.Printf("contact notification failed: %v", err)
	}
	if err := s.mail.SendAutoReply(ctx, n); err != nil {
		log.Printf("auto-reply failed: %v", err)
	}
}

func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func (s *Service) List(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.messages.GetAll(ctx)
}

func (s *Service) ListUnread(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.messages.GetUnread(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.ContactMessage, error) {
	return s.messages.GetByID(ctx, id)
}

func (s *Service) MarkRead(ctx context.Context, id string, isRead bool) (*domain.ContactMessage, error) {
	return s.messages.UpdateReadStatus(ctx, id, isRead)
}

func (s *Service) SetStatus(ctx context.Context, id string, status string) (*domain.ContactMessage, error) {
	switch domain.MessageStatus(status) {
	case domain.MessageNew, domain.MessageReplied, domain.MessageArchived:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.messages.UpdateStatus(ctx, id, domain.MessageStatus(status))
}

func (s *Service) Delete(ctx context.Context, id string) (*domain.ContactMessage, error) {
	return s.messages.Delete(ctx, id)
}

func (s *Service) Stats(ctx context.Context) (*domain.MessageStats, error) {
	return s.messages.Stats(ctx)
}
