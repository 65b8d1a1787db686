package contact

import (
	"context"

	"freightsite/internal/domain"
)

type ConnChecker func(ctx context.Context) bool

type MessageRepo interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	GetAll(ctx context.Context) ([]domain.ContactMessage, error)
	GetUnread(ctx context.Context) ([]domain.ContactMessage, error)
	GetByID(ctx context.Context, id string) (*domain.ContactMessage, error)
	UpdateReadStatus(ctx context.Context, id string, isRead bool) (*domain.ContactMessage, error)
	UpdateStatus(ctx context.Context, id string, status domain.MessageStatus) (*domain.ContactMessage, error)
	Delete(ctx context.Context, id string) (*domain.ContactMessage, error)
	Stats(ctx context.Context) (*domain.MessageStats, error)
}
