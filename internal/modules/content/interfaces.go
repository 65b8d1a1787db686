package content

import (
	"context"

	"freightsite/internal/domain"
	"freightsite/internal/repository"
)

// ConnChecker reports whether the database answers a round-trip. List
// endpoints call it before querying so outages surface as 503, not 500.
type ConnChecker func(ctx context.Context) bool

type ServiceRepo interface {
	Create(ctx context.Context, s *domain.Service) error
	GetAll(ctx context.Context) ([]domain.Service, error)
	GetActive(ctx context.Context) ([]domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Update(ctx context.Context, id int64, in repository.ServiceUpdate) (*domain.Service, error)
	Delete(ctx context.Context, id int64) (*domain.Service, error)
}

type CertificateRepo interface {
	Create(ctx context.Context, c *domain.Certificate) error
	GetAll(ctx context.Context) ([]domain.Certificate, error)
	GetActive(ctx context.Context) ([]domain.Certificate, error)
	GetByID(ctx context.Context, id int64) (*domain.Certificate, error)
	Update(ctx context.Context, id int64, in repository.CertificateUpdate) (*domain.Certificate, error)
	Delete(ctx context.Context, id int64) (*domain.Certificate, error)
}

type TeamRepo interface {
	Create(ctx context.Context, m *domain.TeamMember) error
	GetAll(ctx context.Context) ([]domain.TeamMember, error)
	GetActive(ctx context.Context) ([]domain.TeamMember, error)
	GetByID(ctx context.Context, id int64) (*domain.TeamMember, error)
	Update(ctx context.Context, id int64, in repository.TeamMemberUpdate) (*domain.TeamMember, error)
	Delete(ctx context.Context, id int64) (*domain.TeamMember, error)
}
