package admin

import (
	"context"

	"freightsite/internal/domain"

	"gorm.io/gorm"
)

type messageStatsReader interface {
	Stats(ctx context.Context) (*domain.MessageStats, error)
}

// Service aggregates the dashboard numbers.
type Service struct {
	db       *gorm.DB
	messages messageStatsReader
}

func NewService(db *gorm.DB, messages messageStatsReader) *Service {
	return &Service{
		db:       db,
		messages: messages,
	}
}

type EntityCounts struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

type Stats struct {
	Services     EntityCounts         `json:"services"`
	Certificates EntityCounts         `json:"certificates"`
	Team         EntityCounts         `json:"team"`
	Messages     *domain.MessageStats `json:"messages"`
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	var err error
	if stats.Services, err = s.countEntity(ctx, &domain.Service{}); err != nil {
		return nil, err
	}
	if stats.Certificates, err = s.countEntity(ctx, &domain.Certificate{}); err != nil {
		return nil, err
	}
	if stats.Team, err = s.countEntity(ctx, &domain.TeamMember{}); err != nil {
		return nil, err
	}
	if stats.Messages, err = s.messages.Stats(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *Service) countEntity(ctx context.Context, model any) (EntityCounts, error) {
	var counts EntityCounts
	if err := s.db.WithContext(ctx).Model(model).Count(&counts.Total).Error; err != nil {
		return counts, err
	}
	err := s.db.WithContext(ctx).Model(model).
		Where("is_active = ?", true).
		Count(&counts.Active).Error
	return counts, err
}
