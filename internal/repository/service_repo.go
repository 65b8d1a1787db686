package repository

import (
	"context"

	"freightsite/internal/domain"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// ServiceUpdate is the explicit allow-list of updatable columns. Only
// non-nil fields are written, so a partial update never clobbers the rest.
type ServiceUpdate struct {
	NameEN        *string
	NameAR        *string
	NameRO        *string
	DescriptionEN *string
	DescriptionAR *string
	DescriptionRO *string
	Icon          *string
	ImageURL      *string
	Features      *[]string
	IsActive      *bool
	SortOrder     *int
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// GetAll returns every service, newest first.
func (r *ServiceRepository) GetAll(ctx context.Context) ([]domain.Service, error) {
	var services []domain.Service
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&services).Error
	return services, err
}

// GetActive returns the subset shown on the public site.
func (r *ServiceRepository) GetActive(ctx context.Context) ([]domain.Service, error) {
	var services []domain.Service
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&services).Error
	return services, err
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var s domain.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// Update loads the current row, applies the provided fields and saves the
// whole record. Absent id surfaces as gorm.ErrRecordNotFound.
func (r *ServiceRepository) Update(ctx context.Context, id int64, in ServiceUpdate) (*domain.Service, error) {
	s, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.NameEN != nil {
		s.NameEN = *in.NameEN
	}
	if in.NameAR != nil {
		s.NameAR = *in.NameAR
	}
	if in.NameRO != nil {
		s.NameRO = *in.NameRO
	}
	if in.DescriptionEN != nil {
		s.DescriptionEN = *in.DescriptionEN
	}
	if in.DescriptionAR != nil {
		s.DescriptionAR = *in.DescriptionAR
	}
	if in.DescriptionRO != nil {
		s.DescriptionRO = *in.DescriptionRO
	}
	if in.Icon != nil {
		s.Icon = *in.Icon
	}
	if in.ImageURL != nil {
		s.ImageURL = in.ImageURL
	}
	if in.Features != nil {
		s.Features = *in.Features
	}
	if in.IsActive != nil {
		s.IsActive = *in.IsActive
	}
	if in.SortOrder != nil {
		s.SortOrder = *in.SortOrder
	}

	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// Delete removes the row and returns it, so callers can echo what was
// deleted. Absent id surfaces as gorm.ErrRecordNotFound.
func (r *ServiceRepository) Delete(ctx context.Context, id int64) (*domain.Service, error) {
	s, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&domain.Service{}, id).Error; err != nil {
		return nil, err
	}
	return s, nil
}
