package repository

import (
	"context"

	"freightsite/internal/domain"

	"gorm.io/gorm"
)

type TeamMemberRepository struct {
	db *gorm.DB
}

func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

type TeamMemberUpdate struct {
	NameEN          *string
	NameAR          *string
	NameRO          *string
	PositionEN      *string
	PositionAR      *string
	PositionRO      *string
	BioEN           *string
	BioAR           *string
	BioRO           *string
	Email           *string
	Phone           *string
	ImageURL        *string
	LinkedinURL     *string
	ExperienceYears *int
	IsActive        *bool
	SortOrder       *int
}

func (r *TeamMemberRepository) Create(ctx context.Context, m *domain.TeamMember) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *TeamMemberRepository) GetAll(ctx context.Context) ([]domain.TeamMember, error) {
	var members []domain.TeamMember
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&members).Error
	return members, err
}

func (r *TeamMemberRepository) GetActive(ctx context.Context) ([]domain.TeamMember, error) {
	var members []domain.TeamMember
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&members).Error
	return members, err
}

func (r *TeamMemberRepository) GetByID(ctx context.Context, id int64) (*domain.TeamMember, error) {
	var m domain.TeamMember
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *TeamMemberRepository) Update(ctx context.Context, id int64, in TeamMemberUpdate) (*domain.TeamMember, error) {
	m, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.NameEN != nil {
		m.NameEN = *in.NameEN
	}
	if in.NameAR != nil {
		m.NameAR = *in.NameAR
	}
	if in.NameRO != nil {
		m.NameRO = *in.NameRO
	}
	if in.PositionEN != nil {
		m.PositionEN = *in.PositionEN
	}
	if in.PositionAR != nil {
		m.PositionAR = *in.PositionAR
	}
	if in.PositionRO != nil {
		m.PositionRO = *in.PositionRO
	}
	if in.BioEN != nil {
		m.BioEN = *in.BioEN
	}
	if in.BioAR != nil {
		m.BioAR = *in.BioAR
	}
	if in.BioRO != nil {
		m.BioRO = *in.BioRO
	}
	if in.Email != nil {
		m.Email = *in.Email
	}
	if in.Phone != nil {
		m.Phone = *in.Phone
	}
	if in.ImageURL != nil {
		m.ImageURL = in.ImageURL
	}
	if in.LinkedinURL != nil {
		m.LinkedinURL = in.LinkedinURL
	}
	if in.ExperienceYears != nil {
		m.ExperienceYears = *in.ExperienceYears
	}
	if in.IsActive != nil {
		m.IsActive = *in.IsActive
	}
	if in.SortOrder != nil {
		m.SortOrder = *in.SortOrder
	}

	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (r *TeamMemberRepository) Delete(ctx context.Context, id int64) (*domain.TeamMember, error) {
	m, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&domain.TeamMember{}, id).Error; err != nil {
		return nil, err
	}
	return m, nil
}
