package repository

import (
	"context"
	"time"

	"freightsite/internal/domain"

	"gorm.io/gorm"
)

type CertificateRepository struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{db: db}
}

// CertificateUpdate carries one field per updatable column; nil leaves the
// column alone. The dates are nullable in the schema, so they use explicit
// set-flags: SetIssuedDate with a nil IssuedDate clears the stored date.
type CertificateUpdate struct {
	NameEN        *string
	NameAR        *string
	NameRO        *string
	DescriptionEN *string
	DescriptionAR *string
	DescriptionRO *string
	ImageURL      *string
	IssuedBy      *string
	IssuedDate    *time.Time
	SetIssuedDate bool
	ExpiryDate    *time.Time
	SetExpiryDate bool
	IsActive      *bool
	SortOrder     *int
}

func (r *CertificateRepository) Create(ctx context.Context, c *domain.Certificate) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CertificateRepository) GetAll(ctx context.Context) ([]domain.Certificate, error) {
	var certs []domain.Certificate
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&certs).Error
	return certs, err
}

func (r *CertificateRepository) GetActive(ctx context.Context) ([]domain.Certificate, error) {
	var certs []domain.Certificate
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&certs).Error
	return certs, err
}

func (r *CertificateRepository) GetByID(ctx context.Context, id int64) (*domain.Certificate, error) {
	var c domain.Certificate
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CertificateRepository) Update(ctx context.Context, id int64, in CertificateUpdate) (*domain.Certificate, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.NameEN != nil {
		c.NameEN = *in.NameEN
	}
	if in.NameAR != nil {
		c.NameAR = *in.NameAR
	}
	if in.NameRO != nil {
		c.NameRO = *in.NameRO
	}
	if in.DescriptionEN != nil {
		c.DescriptionEN = *in.DescriptionEN
	}
	if in.DescriptionAR != nil {
		c.DescriptionAR = *in.DescriptionAR
	}
	if in.DescriptionRO != nil {
		c.DescriptionRO = *in.DescriptionRO
	}
	if in.ImageURL != nil {
		c.ImageURL = in.ImageURL
	}
	if in.IssuedBy != nil {
		c.IssuedBy = *in.IssuedBy
	}
	if in.SetIssuedDate {
		c.IssuedDate = in.IssuedDate
	}
	if in.SetExpiryDate {
		c.ExpiryDate = in.ExpiryDate
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if in.SortOrder != nil {
		c.SortOrder = *in.SortOrder
	}

	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// Save creates the certificate when it has no identity yet and otherwise
// rewrites the existing row in place.
func (r *CertificateRepository) Save(ctx context.Context, c *domain.Certificate) error {
	if c.ID == 0 {
		return r.Create(ctx, c)
	}
	if _, err := r.GetByID(ctx, c.ID); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CertificateRepository) Delete(ctx context.Context, id int64) (*domain.Certificate, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&domain.Certificate{}, id).Error; err != nil {
		return nil, err
	}
	return c, nil
}
