package repository

import (
	"context"
	"time"

	"freightsite/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactMessageRepository struct {
	db *gorm.DB
}

func NewContactMessageRepository(db *gorm.DB) *ContactMessageRepository {
	return &ContactMessageRepository{db: db}
}

type contactMessageModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	FirstName   string    `gorm:"column:first_name"`
	LastName    string    `gorm:"column:last_name"`
	Email       string    `gorm:"column:email"`
	Phone       *string   `gorm:"column:phone"`
	Company     *string   `gorm:"column:company"`
	ServiceType *string   `gorm:"column:service_type"`
	Message     string    `gorm:"column:message"`
	Status      string    `gorm:"column:status"`
	IsRead      bool      `gorm:"column:is_read"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (contactMessageModel) TableName() string { return "contact_messages" }

func toDomainMessage(m contactMessageModel) *domain.ContactMessage {
	var phone, company, serviceType string
	if m.Phone != nil {
		phone = *m.Phone
	}
	if m.Company != nil {
		company = *m.Company
	}
	if m.ServiceType != nil {
		serviceType = *m.ServiceType
	}

	return &domain.ContactMessage{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		Phone:       phone,
		Company:     company,
		ServiceType: serviceType,
		Message:     m.Message,
		Status:      domain.MessageStatus(m.Status),
		IsRead:      m.IsRead,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toMessageModel(msg *domain.ContactMessage) contactMessageModel {
	var phone, company, serviceType *string
	if msg.Phone != "" {
		v := msg.Phone
		phone = &v
	}
	if msg.Company != "" {
		v := msg.Company
		company = &v
	}
	if msg.ServiceType != "" {
		v := msg.ServiceType
		serviceType = &v
	}

	return contactMessageModel{
		ID:          msg.ID,
		FirstName:   msg.FirstName,
		LastName:    msg.LastName,
		Email:       msg.Email,
		Phone:       phone,
		Company:     company,
		ServiceType: serviceType,
		Message:     msg.Message,
		Status:      string(msg.Status),
		IsRead:      msg.IsRead,
		CreatedAt:   msg.CreatedAt,
		UpdatedAt:   msg.UpdatedAt,
	}
}

// Create inserts the message, generating a UUID identity when none is set.
func (r *ContactMessageRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Status == "" {
		msg.Status = domain.MessageNew
	}
	m := toMessageModel(msg)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*msg = *toDomainMessage(m)
	return nil
}

func (r *ContactMessageRepository) GetAll(ctx context.Context) ([]domain.ContactMessage, error) {
	var models []contactMessageModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	messages := make([]domain.ContactMessage, 0, len(models))
	for _, m := range models {
		messages = append(messages, *toDomainMessage(m))
	}
	return messages, nil
}

func (r *ContactMessageRepository) GetUnread(ctx context.Context) ([]domain.ContactMessage, error) {
	var models []contactMessageModel
	err := r.db.WithContext(ctx).
		Where("is_read = ?", false).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	messages := make([]domain.ContactMessage, 0, len(models))
	for _, m := range models {
		messages = append(messages, *toDomainMessage(m))
	}
	return messages, nil
}

func (r *ContactMessageRepository) GetByID(ctx context.Context, id string) (*domain.ContactMessage, error) {
	var m contactMessageModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainMessage(m), nil
}

// UpdateReadStatus flips the read flag, returning the updated message.
func (r *ContactMessageRepository) UpdateReadStatus(ctx context.Context, id string, isRead bool) (*domain.ContactMessage, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	err := r.db.WithContext(ctx).
		Model(&contactMessageModel{}).
		Where("id = ?", id).
		Update("is_read", isRead).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// UpdateStatus moves the message through its admin workflow tag.
func (r *ContactMessageRepository) UpdateStatus(ctx context.Context, id string, status domain.MessageStatus) (*domain.ContactMessage, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	err := r.db.WithContext(ctx).
		Model(&contactMessageModel{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *ContactMessageRepository) Delete(ctx context.Context, id string) (*domain.ContactMessage, error) {
	msg, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	err = r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&contactMessageModel{}).Error
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// Stats aggregates the dashboard counters in one pass per counter.
func (r *ContactMessageRepository) Stats(ctx context.Context) (*domain.MessageStats, error) {
	stats := &domain.MessageStats{}
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&contactMessageModel{})
	}

	if err := base().Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := base().Where("is_read = ?", false).Count(&stats.Unread).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", string(domain.MessageNew)).Count(&stats.New).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", string(domain.MessageReplied)).Count(&stats.Replied).Error; err != nil {
		return nil, err
	}

	// The day boundary is computed in UTC to match the stored timestamps;
	// local midnight would shift the window by the server's offset.
	now := time.Now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if err := base().Where("created_at >= ?", startOfDay).Count(&stats.Today).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
