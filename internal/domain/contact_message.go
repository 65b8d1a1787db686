package domain

import "time"

type MessageStatus string

const (
	MessageNew      MessageStatus = "new"
	MessageReplied  MessageStatus = "replied"
	MessageArchived MessageStatus = "archived"
)

// ContactMessage is a submission from the public contact form. Messages are
// created by visitors and only ever mutated by admins (read flag, status).
type ContactMessage struct {
	ID          string        `json:"id"`
	FirstName   string        `json:"first_name" gorm:"column:first_name"`
	LastName    string        `json:"last_name" gorm:"column:last_name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone,omitempty"`
	Company     string        `json:"company,omitempty"`
	ServiceType string        `json:"service_type,omitempty" gorm:"column:service_type"`
	Message     string        `json:"message"`
	Status      MessageStatus `json:"status"`
	IsRead      bool          `json:"is_read" gorm:"column:is_read"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (ContactMessage) TableName() string { return "contact_messages" }

// MessageStats is the aggregate view shown on the admin dashboard.
type MessageStats struct {
	Total   int64 `json:"total"`
	Unread  int64 `json:"unread"`
	New     int64 `json:"new_messages"`
	Replied int64 `json:"replied"`
	Today   int64 `json:"today"`
}
