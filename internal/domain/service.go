package domain

import "time"

// Service is a logistics service presented on the public site in three
// languages. Features is a list of short selling points rendered as bullet
// lists; it is stored as a JSON array column.
type Service struct {
	ID            int64     `json:"id"`
	NameEN        string    `json:"name_en" gorm:"column:name_en"`
	NameAR        string    `json:"name_ar" gorm:"column:name_ar"`
	NameRO        string    `json:"name_ro" gorm:"column:name_ro"`
	DescriptionEN string    `json:"description_en" gorm:"column:description_en"`
	DescriptionAR string    `json:"description_ar" gorm:"column:description_ar"`
	DescriptionRO string    `json:"description_ro" gorm:"column:description_ro"`
	Icon          string    `json:"icon"`
	ImageURL      *string   `json:"image_url,omitempty"`
	Features      []string  `json:"features" gorm:"serializer:json"`
	IsActive      bool      `json:"is_active"`
	SortOrder     int       `json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Service) TableName() string { return "services" }
