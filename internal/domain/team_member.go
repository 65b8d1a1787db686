package domain

import "time"

type TeamMember struct {
	ID              int64     `json:"id"`
	NameEN          string    `json:"name_en" gorm:"column:name_en"`
	NameAR          string    `json:"name_ar" gorm:"column:name_ar"`
	NameRO          string    `json:"name_ro" gorm:"column:name_ro"`
	PositionEN      string    `json:"position_en" gorm:"column:position_en"`
	PositionAR      string    `json:"position_ar" gorm:"column:position_ar"`
	PositionRO      string    `json:"position_ro" gorm:"column:position_ro"`
	BioEN           string    `json:"bio_en,omitempty" gorm:"column:bio_en"`
	BioAR           string    `json:"bio_ar,omitempty" gorm:"column:bio_ar"`
	BioRO           string    `json:"bio_ro,omitempty" gorm:"column:bio_ro"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	ImageURL        *string   `json:"image_url,omitempty"`
	LinkedinURL     *string   `json:"linkedin_url,omitempty"`
	ExperienceYears int       `json:"experience_years"`
	IsActive        bool      `json:"is_active"`
	SortOrder       int       `json:"sort_order"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (TeamMember) TableName() string { return "team_members" }
