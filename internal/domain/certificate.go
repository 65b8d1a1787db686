package domain

import "time"

type CertificateStatus string

const (
	CertificateValid        CertificateStatus = "valid"
	CertificateExpiringSoon CertificateStatus = "expiring_soon"
	CertificateExpired      CertificateStatus = "expired"
)

// expiryWarningWindow is how far ahead of expiry a certificate is flagged
// as expiring soon.
const expiryWarningWindow = 90 * 24 * time.Hour

// Certificate is a company accreditation (ISO, FIATA membership, ...) shown
// on the public certificates page.
type Certificate struct {
	ID            int64      `json:"id"`
	NameEN        string     `json:"name_en" gorm:"column:name_en"`
	NameAR        string     `json:"name_ar" gorm:"column:name_ar"`
	NameRO        string     `json:"name_ro" gorm:"column:name_ro"`
	DescriptionEN string     `json:"description_en" gorm:"column:description_en"`
	DescriptionAR string     `json:"description_ar" gorm:"column:description_ar"`
	DescriptionRO string     `json:"description_ro" gorm:"column:description_ro"`
	ImageURL      *string    `json:"image_url,omitempty"`
	IssuedBy      string     `json:"issued_by"`
	IssuedDate    *time.Time `json:"issued_date,omitempty"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	IsActive      bool       `json:"is_active"`
	SortOrder     int        `json:"sort_order"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Certificate) TableName() string { return "certificates" }

// StatusAt derives the validity status relative to now. A certificate whose
// expiry falls exactly on now or exactly on now+90d counts as expiring soon.
// Certificates without an expiry date never expire.
func (c *Certificate) StatusAt(now time.Time) CertificateStatus {
	if c.ExpiryDate == nil {
		return CertificateValid
	}
	exp := *c.ExpiryDate
	if exp.Before(now) {
		return CertificateExpired
	}
	if !exp.After(now.Add(expiryWarningWindow)) {
		return CertificateExpiringSoon
	}
	return CertificateValid
}
