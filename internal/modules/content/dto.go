package content

import (
	"time"

	"freightsite/internal/domain"
)

// dateLayout is the wire format for issued/expiry dates.
const dateLayout = "2006-01-02"

/* ---------- SERVICES ---------- */

type CreateServiceRequest struct {
	NameEN        string   `json:"name_en" binding:"required"`
	NameAR        string   `json:"name_ar" binding:"required"`
	NameRO        string   `json:"name_ro" binding:"required"`
	DescriptionEN string   `json:"description_en"`
	DescriptionAR string   `json:"description_ar"`
	DescriptionRO string   `json:"description_ro"`
	Icon          string   `json:"icon" binding:"required"`
	ImageURL      *string  `json:"image_url"`
	Features      []string `json:"features"`
	IsActive      *bool    `json:"is_active"`
	SortOrder     int      `json:"sort_order"`
}

// UpdateServiceRequest carries only the fields present in the payload;
// nil means "leave unchanged".
type UpdateServiceRequest struct {
	NameEN        *string   `json:"name_en"`
	NameAR        *string   `json:"name_ar"`
	NameRO        *string   `json:"name_ro"`
	DescriptionEN *string   `json:"description_en"`
	DescriptionAR *string   `json:"description_ar"`
	DescriptionRO *string   `json:"description_ro"`
	Icon          *string   `json:"icon"`
	ImageURL      *string   `json:"image_url"`
	Features      *[]string `json:"features"`
	IsActive      *bool     `json:"is_active"`
	SortOrder     *int      `json:"sort_order"`
}

/* ---------- CERTIFICATES ---------- */

type CreateCertificateRequest struct {
	NameEN        string  `json:"name_en" binding:"required"`
	NameAR        string  `json:"name_ar" binding:"required"`
	NameRO        string  `json:"name_ro" binding:"required"`
	DescriptionEN string  `json:"description_en"`
	DescriptionAR string  `json:"description_ar"`
	DescriptionRO string  `json:"description_ro"`
	ImageURL      *string `json:"image_url"`
	IssuedBy      string  `json:"issued_by"`
	IssuedDate    string  `json:"issued_date"`
	ExpiryDate    string  `json:"expiry_date"`
	IsActive      *bool   `json:"is_active"`
	SortOrder     int     `json:"sort_order"`
}

// UpdateCertificateRequest follows the same nil-means-unchanged rule; for
// the two dates an explicit "" clears the stored value.
type UpdateCertificateRequest struct {
	NameEN        *string `json:"name_en"`
	NameAR        *string `json:"name_ar"`
	NameRO        *string `json:"name_ro"`
	DescriptionEN *string `json:"description_en"`
	DescriptionAR *string `json:"description_ar"`
	DescriptionRO *string `json:"description_ro"`
	ImageURL      *string `json:"image_url"`
	IssuedBy      *string `json:"issued_by"`
	IssuedDate    *string `json:"issued_date"`
	ExpiryDate    *string `json:"expiry_date"`
	IsActive      *bool   `json:"is_active"`
	SortOrder     *int    `json:"sort_order"`
}

// CertificateResponse is a certificate plus its derived validity status.
// The status is recomputed on every read, never persisted.
type CertificateResponse struct {
	domain.Certificate
	Status domain.CertificateStatus `json:"status"`
}

func toCertificateResponse(c domain.Certificate, now time.Time) CertificateResponse {
	return CertificateResponse{
		Certificate: c,
		Status:      c.StatusAt(now),
	}
}

/* ---------- TEAM ---------- */

type CreateTeamMemberRequest struct {
	NameEN          string  `json:"name_en" binding:"required"`
	NameAR          string  `json:"name_ar" binding:"required"`
	NameRO          string  `json:"name_ro" binding:"required"`
	PositionEN      string  `json:"position_en" binding:"required"`
	PositionAR      string  `json:"position_ar" binding:"required"`
	PositionRO      string  `json:"position_ro" binding:"required"`
	BioEN           string  `json:"bio_en"`
	BioAR           string  `json:"bio_ar"`
	BioRO           string  `json:"bio_ro"`
	Email           string  `json:"email" binding:"omitempty,email"`
	Phone           string  `json:"phone"`
	ImageURL        *string `json:"image_url"`
	LinkedinURL     *string `json:"linkedin_url"`
	ExperienceYears int     `json:"experience_years" binding:"omitempty,gte=0"`
	IsActive        *bool   `json:"is_active"`
	SortOrder       int     `json:"sort_order"`
}

type UpdateTeamMemberRequest struct {
	NameEN          *string `json:"name_en"`
	NameAR          *string `json:"name_ar"`
	NameRO          *string `json:"name_ro"`
	PositionEN      *string `json:"position_en"`
	PositionAR      *string `json:"position_ar"`
	PositionRO      *string `json:"position_ro"`
	BioEN           *string `json:"bio_en"`
	BioAR           *string `json:"bio_ar"`
	BioRO           *string `json:"bio_ro"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	ImageURL        *string `json:"image_url"`
	LinkedinURL     *string `json:"linkedin_url"`
	ExperienceYears *int    `json:"experience_years"`
	IsActive        *bool   `json:"is_active"`
	SortOrder       *int    `json:"sort_order"`
}
