package content

import (
	"context"
	"fmt"
	"strings"
	"time"

	"freightsite/internal/domain"
	"freightsite/internal/repository"
)

// Service carries the CRUD logic for the three content entities. Required
// fields are checked here, before any SQL is issued, so the data layer only
// ever sees well-formed records.
type Service struct {
	services     ServiceRepo
	certificates CertificateRepo
	team         TeamRepo
}

func NewService(services ServiceRepo, certificates CertificateRepo, team TeamRepo) *Service {
	return &Service{
		services:     services,
		certificates: certificates,
		team:         team,
	}
}

func requireTrilingual(field string, en, ar, ro string) error {
	if strings.TrimSpace(en) == "" || strings.TrimSpace(ar) == "" || strings.TrimSpace(ro) == "" {
		return fmt.Errorf("%w: %s must be provided in en, ar and ro", ErrValidation, field)
	}
	return nil
}

func parseDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be YYYY-MM-DD", ErrBadDate, field)
	}
	return &t, nil
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

/* ---------- SERVICES ---------- */

func (s *Service) CreateService(ctx context.Context, req CreateServiceRequest) (*domain.Service, error) {
	if err := requireTrilingual("name", req.NameEN, req.NameAR, req.NameRO); err != nil {
		return nil, err
	}

	features := req.Features
	if features == nil {
		features = []string{}
	}

	svc := &domain.Service{
		NameEN:        req.NameEN,
		NameAR:        req.NameAR,
		NameRO:        req.NameRO,
		DescriptionEN: req.DescriptionEN,
		DescriptionAR: req.DescriptionAR,
		DescriptionRO: req.DescriptionRO,
		Icon:          req.Icon,
		ImageURL:      req.ImageURL,
		Features:      features,
		IsActive:      boolOrDefault(req.IsActive, true),
		SortOrder:     req.SortOrder,
	}

	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.GetAll(ctx)
}

func (s *Service) ListActiveServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.GetActive(ctx)
}

func (s *Service) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	return s.services.GetByID(ctx, id)
}

func (s *Service) UpdateService(ctx context.Context, id int64, req UpdateServiceRequest) (*domain.Service, error) {
	for field, v := range map[string]*string{"name_en": req.NameEN, "name_ar": req.NameAR, "name_ro": req.NameRO} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return nil, fmt.Errorf("%w: %s must not be blank", ErrValidation, field)
		}
	}

	return s.services.Update(ctx, id, repository.ServiceUpdate{
		NameEN:        req.NameEN,
		NameAR:        req.NameAR,
		NameRO:        req.NameRO,
		DescriptionEN: req.DescriptionEN,
		DescriptionAR: req.DescriptionAR,
		DescriptionRO: req.DescriptionRO,
		Icon:          req.Icon,
		ImageURL:      req.ImageURL,
		Features:      req.Features,
		IsActive:      req.IsActive,
		SortOrder:     req.SortOrder,
	})
}

func (s *Service) DeleteService(ctx context.Context, id int64) (*domain.Service, error) {
	return s.services.Delete(ctx, id)
}

/* ---------- CERTIFICATES ---------- */

func (s *Service) CreateCertificate(ctx context.Context, req CreateCertificateRequest) (*domain.Certificate, error) {
	if err := requireTrilingual("name", req.NameEN, req.NameAR, req.NameRO); err != nil {
		return nil, err
	}

	issued, err := parseDate("issued_date", req.IssuedDate)
	if err != nil {
		return nil, err
	}
	expiry, err := parseDate("expiry_date", req.ExpiryDate)
	if err != nil {
		return nil, err
	}
	if issued != nil && expiry != nil && expiry.Before(*issued) {
		return nil, fmt.Errorf("%w: expiry_date must not precede issued_date", ErrValidation)
	}

	cert := &domain.Certificate{
		NameEN:        req.NameEN,
		NameAR:        req.NameAR,
		NameRO:        req.NameRO,
		DescriptionEN: req.DescriptionEN,
		DescriptionAR: req.DescriptionAR,
		DescriptionRO: req.DescriptionRO,
		ImageURL:      req.ImageURL,
		IssuedBy:      req.IssuedBy,
		IssuedDate:    issued,
		ExpiryDate:    expiry,
		IsActive:      boolOrDefault(req.IsActive, true),
		SortOrder:     req.SortOrder,
	}

	if err := s.certificates.Create(ctx, cert); err != nil {
		return nil, err
	}
	return cert, nil
}

func (s *Service) ListCertificates(ctx context.Context) ([]CertificateResponse, error) {
	certs, err := s.certificates.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return withStatuses(certs), nil
}

func (s *Service) ListActiveCertificates(ctx context.Context) ([]CertificateResponse, error) {
	certs, err := s.certificates.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	return withStatuses(certs), nil
}

func withStatuses(certs []domain.Certificate) []CertificateResponse {
	now := time.Now()
	out := make([]CertificateResponse, 0, len(certs))
	for _, c := range certs {
		out = append(out, toCertificateResponse(c, now))
	}
	return out
}

func (s *Service) GetCertificate(ctx context.Context, id int64) (*CertificateResponse, error) {
	cert, err := s.certificates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toCertificateResponse(*cert, time.Now())
	return &resp, nil
}

func (s *Service) UpdateCertificate(ctx context.Context, id int64, req UpdateCertificateRequest) (*CertificateResponse, error) {
	for field, v := range map[string]*string{"name_en": req.NameEN, "name_ar": req.NameAR, "name_ro": req.NameRO} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return nil, fmt.Errorf("%w: %s must not be blank", ErrValidation, field)
		}
	}

	// The date pair is validated against the stored record, so moving one
	// date on its own cannot cross the other. An explicit empty string
	// clears a date.
	current, err := s.certificates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	issued, expiry := current.IssuedDate, current.ExpiryDate
	if req.IssuedDate != nil {
		if issued, err = parseDate("issued_date", *req.IssuedDate); err != nil {
			return nil, err
		}
	}
	if req.ExpiryDate != nil {
		if expiry, err = parseDate("expiry_date", *req.ExpiryDate); err != nil {
			return nil, err
		}
	}
	if issued != nil && expiry != nil && expiry.Before(*issued) {
		return nil, fmt.Errorf("%w: expiry_date must not precede issued_date", ErrValidation)
	}

	cert, err := s.certificates.Update(ctx, id, repository.CertificateUpdate{
		NameEN:        req.NameEN,
		NameAR:        req.NameAR,
		NameRO:        req.NameRO,
		DescriptionEN: req.DescriptionEN,
		DescriptionAR: req.DescriptionAR,
		DescriptionRO: req.DescriptionRO,
		ImageURL:      req.ImageURL,
		IssuedBy:      req.IssuedBy,
		IssuedDate:    issued,
		SetIssuedDate: req.IssuedDate != nil,
		ExpiryDate:    expiry,
		SetExpiryDate: req.ExpiryDate != nil,
		IsActive:      req.IsActive,
		SortOrder:     req.SortOrder,
	})
	if err != nil {
		return nil, err
	}
	resp := toCertificateResponse(*cert, time.Now())
	return &resp, nil
}

func (s *Service) DeleteCertificate(ctx context.Context, id int64) (*domain.Certificate, error) {
	return s.certificates.Delete(ctx, id)
}

/* ---------- TEAM ---------- */

func (s *Service) CreateTeamMember(ctx context.Context, req CreateTeamMemberRequest) (*domain.TeamMember, error) {
	if err := requireTrilingual("name", req.NameEN, req.NameAR, req.NameRO); err != nil {
		return nil, err
	}
	if err := requireTrilingual("position", req.PositionEN, req.PositionAR, req.PositionRO); err != nil {
		return nil, err
	}

	member := &domain.TeamMember{
		NameEN:          req.NameEN,
		NameAR:          req.NameAR,
		NameRO:          req.NameRO,
		PositionEN:      req.PositionEN,
		PositionAR:      req.PositionAR,
		PositionRO:      req.PositionRO,
		BioEN:           req.BioEN,
		BioAR:           req.BioAR,
		BioRO:           req.BioRO,
		Email:           req.Email,
		Phone:           req.Phone,
		ImageURL:        req.ImageURL,
		LinkedinURL:     req.LinkedinURL,
		ExperienceYears: req.ExperienceYears,
		IsActive:        boolOrDefault(req.IsActive, true),
		SortOrder:       req.SortOrder,
	}

	if err := s.team.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *Service) ListTeam(ctx context.Context) ([]domain.TeamMember, error) {
	return s.team.GetAll(ctx)
}

func (s *Service) ListActiveTeam(ctx context.Context) ([]domain.TeamMember, error) {
	return s.team.GetActive(ctx)
}

func (s *Service) GetTeamMember(ctx context.Context, id int64) (*domain.TeamMember, error) {
	return s.team.GetByID(ctx, id)
}

func (s *Service) UpdateTeamMember(ctx context.Context, id int64, req UpdateTeamMemberRequest) (*domain.TeamMember, error) {
	for field, v := range map[string]*string{
		"name_en": req.NameEN, "name_ar": req.NameAR, "name_ro": req.NameRO,
		"position_en": req.PositionEN, "position_ar": req.PositionAR, "position_ro": req.PositionRO,
	} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return nil, fmt.Errorf("%w: %s must not be blank", ErrValidation, field)
		}
	}

	return s.team.Update(ctx, id, repository.TeamMemberUpdate{
		NameEN:          req.NameEN,
		NameAR:          req.NameAR,
		NameRO:          req.NameRO,
		PositionEN:      req.PositionEN,
		PositionAR:      req.PositionAR,
		PositionRO:      req.PositionRO,
		BioEN:           req.BioEN,
		BioAR:           req.BioAR,
		BioRO:           req.BioRO,
		Email:           req.Email,
		Phone:           req.Phone,
		ImageURL:        req.ImageURL,
		LinkedinURL:     req.LinkedinURL,
		ExperienceYears: req.ExperienceYears,
		IsActive:        req.IsActive,
		SortOrder:       req.SortOrder,
	})
}

func (s *Service) DeleteTeamMember(ctx context.Context, id int64) (*domain.TeamMember, error) {
	return s.team.Delete(ctx, id)
}
