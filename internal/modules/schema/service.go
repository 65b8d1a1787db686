package schema

import (
	"context"
	"fmt"
	"time"

	"freightsite/internal/domain"

	"gorm.io/gorm"
)

// Service converges live tables left behind by earlier deployments to the
// canonical shape the repositories expect. Every step checks current state
// before acting, so a second run is a no-op.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

type ColumnInfo struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Report is returned to the operator for inspection. Applied lists the DDL
// actions of this run in execution order; an idempotent re-run reports an
// empty list and identical before/after listings.
type Report struct {
	Table     string       `json:"table"`
	Before    []ColumnInfo `json:"before"`
	After     []ColumnInfo `json:"after"`
	Applied   []string     `json:"applied"`
	SmokeTest bool         `json:"smoke_test"`
}

type renamePair struct {
	from string
	to   string
}

// tableSpec describes one repairable table: its model, the legacy table
// name it may still live under, the legacy column renames, and the columns
// the model layer requires.
type tableSpec struct {
	model       any
	legacyTable string
	renames     []renamePair
	required    []string
	smokeTest   func(ctx context.Context, db *gorm.DB) error
}

var trilingualRenames = []renamePair{
	{from: "title_en", to: "name_en"},
	{from: "title_ar", to: "name_ar"},
	{from: "title_ro", to: "name_ro"},
}

func tableSpecs() map[string]tableSpec {
	return map[string]tableSpec{
		"services": {
			model:   &domain.Service{},
			renames: trilingualRenames,
			required: []string{
				"name_en", "name_ar", "name_ro",
				"description_en", "description_ar", "description_ro",
				"icon", "image_url", "features", "is_active", "sort_order",
			},
			smokeTest: servicesSmokeTest,
		},
		"certificates": {
			model:   &domain.Certificate{},
			renames: trilingualRenames,
			required: []string{
				"name_en", "name_ar", "name_ro",
				"description_en", "description_ar", "description_ro",
				"image_url", "issued_by", "issued_date", "expiry_date",
				"is_active", "sort_order",
			},
			smokeTest: certificatesSmokeTest,
		},
		"team_members": {
			model:       &domain.TeamMember{},
			legacyTable: "team",
			renames:     trilingualRenames,
			required: []string{
				"name_en", "name_ar", "name_ro",
				"position_en", "position_ar", "position_ro",
				"bio_en", "bio_ar", "bio_ro",
				"email", "phone", "image_url", "linkedin_url",
				"experience_years", "is_active", "sort_order",
			},
			smokeTest: teamSmokeTest,
		},
		"contact_messages": {
			model:       &domain.ContactMessage{},
			legacyTable: "contact",
			required: []string{
				"first_name", "last_name", "email", "phone", "company",
				"service_type", "message", "status", "is_read",
			},
			smokeTest: messagesSmokeTest,
		},
	}
}

var ErrUnknownTable = fmt.Errorf("unknown table")

// Tables lists the repairable table names.
func (s *Service) Tables() []string {
	specs := tableSpecs()
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	return names
}

// Inspect returns the live column listing without touching anything.
func (s *Service) Inspect(ctx context.Context, table string) ([]ColumnInfo, error) {
	spec, ok := tableSpecs()[table]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}

	db := s.db.WithContext(ctx)
	if !db.Migrator().HasTable(table) {
		return nil, fmt.Errorf("table %q does not exist: %w", table, gorm.ErrRecordNotFound)
	}
	return columns(db, spec.model)
}

// Repair converges table to the canonical shape. Steps, in order: rename a
// legacy table, create the table if absent, rename legacy columns, add
// missing columns, then insert-and-delete a representative record to prove
// the create path works. Applied DDL commits statement by statement; a
// failure aborts without rolling back earlier steps.
func (s *Service) Repair(ctx context.Context, table string) (*Report, error) {
	spec, ok := tableSpecs()[table]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}

	db := s.db.WithContext(ctx)
	m := db.Migrator()
	report := &Report{Table: table, Applied: []string{}}

	if spec.legacyTable != "" && m.HasTable(spec.legacyTable) && !m.HasTable(table) {
		if err := m.RenameTable(spec.legacyTable, table); err != nil {
			return report, fmt.Errorf("failed to rename table %s to %s: %w", spec.legacyTable, table, err)
		}
		report.Applied = append(report.Applied, fmt.Sprintf("RENAME TABLE %s TO %s", spec.legacyTable, table))
	}

	if !m.HasTable(table) {
		if err := m.CreateTable(spec.model); err != nil {
			return report, fmt.Errorf("failed to create table %s: %w", table, err)
		}
		report.Applied = append(report.Applied, fmt.Sprintf("CREATE TABLE %s", table))
	} else {
		before, err := columns(db, spec.model)
		if err != nil {
			return report, fmt.Errorf("failed to read columns of %s: %w", table, err)
		}
		report.Before = before
	}

	for _, r := range spec.renames {
		if m.HasColumn(spec.model, r.from) && !m.HasColumn(spec.model, r.to) {
			if err := m.RenameColumn(spec.model, r.from, r.to); err != nil {
				return report, fmt.Errorf("failed to rename column %s to %s on %s: %w", r.from, r.to, table, err)
			}
			report.Applied = append(report.Applied, fmt.Sprintf("RENAME COLUMN %s TO %s", r.from, r.to))
		}
	}

	for _, col := range spec.required {
		if !m.HasColumn(spec.model, col) {
			if err := m.AddColumn(spec.model, col); err != nil {
				return report, fmt.Errorf("failed to add column %s to %s: %w", col, table, err)
			}
			report.Applied = append(report.Applied, fmt.Sprintf("ADD COLUMN %s", col))
		}
	}

	after, err := columns(db, spec.model)
	if err != nil {
		return report, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}
	report.After = after

	if err := spec.smokeTest(ctx, s.db); err != nil {
		return report, fmt.Errorf("smoke test failed on %s: %w", table, err)
	}
	report.SmokeTest = true

	return report, nil
}

func columns(db *gorm.DB, model any) ([]ColumnInfo, error) {
	types, err := db.Migrator().ColumnTypes(model)
	if err != nil {
		return nil, err
	}
	out := make([]ColumnInfo, 0, len(types))
	for _, ct := range types {
		out = append(out, ColumnInfo{
			Name: ct.Name(),
			Type: ct.DatabaseTypeName(),
		})
	}
	return out, nil
}

/* ---------- smoke tests: insert a representative record, delete it ---------- */

func servicesSmokeTest(ctx context.Context, db *gorm.DB) error {
	probe := &domain.Service{
		NameEN:        "Test Service",
		NameAR:        "خدمة تجريبية",
		NameRO:        "Serviciu Test",
		DescriptionEN: "Test description",
		DescriptionAR: "وصف تجريبي",
		DescriptionRO: "Descriere test",
		Icon:          "Ship",
		Features:      []string{},
		IsActive:      true,
	}
	if err := db.WithContext(ctx).Create(probe).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Delete(&domain.Service{}, probe.ID).Error
}

func certificatesSmokeTest(ctx context.Context, db *gorm.DB) error {
	issued := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	expiry := issued.AddDate(3, 0, 0)
	probe := &domain.Certificate{
		NameEN:     "Test Certificate",
		NameAR:     "شهادة تجريبية",
		NameRO:     "Certificat Test",
		IssuedBy:   "Test Body",
		IssuedDate: &issued,
		ExpiryDate: &expiry,
		IsActive:   true,
	}
	if err := db.WithContext(ctx).Create(probe).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Delete(&domain.Certificate{}, probe.ID).Error
}

func teamSmokeTest(ctx context.Context, db *gorm.DB) error {
	probe := &domain.TeamMember{
		NameEN:     "Test Member",
		NameAR:     "عضو تجريبي",
		NameRO:     "Membru Test",
		PositionEN: "Manager",
		PositionAR: "مدير",
		PositionRO: "Manager",
		IsActive:   true,
	}
	if err := db.WithContext(ctx).Create(probe).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Delete(&domain.TeamMember{}, probe.ID).Error
}

func messagesSmokeTest(ctx context.Context, db *gorm.DB) error {
	probe := &domain.ContactMessage{
		ID:        "00000000-0000-0000-0000-00000000beef",
		FirstName: "Test",
		LastName:  "Probe",
		Email:     "probe@example.com",
		Message:   "schema repair probe",
		Status:    domain.MessageNew,
	}
	if err := db.WithContext(ctx).Create(probe).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Where("id = ?", probe.ID).Delete(&domain.ContactMessage{}).Error
}
