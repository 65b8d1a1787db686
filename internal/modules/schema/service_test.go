package schema

import (
	"context"
	"errors"
	"strings"
	"testing"

	"freightsite/internal/database"
	"freightsite/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSchemaDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	return db
}

func columnNames(cols []ColumnInfo) []string {
	names := make([]string, 0, len(cols))
	for _, c := range cols {
		names = append(names, c.Name)
	}
	return names
}

func TestRepair_CreatesMissingTable(t *testing.T) {
	db := setupSchemaDB(t)
	svc := NewService(db)

	report, err := svc.Repair(context.Background(), "services")
	require.NoError(t, err)

	assert.Equal(t, "services", report.Table)
	assert.Contains(t, report.Applied, "CREATE TABLE services")
	assert.True(t, report.SmokeTest)
	assert.Contains(t, columnNames(report.After), "name_en")
	assert.True(t, db.Migrator().HasTable("services"))
}

func TestRepair_RenamesLegacyColumns(t *testing.T) {
	db := setupSchemaDB(t)
	svc := NewService(db)

	// A table shape from before the trilingual rename: title_* columns and
	// none of the later additions.
	require.NoError(t, db.Exec(`CREATE TABLE services (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title_en TEXT,
		title_ar TEXT,
		title_ro TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO services (title_en, title_ar, title_ro, created_at, updated_at)
		 VALUES ('Sea Freight', 'الشحن البحري', 'Transport maritim', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
	).Error)

	report, err := svc.Repair(context.Background(), "services")
	require.NoError(t, err)

	assert.Contains(t, report.Applied, "RENAME COLUMN title_en TO name_en")
	assert.Contains(t, report.Applied, "ADD COLUMN icon")
	assert.Contains(t, report.Applied, "ADD COLUMN features")
	assert.True(t, report.SmokeTest)

	before := columnNames(report.Before)
	assert.Contains(t, before, "title_en")
	after := columnNames(report.After)
	assert.Contains(t, after, "name_en")
	assert.NotContains(t, after, "title_en")

	// Existing rows survive the rename with their data intact.
	var got domain.Service
	require.NoError(t, db.First(&got).Error)
	assert.Equal(t, "Sea Freight", got.NameEN)
	assert.Equal(t, "الشحن البحري", got.NameAR)
}

func TestRepair_RenamesLegacyTable(t *testing.T) {
	db := setupSchemaDB(t)
	svc := NewService(db)

	require.NoError(t, db.Exec(`CREATE TABLE team (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name_en TEXT,
		name_ar TEXT,
		name_ro TEXT,
		position_en TEXT,
		position_ar TEXT,
		position_ro TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`).Error)

	report, err := svc.Repair(context.Background(), "team_members")
	require.NoError(t, err)

	assert.Contains(t, report.Applied, "RENAME TABLE team TO team_members")
	assert.True(t, report.SmokeTest)
	assert.True(t, db.Migrator().HasTable("team_members"))
	assert.False(t, db.Migrator().HasTable("team"))
}

func TestRepair_SecondRunIsNoOp(t *testing.T) {
	db := setupSchemaDB(t)
	svc := NewService(db)
	ctx := context.Background()

	for _, table := range svc.Tables() {
		first, err := svc.Repair(ctx, table)
		require.NoError(t, err, table)
		require.True(t, first.SmokeTest, table)

		second, err := svc.Repair(ctx, table)
		require.NoError(t, err, table)
		assert.Empty(t, second.Applied, "second repair of %s must apply nothing", table)
		assert.Equal(t, second.Before, second.After, "second repair of %s must leave columns unchanged", table)
		assert.True(t, second.SmokeTest, table)
	}
}

func TestRepair_SmokeTestLeavesNoResidue(t *testing.T) {
	db := setupSchemaDB(t)
	svc := NewService(db)

	_, err := svc.Repair(context.Background(), "contact_messages")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&domain.ContactMessage{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRepair_UnknownTable(t *testing.T) {
	svc := NewService(setupSchemaDB(t))

	_, err := svc.Repair(context.Background(), "invoices")
	assert.True(t, errors.Is(err, ErrUnknownTable))
}

func TestInspect(t *testing.T) {
	db := setupSchemaDB(t)
	svc := NewService(db)
	ctx := context.Background()

	_, err := svc.Inspect(ctx, "certificates")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound), "missing table should report not found")

	_, err = svc.Repair(ctx, "certificates")
	require.NoError(t, err)

	cols, err := svc.Inspect(ctx, "certificates")
	require.NoError(t, err)
	names := strings.Join(columnNames(cols), ",")
	assert.Contains(t, names, "issued_date")
	assert.Contains(t, names, "expiry_date")
}

func TestTables_ListsAllRepairableTables(t *testing.T) {
	svc := NewService(setupSchemaDB(t))

	tables := svc.Tables()
	assert.ElementsMatch(t, []string{"services", "certificates", "team_members", "contact_messages"}, tables)
}
