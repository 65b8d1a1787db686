package repository

import (
	"testing"

	"freightsite/internal/database"
	"freightsite/internal/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "failed to open in-memory database")
	t.Cleanup(func() { database.Close(db) })

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Service{},
		&domain.Certificate{},
		&domain.TeamMember{},
		&domain.ContactMessage{},
	)
	require.NoError(t, err, "failed to migrate schema")

	return db
}
