package repository

import (
	"context"
	"testing"
	"time"

	"freightsite/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCertificateRepository_Save_CreatesWhenNew(t *testing.T) {
	repo := NewCertificateRepository(setupDB(t))
	ctx := context.Background()

	cert := &domain.Certificate{
		NameEN:   "ISO 9001",
		IssuedBy: "Lloyd's Register",
		IsActive: true,
	}
	require.NoError(t, repo.Save(ctx, cert))
	assert.NotZero(t, cert.ID, "save should backfill the generated ID")

	got, err := repo.GetByID(ctx, cert.ID)
	require.NoError(t, err)
	assert.Equal(t, "ISO 9001", got.NameEN)
}

func TestCertificateRepository_Save_RewritesExisting(t *testing.T) {
	repo := NewCertificateRepository(setupDB(t))
	ctx := context.Background()

	expiry := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)
	cert := &domain.Certificate{
		NameEN:     "FIATA Membership",
		IssuedBy:   "FIATA",
		ExpiryDate: &expiry,
		IsActive:   true,
	}
	require.NoError(t, repo.Save(ctx, cert))

	cert.NameEN = "FIATA Full Membership"
	cert.ExpiryDate = nil
	require.NoError(t, repo.Save(ctx, cert))

	got, err := repo.GetByID(ctx, cert.ID)
	require.NoError(t, err)
	assert.Equal(t, "FIATA Full Membership", got.NameEN)
	assert.Nil(t, got.ExpiryDate, "the full row is rewritten, cleared fields included")
}

func TestCertificateRepository_Save_UnknownID(t *testing.T) {
	repo := NewCertificateRepository(setupDB(t))

	err := repo.Save(context.Background(), &domain.Certificate{ID: 4242, NameEN: "Ghost"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCertificateRepository_Update_ClearsDateWithFlag(t *testing.T) {
	repo := NewCertificateRepository(setupDB(t))
	ctx := context.Background()

	expiry := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	cert := &domain.Certificate{NameEN: "AEO", IssuedBy: "Customs", ExpiryDate: &expiry, IsActive: true}
	require.NoError(t, repo.Create(ctx, cert))

	// Without the flag a nil date means "leave unchanged".
	updated, err := repo.Update(ctx, cert.ID, CertificateUpdate{})
	require.NoError(t, err)
	require.NotNil(t, updated.ExpiryDate)

	updated, err = repo.Update(ctx, cert.ID, CertificateUpdate{SetExpiryDate: true})
	require.NoError(t, err)
	assert.Nil(t, updated.ExpiryDate)
}
