package auth

import (
	"context"
	"errors"
	"testing"

	"freightsite/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

type mockJWT struct{ mock.Mock }

func (m *mockJWT) GenerateToken(userID int64, username, role string) (string, error) {
	args := m.Called(userID, username, role)
	return args.String(0), args.Error(1)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin_Success(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockJWT)
	svc := NewService(users, tokens)

	users.On("GetByLogin", mock.Anything, "admin").Return(&domain.User{
		ID:           1,
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: hashOf(t, "s3cret"),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}, nil)
	tokens.On("GenerateToken", int64(1), "admin", "admin").Return("signed-token", nil)

	result, err := svc.Login(context.Background(), LoginRequest{Login: "admin", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.Equal(t, "admin", result.User.Username)
	assert.Empty(t, result.User.PasswordHash, "hash must never leave the service")
	users.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockJWT)
	svc := NewService(users, tokens)

	users.On("GetByLogin", mock.Anything, "admin").Return(&domain.User{
		ID:           1,
		Username:     "admin",
		PasswordHash: hashOf(t, "s3cret"),
		IsActive:     true,
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{Login: "admin", Password: "wrong"})

	assert.True(t, errors.Is(err, ErrInvalidCredentials))
	tokens.AssertNotCalled(t, "GenerateToken")
}

func TestLogin_UnknownLoginLooksLikeWrongPassword(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockJWT))

	users.On("GetByLogin", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{Login: "ghost", Password: "whatever"})

	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestLogin_DisabledAccount(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockJWT))

	users.On("GetByLogin", mock.Anything, "former").Return(&domain.User{
		ID:           2,
		Username:     "former",
		PasswordHash: hashOf(t, "s3cret"),
		IsActive:     false,
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{Login: "former", Password: "s3cret"})

	assert.True(t, errors.Is(err, ErrAccountDisabled))
}

func TestGetMe_StripsHash(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockJWT))

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{
		ID:           1,
		Username:     "admin",
		PasswordHash: "some-hash",
	}, nil)

	user, err := svc.GetMe(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
}

func TestGetMe_DeletedUser(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockJWT))

	users.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetMe(context.Background(), 42)
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestEnsureAdmin_CreatesOnFirstBoot(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockJWT))

	users.On("ExistsByUsername", mock.Anything, "admin").Return(false, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		if u.Username != "admin" || u.Role != domain.RoleAdmin || !u.IsActive {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")) == nil
	})).Return(nil)

	err := svc.EnsureAdmin(context.Background(), "admin", "admin@example.com", "s3cret")
	require.NoError(t, err)
	users.AssertExpectations(t)
}

func TestEnsureAdmin_SkipsExistingAccount(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockJWT))

	users.On("ExistsByUsername", mock.Anything, "admin").Return(true, nil)

	err := svc.EnsureAdmin(context.Background(), "admin", "admin@example.com", "s3cret")
	require.NoError(t, err)
	users.AssertNotCalled(t, "Create")
}

func TestEnsureAdmin_NoPasswordConfigured(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockJWT))

	err := svc.EnsureAdmin(context.Background(), "admin", "admin@example.com", "")
	require.NoError(t, err)
	users.AssertNotCalled(t, "ExistsByUsername")
}
