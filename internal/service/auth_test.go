package service

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wellspring/internal/models"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
	byID    map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*models.User),
		byID:    make(map[string]*models.User),
	}
}

func (f *fakeUserRepo) CreateUser(u *models.User) error {
	u.ID = "user-" + u.Email
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserRepo) GetUserByID(id string) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserRepo) CountUsers() (int, error) { return len(f.byID), nil }

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), zap.NewNop())

	user, err := svc.Register("jo@example.com", "correct horse battery", "Jo", "Park", "Oslo")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", user.PasswordHash)
	assert.Contains(t, user.PasswordHash, "$argon2id$")

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := svc.Register("jo@example.com", "another password", "", "", "")
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("login with correct password", func(t *testing.T) {
		token, expiresAt, err := svc.Login("jo@example.com", "correct horse battery")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.False(t, expiresAt.IsZero())
	})

	t.Run("login with wrong password", func(t *testing.T) {
		_, _, err := svc.Login("jo@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("login with unknown email", func(t *testing.T) {
		_, _, err := svc.Login("nobody@example.com", "whatever")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestGetUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, zap.NewNop())

	created, err := svc.Register("amy@example.com", "long enough password", "Amy", "Li", "")
	require.NoError(t, err)

	got, err := svc.GetUser(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "amy@example.com", got.Email)

	_, err = svc.GetUser("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
