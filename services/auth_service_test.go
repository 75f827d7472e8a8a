package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Avadhut20/roxiler/entity"
	"github.com/Avadhut20/roxiler/repository"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegister(t *testing.T) {
	t.Run("Should create a USER account with a hashed password", func(t *testing.T) {
		db := newTestDB(t)
		svc := newAuthService(db)

		user, err := svc.Register("Jordan Miles", "Jordan@Example.com ", "s3cret!Pass", "12 High St")
		require.NoError(t, err)
		assert.Equal(t, entity.RoleUser, user.Role)
		assert.Equal(t, "jordan@example.com", user.Email)
		assert.NotEqual(t, "s3cret!Pass", user.Password)
	})

	t.Run("Should reject a duplicate email with Conflict", func(t *testing.T) {
		db := newTestDB(t)
		svc := newAuthService(db)

		_, err := svc.Register("A", "dup@example.com", "pass1", "")
		require.NoError(t, err)
		_, err = svc.Register("B", "dup@example.com", "pass2", "")
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("Should reject empty email or password", func(t *testing.T) {
		db := newTestDB(t)
		svc := newAuthService(db)

		_, err := svc.Register("A", "", "pass", "")
		require.ErrorIs(t, err, ErrInvalidInput)
		_, err = svc.Register("A", "a@example.com", "", "")
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Should issue a token for valid credentials", func(t *testing.T) {
		db := newTestDB(t)
		svc := newAuthService(db)

		_, err := svc.Register("A", "a@example.com", "pass", "")
		require.NoError(t, err)

		token, user, err := svc.Login("a@example.com", "pass")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "a@example.com", user.Email)
	})

	t.Run("Should reject a wrong password and an unknown email alike", func(t *testing.T) {
		db := newTestDB(t)
		svc := newAuthService(db)

		_, err := svc.Register("A", "a@example.com", "pass", "")
		require.NoError(t, err)

		_, _, err = svc.Login("a@example.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		_, _, err = svc.Login("nobody@example.com", "pass")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestChangePassword(t *testing.T) {
	t.Run("Should replace the password after verifying the current one", func(t *testing.T) {
		db := newTestDB(t)
		svc := newAuthService(db)

		user, err := svc.Register("A", "a@example.com", "oldpass", "")
		require.NoError(t, err)

		require.NoError(t, svc.ChangePassword(user.ID, "oldpass", "newpass"))

		_, _, err = svc.Login("a@example.com", "oldpass")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		_, _, err = svc.Login("a@example.com", "newpass")
		require.NoError(t, err)
	})

	t.Run("Should reject a wrong current password", func(t *testing.T) {
		db := newTestDB(t)
		svc := newAuthService(db)

		user, err := svc.Register("A", "a@example.com", "oldpass", "")
		require.NoError(t, err)

		err = svc.ChangePassword(user.ID, "wrong", "newpass")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
