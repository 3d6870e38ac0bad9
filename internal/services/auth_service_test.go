package services

import (
	"testing"

	"bakery_shop/internal/apperrors"
	"bakery_shop/internal/models"
	"bakery_shop/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Signup(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), bcrypt.MinCost)

	t.Run("creates user with hashed password", func(t *testing.T) {
		user, err := svc.Signup(SignupInput{
			Username:  "alice",
			Email:     "alice@example.com",
			Password:  "secret",
			FirstName: "Alice",
		})
		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.False(t, user.IsAdmin)
		assert.NotEqual(t, "secret", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")))
	})

	t.Run("duplicate username conflicts without creating a row", func(t *testing.T) {
		_, err := svc.Signup(SignupInput{
			Username: "alice",
			Email:    "other@example.com",
			Password: "secret",
		})
		require.ErrorIs(t, err, apperrors.ErrConflict)

		var count int64
		require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := svc.Signup(SignupInput{
			Username: "bob",
			Email:    "alice@example.com",
			Password: "secret",
		})
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		_, err := svc.Signup(SignupInput{Username: "carol"})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestAuthService_Login(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), bcrypt.MinCost)

	_, err := svc.Signup(SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login("alice", "secret")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login("alice", "wrong")
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login("nobody", "secret")
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}
