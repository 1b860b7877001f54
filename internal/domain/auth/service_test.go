package auth

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUserRepo struct {
	byEmail map[string]*User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]*User)}
}

func (m *memUserRepo) Create(_ context.Context, user *User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	m.byEmail[user.Email] = user
	return nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	user, ok := m.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemUserRepo(), "test-secret", time.Hour)

	email := gofakeit.Email()
	password := gofakeit.Password(true, true, true, false, false, 16)

	user, err := svc.Register(ctx, email, password)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.NotEqual(t, password, user.PasswordHash)

	t.Run("login with correct password issues a verifiable token", func(t *testing.T) {
		token, loggedIn, err := svc.Login(ctx, email, password)
		require.NoError(t, err)
		assert.Equal(t, user.ID, loggedIn.ID)

		userID, err := svc.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, userID)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, _, err := svc.Login(ctx, email, "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email is rejected identically", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@example.com", password)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("forged token is rejected", func(t *testing.T) {
		other := NewService(newMemUserRepo(), "other-secret", time.Hour)
		token, _, err := svc.Login(ctx, email, password)
		require.NoError(t, err)

		_, err = other.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("empty credentials rejected at registration", func(t *testing.T) {
		_, err := svc.Register(ctx, "", "")
		assert.Error(t, err)
	})
}
