package auth

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsersStorage struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUsersStorage() *fakeUsersStorage {
	return &fakeUsersStorage{users: make(map[int64]*models.User), nextID: 1}
}

func (f *fakeUsersStorage) Insert(ctx context.Context, username, email string, passwordHash []byte) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			return nil, storage.ErrConflict
		}
	}
	id := f.nextID
	f.nextID++
	user := &models.User{ID: id, Username: username, Email: email, PasswordHash: passwordHash}
	f.users[id] = user
	copied := *user
	return &copied, nil
}

func (f *fakeUsersStorage) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUsersStorage) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, storage.ErrNotFound
}

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	return New(slog.Default(), newFakeUsersStorage(), "test-secret", time.Hour)
}

func TestSignupAndLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, err := svc.Signup(ctx, "alice", "alice@example.com", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, user.PasswordHash)

	token, loggedIn, err := svc.Login(ctx, "alice@example.com", "correct horse battery")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestSignupDuplicate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	_, err := svc.Signup(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)
	_, err = svc.Signup(ctx, "alice", "other@example.com", "password123")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	_, err := svc.Signup(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "alice@example.com", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	user, err := svc.Signup(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)
	token, _, err := svc.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)

	authenticated, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, authenticated.ID)
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Authenticate(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticateRejectsForeignSignature(t *testing.T) {
	svc := newTestService(t)
	other := New(slog.Default(), newFakeUsersStorage(), "other-secret", time.Hour)
	ctx := context.Background()
	_, err := other.Signup(ctx, "bob", "bob@example.com", "password123")
	require.NoError(t, err)
	token, _, err := other.Login(ctx, "bob@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
