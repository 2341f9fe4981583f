package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/services"
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

func TestAuthFlow(t *testing.T) {
	authService := newTestAuthService(t, newFakeUsersStorage())
	app := NewTestApplication(t, &services.Services{Auth: authService})
	router := app.routes()

	signupBody := `{"username": "alice", "email": "alice@example.com", "password": "password123"}`
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(signupBody))
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var signedUp models.User
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &signedUp))
	assert.Equal(t, "alice", signedUp.Username)

	recorder = httptest.NewRecorder()
	request = httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email": "alice@example.com", "password": "password123"}`))
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var loginResp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &loginResp))
	require.NotEmpty(t, loginResp.Token)

	recorder = httptest.NewRecorder()
	request = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	request.Header.Set("Authorization", "Bearer "+loginResp.Token)
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var me models.User
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &me))
	assert.Equal(t, signedUp.ID, me.ID)
}

func TestSignupValidation(t *testing.T) {
	authService := newTestAuthService(t, newFakeUsersStorage())
	app := NewTestApplication(t, &services.Services{Auth: authService})
	router := app.routes()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(`{"username": "al", "email": "not-an-email", "password": "short"}`))
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "username")
	assert.Contains(t, body.Errors, "email")
	assert.Contains(t, body.Errors, "password")
}

func TestLoginWrongPassword(t *testing.T) {
	authService := newTestAuthService(t, newFakeUsersStorage())
	app := NewTestApplication(t, &services.Services{Auth: authService})
	router := app.routes()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(`{"username": "alice", "email": "alice@example.com", "password": "password123"}`))
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = httptest.NewRecorder()
	request = httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email": "alice@example.com", "password": "nope nope nope"}`))
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
