package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"moviecatalog/proj/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuthenticatedUser(t *testing.T) {
	app := NewTestApplication(t, nil)
	t.Run("authenticated", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request = requestWithUser(request, &models.User{
			ID:       1,
			Username: "test",
			Email:    "test@gmail.com",
		})
		app.requireAuthenticatedUser(okHandler()).ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
	t.Run("anonymous", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request = requestWithUser(request, models.AnonymousUser)
		app.requireAuthenticatedUser(okHandler()).ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
	t.Run("no user in context", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		app.requireAuthenticatedUser(okHandler()).ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestRequireAdminUser(t *testing.T) {
	app := NewTestApplication(t, nil)
	t.Run("admin", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request = requestWithUser(request, &models.User{ID: 1, Username: "root", IsAdmin: true})
		app.requireAdminUser(okHandler()).ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
	t.Run("authenticated but not admin", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request = requestWithUser(request, &models.User{ID: 2, Username: "mortal"})
		app.requireAdminUser(okHandler()).ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
	t.Run("anonymous", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request = requestWithUser(request, models.AnonymousUser)
		app.requireAdminUser(okHandler()).ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestAuthenticateBadHeader(t *testing.T) {
	app := NewTestApplication(t, nil)
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	app.Authenticate(okHandler()).ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAuthenticateNoHeaderIsAnonymous(t *testing.T) {
	app := NewTestApplication(t, nil)
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := app.contextUser(r)
		assert.True(t, user.IsAnonymous())
		w.WriteHeader(http.StatusOK)
	})
	app.Authenticate(next).ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
