package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"moviecatalog/proj/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestHealthcheck(t *testing.T) {
	app := NewTestApplication(t, nil)
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/healthcheck", nil)
	app.healthcheck(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "available", body["status"])
	assert.Equal(t, version, body["version"])
}

func TestCreateMovieRequiresTitle(t *testing.T) {
	app := NewTestApplication(t, nil)
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/movies", strings.NewReader(`{"year": 2010}`))
	request = requestWithUser(request, &models.User{ID: 1, Username: "test"})
	app.createMovie(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "Title is required", body["message"])
}

func TestCreateMovieRejectsMalformedJSON(t *testing.T) {
	app := NewTestApplication(t, nil)
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/movies", strings.NewReader(`{"title": `))
	request = requestWithUser(request, &models.User{ID: 1, Username: "test"})
	app.createMovie(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateMovieRejectsUnknownFields(t *testing.T) {
	app := NewTestApplication(t, nil)
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/movies", strings.NewReader(`{"title": "Inception", "rating": 10}`))
	request = requestWithUser(request, &models.User{ID: 1, Username: "test"})
	app.createMovie(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateReviewValidation(t *testing.T) {
	app := NewTestApplication(t, nil)
	user := &models.User{ID: 1, Username: "test"}

	t.Run("missing movie id", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(`{"rating": 8}`))
		app.createReview(recorder, requestWithUser(request, user))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Movie ID is required", decodeBody(t, recorder)["message"])
	})
	t.Run("rating out of range", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(`{"movie_id": 1, "rating": 11}`))
		app.createReview(recorder, requestWithUser(request, user))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Rating must be between 1 and 10", decodeBody(t, recorder)["message"])
	})
	t.Run("missing rating", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(`{"movie_id": 1}`))
		app.createReview(recorder, requestWithUser(request, user))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Rating must be between 1 and 10", decodeBody(t, recorder)["message"])
	})
	t.Run("bad watched date", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(`{"movie_id": 1, "rating": 8, "watched_date": "yesterday"}`))
		app.createReview(recorder, requestWithUser(request, user))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestAddToWatchlistRequiresMovieID(t *testing.T) {
	app := NewTestApplication(t, nil)
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/watchlist", strings.NewReader(`{}`))
	request = requestWithUser(request, &models.User{ID: 1, Username: "test"})
	app.addToWatchlist(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Movie ID is required", decodeBody(t, recorder)["message"])
}

func TestExtractIDParamRejectsGarbage(t *testing.T) {
	app := NewTestApplication(t, nil)
	router := app.routes()
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/genres/abc", nil)
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
