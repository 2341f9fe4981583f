package main

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"moviecatalog/proj/internal/config"
	"moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/services"
	"moviecatalog/proj/internal/services/auth"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

func NewTestApplication(t *testing.T, services *services.Services) *Application {
	t.Helper()
	cfg := &config.Config{}
	queryDecoder := schema.NewDecoder()
	queryDecoder.IgnoreUnknownKeys(true)
	log := slog.Default()
	return &Application{
		cfg:          cfg,
		log:          log,
		validator:    govalidator.New(govalidator.WithRequiredStructEnabled()),
		queryDecoder: queryDecoder,
		services:     services,
		Http: &Http{
			log: log,
			cfg: cfg,
		},
	}
}

func newTestAuthService(t *testing.T, storage auth.UsersStorage) *auth.AuthService {
	t.Helper()
	return auth.New(slog.Default(), storage, "test-secret", time.Hour)
}

func requestWithUser(r *http.Request, user *models.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), CtxKeyUser, user))
}
