package main

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"moviecatalog/proj/internal/config"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Http struct {
	log *slog.Logger
	cfg *config.Config
}

type envelop map[string]any

func (h *Http) setupLogPerReq(r *http.Request) *slog.Logger {
	return h.log.With(
		"request_id",
		middleware.GetReqID(r.Context()),
		"method",
		r.Method,
		"path",
		r.URL.Path,
	)
}

func (h *Http) Response(w http.ResponseWriter, r *http.Request, payload any, status int) {
	render.Status(r, status)
	render.JSON(w, r, payload)
}

func (h *Http) Ok(w http.ResponseWriter, r *http.Request, payload any) {
	h.Response(w, r, payload, http.StatusOK)
}

func (h *Http) Created(w http.ResponseWriter, r *http.Request, payload any) {
	h.Response(w, r, payload, http.StatusCreated)
}

func (h *Http) Error(w http.ResponseWriter, r *http.Request, msg string, status int) {
	if msg == "" {
		msg = http.StatusText(status)
	}
	h.Response(w, r, envelop{"message": msg}, status)
}

func (h *Http) BadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	h.Error(w, r, msg, http.StatusBadRequest)
}

func (h *Http) Unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	h.Error(w, r, msg, http.StatusUnauthorized)
}

func (h *Http) Forbidden(w http.ResponseWriter, r *http.Request, msg string) {
	h.Error(w, r, msg, http.StatusForbidden)
}

func (h *Http) NotFound(w http.ResponseWriter, r *http.Request, msg string) {
	h.Error(w, r, msg, http.StatusNotFound)
}

func (h *Http) Conflict(w http.ResponseWriter, r *http.Request, msg string) {
	h.Error(w, r, msg, http.StatusConflict)
}

func (h *Http) UnprocessableEntity(w http.ResponseWriter, r *http.Request, errors map[string]string) {
	h.Response(w, r, envelop{"message": "Validation failed", "errors": errors}, http.StatusUnprocessableEntity)
}

func (h *Http) ServerError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := http.StatusInternalServerError
	log := h.setupLogPerReq(r)
	if err != nil {
		log.Error(err.Error())
	}
	if h.cfg.Debug && err != nil {
		w.WriteHeader(status)
		w.Write([]byte(err.Error() + "\n" + string(debug.Stack())))
		return
	}
	if msg == "" {
		msg = "Sorry! Can't process your request. Please try again later."
	}
	h.Error(w, r, msg, status)
}
