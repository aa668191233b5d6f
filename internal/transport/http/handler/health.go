package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hun-meta/api-base-template/internal/apperror"
	"github.com/hun-meta/api-base-template/internal/transport/http/respond"
)

// HealthHandler handles health-check and test endpoints.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) error {
	if action := chi.URLParam(r, "action"); action != "ping" {
		return apperror.BadRequest("unknown action")
	}
	respond.JSON(w, http.StatusOK, MessageEnvelope{Message: "pong"})
	return nil
}

func (h *HealthHandler) Test(w http.ResponseWriter, _ *http.Request) error {
	respond.JSON(w, http.StatusOK, MessageEnvelope{Message: "ok"})
	return nil
}
