package handler

import (
	"net/http"

	"github.com/hun-meta/api-base-template/internal/apperror"
	"github.com/hun-meta/api-base-template/internal/application/user"
	"github.com/hun-meta/api-base-template/internal/domain"
	"github.com/hun-meta/api-base-template/internal/pkg/validate"
	"github.com/hun-meta/api-base-template/internal/transport/http/respond"
)

// AuthHandler handles login.
type AuthHandler struct {
	svc user.Service
}

func NewAuthHandler(svc user.Service) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) error {
	var req domain.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return err
	}
	if msgs := validate.Struct(req); msgs != nil {
		return apperror.Validation(msgs...)
	}
	u, bearer, err := h.svc.Authenticate(r.Context(), req)
	if err != nil {
		return err
	}
	respond.JSON(w, http.StatusOK, AuthEnvelope{Bearer: bearer, User: u})
	return nil
}
