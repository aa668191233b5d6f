package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hun-meta/api-base-template/internal/apperror"
	"github.com/hun-meta/api-base-template/internal/application/user"
	"github.com/hun-meta/api-base-template/internal/domain"
	"github.com/hun-meta/api-base-template/internal/pkg/validate"
	"github.com/hun-meta/api-base-template/internal/transport/http/middleware"
	"github.com/hun-meta/api-base-template/internal/transport/http/respond"
)

// UserHandler handles user CRUD endpoints. Every method returns its failure
// to the respond.Handler adapter; nothing is written twice.
type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler { return &UserHandler{svc: svc} }

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) error {
	var req domain.CreateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return err
	}
	if msgs := validate.Struct(req); msgs != nil {
		return apperror.Validation(msgs...)
	}
	u, err := h.svc.Register(r.Context(), req)
	if err != nil {
		return err
	}
	respond.JSON(w, http.StatusCreated, AuthEnvelope{User: u})
	return nil
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) error {
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	if perPage < 1 {
		perPage = 50
	}
	users, next, err := h.svc.List(r.Context(), perPage, r.URL.Query().Get("cursor"))
	if err != nil {
		return err
	}
	respond.JSON(w, http.StatusOK, PaginatedUsersEnvelope{
		PerPage: perPage, NextCursor: next, Data: users,
	})
	return nil
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) error {
	u, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	respond.JSON(w, http.StatusOK, u)
	return nil
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) error {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return apperror.Unauthorized("unauthorized")
	}
	targetID := chi.URLParam(r, "id")
	if claims.UserID != targetID && claims.Role != domain.RoleAdmin {
		return apperror.Forbidden("cannot update another user")
	}
	var req domain.UpdateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return err
	}
	if msgs := validate.Struct(req); msgs != nil {
		return apperror.Validation(msgs...)
	}
	if req.Role != nil && claims.Role != domain.RoleAdmin {
		return apperror.Forbidden("only admins can change roles")
	}
	u, err := h.svc.Update(r.Context(), targetID, req)
	if err != nil {
		return err
	}
	respond.JSON(w, http.StatusOK, u)
	return nil
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return apperror.Unauthorized("unauthorized")
	}
	targetID := chi.URLParam(r, "id")
	if claims.UserID != targetID && claims.Role != domain.RoleAdmin {
		return apperror.Forbidden("cannot delete another user")
	}
	if err := h.svc.Delete(r.Context(), targetID); err != nil {
		return err
	}
	respond.JSON(w, http.StatusOK, MessageEnvelope{Message: "user deleted"})
	return nil
}
