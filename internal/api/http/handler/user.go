package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/umtaldejr/money-tracker-api/internal/api/http/response"
	"github.com/umtaldejr/money-tracker-api/internal/logger"
	"github.com/umtaldejr/money-tracker-api/internal/model"
	"github.com/umtaldejr/money-tracker-api/internal/service"
)

// UserService defines account operations used by the user handler.
type UserService interface {
	Register(ctx context.Context, input service.RegisterInput) (model.User, error)
	Get(ctx context.Context, id uuid.UUID) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id uuid.UUID, input service.UpdateInput) (model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// User handles HTTP endpoints for user records.
type User struct {
	service UserService
	logger  *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(service UserService, logger *logger.Logger) *User {
	return &User{service: service, logger: logger}
}

// Create registers a new user. Anonymous by design.
func (h *User) Create(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, err := h.service.Register(r.Context(), input)
	if err != nil {
		h.logger.Error("user handler: create failed", "error", err.Error())
		response.DomainError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusCreated, user)
}

// List returns all user records.
func (h *User) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("user handler: list failed", "error", err.Error())
		response.DomainError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, users)
}

// Get returns the record named in the path.
func (h *User) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.DomainError(w, h.logger, model.ErrMalformedID)
		return
	}

	user, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("user handler: get failed", "user_id", id, "error", err.Error())
		response.DomainError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, user)
}

// Update applies a partial update to the record named in the path.
func (h *User) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.DomainError(w, h.logger, model.ErrMalformedID)
		return
	}

	var input service.UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		h.logger.Error("user handler: update failed", "user_id", id, "error", err.Error())
		response.DomainError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, user)
}

// Delete permanently removes the record named in the path.
func (h *User) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.DomainError(w, h.logger, model.ErrMalformedID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("user handler: delete failed", "user_id", id, "error", err.Error())
		response.DomainError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
