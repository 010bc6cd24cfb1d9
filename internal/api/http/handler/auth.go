package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/umtaldejr/money-tracker-api/internal/api/http/response"
	"github.com/umtaldejr/money-tracker-api/internal/logger"
	"github.com/umtaldejr/money-tracker-api/internal/model"
)

// AuthService defines login and caller-lookup operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (model.User, string, error)
	Get(ctx context.Context, id uuid.UUID) (model.User, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	service        AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(service AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{service: service, contextManager: contextManager, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

// Login verifies credentials and returns the record with a bearer token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Email == "" || req.Password == "" {
		response.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, tokenString, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("auth handler: login failed", "error", err.Error())
		response.DomainError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, loginResponse{User: user, Token: tokenString})
}

// Whoami returns the authenticated caller's own record.
func (h *Auth) Whoami(w http.ResponseWriter, r *http.Request) {
	callerID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		response.DomainError(w, h.logger, model.ErrTokenMissing)
		return
	}

	user, err := h.service.Get(r.Context(), callerID)
	if err != nil {
		h.logger.Error("auth handler: me failed", "user_id", callerID, "error", err.Error())
		response.DomainError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, user)
}
